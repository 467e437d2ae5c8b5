package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiCyan  = "\x1b[36m"
)

// printStatus writes the storefront status line, dimmed to cyan when the
// output is a terminal.
func printStatus(out io.Writer, status string) {
	if status == "" {
		return
	}
	if shouldColorize(out) {
		fmt.Fprintln(out, ansiCyan+status+ansiReset)
		return
	}
	fmt.Fprintln(out, status)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
