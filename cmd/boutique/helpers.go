package main

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"smartboutique/internal/cart"
)

var titleCaser = cases.Title(language.Spanish)

// displayTitle title-cases a category or product label for table output.
func displayTitle(value string) string {
	if value == "" {
		return "-"
	}
	return titleCaser.String(value)
}

// formatPrice renders an amount in the boutique's currency.
func formatPrice(amount float64) string {
	return fmt.Sprintf("Bs. %.2f", amount)
}

func cartRows(lines []cart.Line) [][]string {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []string{
			fmt.Sprintf("%d", line.ProductID),
			line.Nombre,
			fmt.Sprintf("%d", line.Cantidad),
			formatPrice(line.Precio),
			formatPrice(line.Subtotal()),
		})
	}
	return rows
}
