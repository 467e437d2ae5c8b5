package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"smartboutique/internal/services"
	"smartboutique/internal/voice"
)

func newVoiceCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "voice [transcript...]",
		Short: "Add products by voice command",
		Long: "Interprets a spoken-style command such as \"agregar camisa azul\" and adds\n" +
			"the first matching product to the cart. With no arguments, one line is read\n" +
			"from stdin as the transcript.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reqCtx := requestContext(cmd)
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			sess, cleanup, err := ctx.loadedStorefront(reqCtx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				sess.HandleTranscript(reqCtx, strings.Join(args, " "))
			} else {
				fmt.Fprintf(out, "Microphone: listening (%s)... type the command and press enter.\n", cfg.Voice.Language)
				var rec voice.Recognizer
				if in := cmd.InOrStdin(); in != nil {
					rec = voice.NewLineRecognizer(in)
				}
				if err := sess.ListenVoice(reqCtx, rec); err != nil {
					// A missing speech capability is reported, not fatal.
					if errors.Is(err, services.ErrUnsupported) {
						printStatus(out, services.Message(err))
						return nil
					}
					return err
				}
			}

			printStatus(out, sess.Status())
			printCart(cmd, sess)
			return nil
		},
	}
}
