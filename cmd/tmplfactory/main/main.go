package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/arthur-debert/tmplfactory/cmd/tmplfactory"
	"github.com/arthur-debert/tmplfactory/pkg/errors"
	"github.com/arthur-debert/tmplfactory/pkg/ui"
)

func main() {
	rootCmd := tmplfactory.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var reported *tmplfactory.ReportedError
		if !stderrors.As(err, &reported) {
			msg := "Error: " + errors.UserMessage(err)
			r, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
			if rerr != nil || r.RenderFailure(msg) != nil {
				fmt.Fprintln(os.Stderr, msg)
			}
		}
		os.Exit(1)
	}
}
