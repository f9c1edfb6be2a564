package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotkeeper/cmd/dotkeeper"
	"github.com/arthur-debert/dotkeeper/pkg/errors"
	"github.com/arthur-debert/dotkeeper/pkg/ui/styles"
)

func main() {
	rootCmd := dotkeeper.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
			fmt.Fprintln(os.Stderr, styles.GetStyle("Muted").Render(fmt.Sprintf("(%s)", code)))
		}

		os.Exit(1)
	}
}
