package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dotkeeper/cmd/dotkeeper"
	"github.com/arthur-debert/dotkeeper/internal/version"
)

func main() {
	rootCmd := dotkeeper.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOTKEEPER",
		Section: "1",
		Source:  "dotkeeper " + version.Version,
		Manual:  "dotkeeper manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
