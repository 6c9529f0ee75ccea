package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/savedata/internal/cli"
	"github.com/arthur-debert/savedata/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewCtlCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", "Error:"), err)
		os.Exit(1)
	}
}
