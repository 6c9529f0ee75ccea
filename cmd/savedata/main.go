package main

import (
	"os"

	"github.com/arthur-debert/savedata/internal/cli"
)

// savedata always exits 0; the outcome is reported in the envelope on stdout.
func main() {
	cli.RunAdapter(os.Args[1:], os.Stdin, os.Stdout)
}
