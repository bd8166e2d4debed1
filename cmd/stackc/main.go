// Command stackc is the entry point for the compiler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/stackc/cmd/stackc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
