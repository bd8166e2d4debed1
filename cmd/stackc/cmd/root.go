package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/stackc/internal/driver"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	targetFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "stackc <input> <output>",
	Short: "Compile a small imperative language to x86-64 or AArch64 assembly",
	Long: `stackc lexes, resolves, and parses a source file, then emits textual
assembly for the chosen backend.

It is a single-pass ahead-of-time compiler: there is no type checking,
no functions with parameters, and no optimization passes. Correctness
is defined at the level of the emitted assembly text.`,
	Version: Version,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("not enough arguments")
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := driver.Target(targetFlag)
		if verboseFlag {
			fmt.Fprintf(os.Stderr, "compiling %s -> %s (%s)\n", args[0], args[1], target)
		}
		return driver.Run(args[0], args[1], target)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVar(&targetFlag, "target", string(driver.X86_64), "backend target: x86_64 or arm64")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("Problem parsing arguments: %s", err)
	})
}
