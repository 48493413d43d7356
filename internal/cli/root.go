package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rustmap/internal/logging"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rustmap",
	Short: "Rustmap - structured symbol outlines for Rust source files",
	Long: `Rustmap parses Rust source files and produces a structured,
JSON-serializable outline: functions, structs/enums/unions with their
methods, traits, inline modules, and references to file-backed modules,
each with visibility, doc comments, and source spans.

Parsing is error-tolerant: files with syntax errors still yield a
best-effort outline alongside diagnostics.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
