package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rustmap/internal/outline"
)

var (
	parseIncludePrivate bool
	parseCompact        bool
	parseModules        bool
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file.rs>",
	Short: "Extract the symbol outline of one Rust file as JSON",
	Long: `Parse reads a single Rust source file and prints its outline as JSON.

Examples:
  # Outline of public items
  rustmap parse src/lib.rs

  # Include private items
  rustmap parse --include-private src/lib.rs

  # Flattened inline-module list instead of the full outline
  rustmap parse --modules src/lib.rs
`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseIncludePrivate, "include-private", "p", false, "Include items without a pub modifier")
	parseCmd.Flags().BoolVar(&parseCompact, "compact", false, "Emit compact JSON instead of indented")
	parseCmd.Flags().BoolVar(&parseModules, "modules", false, "Print the flattened module list derived from the outline")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	source, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	extractor := outline.New()
	result, err := extractor.Extract(context.Background(), source, outline.Options{
		IncludePrivate: parseIncludePrivate,
		FilePath:       filePath,
	})
	if err != nil {
		return err
	}

	payload, err := renderResult(result, parseCompact, parseModules)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return nil
}

// renderResult serializes either the full outline or the flattened module
// projection. Encoding failure is a hard error; nothing partial is emitted.
func renderResult(result *outline.Result, compact, modules bool) ([]byte, error) {
	var value any = result
	if modules {
		value = result.FileInfo.FlattenModules()
	}

	var payload []byte
	var err error
	if compact {
		payload, err = json.Marshal(value)
	} else {
		payload, err = json.MarshalIndent(value, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return payload, nil
}
