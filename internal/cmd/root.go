package cmd

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/doclint/doclint/internal/ui"
)

var (
	// Global flags
	verbose bool
	format  string
)

// RootCmd is the doclint entry point
var RootCmd = &cobra.Command{
	Use:   "doclint",
	Short: "A quality reviewer for documents",
	Long: `doclint evaluates a document against a configurable set of review
rules and produces a quality report: per-dimension scores, an overall
score, and a ranked list of findings with locations.

Deterministic text metrics (sentence length, readability, passive
voice) run first; model-based semantic rules are evaluated through a
hosted inference endpoint when one is configured.`,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
}

// GetUI builds the UI for the current flags, detecting TTY support.
func GetUI() *ui.UI {
	return ui.New(os.Stdout, os.Stderr, format)
}

// newLogger builds the root logger honoring --verbose.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "doclint",
		Output: os.Stderr,
		Level:  level,
	})
}
