package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doclint/doclint/internal/analyzer"
	"github.com/doclint/doclint/internal/llm"
)

var analyzersCmd = &cobra.Command{
	Use:   "analyzers",
	Short: "List the registered analyzers and their tunables",
	RunE:  runAnalyzers,
}

func init() {
	RootCmd.AddCommand(analyzersCmd)
}

func runAnalyzers(cmd *cobra.Command, args []string) error {
	u := GetUI()

	cfg := llm.DefaultConfig()
	analyzers := []analyzer.Analyzer{
		analyzer.NewSentenceLengthAnalyzer(),
		analyzer.NewReadabilityAnalyzer(),
		analyzer.NewPassiveVoiceAnalyzer(),
		analyzer.NewSemanticAnalyzer(nil, cfg, nil),
	}

	for _, a := range analyzers {
		fmt.Fprintf(os.Stdout, "%s %s\n",
			u.Styles.Header.Render(a.Name()),
			u.Styles.Dim.Render(fmt.Sprintf("(%s, %s, priority %d)", a.ID(), a.Mode(), a.Priority())))

		types := make([]string, 0, len(a.RuleTypes()))
		for _, t := range a.RuleTypes() {
			types = append(types, t.String())
		}
		fmt.Fprintf(os.Stdout, "  rule types: %s\n", strings.Join(types, ", "))

		for _, param := range a.Parameters() {
			line := fmt.Sprintf("  --%s (%s, default %v)", param.Name, param.Type, param.Default)
			if param.Min != nil && param.Max != nil {
				line += fmt.Sprintf(" [%.0f-%.0f]", *param.Min, *param.Max)
			}
			fmt.Fprintln(os.Stdout, line)
			if param.Description != "" {
				fmt.Fprintf(os.Stdout, "      %s\n", u.Styles.Dim.Render(param.Description))
			}
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
