package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/doclint/doclint/internal/analyzer"
	"github.com/doclint/doclint/internal/document"
	"github.com/doclint/doclint/internal/guideline"
	"github.com/doclint/doclint/internal/llm"
	"github.com/doclint/doclint/internal/pipeline"
	"github.com/doclint/doclint/internal/reporter"
	"github.com/doclint/doclint/internal/ui"
)

var (
	guidelinePath string
	offline       bool
)

var reviewCmd = &cobra.Command{
	Use:   "review <document>",
	Short: "Review a document against a guideline",
	Long: `Run the review pipeline on a document and print the quality report.

Examples:
  doclint review report.md
  doclint review --guideline style.yaml report.md
  doclint review --format json report.md > report.json`,
	Args:         cobra.ExactArgs(1),
	RunE:         runReview,
	SilenceUsage: true,
}

func init() {
	reviewCmd.Flags().StringVarP(&guidelinePath, "guideline", "g", "", "Guideline YAML file (default: built-in rules)")
	reviewCmd.Flags().BoolVar(&offline, "offline", false, "Skip model-based rules (text metrics only)")
	RootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	// .env is optional; env vars already set win
	_ = godotenv.Load()

	logger := newLogger()
	u := GetUI()

	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	// a document that cannot be read aborts before the pipeline runs
	progress.SetStage(ui.StageLoadDocument)
	doc, err := document.NewFileSource().Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("document loaded", "path", doc.Path, "length", doc.Length)

	progress.SetStage(ui.StageLoadGuideline)
	g := guideline.Default()
	if guidelinePath != "" {
		g, err = guideline.LoadFile(guidelinePath)
		if err != nil {
			return err
		}
	}

	analyzers := []analyzer.Analyzer{
		analyzer.NewSentenceLengthAnalyzer(),
		analyzer.NewReadabilityAnalyzer(),
		analyzer.NewPassiveVoiceAnalyzer(),
	}
	if !offline {
		cfg := llm.DefaultConfig()
		client, err := llm.NewClient(cfg, logger)
		if err != nil {
			// no usable endpoint degrades to text metrics only
			fmt.Fprintln(os.Stderr, u.Styles.Warning.Render(
				fmt.Sprintf("%s Skipping model-based rules: %v", u.Styles.IconWarning, err)))
		} else {
			defer func() { _ = client.Close() }()
			analyzers = append(analyzers, analyzer.NewSemanticAnalyzer(client, cfg, logger))
		}
	}

	progress.SetStage(ui.StageRunAnalyzers)
	p := pipeline.New(logger, analyzers...)
	result := p.Run(cmd.Context(), doc.Text, g.EnabledRules(), func(ev pipeline.Progress) {
		if ev.AnalyzerName != "" {
			progress.SetAnalyzer(ev.AnalyzerName)
		}
		progress.SetPercent(ev.PercentComplete)
	})

	if progress != nil {
		progress.Done(nil)
		progress = nil
	}

	var rep reporter.Reporter
	switch {
	case u.IsJSON():
		rep = reporter.NewJSONReporter(os.Stdout)
	default:
		rep = reporter.NewTerminalReporter(os.Stdout, u.Styles)
	}
	if err := rep.Report(result); err != nil {
		return err
	}

	if !result.Success {
		return fmt.Errorf("%d analyzer(s) failed", len(result.Errors))
	}
	return nil
}
