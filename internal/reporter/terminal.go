package reporter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/doclint/doclint/internal/review"
	"github.com/doclint/doclint/internal/ui"
)

// TerminalReporter renders a pipeline result for humans
type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, styles *ui.Styles) *TerminalReporter {
	if styles == nil {
		styles = ui.NewStyles(false)
	}
	return &TerminalReporter{w: w, styles: styles}
}

// Report renders scores, grouped feedback, and any analyzer failures.
// Partial results are shown alongside an error banner, never discarded.
func (r *TerminalReporter) Report(result *review.PipelineResult) error {
	r.printScores(result)
	r.printFeedback(result)
	r.printErrors(result)
	r.printSummary(result)
	return nil
}

func (r *TerminalReporter) printScores(result *review.PipelineResult) {
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s %s\n",
		r.styles.Header.Render("Overall score:"),
		r.styles.Score(result.OverallScore).Render(fmt.Sprintf("%d/100", result.OverallScore)))

	dims := make([]review.Dimension, 0, len(result.DimensionScores))
	for dim := range result.DimensionScores {
		dims = append(dims, dim)
	}
	sort.Slice(dims, func(i, j int) bool { return dims[i] < dims[j] })

	for _, dim := range dims {
		score := result.DimensionScores[dim]
		fmt.Fprintf(r.w, "  %-16s %s %s\n",
			dim,
			r.styles.Score(score).Render(fmt.Sprintf("%3d", score)),
			r.styles.Dim.Render(scoreBar(score)))
	}
}

func (r *TerminalReporter) printFeedback(result *review.PipelineResult) {
	if len(result.FeedbackItems) == 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.styles.Success.Render(r.styles.IconSuccess+" No findings"))
		return
	}

	// group findings by dimension, keeping pipeline order within a group
	byDim := make(map[review.Dimension][]review.FeedbackItem)
	var order []review.Dimension
	for _, item := range result.FeedbackItems {
		if _, seen := byDim[item.Dimension]; !seen {
			order = append(order, item.Dimension)
		}
		byDim[item.Dimension] = append(byDim[item.Dimension], item)
	}

	for _, dim := range order {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.styles.Header.Render(strings.ToUpper(dim.String())))
		for _, item := range byDim[dim] {
			r.printItem(item)
		}
	}
}

func (r *TerminalReporter) printItem(item review.FeedbackItem) {
	icon, style := r.styles.SeverityIcon(item.Severity.String())

	fmt.Fprintf(r.w, "  %s %s", style.Render(icon), item.Title)
	fmt.Fprint(r.w, r.styles.Dim.Render(fmt.Sprintf(" [%s]", item.RuleName)))
	if item.Confidence < 1.0 {
		fmt.Fprint(r.w, r.styles.Dim.Render(fmt.Sprintf(" (confidence %.0f%%)", item.Confidence*100)))
	}
	fmt.Fprintln(r.w)

	if item.Description != "" && item.Description != item.Title {
		fmt.Fprintf(r.w, "    %s\n", item.Description)
	}
	if item.Suggestion != "" {
		fmt.Fprintf(r.w, "    %s\n", r.styles.Dim.Render("Suggestion: "+item.Suggestion))
	}
	if loc := item.Location; loc != nil && loc.Excerpt != "" {
		fmt.Fprintf(r.w, "    %s\n", r.styles.Dim.Render("> "+loc.Excerpt))
	}
}

func (r *TerminalReporter) printErrors(result *review.PipelineResult) {
	if len(result.Errors) == 0 {
		return
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Error.Render(r.styles.IconError+" Some analyzers failed; results are partial"))
	for _, msg := range result.Errors {
		fmt.Fprintf(r.w, "  %s\n", r.styles.Error.Render(msg))
	}
}

func (r *TerminalReporter) printSummary(result *review.PipelineResult) {
	s := ComputeSummary(result)
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Dim.Render(strings.Repeat("─", 40)))
	fmt.Fprintf(r.w, "%d findings (%d errors, %d warnings, %d info) from %d analyzers in %dms\n",
		s.TotalItems, s.Errors, s.Warnings, s.Info, s.Analyzers, result.TotalProcessingTimeMs)
}

// scoreBar renders a ten-segment bar for a 0-100 score.
func scoreBar(score int) string {
	filled := score / 10
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
