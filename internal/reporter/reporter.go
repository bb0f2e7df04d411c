package reporter

import (
	"github.com/doclint/doclint/internal/review"
)

// Reporter defines the interface for outputting review results
type Reporter interface {
	// Report outputs one pipeline result
	Report(result *review.PipelineResult) error
}

// Summary holds summary statistics for a review run
type Summary struct {
	TotalItems int `json:"totalItems"`
	Errors     int `json:"errors"`
	Warnings   int `json:"warnings"`
	Info       int `json:"info"`
	Analyzers  int `json:"analyzers"`
	Failed     int `json:"failedAnalyzers"`
}

// ComputeSummary computes summary statistics from a pipeline result
func ComputeSummary(result *review.PipelineResult) Summary {
	s := Summary{
		TotalItems: len(result.FeedbackItems),
		Analyzers:  len(result.AnalyzerResults),
	}

	for _, item := range result.FeedbackItems {
		switch item.Severity {
		case review.Error:
			s.Errors++
		case review.Warning:
			s.Warnings++
		case review.Info:
			s.Info++
		}
	}
	for _, ar := range result.AnalyzerResults {
		if !ar.Success {
			s.Failed++
		}
	}

	return s
}
