package reporter

import (
	"encoding/json"
	"io"

	"github.com/doclint/doclint/internal/review"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	OverallScore    int                  `json:"overallScore"`
	DimensionScores map[string]int       `json:"dimensionScores"`
	Success         bool                 `json:"success"`
	Errors          []string             `json:"errors,omitempty"`
	Feedback        []JSONFeedback       `json:"feedback"`
	Analyzers       []JSONAnalyzerResult `json:"analyzers"`
	Summary         Summary              `json:"summary"`
	ElapsedMs       int64                `json:"elapsedMs"`
}

// JSONFeedback represents one finding in JSON format
type JSONFeedback struct {
	ID          string        `json:"id"`
	Dimension   string        `json:"dimension"`
	RuleType    string        `json:"ruleType"`
	RuleName    string        `json:"ruleName"`
	Severity    string        `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Suggestion  string        `json:"suggestion,omitempty"`
	Location    *JSONLocation `json:"location,omitempty"`
	AnalyzerID  string        `json:"analyzerId"`
	Confidence  float64       `json:"confidence"`
}

// JSONLocation represents a finding location in JSON format
type JSONLocation struct {
	Page        int    `json:"page,omitempty"`
	Section     string `json:"section,omitempty"`
	Line        int    `json:"line,omitempty"`
	StartOffset int    `json:"startOffset,omitempty"`
	EndOffset   int    `json:"endOffset,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
}

// JSONAnalyzerResult represents one analyzer's outcome in JSON format
type JSONAnalyzerResult struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Items     int    `json:"items"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Report outputs the pipeline result as indented JSON
func (r *JSONReporter) Report(result *review.PipelineResult) error {
	output := JSONOutput{
		OverallScore:    result.OverallScore,
		DimensionScores: make(map[string]int, len(result.DimensionScores)),
		Success:         result.Success,
		Errors:          result.Errors,
		Feedback:        make([]JSONFeedback, 0, len(result.FeedbackItems)),
		Analyzers:       make([]JSONAnalyzerResult, 0, len(result.AnalyzerResults)),
		Summary:         ComputeSummary(result),
		ElapsedMs:       result.TotalProcessingTimeMs,
	}

	for dim, score := range result.DimensionScores {
		output.DimensionScores[dim.String()] = score
	}

	for _, item := range result.FeedbackItems {
		jf := JSONFeedback{
			ID:          item.ID,
			Dimension:   item.Dimension.String(),
			RuleType:    item.RuleType.String(),
			RuleName:    item.RuleName,
			Severity:    item.Severity.String(),
			Title:       item.Title,
			Description: item.Description,
			Suggestion:  item.Suggestion,
			AnalyzerID:  item.AnalyzerID,
			Confidence:  item.Confidence,
		}
		if item.Location != nil {
			jf.Location = &JSONLocation{
				Page:        item.Location.Page,
				Section:     item.Location.Section,
				Line:        item.Location.Line,
				StartOffset: item.Location.StartOffset,
				EndOffset:   item.Location.EndOffset,
				Excerpt:     item.Location.Excerpt,
			}
		}
		output.Feedback = append(output.Feedback, jf)
	}

	for _, ar := range result.AnalyzerResults {
		output.Analyzers = append(output.Analyzers, JSONAnalyzerResult{
			ID:        ar.AnalyzerID,
			Name:      ar.AnalyzerName,
			Success:   ar.Success,
			Error:     ar.ErrorMessage,
			Items:     len(ar.FeedbackItems),
			ElapsedMs: ar.ProcessingTimeMs,
		})
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
