package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/doclint/doclint/internal/review"
)

// Default sentence length thresholds, in words.
const (
	defaultWarningWords = 25
	defaultErrorWords   = 40
)

// SentenceLengthAnalyzer flags sentences that exceed configured word
// counts. Pure function of text and configuration.
type SentenceLengthAnalyzer struct{}

func NewSentenceLengthAnalyzer() *SentenceLengthAnalyzer {
	return &SentenceLengthAnalyzer{}
}

func (a *SentenceLengthAnalyzer) ID() string { return "sentence-length" }

func (a *SentenceLengthAnalyzer) Name() string { return "Sentence Length" }

func (a *SentenceLengthAnalyzer) Mode() review.EvaluationMode { return review.ModeStatic }

func (a *SentenceLengthAnalyzer) Priority() int { return 10 }

func (a *SentenceLengthAnalyzer) Dimensions() []review.Dimension {
	return []review.Dimension{review.DimensionLanguage, review.DimensionClarity}
}

func (a *SentenceLengthAnalyzer) RuleTypes() []review.RuleType {
	return []review.RuleType{review.RuleTypeSentenceLength}
}

func (a *SentenceLengthAnalyzer) Parameters() []ConfigParameter {
	return []ConfigParameter{
		intParam("warningThreshold", "Word count above which a sentence is flagged as a warning", defaultWarningWords, 5, 100),
		intParam("maxWords", "Word count above which a sentence is flagged as an error", defaultErrorWords, 10, 200),
	}
}

func (a *SentenceLengthAnalyzer) CanAnalyze(rules []review.Rule) bool {
	return SupportsAny(a, rules)
}

func (a *SentenceLengthAnalyzer) Analyze(ctx context.Context, req *Request) review.AnalysisResult {
	started := time.Now()

	var items []review.FeedbackItem
	for _, rule := range req.Rules {
		items = append(items, a.checkRule(rule, req.Text)...)
	}
	req.ReportProgress(len(req.Rules), len(req.Rules))

	return review.AnalysisResult{
		AnalyzerID:         a.ID(),
		AnalyzerName:       a.Name(),
		Success:            true,
		FeedbackItems:      items,
		ProcessingTimeMs:   time.Since(started).Milliseconds(),
		CoveredDimensions:  a.Dimensions(),
		EvaluatedRuleTypes: a.RuleTypes(),
	}
}

func (a *SentenceLengthAnalyzer) checkRule(rule review.Rule, text string) []review.FeedbackItem {
	warnAt := rule.Configuration.Int(defaultWarningWords, "warningThreshold")
	// maxWords takes precedence over the legacy errorThreshold key
	errorAt := rule.Configuration.Int(defaultErrorWords, "maxWords", "errorThreshold")

	var items []review.FeedbackItem
	for _, sent := range splitSentences(text) {
		words := countWords(sent.text)

		var severity review.Severity
		switch {
		case words > errorAt:
			severity = review.Error
		case words > warnAt:
			severity = review.Warning
		default:
			continue
		}

		item := review.NewFeedbackItem(a.ID(), rule, severity,
			fmt.Sprintf("Sentence has %d words", words),
			fmt.Sprintf("This sentence has %d words; sentences over %d words are hard to follow. Split it into shorter sentences.", words, warnAt))
		item.Suggestion = "Break the sentence into two or more shorter sentences."
		item.Location = &review.Location{
			StartOffset: sent.start,
			EndOffset:   sent.end,
			Excerpt:     excerptOf(sent.text, 50),
		}
		items = append(items, item)
	}
	return items
}
