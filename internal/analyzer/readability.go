package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/doclint/doclint/internal/review"
)

// Default grade level thresholds for the readability check.
const (
	defaultTargetGrade = 12
	defaultMaxGrade    = 16

	// paragraphs shorter than this are skipped by the per-paragraph scan
	minParagraphChars = 100
)

// ReadabilityAnalyzer computes Flesch-Kincaid grade level and Flesch
// Reading Ease over the whole document and flags dense paragraphs.
// Pure function of text and configuration.
type ReadabilityAnalyzer struct{}

func NewReadabilityAnalyzer() *ReadabilityAnalyzer {
	return &ReadabilityAnalyzer{}
}

func (a *ReadabilityAnalyzer) ID() string { return "readability" }

func (a *ReadabilityAnalyzer) Name() string { return "Readability" }

func (a *ReadabilityAnalyzer) Mode() review.EvaluationMode { return review.ModeStatic }

func (a *ReadabilityAnalyzer) Priority() int { return 20 }

func (a *ReadabilityAnalyzer) Dimensions() []review.Dimension {
	return []review.Dimension{review.DimensionLanguage, review.DimensionClarity}
}

func (a *ReadabilityAnalyzer) RuleTypes() []review.RuleType {
	return []review.RuleType{review.RuleTypeReadabilityScore, review.RuleTypePlainLanguage}
}

func (a *ReadabilityAnalyzer) Parameters() []ConfigParameter {
	return []ConfigParameter{
		intParam("targetGradeLevel", "Grade level above which the document is flagged as a warning", defaultTargetGrade, 4, 20),
		intParam("maxGradeLevel", "Grade level above which the document is flagged as an error", defaultMaxGrade, 6, 24),
	}
}

func (a *ReadabilityAnalyzer) CanAnalyze(rules []review.Rule) bool {
	return SupportsAny(a, rules)
}

func (a *ReadabilityAnalyzer) Analyze(ctx context.Context, req *Request) review.AnalysisResult {
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

func (a *ReadabilityAnalyzer) checkRule(rule review.Rule, text string) []review.FeedbackItem {
	target := rule.Configuration.Int(defaultTargetGrade, "targetGradeLevel")
	max := rule.Configuration.Int(defaultMaxGrade, "maxGradeLevel")

	stats := computeTextStats(text)
	if stats.Words == 0 || stats.Sentences == 0 {
		return nil
	}

	grade := fleschKincaidGrade(stats)
	ease := fleschReadingEase(stats)

	var severity review.Severity
	var title string
	switch {
	case grade > float64(max):
		severity = review.Error
		title = fmt.Sprintf("Document is very hard to read (grade %.1f)", grade)
	case grade > float64(target):
		severity = review.Warning
		title = fmt.Sprintf("Document is harder to read than the target (grade %.1f)", grade)
	default:
		severity = review.Info
		title = fmt.Sprintf("Document readability is on target (grade %.1f)", grade)
	}

	item := review.NewFeedbackItem(a.ID(), rule, severity, title,
		fmt.Sprintf("Flesch-Kincaid grade level %.1f, Flesch Reading Ease %.1f (%d words, %d sentences, %d syllables, %d characters). Target grade level is %d.",
			grade, ease, stats.Words, stats.Sentences, stats.Syllables, stats.Characters, target))
	if severity != review.Info {
		item.Suggestion = "Use shorter sentences and simpler words to lower the grade level."
	}
	items := []review.FeedbackItem{item}

	// dense paragraphs are flagged independently of the document verdict
	for _, para := range splitParagraphs(text) {
		if len([]rune(para.text)) <= minParagraphChars {
			continue
		}
		pstats := computeTextStats(para.text)
		if pstats.Words == 0 || pstats.Sentences == 0 {
			continue
		}
		pgrade := fleschKincaidGrade(pstats)
		if pgrade <= float64(max+2) {
			continue
		}
		pitem := review.NewFeedbackItem(a.ID(), rule, review.Warning,
			fmt.Sprintf("Paragraph is very dense (grade %.1f)", pgrade),
			fmt.Sprintf("This paragraph reads at grade level %.1f, well above the %d maximum. Consider splitting it up or simplifying the wording.", pgrade, max))
		pitem.Confidence = 0.9
		pitem.Location = &review.Location{
			StartOffset: para.start,
			EndOffset:   para.end,
			Excerpt:     excerptOf(para.text, 50),
		}
		items = append(items, pitem)
	}

	return items
}

// textStats holds the raw counts the readability formulas consume
type textStats struct {
	Words      int
	Sentences  int
	Syllables  int
	Characters int
}

func computeTextStats(text string) textStats {
	stats := textStats{Sentences: len(splitSentences(text))}
	for _, word := range wordPattern.FindAllString(text, -1) {
		stats.Words++
		stats.Characters += len([]rune(word))
		stats.Syllables += countSyllables(word)
	}
	return stats
}

func fleschKincaidGrade(s textStats) float64 {
	return 0.39*(float64(s.Words)/float64(s.Sentences)) + 11.8*(float64(s.Syllables)/float64(s.Words)) - 15.59
}

func fleschReadingEase(s textStats) float64 {
	return 206.835 - 1.015*(float64(s.Words)/float64(s.Sentences)) - 84.6*(float64(s.Syllables)/float64(s.Words))
}

// countSyllables estimates syllables by counting vowel groups, with
// corrections for silent trailing 'e' and '-ed' suffixes. Every word
// counts as at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := isVowel(r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if strings.HasSuffix(word, "ed") && count > 1 {
		// "-ed" is silent unless it follows d or t ("added", "shifted")
		if len(word) > 2 {
			prev := word[len(word)-3]
			if prev != 'd' && prev != 't' {
				count--
			}
		}
	}

	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
