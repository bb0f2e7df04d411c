package analyzer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/doclint/doclint/internal/review"
)

const defaultMaxPassiveReported = 10

// Passive voice summary thresholds, as a fraction of all sentences.
const (
	passiveRatioWarning = 0.30
	passiveRatioInfo    = 0.15
)

// A be-verb (possibly a modal or perfect compound) immediately followed
// by a past-participle-shaped token.
var passivePattern = regexp.MustCompile(`(?i)\b(?:is|are|was|were|be|been|being|(?:has|have|had)\s+been|(?:will|would|could|should|shall|may|might|must)\s+be)\s+(\w+(?:ed|en|t))\b`)

// Common constructions that match the pattern but are not worth
// flagging, either as full phrases or as participle-shaped tokens that
// are not participles at all.
var passiveIdioms = map[string]bool{
	"is required":  true,
	"are required": true,
	"is based":     true,
	"are based":    true,
	"is intended":  true,
	"is called":    true,
	"is used":      true,
	"are used":     true,
	"is needed":    true,
	"are needed":   true,
}

var notParticiples = map[string]bool{
	"not":     true,
	"that":    true,
	"what":    true,
	"it":      true,
	"just":    true,
	"most":    true,
	"best":    true,
	"first":   true,
	"last":    true,
	"about":   true,
	"against": true,
	"often":   true,
	"even":    true,
}

// PassiveVoiceAnalyzer detects passive voice constructions per
// sentence. Pure function of text and configuration.
type PassiveVoiceAnalyzer struct{}

func NewPassiveVoiceAnalyzer() *PassiveVoiceAnalyzer {
	return &PassiveVoiceAnalyzer{}
}

func (a *PassiveVoiceAnalyzer) ID() string { return "passive-voice" }

func (a *PassiveVoiceAnalyzer) Name() string { return "Passive Voice" }

func (a *PassiveVoiceAnalyzer) Mode() review.EvaluationMode { return review.ModeStatic }

func (a *PassiveVoiceAnalyzer) Priority() int { return 30 }

func (a *PassiveVoiceAnalyzer) Dimensions() []review.Dimension {
	return []review.Dimension{review.DimensionToneAndStyle, review.DimensionClarity}
}

func (a *PassiveVoiceAnalyzer) RuleTypes() []review.RuleType {
	return []review.RuleType{review.RuleTypePassiveVoice}
}

func (a *PassiveVoiceAnalyzer) Parameters() []ConfigParameter {
	return []ConfigParameter{
		intParam("maxInstancesReported", "Maximum number of passive constructions reported individually", defaultMaxPassiveReported, 1, 100),
	}
}

func (a *PassiveVoiceAnalyzer) CanAnalyze(rules []review.Rule) bool {
	return SupportsAny(a, rules)
}

func (a *PassiveVoiceAnalyzer) Analyze(ctx context.Context, req *Request) review.AnalysisResult {
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

func (a *PassiveVoiceAnalyzer) checkRule(rule review.Rule, text string) []review.FeedbackItem {
	maxReported := rule.Configuration.Int(defaultMaxPassiveReported, "maxInstancesReported")

	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var items []review.FeedbackItem
	passiveSentences := 0
	reported := 0

	for _, sent := range sentences {
		matches := passiveMatches(sent.text)
		if len(matches) == 0 {
			continue
		}
		passiveSentences++

		for _, m := range matches {
			if reported >= maxReported {
				break
			}
			reported++

			item := review.NewFeedbackItem(a.ID(), rule, review.Info,
				fmt.Sprintf("Passive construction: %q", m.phrase),
				fmt.Sprintf("The phrase %q looks like passive voice. Active voice is usually more direct and easier to read.", m.phrase))
			item.Suggestion = fmt.Sprintf("Consider rewriting in active voice, naming who or what performs the action instead of %q.", m.phrase)
			item.Location = &review.Location{
				StartOffset: sent.start + m.start,
				EndOffset:   sent.start + m.end,
				Excerpt:     matchWindow(sent.text, m.start, m.end, 20),
			}
			items = append(items, item)
		}
	}

	ratio := float64(passiveSentences) / float64(len(sentences))
	summary := a.summaryItem(rule, ratio, passiveSentences, len(sentences))
	if summary != nil {
		items = append([]review.FeedbackItem{*summary}, items...)
	}
	return items
}

func (a *PassiveVoiceAnalyzer) summaryItem(rule review.Rule, ratio float64, passive, total int) *review.FeedbackItem {
	var severity review.Severity
	switch {
	case ratio > passiveRatioWarning:
		severity = review.Warning
	case ratio >= passiveRatioInfo:
		severity = review.Info
	default:
		return nil
	}

	item := review.NewFeedbackItem(a.ID(), rule, severity,
		fmt.Sprintf("%.0f%% of sentences use passive voice", ratio*100),
		fmt.Sprintf("%d of %d sentences contain passive constructions. Heavy passive voice makes text feel indirect and harder to act on.", passive, total))
	item.Suggestion = "Prefer active voice throughout the document."
	return &item
}

// passiveMatch is one passive construction within a sentence
type passiveMatch struct {
	phrase string
	start  int // rune offsets within the sentence
	end    int
}

func passiveMatches(sent string) []passiveMatch {
	var matches []passiveMatch
	for _, idx := range passivePattern.FindAllStringSubmatchIndex(sent, -1) {
		phrase := sent[idx[0]:idx[1]]
		participle := strings.ToLower(sent[idx[2]:idx[3]])
		if notParticiples[participle] || len(participle) < 4 {
			continue
		}
		if passiveIdioms[strings.ToLower(normalizeSpace(phrase))] {
			continue
		}
		matches = append(matches, passiveMatch{
			phrase: phrase,
			start:  len([]rune(sent[:idx[0]])),
			end:    len([]rune(sent[:idx[1]])),
		})
	}
	return matches
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// matchWindow returns an excerpt of the sentence covering the match
// plus up to pad runes of context on each side.
func matchWindow(sent string, start, end, pad int) string {
	runes := []rune(sent)
	lo := start - pad
	if lo < 0 {
		lo = 0
	}
	hi := end + pad
	if hi > len(runes) {
		hi = len(runes)
	}
	window := string(runes[lo:hi])
	if lo > 0 {
		window = "..." + window
	}
	if hi < len(runes) {
		window += "..."
	}
	return window
}
