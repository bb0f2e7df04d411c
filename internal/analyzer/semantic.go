package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/doclint/doclint/internal/llm"
	"github.com/doclint/doclint/internal/review"
)

// fallbackConfidence marks feedback recovered from an unparseable
// model reply.
const fallbackConfidence = 0.5

// SemanticAnalyzer evaluates ModelBased rules by delegating each one
// to the hosted inference endpoint, sequentially. Endpoint failures
// are surfaced as an analyzer-level failure; unparseable replies are
// recovered into low-confidence feedback instead.
type SemanticAnalyzer struct {
	client llm.Client
	cfg    *llm.Config
	logger hclog.Logger
}

func NewSemanticAnalyzer(client llm.Client, cfg *llm.Config, logger hclog.Logger) *SemanticAnalyzer {
	if cfg == nil {
		cfg = llm.DefaultConfig()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &SemanticAnalyzer{client: client, cfg: cfg, logger: logger.Named("semantic")}
}

func (a *SemanticAnalyzer) ID() string { return "semantic" }

func (a *SemanticAnalyzer) Name() string { return "Semantic Analysis" }

func (a *SemanticAnalyzer) Mode() review.EvaluationMode { return review.ModeModelBased }

// Runs after the deterministic analyzers; they are cheap and give fast
// partial feedback.
func (a *SemanticAnalyzer) Priority() int { return 100 }

func (a *SemanticAnalyzer) Dimensions() []review.Dimension {
	return []review.Dimension{
		review.DimensionLanguage,
		review.DimensionClarity,
		review.DimensionCompleteness,
		review.DimensionFactualSupport,
		review.DimensionCompliance,
		review.DimensionToneAndStyle,
		review.DimensionStructure,
	}
}

func (a *SemanticAnalyzer) RuleTypes() []review.RuleType {
	return []review.RuleType{review.RuleTypeSemanticAnalysis, review.RuleTypeCustom}
}

func (a *SemanticAnalyzer) Parameters() []ConfigParameter {
	return []ConfigParameter{
		{Name: "model", Type: ParamString, Description: "Model name for this rule", Default: a.cfg.Model},
		{Name: "temperature", Type: ParamDecimal, Description: "Sampling temperature", Default: a.cfg.Temperature},
		intParam("maxTokens", "Maximum response tokens", a.cfg.MaxTokens, 256, 16384),
		{Name: "focus", Type: ParamMultiline, Description: "Rule-specific focus instruction for the model", Default: ""},
	}
}

func (a *SemanticAnalyzer) CanAnalyze(rules []review.Rule) bool {
	for _, rule := range rules {
		if rule.Enabled && rule.Mode == review.ModeModelBased {
			for _, t := range a.RuleTypes() {
				if rule.Type == t {
					return true
				}
			}
		}
	}
	return false
}

func (a *SemanticAnalyzer) Analyze(ctx context.Context, req *Request) review.AnalysisResult {
	started := time.Now()

	var items []review.FeedbackItem
	var failures []string

	total := len(req.Rules)
	for i, rule := range req.Rules {
		// cancellation is checked once per rule; a request in flight
		// is cancelled through the context itself
		if err := ctx.Err(); err != nil {
			failures = append(failures, fmt.Sprintf("cancelled before rule %q: %v", rule.Name, err))
			break
		}

		ruleItems, err := a.evaluateRule(ctx, rule, req.Text)
		if err != nil {
			a.logger.Warn("model call failed", "rule", rule.Name, "error", err)
			failures = append(failures, fmt.Sprintf("rule %q: %v", rule.Name, err))
		} else {
			items = append(items, ruleItems...)
		}
		req.ReportProgress(i+1, total)
	}

	elapsed := time.Since(started).Milliseconds()
	if len(failures) > 0 {
		return review.FailedResult(a.ID(), a.Name(), strings.Join(failures, "; "), elapsed)
	}

	return review.AnalysisResult{
		AnalyzerID:         a.ID(),
		AnalyzerName:       a.Name(),
		Success:            true,
		FeedbackItems:      items,
		ProcessingTimeMs:   elapsed,
		CoveredDimensions:  a.Dimensions(),
		EvaluatedRuleTypes: a.RuleTypes(),
	}
}

// evaluateRule sends one completion request for one rule and parses
// the reply. Only transport-level errors are returned; parse problems
// degrade to a raw-reply feedback item so information is never
// silently dropped.
func (a *SemanticAnalyzer) evaluateRule(ctx context.Context, rule review.Rule, text string) ([]review.FeedbackItem, error) {
	request := llm.Request{
		System:      a.cfg.SystemPrompt,
		User:        a.buildPrompt(rule, text),
		Model:       rule.Configuration.String(a.cfg.Model, "model"),
		Temperature: rule.Configuration.Float(a.cfg.Temperature, "temperature"),
		MaxTokens:   rule.Configuration.Int(a.cfg.MaxTokens, "maxTokens", "maxResponseTokens"),
	}

	reply, err := a.client.Complete(ctx, request)
	if err != nil {
		return nil, err
	}
	return a.parseReply(rule, reply, text), nil
}

func (a *SemanticAnalyzer) buildPrompt(rule review.Rule, text string) string {
	focus := rule.Configuration.String("", "focus", "instructions")
	if focus == "" {
		focus = rule.PromptTemplate
	}
	if focus == "" {
		focus = fmt.Sprintf("Evaluate whether the document satisfies the %q rule and report every violation you find.", rule.Name)
	}

	doc := llm.TruncateMiddle(text, a.cfg.MaxDocumentLength)

	return fmt.Sprintf(`Review the document below against this rule.

Dimension: %s
Rule: %s
Description: %s

%s

Report findings as a JSON array. Each element:
{"severity":"info|warning|error","title":"short finding title","description":"what is wrong and where","suggestion":"how to fix it","location":{"section":"","page":0,"excerpt":"","startOffset":0,"endOffset":0}}

Return an empty array [] when the document satisfies the rule.
Return ONLY the JSON array, no markdown, no explanatory text.

Document:
%s`, rule.Dimension, rule.Name, rule.Description, focus, doc)
}

// modelFinding is the reply element shape the endpoint is asked for
type modelFinding struct {
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
	Location    *struct {
		Section     string `json:"section"`
		Page        int    `json:"page"`
		Excerpt     string `json:"excerpt"`
		StartOffset int    `json:"startOffset"`
		EndOffset   int    `json:"endOffset"`
	} `json:"location"`
}

func (a *SemanticAnalyzer) parseReply(rule review.Rule, reply, text string) []review.FeedbackItem {
	var findings []modelFinding
	if err := json.Unmarshal([]byte(llm.ExtractJSON(reply)), &findings); err != nil {
		a.logger.Debug("unparseable model reply, keeping raw text", "rule", rule.Name, "error", err)
		item := review.NewFeedbackItem(a.ID(), rule, review.Info,
			fmt.Sprintf("Model feedback for %q", rule.Name), reply)
		item.Confidence = fallbackConfidence
		return []review.FeedbackItem{item}
	}

	textLen := len([]rune(text))
	var items []review.FeedbackItem
	for _, f := range findings {
		title := f.Title
		if title == "" {
			title = fmt.Sprintf("Finding for %q", rule.Name)
		}
		item := review.NewFeedbackItem(a.ID(), rule, review.ParseSeverity(f.Severity), title, f.Description)
		item.Suggestion = f.Suggestion
		if f.Location != nil {
			loc := review.Location{
				Section: f.Location.Section,
				Page:    f.Location.Page,
				Excerpt: f.Location.Excerpt,
			}
			// keep the span only when it is a valid range in the
			// analyzed text; the model is not trusted on offsets
			if f.Location.StartOffset >= 0 && f.Location.EndOffset > f.Location.StartOffset && f.Location.EndOffset <= textLen {
				loc.StartOffset = f.Location.StartOffset
				loc.EndOffset = f.Location.EndOffset
			}
			item.Location = &loc
		}
		items = append(items, item)
	}
	return items
}
