package review

import (
	"strings"

	"github.com/google/uuid"
)

// Dimension is a high-level review category a rule or finding belongs to
type Dimension int

const (
	DimensionLanguage Dimension = iota
	DimensionClarity
	DimensionCompleteness
	DimensionFactualSupport
	DimensionCompliance
	DimensionToneAndStyle
	DimensionStructure
)

func (d Dimension) String() string {
	switch d {
	case DimensionLanguage:
		return "language"
	case DimensionClarity:
		return "clarity"
	case DimensionCompleteness:
		return "completeness"
	case DimensionFactualSupport:
		return "factual-support"
	case DimensionCompliance:
		return "compliance"
	case DimensionToneAndStyle:
		return "tone-and-style"
	case DimensionStructure:
		return "structure"
	default:
		return "unknown"
	}
}

// ParseDimension maps a string to a Dimension. Unknown values map to
// DimensionLanguage with ok=false so callers can decide how to degrade.
func ParseDimension(s string) (Dimension, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "language":
		return DimensionLanguage, true
	case "clarity":
		return DimensionClarity, true
	case "completeness":
		return DimensionCompleteness, true
	case "factual-support", "factualsupport":
		return DimensionFactualSupport, true
	case "compliance":
		return DimensionCompliance, true
	case "tone-and-style", "toneandstyle", "tone":
		return DimensionToneAndStyle, true
	case "structure":
		return DimensionStructure, true
	default:
		return DimensionLanguage, false
	}
}

// RuleType identifies the specific check a rule represents
type RuleType int

const (
	RuleTypeSentenceLength RuleType = iota
	RuleTypePassiveVoice
	RuleTypeReadabilityScore
	RuleTypePlainLanguage
	RuleTypeSemanticAnalysis
	RuleTypeCustom
)

func (t RuleType) String() string {
	switch t {
	case RuleTypeSentenceLength:
		return "sentence-length"
	case RuleTypePassiveVoice:
		return "passive-voice"
	case RuleTypeReadabilityScore:
		return "readability-score"
	case RuleTypePlainLanguage:
		return "plain-language"
	case RuleTypeSemanticAnalysis:
		return "semantic-analysis"
	case RuleTypeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseRuleType maps a string to a RuleType.
func ParseRuleType(s string) (RuleType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sentence-length", "sentencelength":
		return RuleTypeSentenceLength, true
	case "passive-voice", "passivevoice":
		return RuleTypePassiveVoice, true
	case "readability-score", "readabilityscore", "readability":
		return RuleTypeReadabilityScore, true
	case "plain-language", "plainlanguage":
		return RuleTypePlainLanguage, true
	case "semantic-analysis", "semanticanalysis", "semantic":
		return RuleTypeSemanticAnalysis, true
	case "custom":
		return RuleTypeCustom, true
	default:
		return RuleTypeCustom, false
	}
}

// EvaluationMode says whether a rule is checked by pure text metrics or
// by the model-backed analyzer
type EvaluationMode int

const (
	ModeStatic EvaluationMode = iota
	ModeModelBased
)

func (m EvaluationMode) String() string {
	if m == ModeModelBased {
		return "model-based"
	}
	return "static"
}

// Scope is the unit of text a rule evaluates
type Scope int

const (
	ScopeWord Scope = iota
	ScopeSentence
	ScopeParagraph
	ScopeSection
	ScopeDocument
)

func (s Scope) String() string {
	switch s {
	case ScopeWord:
		return "word"
	case ScopeSentence:
		return "sentence"
	case ScopeParagraph:
		return "paragraph"
	case ScopeSection:
		return "section"
	case ScopeDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Severity represents the severity level of a finding
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity maps a string to a Severity. Unknown or empty values
// default to Info, which is the contract for model replies.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning", "warn":
		return Warning
	case "error":
		return Error
	default:
		return Info
	}
}

// Rule is one configured, enable/disable-able check. Rules are owned by
// the caller; the pipeline never mutates or retains them.
type Rule struct {
	ID             string
	Dimension      Dimension
	Type           RuleType
	Mode           EvaluationMode
	Scope          Scope
	Name           string
	Description    string
	Weight         int // importance, 1-10
	Enabled        bool
	Order          int
	Configuration  Settings // opaque, rule-type specific
	PromptTemplate string   // only meaningful for ModeModelBased rules
}

// Location pins a finding to a place in the analyzed text. A zero
// Location means "whole document". Offsets are a half-open [start,end)
// character span; HasSpan reports whether one is present.
type Location struct {
	Page        int
	Section     string
	Line        int
	StartOffset int
	EndOffset   int
	Excerpt     string
}

// HasSpan reports whether the location carries a character span.
func (l Location) HasSpan() bool {
	return l.EndOffset > l.StartOffset
}

// MaxTitleLength bounds FeedbackItem titles.
const MaxTitleLength = 100

// FeedbackItem is a single finding produced by an analyzer
type FeedbackItem struct {
	ID          string
	Dimension   Dimension
	RuleType    RuleType
	RuleName    string
	Severity    Severity
	Title       string
	Description string
	Suggestion  string
	Location    *Location
	AnalyzerID  string
	Confidence  float64 // 0.0-1.0; deterministic analyzers emit 1.0
}

// NewFeedbackItem creates a finding with a fresh id, a bounded title,
// and full confidence.
func NewFeedbackItem(analyzerID string, rule Rule, severity Severity, title, description string) FeedbackItem {
	return FeedbackItem{
		ID:          uuid.NewString(),
		Dimension:   rule.Dimension,
		RuleType:    rule.Type,
		RuleName:    rule.Name,
		Severity:    severity,
		Title:       TruncateTitle(title),
		Description: description,
		AnalyzerID:  analyzerID,
		Confidence:  1.0,
	}
}

// TruncateTitle bounds a title to MaxTitleLength runes.
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= MaxTitleLength {
		return title
	}
	return string(runes[:MaxTitleLength-3]) + "..."
}

// AnalysisResult is one analyzer's output for one invocation. It is
// created fresh per run and never mutated after return.
type AnalysisResult struct {
	AnalyzerID         string
	AnalyzerName       string
	Success            bool
	FeedbackItems      []FeedbackItem
	ErrorMessage       string // set only when !Success
	ProcessingTimeMs   int64
	CoveredDimensions  []Dimension
	EvaluatedRuleTypes []RuleType
}

// FailedResult builds the AnalysisResult for an analyzer that could not
// complete. Feedback is always empty on failure.
func FailedResult(analyzerID, analyzerName, errMsg string, elapsedMs int64) AnalysisResult {
	return AnalysisResult{
		AnalyzerID:       analyzerID,
		AnalyzerName:     analyzerName,
		Success:          false,
		ErrorMessage:     errMsg,
		ProcessingTimeMs: elapsedMs,
	}
}

// PipelineResult is the aggregate of one full pipeline run. It is
// immutable once returned; Success is false when any analyzer failed,
// with the surviving feedback still populated.
type PipelineResult struct {
	FeedbackItems         []FeedbackItem
	AnalyzerResults       []AnalysisResult
	DimensionScores       map[Dimension]int
	OverallScore          int
	Success               bool
	Errors                []string
	TotalProcessingTimeMs int64
}
