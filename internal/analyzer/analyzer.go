// Package analyzer defines the capability contract every checker
// implements, plus the built-in deterministic and model-backed
// analyzers. The pipeline discovers what an analyzer can evaluate
// through this contract and never special-cases a concrete type.
package analyzer

import (
	"context"

	"github.com/doclint/doclint/internal/review"
)

// ParamType describes the value type of a configuration parameter
type ParamType int

const (
	ParamInteger ParamType = iota
	ParamDecimal
	ParamString
	ParamBoolean
	ParamEnum
	ParamMultiline
	ParamPercentage
)

func (t ParamType) String() string {
	switch t {
	case ParamInteger:
		return "integer"
	case ParamDecimal:
		return "decimal"
	case ParamString:
		return "string"
	case ParamBoolean:
		return "boolean"
	case ParamEnum:
		return "enum"
	case ParamMultiline:
		return "multiline"
	case ParamPercentage:
		return "percentage"
	default:
		return "unknown"
	}
}

// ConfigParameter is one self-describing tunable of an analyzer. The
// list drives configuration UIs; the pipeline itself never reads it.
type ConfigParameter struct {
	Name        string
	Type        ParamType
	Description string
	Default     any
	Min         *float64
	Max         *float64
	Options     []string
}

// ProgressFunc reports analyzer-internal progress as completed work out
// of total work for this invocation.
type ProgressFunc func(completed, total int)

// Request carries everything an analyzer needs for one invocation: the
// full document text, the name of the guideline set being applied, the
// subset of rules assigned to this analyzer, and a progress callback.
// Cancellation travels through the context given to Analyze.
type Request struct {
	Text      string
	Guideline string
	Rules     []review.Rule
	Progress  ProgressFunc
}

// ReportProgress invokes the progress callback when one is set.
func (r *Request) ReportProgress(completed, total int) {
	if r.Progress != nil {
		r.Progress(completed, total)
	}
}

// Analyzer is the contract every checker implements.
//
// Analyze must not return failure for expected conditions: missing or
// malformed rule configuration degrades to documented defaults.
// Unexpected panics are recovered by the orchestrator, not here.
type Analyzer interface {
	// ID returns the stable identifier for this analyzer
	ID() string

	// Name returns the display name
	Name() string

	// Mode returns whether this analyzer is static or model-based
	Mode() review.EvaluationMode

	// Priority orders execution; lower runs first
	Priority() int

	// Dimensions returns the review dimensions this analyzer can cover
	Dimensions() []review.Dimension

	// RuleTypes returns the rule types this analyzer evaluates
	RuleTypes() []review.RuleType

	// Parameters returns the self-describing tunables for config UIs
	Parameters() []ConfigParameter

	// CanAnalyze reports whether any of rules is relevant to this
	// analyzer, letting the pipeline skip analyzers with nothing to do
	CanAnalyze(rules []review.Rule) bool

	// Analyze evaluates the assigned rules against the document text
	Analyze(ctx context.Context, req *Request) review.AnalysisResult
}

// SupportsAny is the shared CanAnalyze implementation: true when at
// least one enabled rule matches one of the analyzer's rule types.
func SupportsAny(a Analyzer, rules []review.Rule) bool {
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		for _, t := range a.RuleTypes() {
			if rule.Type == t {
				return true
			}
		}
	}
	return false
}

// RelevantRules filters rules down to the enabled ones this analyzer
// evaluates, preserving input order.
func RelevantRules(a Analyzer, rules []review.Rule) []review.Rule {
	var relevant []review.Rule
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		for _, t := range a.RuleTypes() {
			if rule.Type == t {
				relevant = append(relevant, rule)
				break
			}
		}
	}
	return relevant
}

func intParam(name, description string, def, min, max int) ConfigParameter {
	lo := float64(min)
	hi := float64(max)
	return ConfigParameter{
		Name:        name,
		Type:        ParamInteger,
		Description: description,
		Default:     def,
		Min:         &lo,
		Max:         &hi,
	}
}
