// Package pipeline runs a set of heterogeneous analyzers against one
// document and turns their feedback into calibrated quality scores.
// One run per document-review invocation; no state survives a run.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/doclint/doclint/internal/analyzer"
	"github.com/doclint/doclint/internal/review"
)

// Progress phases reported during a run.
const (
	PhaseSelect    = "select"
	PhaseAnalyze   = "analyze"
	PhaseAggregate = "aggregate"
	PhaseDone      = "done"
)

// Progress is one progress event. PercentComplete is monotonically
// non-decreasing within a run, scaled by rules processed so far.
type Progress struct {
	Phase           string
	AnalyzerName    string
	CurrentIndex    int
	TotalCount      int
	PercentComplete float64
}

// ProgressFunc receives progress events during a run.
type ProgressFunc func(Progress)

// Pipeline dispatches rules to the analyzers that can evaluate them
// and aggregates the results. It holds a plain ordered list of
// analyzers behind the capability contract and never special-cases a
// concrete analyzer type.
type Pipeline struct {
	analyzers []analyzer.Analyzer
	logger    hclog.Logger
}

// New creates a pipeline over the given analyzers.
func New(logger hclog.Logger, analyzers ...analyzer.Analyzer) *Pipeline {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Pipeline{analyzers: analyzers, logger: logger.Named("pipeline")}
}

// Run evaluates the enabled rules against the document text. It always
// returns a result, never an error: analyzer failures are captured in
// the result's Errors with Success=false, alongside whatever feedback
// the other analyzers produced.
func (p *Pipeline) Run(ctx context.Context, text string, rules []review.Rule, onProgress ProgressFunc) *review.PipelineResult {
	started := time.Now()

	enabled := enabledRules(rules)
	if len(enabled) == 0 {
		p.logger.Debug("no enabled rules, returning perfect score")
		return &review.PipelineResult{
			FeedbackItems:         []review.FeedbackItem{},
			AnalyzerResults:       []review.AnalysisResult{},
			DimensionScores:       map[review.Dimension]int{},
			OverallScore:          100,
			Success:               true,
			TotalProcessingTimeMs: time.Since(started).Milliseconds(),
		}
	}

	selected := p.selectAnalyzers(enabled)
	emit(onProgress, Progress{Phase: PhaseSelect, TotalCount: len(selected)})

	totalRules := 0
	subsets := make([][]review.Rule, len(selected))
	for i, a := range selected {
		subsets[i] = analyzer.RelevantRules(a, enabled)
		totalRules += len(subsets[i])
	}

	var feedback []review.FeedbackItem
	var results []review.AnalysisResult
	var errs []string

	processed := 0
	for i, a := range selected {
		subset := subsets[i]
		if len(subset) == 0 {
			continue
		}

		emit(onProgress, Progress{
			Phase:           PhaseAnalyze,
			AnalyzerName:    a.Name(),
			CurrentIndex:    i,
			TotalCount:      len(selected),
			PercentComplete: percent(processed, totalRules),
		})

		req := &analyzer.Request{
			Text:  text,
			Rules: subset,
			Progress: func(completed, total int) {
				if total <= 0 {
					return
				}
				// interpolate this analyzer's slice into the whole run
				done := float64(processed) + float64(completed)/float64(total)*float64(len(subset))
				emit(onProgress, Progress{
					Phase:           PhaseAnalyze,
					AnalyzerName:    a.Name(),
					CurrentIndex:    i,
					TotalCount:      len(selected),
					PercentComplete: percent2(done, totalRules),
				})
			},
		}

		result := p.runAnalyzer(ctx, a, req)
		results = append(results, result)
		if result.Success {
			feedback = append(feedback, result.FeedbackItems...)
		} else {
			errs = append(errs, fmt.Sprintf("%s: %s", result.AnalyzerName, result.ErrorMessage))
		}

		processed += len(subset)
		emit(onProgress, Progress{
			Phase:           PhaseAnalyze,
			AnalyzerName:    a.Name(),
			CurrentIndex:    i,
			TotalCount:      len(selected),
			PercentComplete: percent(processed, totalRules),
		})
	}

	emit(onProgress, Progress{Phase: PhaseAggregate, TotalCount: len(selected), PercentComplete: 100})

	dimensionScores, overall := ComputeScores(feedback, enabled)
	result := &review.PipelineResult{
		FeedbackItems:         feedback,
		AnalyzerResults:       results,
		DimensionScores:       dimensionScores,
		OverallScore:          overall,
		Success:               len(errs) == 0,
		Errors:                errs,
		TotalProcessingTimeMs: time.Since(started).Milliseconds(),
	}

	emit(onProgress, Progress{Phase: PhaseDone, TotalCount: len(selected), PercentComplete: 100})
	p.logger.Debug("pipeline run complete",
		"analyzers", len(results), "feedback", len(feedback),
		"errors", len(errs), "overall", overall)
	return result
}

// runAnalyzer invokes one analyzer, converting a panic into a failed
// result so one analyzer never takes down the run.
func (p *Pipeline) runAnalyzer(ctx context.Context, a analyzer.Analyzer, req *analyzer.Request) (result review.AnalysisResult) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("analyzer panicked", "analyzer", a.ID(), "panic", r)
			result = review.FailedResult(a.ID(), a.Name(),
				fmt.Sprintf("unexpected failure: %v", r),
				time.Since(started).Milliseconds())
		}
	}()

	p.logger.Debug("running analyzer", "analyzer", a.ID(), "rules", len(req.Rules))
	return a.Analyze(ctx, req)
}

// selectAnalyzers picks the analyzers with something to do, ordered by
// priority (deterministic analyzers first) with the id as tie-break
// for a stable order.
func (p *Pipeline) selectAnalyzers(enabled []review.Rule) []analyzer.Analyzer {
	var selected []analyzer.Analyzer
	for _, a := range p.analyzers {
		if a.CanAnalyze(enabled) {
			selected = append(selected, a)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].Priority() != selected[j].Priority() {
			return selected[i].Priority() < selected[j].Priority()
		}
		return selected[i].ID() < selected[j].ID()
	})
	return selected
}

func enabledRules(rules []review.Rule) []review.Rule {
	var enabled []review.Rule
	for _, rule := range rules {
		if rule.Enabled {
			enabled = append(enabled, rule)
		}
	}
	return enabled
}

func emit(onProgress ProgressFunc, p Progress) {
	if onProgress != nil {
		onProgress(p)
	}
}

func percent(done, total int) float64 {
	return percent2(float64(done), total)
}

func percent2(done float64, total int) float64 {
	if total <= 0 {
		return 100
	}
	pct := done / float64(total) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}
