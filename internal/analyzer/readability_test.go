package analyzer

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/doclint/doclint/internal/review"
)

func readabilityRule(cfg review.Settings) review.Rule {
	return review.Rule{
		ID:            "rd",
		Dimension:     review.DimensionClarity,
		Type:          review.RuleTypeReadabilityScore,
		Name:          "Readability",
		Weight:        6,
		Enabled:       true,
		Configuration: cfg,
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"table", 2},   // -le keeps its syllable
		{"make", 1},    // silent e
		{"added", 2},   // -ed after d is voiced
		{"shifted", 2}, // -ed after t is voiced
		{"jumped", 1},  // -ed after p is silent
		{"readability", 5},
		{"a", 1},
		{"rhythm", 1}, // y as the only vowel
	}
	for _, tt := range tests {
		if got := countSyllables(tt.word); got != tt.want {
			t.Errorf("countSyllables(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestComputeTextStats(t *testing.T) {
	stats := computeTextStats("The cat sat. The dog ran away.")

	if stats.Sentences != 2 {
		t.Errorf("Sentences = %d, want 2", stats.Sentences)
	}
	if stats.Words != 7 {
		t.Errorf("Words = %d, want 7", stats.Words)
	}
	// the-cat-sat-the-dog-ran + a-way
	if stats.Syllables != 8 {
		t.Errorf("Syllables = %d, want 8", stats.Syllables)
	}
}

func TestFleschFormulas(t *testing.T) {
	stats := textStats{Words: 100, Sentences: 10, Syllables: 150}

	grade := fleschKincaidGrade(stats)
	wantGrade := 0.39*10 + 11.8*1.5 - 15.59
	if math.Abs(grade-wantGrade) > 1e-9 {
		t.Errorf("grade = %v, want %v", grade, wantGrade)
	}

	ease := fleschReadingEase(stats)
	wantEase := 206.835 - 1.015*10 - 84.6*1.5
	if math.Abs(ease-wantEase) > 1e-9 {
		t.Errorf("ease = %v, want %v", ease, wantEase)
	}
}

func TestReadabilityAnalyzer_Deterministic(t *testing.T) {
	a := NewReadabilityAnalyzer()
	text := "The committee has determined that the implementation of the proposed methodology requires additional consideration. " +
		"Stakeholder engagement remains a fundamental prerequisite for organizational transformation initiatives."
	req := func() *Request {
		return &Request{Text: text, Rules: []review.Rule{readabilityRule(nil)}}
	}

	first := a.Analyze(context.Background(), req())
	second := a.Analyze(context.Background(), req())

	if len(first.FeedbackItems) != len(second.FeedbackItems) {
		t.Fatalf("item counts differ across runs: %d vs %d", len(first.FeedbackItems), len(second.FeedbackItems))
	}
	for i := range first.FeedbackItems {
		f, s := first.FeedbackItems[i], second.FeedbackItems[i]
		if f.Severity != s.Severity || f.Title != s.Title || f.Description != s.Description {
			t.Errorf("item %d differs across runs:\n%+v\n%+v", i, f, s)
		}
	}
}

func TestReadabilityAnalyzer_SimpleTextIsInfo(t *testing.T) {
	a := NewReadabilityAnalyzer()
	text := "The cat sat. The dog ran. We play all day. It is fun."

	result := a.Analyze(context.Background(), &Request{Text: text, Rules: []review.Rule{readabilityRule(nil)}})

	if len(result.FeedbackItems) != 1 {
		t.Fatalf("got %d items, want 1", len(result.FeedbackItems))
	}
	if result.FeedbackItems[0].Severity != review.Info {
		t.Errorf("severity = %v, want Info acknowledgment for simple text", result.FeedbackItems[0].Severity)
	}
}

func TestReadabilityAnalyzer_ThresholdOverride(t *testing.T) {
	a := NewReadabilityAnalyzer()
	// easy text still reads above grade zero, so it becomes an error
	// once maxGradeLevel is forced down to 0
	text := "The cat sat on the mat today. The dog ran far away from home."
	rule := readabilityRule(review.Settings{"targetGradeLevel": 0, "maxGradeLevel": 0})

	result := a.Analyze(context.Background(), &Request{Text: text, Rules: []review.Rule{rule}})

	if len(result.FeedbackItems) == 0 {
		t.Fatal("want at least the document-level item")
	}
	if result.FeedbackItems[0].Severity != review.Error {
		t.Errorf("severity = %v, want Error with maxGradeLevel=1", result.FeedbackItems[0].Severity)
	}
}

func TestReadabilityAnalyzer_DenseParagraph(t *testing.T) {
	a := NewReadabilityAnalyzer()

	dense := "Organizational interdependencies necessitate comprehensive reconceptualization of multidimensional administrative infrastructures notwithstanding considerable implementational complexities inherent in contemporaneous institutional environments."
	if len(dense) <= minParagraphChars {
		t.Fatalf("test paragraph too short: %d chars", len(dense))
	}
	text := "The cat sat.\n\n" + dense + "\n\nThe dog ran."

	result := a.Analyze(context.Background(), &Request{Text: text, Rules: []review.Rule{readabilityRule(nil)}})

	var paragraphItems []review.FeedbackItem
	for _, item := range result.FeedbackItems {
		if item.Location != nil && item.Location.HasSpan() {
			paragraphItems = append(paragraphItems, item)
		}
	}
	if len(paragraphItems) != 1 {
		t.Fatalf("got %d paragraph items, want 1", len(paragraphItems))
	}
	p := paragraphItems[0]
	if p.Severity != review.Warning {
		t.Errorf("paragraph severity = %v, want Warning", p.Severity)
	}
	if p.Confidence != 0.9 {
		t.Errorf("paragraph confidence = %v, want 0.9", p.Confidence)
	}
}

func TestSplitParagraphs(t *testing.T) {
	text := "First paragraph line one.\nStill first.\n\nSecond paragraph.\n\n\nThird."
	paragraphs := splitParagraphs(text)

	want := []string{"First paragraph line one.\nStill first.", "Second paragraph.", "Third."}
	if len(paragraphs) != len(want) {
		t.Fatalf("got %d paragraphs, want %d", len(paragraphs), len(want))
	}
	for i, w := range want {
		if paragraphs[i].text != w {
			t.Errorf("paragraph %d = %q, want %q", i, paragraphs[i].text, w)
		}
	}
	if !strings.HasPrefix(text[paragraphs[1].start:], "Second") {
		t.Errorf("paragraph 1 offset %d does not point at its text", paragraphs[1].start)
	}
}
