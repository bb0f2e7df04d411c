package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/doclint/doclint/internal/review"
)

func passiveVoiceRule(cfg review.Settings) review.Rule {
	return review.Rule{
		ID:            "pv",
		Dimension:     review.DimensionToneAndStyle,
		Type:          review.RuleTypePassiveVoice,
		Name:          "Passive voice",
		Weight:        3,
		Enabled:       true,
		Configuration: cfg,
	}
}

func TestPassiveMatches(t *testing.T) {
	tests := []struct {
		sentence string
		want     int
	}{
		{"The report was written by the team.", 1},
		{"The rules were broken by everyone.", 1},
		{"The decision has been taken already.", 1},
		{"The fix will be deployed tomorrow.", 1},
		{"The message was sent.", 1}, // -t participle
		{"The team writes reports.", 0},
		{"She was not amused by it.", 0},  // "not" is no participle
		{"It was that simple.", 0},        // "that" is no participle
		{"Approval is required here.", 0}, // idiom filter
		{"The tool is based on rules.", 0},
	}
	for _, tt := range tests {
		if got := passiveMatches(tt.sentence); len(got) != tt.want {
			t.Errorf("passiveMatches(%q) = %d matches (%v), want %d", tt.sentence, len(got), got, tt.want)
		}
	}
}

func TestPassiveVoiceAnalyzer_ItemsAndSummary(t *testing.T) {
	a := NewPassiveVoiceAnalyzer()
	// 2 of 2 sentences passive: ratio 100% forces a summary warning
	text := "The report was written by the team. The budget was approved by the board."

	result := a.Analyze(context.Background(), &Request{Text: text, Rules: []review.Rule{passiveVoiceRule(nil)}})

	if !result.Success {
		t.Fatalf("Analyze failed: %s", result.ErrorMessage)
	}
	if len(result.FeedbackItems) != 3 {
		t.Fatalf("got %d items, want summary + 2 matches", len(result.FeedbackItems))
	}

	summary := result.FeedbackItems[0]
	if summary.Severity != review.Warning {
		t.Errorf("summary severity = %v, want Warning at 100%% ratio", summary.Severity)
	}
	if summary.Location != nil {
		t.Error("summary item should not carry a location")
	}

	for _, item := range result.FeedbackItems[1:] {
		if item.Severity != review.Info {
			t.Errorf("match severity = %v, want Info", item.Severity)
		}
		if item.Location == nil || !item.Location.HasSpan() {
			t.Error("match items should carry spans")
		}
		if item.Suggestion == "" {
			t.Error("match items should suggest active voice")
		}
	}
}

func TestPassiveVoiceAnalyzer_SummaryBands(t *testing.T) {
	a := NewPassiveVoiceAnalyzer()

	active := "The team writes reports. "
	passive := "The report was written by the team. "

	tests := []struct {
		name        string
		text        string
		wantSummary bool
		severity    review.Severity
	}{
		{"below 15 percent", strings.Repeat(active, 9) + passive, false, review.Info},
		{"between 15 and 30 percent", strings.Repeat(active, 4) + passive, true, review.Info},
		{"above 30 percent", active + passive, true, review.Warning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.Analyze(context.Background(), &Request{Text: tt.text, Rules: []review.Rule{passiveVoiceRule(nil)}})

			var summaries []review.FeedbackItem
			for _, item := range result.FeedbackItems {
				if item.Location == nil {
					summaries = append(summaries, item)
				}
			}
			if tt.wantSummary {
				if len(summaries) != 1 {
					t.Fatalf("got %d summary items, want 1", len(summaries))
				}
				if summaries[0].Severity != tt.severity {
					t.Errorf("summary severity = %v, want %v", summaries[0].Severity, tt.severity)
				}
				if result.FeedbackItems[0].Location != nil {
					t.Error("summary should be the first item")
				}
			} else if len(summaries) != 0 {
				t.Errorf("got %d summary items, want none", len(summaries))
			}
		})
	}
}

func TestPassiveVoiceAnalyzer_ReportCap(t *testing.T) {
	a := NewPassiveVoiceAnalyzer()
	text := strings.Repeat("The report was written by the team. ", 15)
	rule := passiveVoiceRule(review.Settings{"maxInstancesReported": 4})

	result := a.Analyze(context.Background(), &Request{Text: text, Rules: []review.Rule{rule}})

	matches := 0
	for _, item := range result.FeedbackItems {
		if item.Location != nil {
			matches++
		}
	}
	if matches != 4 {
		t.Errorf("got %d reported matches, want cap of 4", matches)
	}
}

func TestMatchWindow(t *testing.T) {
	sent := "A somewhat longer sentence where the middle words were chosen for the sake of the window test."
	start := strings.Index(sent, "were")
	end := start + len("were chosen")

	window := matchWindow(sent, start, end, 20)
	if !strings.Contains(window, "were chosen") {
		t.Errorf("window %q should contain the match", window)
	}
	if !strings.HasPrefix(window, "...") || !strings.HasSuffix(window, "...") {
		t.Errorf("window %q should mark truncation on both sides", window)
	}
}
