package llm

import (
	"strings"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"bare array", `[{"a":1}]`, `[{"a":1}]`},
		{"leading whitespace", "  \n[1,2]\n", "[1,2]"},
		{"json fence", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with language", "```javascript\n[1]\n```", "[1]"},
		{"fence with prose around", "Here you go:\n```json\n[]\n```\nHope that helps.", "[]"},
		{"array embedded in prose", `The findings are [{"a":1}] as requested.`, `[{"a":1}]`},
		{"object embedded in prose", `Result: {"a":1}. Done.`, `{"a":1}`},
		{"no json at all", "I could not find any problems.", "I could not find any problems."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.reply); got != tt.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tt.reply, got, tt.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := TruncateMiddle("short", 100); got != "short" {
		t.Errorf("text under the limit should be untouched, got %q", got)
	}
	if got := TruncateMiddle("anything", 0); got != "anything" {
		t.Errorf("non-positive limit disables truncation, got %q", got)
	}

	text := strings.Repeat("a", 50) + strings.Repeat("z", 50)
	got := TruncateMiddle(text, 20)

	if !strings.HasPrefix(got, strings.Repeat("a", 10)) {
		t.Errorf("head should be kept: %q", got)
	}
	if !strings.HasSuffix(got, strings.Repeat("z", 10)) {
		t.Errorf("tail should be kept: %q", got)
	}
	if !strings.Contains(got, "document truncated") {
		t.Errorf("marker missing: %q", got)
	}
}

func TestTruncateMiddle_RuneSafe(t *testing.T) {
	text := strings.Repeat("é", 100)
	got := TruncateMiddle(text, 10)
	for _, r := range got {
		if r == '�' {
			t.Fatalf("truncation split a multi-byte rune: %q", got)
		}
	}
}
