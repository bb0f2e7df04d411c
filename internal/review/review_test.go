package review

import (
	"strings"
	"testing"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"error", Error},
		{"ERROR", Error},
		{"warning", Warning},
		{"warn", Warning},
		{"info", Info},
		{"", Info},
		{"critical", Info}, // unknown defaults to Info
	}
	for _, tt := range tests {
		if got := ParseSeverity(tt.in); got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in   string
		want Dimension
		ok   bool
	}{
		{"language", DimensionLanguage, true},
		{"Clarity", DimensionClarity, true},
		{"factual-support", DimensionFactualSupport, true},
		{"factualsupport", DimensionFactualSupport, true},
		{"tone-and-style", DimensionToneAndStyle, true},
		{"bogus", DimensionLanguage, false},
	}
	for _, tt := range tests {
		got, ok := ParseDimension(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDimension(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTruncateTitle(t *testing.T) {
	short := "a short title"
	if got := TruncateTitle(short); got != short {
		t.Errorf("TruncateTitle(short) = %q, want unchanged", got)
	}

	long := strings.Repeat("x", 250)
	got := TruncateTitle(long)
	if len([]rune(got)) != MaxTitleLength {
		t.Errorf("TruncateTitle(long) length = %d, want %d", len([]rune(got)), MaxTitleLength)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("TruncateTitle(long) = %q, want ... suffix", got)
	}
}

func TestLocationHasSpan(t *testing.T) {
	if (Location{}).HasSpan() {
		t.Error("zero Location should not have a span")
	}
	if !(Location{StartOffset: 0, EndOffset: 5}).HasSpan() {
		t.Error("Location [0,5) should have a span")
	}
	if (Location{StartOffset: 5, EndOffset: 5}).HasSpan() {
		t.Error("empty span [5,5) should not count")
	}
}

func TestNewFeedbackItem(t *testing.T) {
	rule := Rule{
		Dimension: DimensionClarity,
		Type:      RuleTypeSentenceLength,
		Name:      "Sentence length",
		Weight:    5,
		Enabled:   true,
	}
	item := NewFeedbackItem("sentence-length", rule, Warning, "too long", "details")

	if item.ID == "" {
		t.Error("ID should be populated")
	}
	if item.Dimension != DimensionClarity || item.RuleType != RuleTypeSentenceLength {
		t.Errorf("item did not inherit rule dimension/type: %+v", item)
	}
	if item.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0 for deterministic default", item.Confidence)
	}
}

func TestSettingsInt(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
		keys []string
		def  int
		want int
	}{
		{"missing key", Settings{}, []string{"maxWords"}, 40, 40},
		{"nil settings", nil, []string{"maxWords"}, 40, 40},
		{"int value", Settings{"maxWords": 30}, []string{"maxWords"}, 40, 30},
		{"float value from json", Settings{"maxWords": 30.0}, []string{"maxWords"}, 40, 30},
		{"string numeral", Settings{"maxWords": "30"}, []string{"maxWords"}, 40, 30},
		{"malformed degrades to default", Settings{"maxWords": "lots"}, []string{"maxWords"}, 40, 40},
		{"case insensitive", Settings{"maxwords": 30}, []string{"maxWords"}, 40, 30},
		{
			"maxWords takes precedence over legacy errorThreshold",
			Settings{"maxWords": 35, "errorThreshold": 50},
			[]string{"maxWords", "errorThreshold"}, 40, 35,
		},
		{
			"legacy key used when preferred key absent",
			Settings{"errorThreshold": 50},
			[]string{"maxWords", "errorThreshold"}, 40, 50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Int(tt.def, tt.keys...); got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSettingsFloatAndString(t *testing.T) {
	s := Settings{"temperature": 0.7, "model": "haiku", "blank": ""}

	if got := s.Float(0.2, "temperature"); got != 0.7 {
		t.Errorf("Float(temperature) = %v, want 0.7", got)
	}
	if got := s.Float(0.2, "missing"); got != 0.2 {
		t.Errorf("Float(missing) = %v, want default", got)
	}
	if got := s.String("default", "model"); got != "haiku" {
		t.Errorf("String(model) = %q, want haiku", got)
	}
	if got := s.String("default", "blank"); got != "default" {
		t.Errorf("String(blank) = %q, want default for empty value", got)
	}
}
