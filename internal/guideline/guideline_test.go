package guideline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclint/doclint/internal/review"
)

const sampleYAML = `
name: style-guide
description: House style rules
rules:
  - dimension: language
    type: sentence-length
    name: Short sentences
    weight: 5
    configuration:
      maxWords: 30
  - id: tone
    dimension: tone-and-style
    type: passive-voice
    name: Active voice
    weight: 3
    enabled: false
    order: 10
  - dimension: clarity
    type: semantic-analysis
    name: Clear claims
    weight: 8
    prompt: Flag every vague claim.
`

func TestParse(t *testing.T) {
	g, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "style-guide", g.Name)
	require.Len(t, g.Rules, 3)

	first := g.Rules[0]
	assert.Equal(t, review.DimensionLanguage, first.Dimension)
	assert.Equal(t, review.RuleTypeSentenceLength, first.Type)
	assert.Equal(t, review.ModeStatic, first.Mode)
	assert.True(t, first.Enabled, "enabled defaults to true")
	assert.Equal(t, "sentence-length-1", first.ID, "missing id is derived from type and position")
	assert.Equal(t, 1, first.Order, "missing order is derived from position")
	assert.Equal(t, 30, first.Configuration.Int(0, "maxWords"))

	second := g.Rules[1]
	assert.Equal(t, "tone", second.ID)
	assert.False(t, second.Enabled)
	assert.Equal(t, 10, second.Order)

	third := g.Rules[2]
	assert.Equal(t, review.ModeModelBased, third.Mode, "semantic rules default to model-based")
	assert.Equal(t, "Flag every vague claim.", third.PromptTemplate)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "{{nope"},
		{"missing name", "rules:\n  - dimension: clarity\n    type: custom\n    name: r\n    weight: 5\n"},
		{"no rules", "name: empty\nrules: []\n"},
		{"weight too low", "name: g\nrules:\n  - dimension: clarity\n    type: custom\n    name: r\n    weight: 0\n"},
		{"weight too high", "name: g\nrules:\n  - dimension: clarity\n    type: custom\n    name: r\n    weight: 11\n"},
		{"unknown dimension", "name: g\nrules:\n  - dimension: vibes\n    type: custom\n    name: r\n    weight: 5\n"},
		{"unknown type", "name: g\nrules:\n  - dimension: clarity\n    type: telepathy\n    name: r\n    weight: 5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	g, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "style-guide", g.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnabledRules(t *testing.T) {
	g, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	enabled := g.EnabledRules()
	require.Len(t, enabled, 2)
	// the disabled passive-voice rule is gone, the rest sort by order
	assert.Equal(t, "sentence-length-1", enabled[0].ID)
	assert.Equal(t, "semantic-analysis-3", enabled[1].ID)
}

func TestDefault(t *testing.T) {
	g := Default()

	assert.Equal(t, "default", g.Name)
	require.NotEmpty(t, g.Rules)

	types := map[review.RuleType]bool{}
	for _, rule := range g.Rules {
		assert.True(t, rule.Enabled)
		assert.GreaterOrEqual(t, rule.Weight, 1)
		assert.LessOrEqual(t, rule.Weight, 10)
		if rule.Mode == review.ModeModelBased {
			assert.NotEmpty(t, rule.PromptTemplate, "model-based rule %s needs a prompt", rule.ID)
		}
		types[rule.Type] = true
	}
	assert.True(t, types[review.RuleTypeSentenceLength])
	assert.True(t, types[review.RuleTypeReadabilityScore])
	assert.True(t, types[review.RuleTypePassiveVoice])
	assert.True(t, types[review.RuleTypeSemanticAnalysis])
}
