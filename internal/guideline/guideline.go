// Package guideline loads and validates review rule sets. A guideline
// is the ordered list of rules one review run applies; it comes from a
// YAML file or from the built-in default set.
package guideline

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/doclint/doclint/internal/review"
)

// Guideline is one named rule set
type Guideline struct {
	Name        string
	Description string
	Rules       []review.Rule
}

// EnabledRules returns the enabled rules in display order.
func (g *Guideline) EnabledRules() []review.Rule {
	var enabled []review.Rule
	for _, rule := range g.Rules {
		if rule.Enabled {
			enabled = append(enabled, rule)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Order < enabled[j].Order
	})
	return enabled
}

// guidelineFile is the YAML document shape
type guidelineFile struct {
	Name        string     `yaml:"name" validate:"required"`
	Description string     `yaml:"description"`
	Rules       []ruleFile `yaml:"rules" validate:"required,min=1,dive"`
}

type ruleFile struct {
	ID            string         `yaml:"id"`
	Dimension     string         `yaml:"dimension" validate:"required"`
	Type          string         `yaml:"type" validate:"required"`
	Mode          string         `yaml:"mode"`
	Scope         string         `yaml:"scope"`
	Name          string         `yaml:"name" validate:"required"`
	Description   string         `yaml:"description"`
	Weight        int            `yaml:"weight" validate:"required,min=1,max=10"`
	Enabled       *bool          `yaml:"enabled"`
	Order         int            `yaml:"order"`
	Configuration map[string]any `yaml:"configuration"`
	Prompt        string         `yaml:"prompt"`
}

var validate = validator.New()

// LoadFile reads and validates a guideline YAML file.
func LoadFile(path string) (*Guideline, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read guideline file: %w", err)
	}
	return Parse(content)
}

// Parse decodes and validates guideline YAML.
func Parse(content []byte) (*Guideline, error) {
	var file guidelineFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("invalid guideline YAML: %w", err)
	}
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("invalid guideline: %w", err)
	}

	g := &Guideline{Name: file.Name, Description: file.Description}
	for i, rf := range file.Rules {
		rule, err := rf.toRule(i)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i+1, rf.Name, err)
		}
		g.Rules = append(g.Rules, rule)
	}
	return g, nil
}

func (rf ruleFile) toRule(index int) (review.Rule, error) {
	dimension, ok := review.ParseDimension(rf.Dimension)
	if !ok {
		return review.Rule{}, fmt.Errorf("unknown dimension %q", rf.Dimension)
	}
	ruleType, ok := review.ParseRuleType(rf.Type)
	if !ok {
		return review.Rule{}, fmt.Errorf("unknown rule type %q", rf.Type)
	}

	mode := review.ModeStatic
	if rf.Mode == "model-based" || rf.Mode == "modelbased" ||
		(rf.Mode == "" && (ruleType == review.RuleTypeSemanticAnalysis || ruleType == review.RuleTypeCustom)) {
		mode = review.ModeModelBased
	}

	scope := review.ScopeDocument
	switch rf.Scope {
	case "word":
		scope = review.ScopeWord
	case "sentence":
		scope = review.ScopeSentence
	case "paragraph":
		scope = review.ScopeParagraph
	case "section":
		scope = review.ScopeSection
	}

	enabled := true
	if rf.Enabled != nil {
		enabled = *rf.Enabled
	}

	id := rf.ID
	if id == "" {
		id = fmt.Sprintf("%s-%d", ruleType, index+1)
	}

	order := rf.Order
	if order == 0 {
		order = index + 1
	}

	return review.Rule{
		ID:             id,
		Dimension:      dimension,
		Type:           ruleType,
		Mode:           mode,
		Scope:          scope,
		Name:           rf.Name,
		Description:    rf.Description,
		Weight:         rf.Weight,
		Enabled:        enabled,
		Order:          order,
		Configuration:  review.Settings(rf.Configuration),
		PromptTemplate: rf.Prompt,
	}, nil
}

// Default returns the built-in guideline covering every rule type,
// used when no guideline file is given.
func Default() *Guideline {
	return &Guideline{
		Name:        "default",
		Description: "Built-in document quality rules",
		Rules: []review.Rule{
			{
				ID: "sentence-length", Dimension: review.DimensionLanguage,
				Type: review.RuleTypeSentenceLength, Mode: review.ModeStatic,
				Scope: review.ScopeSentence, Name: "Sentence length",
				Description: "Sentences should stay short enough to follow",
				Weight:      5, Enabled: true, Order: 1,
			},
			{
				ID: "readability", Dimension: review.DimensionClarity,
				Type: review.RuleTypeReadabilityScore, Mode: review.ModeStatic,
				Scope: review.ScopeDocument, Name: "Readability",
				Description: "The document should read at or below the target grade level",
				Weight:      6, Enabled: true, Order: 2,
			},
			{
				ID: "passive-voice", Dimension: review.DimensionToneAndStyle,
				Type: review.RuleTypePassiveVoice, Mode: review.ModeStatic,
				Scope: review.ScopeSentence, Name: "Passive voice",
				Description: "Prefer active voice",
				Weight:      3, Enabled: true, Order: 3,
			},
			{
				ID: "semantic-clarity", Dimension: review.DimensionClarity,
				Type: review.RuleTypeSemanticAnalysis, Mode: review.ModeModelBased,
				Scope: review.ScopeDocument, Name: "Clarity of argument",
				Description: "Statements should be concrete, unambiguous, and well supported",
				Weight:      7, Enabled: true, Order: 4,
				PromptTemplate: "Look for vague claims, ambiguous phrasing, and statements a careful reader could interpret more than one way.",
			},
			{
				ID: "semantic-completeness", Dimension: review.DimensionCompleteness,
				Type: review.RuleTypeSemanticAnalysis, Mode: review.ModeModelBased,
				Scope: review.ScopeDocument, Name: "Completeness",
				Description: "The document should not leave obvious questions unanswered",
				Weight:      5, Enabled: true, Order: 5,
				PromptTemplate: "Identify topics the document raises but never resolves, and obvious gaps a reader would notice.",
			},
		},
	}
}
