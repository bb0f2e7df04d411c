// Package llm abstracts the hosted model inference endpoint the
// semantic analyzer delegates to. One Client interface, three
// providers: the Anthropic API, the Claude Code CLI, and any
// OpenAI-compatible HTTP endpoint.
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Provider selects an inference backend
type Provider string

const (
	// ProviderAnthropic talks to the Anthropic API directly
	ProviderAnthropic Provider = "anthropic"
	// ProviderAgent shells out to the Claude Code CLI (no API key needed)
	ProviderAgent Provider = "agent"
	// ProviderOpenAI talks to an OpenAI-compatible chat completions endpoint
	ProviderOpenAI Provider = "openai"
)

// Config carries the default model parameters shared by all
// ModelBased rules. Individual rules may override model, temperature,
// and max tokens through their configuration payload.
type Config struct {
	Provider          Provider
	Model             string
	Temperature       float64
	MaxTokens         int
	SystemPrompt      string
	MaxDocumentLength int
	BaseURL           string // OpenAI-compatible endpoints only
	APIKey            string
}

// DefaultSystemPrompt frames the reviewer role for every request.
const DefaultSystemPrompt = `You are a meticulous document reviewer. You evaluate documents against review rules and report findings as structured JSON. Only report genuine findings; do not invent problems.`

// DefaultConfig returns the stock configuration, reading the provider
// and API key from the environment.
func DefaultConfig() *Config {
	cfg := &Config{
		Provider:          ProviderAnthropic,
		Model:             "claude-3-5-haiku-20241022",
		Temperature:       0.2,
		MaxTokens:         2000,
		SystemPrompt:      DefaultSystemPrompt,
		MaxDocumentLength: 24000,
		APIKey:            os.Getenv("ANTHROPIC_API_KEY"),
	}
	if p := os.Getenv("DOCLINT_LLM_PROVIDER"); p != "" {
		cfg.Provider = Provider(strings.ToLower(p))
	}
	if m := os.Getenv("DOCLINT_LLM_MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv("DOCLINT_LLM_BASE_URL"); u != "" {
		cfg.BaseURL = u
		if cfg.Provider == ProviderAnthropic && os.Getenv("DOCLINT_LLM_PROVIDER") == "" {
			cfg.Provider = ProviderOpenAI
		}
	}
	if k := os.Getenv("DOCLINT_LLM_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	return cfg
}

// Request is one completion request against the endpoint contract:
// system prompt, user prompt, model, temperature, max tokens.
type Request struct {
	System      string
	User        string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Client is the hosted inference endpoint contract. Implementations
// surface connectivity and quota problems as plain errors; the
// semantic analyzer turns those into analyzer-level failures.
type Client interface {
	// Complete sends one request and returns the text completion
	Complete(ctx context.Context, req Request) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient builds a client for the configured provider.
func NewClient(cfg *Config, logger hclog.Logger) (Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	switch cfg.Provider {
	case ProviderAgent:
		return NewAgentClient(logger), nil
	case ProviderOpenAI:
		return NewOpenAIClient(cfg, logger)
	case ProviderAnthropic, "":
		return NewAnthropicClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
