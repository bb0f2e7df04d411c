package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/hashicorp/go-hclog"
)

// AnthropicClient talks to the Anthropic Messages API
type AnthropicClient struct {
	client anthropic.Client
	logger hclog.Logger
}

// NewAnthropicClient creates an Anthropic-backed client. The API key
// comes from the config (populated from ANTHROPIC_API_KEY by default).
func NewAnthropicClient(cfg *Config, logger hclog.Logger) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic provider requires an API key (set ANTHROPIC_API_KEY)")
	}
	return &AnthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		logger: logger.Named("anthropic"),
	}, nil
}

// Complete sends one message and returns the concatenated text blocks
// of the reply.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
		Temperature: anthropic.Float(req.Temperature),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	c.logger.Debug("sending completion request", "model", req.Model, "max_tokens", req.MaxTokens)
	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", req.Model)
	}
	return text, nil
}

// Close is a no-op; the underlying HTTP client needs no teardown.
func (c *AnthropicClient) Close() error { return nil }
