package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"
)

// OpenAIClient talks to any OpenAI-compatible chat completions
// endpoint (vLLM, Ollama, Azure OpenAI, the real thing).
type OpenAIClient struct {
	httpc   *resty.Client
	baseURL string
	logger  hclog.Logger
}

// NewOpenAIClient creates a client for the endpoint at cfg.BaseURL.
func NewOpenAIClient(cfg *Config, logger hclog.Logger) (*OpenAIClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("openai provider requires a base URL (set DOCLINT_LLM_BASE_URL)")
	}

	httpc := resty.New()
	httpc.SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		httpc.SetAuthToken(cfg.APIKey)
	}

	return &OpenAIClient{
		httpc:   httpc,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger.Named("openai"),
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete posts one chat completion request.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	body := chatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.System})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.User})

	var out chatResponse
	c.logger.Debug("posting chat completion", "model", req.Model, "url", c.baseURL)
	resp, err := c.httpc.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post(c.baseURL + "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if resp.IsError() {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("completion endpoint returned %s: %s", resp.Status(), out.Error.Message)
		}
		return "", fmt.Errorf("completion endpoint returned %s", resp.Status())
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from model %s", req.Model)
	}
	return out.Choices[0].Message.Content, nil
}

// Close is a no-op; resty clients need no teardown.
func (c *OpenAIClient) Close() error { return nil }
