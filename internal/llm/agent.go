package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	claudecode "github.com/severity1/claude-agent-sdk-go"
)

// AgentClient runs completions through the local Claude Code CLI. It
// needs no API key, but model parameters beyond the model name are
// managed by the CLI, so Temperature and MaxTokens are ignored.
type AgentClient struct {
	logger hclog.Logger
}

func NewAgentClient(logger hclog.Logger) *AgentClient {
	return &AgentClient{logger: logger.Named("agent")}
}

// Complete queries the CLI and concatenates the assistant text blocks.
// The system prompt is folded into the query since the CLI manages its
// own system context.
func (c *AgentClient) Complete(ctx context.Context, req Request) (string, error) {
	prompt := req.User
	if req.System != "" {
		prompt = req.System + "\n\n" + req.User
	}

	model := req.Model
	if model == "" {
		model = "sonnet"
	}

	c.logger.Debug("querying claude code cli", "model", model)
	iterator, err := claudecode.Query(ctx, prompt,
		claudecode.WithModel(model),
		claudecode.WithMaxTurns(1),
	)
	if err != nil {
		return "", fmt.Errorf("claude code query failed: %w", err)
	}
	defer iterator.Close()

	var sb strings.Builder
	for {
		message, err := iterator.Next(ctx)
		if err != nil {
			if errors.Is(err, claudecode.ErrNoMoreMessages) {
				break
			}
			return "", fmt.Errorf("error reading claude response: %w", err)
		}
		if assistantMsg, ok := message.(*claudecode.AssistantMessage); ok {
			for _, block := range assistantMsg.Content {
				if textBlock, ok := block.(*claudecode.TextBlock); ok {
					sb.WriteString(textBlock.Text)
				}
			}
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("empty response from claude code")
	}
	return sb.String(), nil
}

// Close is a no-op; each query owns its own CLI process.
func (c *AgentClient) Close() error { return nil }
