// Package llm wraps the Anthropic API for the three generation tasks the
// journal needs: trade extraction, conversational replies, and analytics
// narration. Every call runs under a bounded timeout. API transport
// failures are reported as domain.ErrUpstreamUnavailable; responses that
// come back but cannot be parsed are a separate, softer failure class.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/tradescribe/backend/internal/config"
	"github.com/tradescribe/backend/internal/domain"
)

// Client issues generation calls to the Anthropic API.
type Client struct {
	api       anthropic.Client
	model     anthropic.Model
	maxTokens int64
	timeout   time.Duration

	// context window caps from ChatConfig
	historyTurns  int
	contextTrades int
	insightTrades int
	titleMessages int

	log *slog.Logger
}

// New creates a Client from LLM and chat-pipeline configuration.
func New(cfg config.LLMConfig, chatCfg config.ChatConfig, log *slog.Logger) *Client {
	return &Client{
		api:           anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:         anthropic.Model(cfg.Model),
		maxTokens:     cfg.MaxTokens,
		timeout:       cfg.CallTimeout,
		historyTurns:  chatCfg.HistoryTurns,
		contextTrades: chatCfg.ContextTrades,
		insightTrades: chatCfg.InsightTrades,
		titleMessages: chatCfg.TitleMessages,
		log:           log.With("adapter", "llm"),
	}
}

// complete sends one user prompt and returns the model's text response.
// Returns an error wrapping domain.ErrUpstreamUnavailable when the API
// cannot be reached or answers with a failure.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: messages call: %v", domain.ErrUpstreamUnavailable, err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("%w: empty response", domain.ErrUpstreamUnavailable)
	}

	return msg.Content[0].Text, nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
