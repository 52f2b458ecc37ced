package openai

import (
	"context"
	"errors"
	"fmt"

	sdk "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"UltraNova/internal/config"
)

var ErrEmptyCompletion = errors.New("completion returned no choices")

// ChatCompletionMessage is one prompt message. Role is system, user or assistant.
type ChatCompletionMessage struct {
	Role    string
	Content string
}

// Completer answers a prompt with a single completion.
type Completer interface {
	Complete(ctx context.Context, messages []ChatCompletionMessage) (string, error)
}

// Client talks to any OpenAI-compatible chat completions endpoint.
type Client struct {
	sdk       sdk.Client
	model     string
	maxTokens int64
}

// NewClient builds a client from LLM settings. It fails when the settings
// are incomplete.
func NewClient(cfg config.LLMConfig) (*Client, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("OPENAI_BASE_URL, OPENAI_KEY and OPENAI_MODEL must all be set")
	}
	return &Client{
		sdk: sdk.NewClient(
			option.WithBaseURL(cfg.BaseURL),
			option.WithAPIKey(cfg.APIKey),
		),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
	}, nil
}

func (c *Client) Complete(ctx context.Context, messages []ChatCompletionMessage) (string, error) {
	params := sdk.ChatCompletionNewParams{
		Messages: toParams(messages),
		Model:    sdk.ChatModel(c.model),
	}
	if c.maxTokens > 0 {
		params.MaxTokens = sdk.Int(c.maxTokens)
	}

	completion, err := c.sdk.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return completion.Choices[0].Message.Content, nil
}

func toParams(messages []ChatCompletionMessage) []sdk.ChatCompletionMessageParamUnion {
	out := make([]sdk.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			out = append(out, sdk.SystemMessage(m.Content))
		case "assistant":
			out = append(out, sdk.AssistantMessage(m.Content))
		default:
			out = append(out, sdk.UserMessage(m.Content))
		}
	}
	return out
}
