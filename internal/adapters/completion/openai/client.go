// Package openai adapts an OpenAI compatible chat completion API to the
// CompletionProvider port.
package openai

import (
	"context"
	"errors"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
)

const DefaultModel = goopenai.GPT4oMini

var ErrEmptyCompletion = errors.New("completion returned no choices")

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Client struct {
	client *goopenai.Client
	model  string
}

func NewClient(cfg Config) ports.CompletionProvider {
	clientConfig := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client: goopenai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

func (c *Client) Complete(ctx context.Context, prompt string) (*domain.Completion, error) {
	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		N:     1,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	return &domain.Completion{
		Text:   resp.Choices[0].Message.Content,
		Tokens: resp.Usage.TotalTokens,
	}, nil
}
