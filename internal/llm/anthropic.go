package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicDefaultMaxTokens applies when the profile sets no max_tokens
// param; the Messages API requires an explicit limit.
const anthropicDefaultMaxTokens = 4096

// anthropicGenerator adapts the official Anthropic SDK to the Generator
// capability.
type anthropicGenerator struct {
	api   anthropic.Client
	model string
	cfg   Config
}

func newAnthropicFactory() Factory {
	return func(cfg Config) (Generator, error) {
		if cfg.APIKey == "" {
			return nil, errors.New("api key is required")
		}
		if cfg.Model == "" {
			return nil, errors.New("model is required")
		}

		opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
		if u := cfg.BaseURL(); u != "" {
			opts = append(opts, option.WithBaseURL(u))
		}

		return &anthropicGenerator{
			api:   anthropic.NewClient(opts...),
			model: cfg.Model,
			cfg:   cfg,
		}, nil
	}
}

// Generate sends the prompt as a single user message and concatenates the
// text blocks of the response.
func (g *anthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	maxTokens := int64(anthropicDefaultMaxTokens)
	if m, ok := g.cfg.MaxTokens(); ok {
		maxTokens = int64(m)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if t, ok := g.cfg.Temperature(); ok {
		params.Temperature = anthropic.Float(t)
	}

	msg, err := g.api.Messages.New(ctx, params)
	if err != nil {
		return "", &GenerationError{Provider: "anthropic", Err: err}
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &GenerationError{Provider: "anthropic", Err: fmt.Errorf("empty response from model %s", g.model)}
	}

	return sb.String(), nil
}
