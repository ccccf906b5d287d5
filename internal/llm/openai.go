package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Base URLs for the OpenAI-compatible backends.
const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	deepseekBaseURL   = "https://api.deepseek.com/v1"
)

// openAIGenerator adapts the go-openai chat completion client to the
// Generator capability. The same adapter serves every OpenAI-compatible
// backend; only the base URL differs.
type openAIGenerator struct {
	provider string
	api      *openai.Client
	model    string
	cfg      Config
}

// newOpenAICompatibleFactory builds a factory for an OpenAI-compatible
// provider. An empty baseURL means the upstream OpenAI endpoint; a base_url
// param on the profile overrides either.
func newOpenAICompatibleFactory(provider, baseURL string) Factory {
	return func(cfg Config) (Generator, error) {
		if cfg.APIKey == "" {
			return nil, errors.New("api key is required")
		}
		if cfg.Model == "" {
			return nil, errors.New("model is required")
		}

		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if baseURL != "" {
			clientConfig.BaseURL = baseURL
		}
		if u := cfg.BaseURL(); u != "" {
			clientConfig.BaseURL = u
		}

		return &openAIGenerator{
			provider: provider,
			api:      openai.NewClientWithConfig(clientConfig),
			model:    cfg.Model,
			cfg:      cfg,
		}, nil
	}
}

// Generate sends the prompt as a single user message and returns the first
// choice's content.
func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if t, ok := g.cfg.Temperature(); ok {
		req.Temperature = float32(t)
	}
	if m, ok := g.cfg.MaxTokens(); ok {
		req.MaxTokens = m
	}

	resp, err := g.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &GenerationError{Provider: g.provider, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &GenerationError{Provider: g.provider, Err: fmt.Errorf("empty response from model %s", g.model)}
	}

	return resp.Choices[0].Message.Content, nil
}
