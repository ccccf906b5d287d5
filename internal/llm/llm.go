// Package llm maps provider identifiers to generation capabilities through
// an open registry, and ships adapters over the provider SDKs. A capability
// exposes exactly one operation: generate text from a prompt.
package llm

import "context"

// Generator is the single capability a resolved provider exposes.
type Generator interface {
	// Generate sends the prompt to the backend and returns the generated
	// text. Failures are reported as *GenerationError.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config carries everything a factory needs to construct a Generator. It is
// the provider-facing view of a resolved profile; the API key here is
// already resolved (env references expanded by the caller).
type Config struct {
	Model  string
	APIKey string
	Params map[string]any
}

// Factory constructs a Generator from a resolved configuration.
type Factory func(cfg Config) (Generator, error)

// Temperature returns the temperature param, if set to a numeric value.
func (c Config) Temperature() (float64, bool) {
	return floatParam(c.Params, "temperature")
}

// MaxTokens returns the max_tokens param, if set to a numeric value.
func (c Config) MaxTokens() (int, bool) {
	f, ok := floatParam(c.Params, "max_tokens")
	if !ok {
		return 0, false
	}
	return int(f), true
}

// BaseURL returns the base_url param, if set.
func (c Config) BaseURL() string {
	if v, ok := c.Params["base_url"].(string); ok {
		return v
	}
	return ""
}

// floatParam coerces the numeric shapes yaml.v3 produces (int, float64)
// plus float32 for completeness. Anything else reads as unset.
func floatParam(params map[string]any, key string) (float64, bool) {
	switch v := params[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
