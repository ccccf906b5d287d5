package llm

// NewDefaultRegistry returns a registry with the built-in providers
// registered. Callers may Register additional providers, or override the
// built-ins, before the first resolution.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("openai", newOpenAICompatibleFactory("openai", ""))
	r.Register("openrouter", newOpenAICompatibleFactory("openrouter", openRouterBaseURL))
	r.Register("deepseek", newOpenAICompatibleFactory("deepseek", deepseekBaseURL))
	r.Register("anthropic", newAnthropicFactory())
	return r
}
