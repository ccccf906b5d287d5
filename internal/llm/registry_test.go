package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply string
	err   error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", &GenerationError{Provider: "fake", Err: f.err}
	}
	return f.reply + ":" + prompt, nil
}

func TestResolveUnknownProvider(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("nope", Config{Model: "m", APIKey: "k"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.Contains(t, err.Error(), "nope")
}

func TestRegisterAndResolve(t *testing.T) {
	r := NewRegistry()

	var gotCfg Config
	r.Register("x", func(cfg Config) (Generator, error) {
		gotCfg = cfg
		return &fakeGenerator{reply: "ok"}, nil
	})

	gen, err := r.Resolve("x", Config{Model: "m1", APIKey: "k1", Params: map[string]any{"temperature": 0.1}})
	require.NoError(t, err)

	// The capability delegates to what the factory constructed
	out, err := gen.Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "ok:hi", out)

	assert.Equal(t, "m1", gotCfg.Model)
	assert.Equal(t, "k1", gotCfg.APIKey)
}

func TestRegisterLastWriteWins(t *testing.T) {
	r := NewRegistry()

	r.Register("x", func(cfg Config) (Generator, error) {
		return &fakeGenerator{reply: "first"}, nil
	})
	r.Register("x", func(cfg Config) (Generator, error) {
		return &fakeGenerator{reply: "second"}, nil
	})

	gen, err := r.Resolve("x", Config{})
	require.NoError(t, err)

	out, err := gen.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "second:p", out)
}

func TestResolveConstructionError(t *testing.T) {
	r := NewRegistry()

	cause := errors.New("bad parameters")
	r.Register("x", func(cfg Config) (Generator, error) {
		return nil, cause
	})

	_, err := r.Resolve("x", Config{})
	require.Error(t, err)

	var ce *ConstructionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "x", ce.Provider)
	assert.ErrorIs(t, err, cause)
}

func TestGenerationErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	gen := &fakeGenerator{err: cause}

	_, err := gen.Generate(context.Background(), "p")
	require.Error(t, err)

	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.ErrorIs(t, err, cause)
}

func TestProviders(t *testing.T) {
	r := NewRegistry()
	r.Register("zeta", func(Config) (Generator, error) { return nil, nil })
	r.Register("alpha", func(Config) (Generator, error) { return nil, nil })

	assert.Equal(t, []string{"alpha", "zeta"}, r.Providers())
}

func TestDefaultRegistryBuiltins(t *testing.T) {
	r := NewDefaultRegistry()
	assert.Equal(t, []string{"anthropic", "deepseek", "openai", "openrouter"}, r.Providers())
}

func TestBuiltinsRequireKeyAndModel(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing key", Config{Model: "gpt-4"}},
		{"missing model", Config{APIKey: "sk-abc"}},
	}

	for _, provider := range r.Providers() {
		for _, tt := range tests {
			t.Run(provider+"/"+tt.name, func(t *testing.T) {
				_, err := r.Resolve(provider, tt.cfg)
				var ce *ConstructionError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, provider, ce.Provider)
			})
		}
	}
}

func TestBuiltinsConstructWithValidConfig(t *testing.T) {
	r := NewDefaultRegistry()

	for _, provider := range r.Providers() {
		t.Run(provider, func(t *testing.T) {
			gen, err := r.Resolve(provider, Config{Model: "some-model", APIKey: "some-key"})
			require.NoError(t, err)
			assert.NotNil(t, gen)
		})
	}
}
