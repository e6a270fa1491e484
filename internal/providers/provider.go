package providers

import (
	"context"
	"fmt"
)

// Request contains the data sent to a model for one generation.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Response contains the raw model output.
type Response struct {
	Content    string
	TokensUsed int
}

// Generator is the provider abstraction interface. Configured reports
// whether credentials are present; an unconfigured provider still
// constructs, and Generate fails at call time.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	Name() string
	Model() string
	Configured() bool
}

// New creates a provider by name.
func New(provider, model string) (Generator, error) {
	switch provider {
	case "openai":
		return NewOpenAI(model), nil
	case "gemini", "google":
		return NewGemini(model), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
