// Package llm is the text-generation collaborator. It defines a
// provider-agnostic interface with an OpenAI-compatible client (pointed
// at Gemini's compatibility endpoint by default) and a deterministic
// mock for tests. The prompt arrives fully assembled; this package
// never builds or inspects it.
package llm

import (
	"context"
	"errors"
)

var (
	ErrGenerationFailed = errors.New("generation request failed")
	ErrEmptyResponse    = errors.New("generation returned no usable text")
	ErrInvalidConfig    = errors.New("invalid generation configuration")
)

// LLM is the interface for the remote text-generation service.
// Implementations must be stateless and safe for sequential reuse.
type LLM interface {
	// Generate produces text from a prompt using the configured model.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds provider settings.
type Config struct {
	// Model is the model identifier (e.g. "gemini-2.0-flash").
	Model string

	// Temperature controls randomness; 0 uses the provider default.
	Temperature float32

	// MaxTokens limits the response length; 0 uses the provider default.
	MaxTokens int

	// APIKey authenticates with the provider. When empty, the client
	// falls back to GEMINI_API_KEY, then OPENAI_API_KEY.
	APIKey string

	// BaseURL selects the endpoint. The default is Gemini's
	// OpenAI-compatible surface.
	BaseURL string
}

// GeminiBaseURL is the OpenAI-compatible endpoint of the Gemini API.
const GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// DefaultConfig mirrors the original tool's generation settings.
func DefaultConfig() Config {
	return Config{
		Model:       "gemini-2.0-flash",
		Temperature: 0.7,
		MaxTokens:   5000,
		BaseURL:     GeminiBaseURL,
	}
}
