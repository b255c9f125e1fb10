package llm

import "context"

// Mock is a deterministic LLM implementation for tests.
type Mock struct {
	// Response is the fixed text returned by Generate.
	Response string

	// Error, if set, is returned instead of a response.
	Error error

	// LastPrompt stores the most recent prompt passed to Generate.
	LastPrompt string

	// Calls counts Generate invocations.
	Calls int
}

// NewMock creates a mock with a fixed response.
func NewMock(response string) *Mock {
	return &Mock{Response: response}
}

// NewMockWithError creates a mock that always fails.
func NewMockWithError(err error) *Mock {
	return &Mock{Error: err}
}

// Generate returns the configured response or error.
func (m *Mock) Generate(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	m.Calls++

	if m.Error != nil {
		return "", m.Error
	}
	if m.Response == "" {
		return "", ErrEmptyResponse
	}
	return m.Response, nil
}
