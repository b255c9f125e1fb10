package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGenerator_Success(t *testing.T) {
	mock := NewMock("feat: add `inventory` screen")
	gen := NewGenerator(mock)

	out, err := gen.Generate(context.Background(), "some prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out != "feat: add inventory screen" {
		t.Errorf("backticks should be stripped, got %q", out)
	}
	if mock.LastPrompt != "some prompt" {
		t.Errorf("mock did not receive the prompt, got %q", mock.LastPrompt)
	}
	if mock.Calls != 1 {
		t.Errorf("expected a single call, got %d", mock.Calls)
	}
}

func TestGenerator_FailureWritesDebugArtifact(t *testing.T) {
	mock := NewMockWithError(errors.New("quota exceeded"))
	gen := NewGenerator(mock)

	var saved string
	gen.DebugSink = func(prompt string) (string, error) {
		saved = prompt
		return "/tmp/patro_failed_prompt.txt", nil
	}

	_, err := gen.Generate(context.Background(), "the failing prompt")
	if err == nil {
		t.Fatal("expected error")
	}
	if saved != "the failing prompt" {
		t.Errorf("debug sink did not receive the prompt, got %q", saved)
	}
	if !strings.Contains(err.Error(), "patro_failed_prompt.txt") {
		t.Errorf("error should name the artifact, got %v", err)
	}
}

func TestGenerator_EmptyResponse(t *testing.T) {
	gen := NewGenerator(NewMock(""))

	_, err := gen.Generate(context.Background(), "prompt")
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestGenerator_EmptyPrompt(t *testing.T) {
	gen := NewGenerator(NewMock("ok"))

	if _, err := gen.Generate(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

func TestNewClient_MissingKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewClient(DefaultConfig())
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewClient_MissingModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Model = ""

	_, err := NewClient(cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
