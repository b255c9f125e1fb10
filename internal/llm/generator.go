package llm

import (
	"context"
	"fmt"
	"strings"
)

// Generator runs a single generation request. On failure it hands the
// offending prompt to DebugSink so the run leaves an artifact the user
// can inspect; there is no retry.
type Generator struct {
	llm LLM

	// DebugSink persists a failed prompt and returns where it was
	// written. Optional; nil disables the artifact.
	DebugSink func(prompt string) (string, error)
}

func NewGenerator(llm LLM) *Generator {
	return &Generator{llm: llm}
}

// Generate invokes the service and cleans up the response the way the
// original tool did (backticks stripped, surrounding whitespace
// trimmed). Any failure is fatal to the run; the returned error names
// the debug artifact when one was written.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.llm == nil {
		return "", fmt.Errorf("%w: no LLM configured", ErrGenerationFailed)
	}
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt is required", ErrGenerationFailed)
	}

	text, err := g.llm.Generate(ctx, prompt)
	if err != nil {
		if g.DebugSink != nil {
			if path, sinkErr := g.DebugSink(prompt); sinkErr == nil {
				return "", fmt.Errorf("%w (prompt saved to %s)", err, path)
			}
		}
		return "", err
	}

	return strings.TrimSpace(strings.ReplaceAll(text, "`", "")), nil
}
