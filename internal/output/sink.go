// Package output is the sink side of every pipeline: report files,
// the system clipboard, and the debug artifact kept when a generation
// request fails.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// DebugPromptFile is where a failed prompt is retained for inspection.
const DebugPromptFile = "patro_failed_prompt.txt"

// WriteReport writes text to path as UTF-8.
func WriteReport(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CopyClipboard puts text on the system clipboard. Failure here is a
// warning for the caller, never fatal.
func CopyClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// WriteDebugPrompt saves a failed prompt next to the working directory
// and returns the path written.
func WriteDebugPrompt(prompt string) (string, error) {
	path := DebugPromptFile
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if err := os.WriteFile(path, []byte(prompt), 0o644); err != nil {
		return "", fmt.Errorf("failed to write debug prompt: %w", err)
	}
	return path, nil
}
