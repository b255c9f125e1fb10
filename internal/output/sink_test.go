package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commitsMessages.txt")
	text := "Timestamp: 2024-01-08 09:00:00\nfeat: add menu\n"

	if err := WriteReport(path, text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report back: %v", err)
	}
	if string(got) != text {
		t.Errorf("report content mismatch: %q", got)
	}
}

func TestWriteReport_BadPath(t *testing.T) {
	err := WriteReport(filepath.Join(t.TempDir(), "missing", "report.txt"), "x")
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestWriteDebugPrompt(t *testing.T) {
	t.Chdir(t.TempDir())

	path, err := WriteDebugPrompt("the prompt that failed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}
	if string(got) != "the prompt that failed" {
		t.Errorf("artifact content mismatch: %q", got)
	}
}
