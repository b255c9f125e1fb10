package prompt

import (
	"os"
	"path/filepath"
)

// Master prompt file names, checked in order: a project-local override
// first, then the default shipped next to the executable.
const (
	CustomPromptFile  = "patroMasterPrompt.txt"
	DefaultPromptFile = "default_master_prompt.txt"
)

// fallbackMasterPrompt keeps the tool working when neither prompt file
// exists.
const fallbackMasterPrompt = `You are an expert programmer writing a commit message.
Your task is to generate a concise and descriptive commit message in English, following the Conventional Commits specification.
The commit message must start with a type like 'feat:', 'fix:', 'refactor:', 'chore:', 'docs:', etc.
The message should be objective, highlighting the main changes made.
Highlight the main differences in separate lines if possible.
Do not include any explanations, just the commit message itself.`

// PromptSource says where the master prompt came from, for console
// feedback.
type PromptSource int

const (
	SourceCustom PromptSource = iota
	SourceDefault
	SourceFallback
)

// LoadMasterPrompt resolves the commit-message instruction block.
// Chain: <cwd>/patroMasterPrompt.txt, then default_master_prompt.txt
// beside the executable, then the built-in fallback.
func LoadMasterPrompt(cwd string) (string, PromptSource) {
	if text, ok := readPrompt(filepath.Join(cwd, CustomPromptFile)); ok {
		return text, SourceCustom
	}

	if exe, err := os.Executable(); err == nil {
		if text, ok := readPrompt(filepath.Join(filepath.Dir(exe), DefaultPromptFile)); ok {
			return text, SourceDefault
		}
	}

	return fallbackMasterPrompt, SourceFallback
}

func readPrompt(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}
