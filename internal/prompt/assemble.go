// Package prompt assembles the text submitted to the generation
// service, guaranteeing the diff portion never exceeds the configured
// byte ceiling. It builds prompts only; calling the service is the
// llm package's job.
package prompt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSummaryRequired = errors.New("diff was elided and no manual summary was provided")
)

// DefaultCeiling is the byte limit for diff payloads, matching the
// original tool's limit.
const DefaultCeiling = 20000

// placeholder replaces empty focus and blocker sections.
const placeholder = "N/A"

// negations are inputs treated as "no blockers", case-insensitive.
var negations = map[string]bool{
	"":        true,
	"n/a":     true,
	"na":      true,
	"no":      true,
	"none":    true,
	"nao":     true,
	"não":     true,
	"nenhum":  true,
	"nothing": true,
}

const reportInstructions = `You are writing a daily development report from the commit history below.
Respond with exactly three labeled sections, in this order: "Advances", "Focus" and "Blockers".
Do not write any preamble, greeting or commentary outside those three sections.
Under "Advances", summarize what the commits accomplished, grouping related work.
Under "Focus", restate the focus items for today.
Under "Blockers", restate the blockers.`

const reportClosing = `Remember: output only the three sections "Advances", "Focus" and "Blockers", nothing else.`

const elidedNote = "Note: The diff was ignored due to its large size and is not included here."

// Assembler builds the final prompt strings. Summary is the single
// interactive fallback the pipeline is allowed: it is consulted once
// when narrowing ends at StageNone, and must come from the process
// boundary, not from inside the pipeline.
type Assembler struct {
	Ceiling int
	Summary func() (string, error)
}

func NewAssembler(ceiling int) *Assembler {
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}
	return &Assembler{Ceiling: ceiling}
}

// resolveBody runs narrowing and, when the body is gone entirely, swaps
// in the manual summary.
func (a *Assembler) resolveBody(full string, filtered func() (string, error)) (string, Stage, error) {
	p := Narrow(full, filtered, a.Ceiling)
	if p.Stage != StageNone {
		return p.Body, p.Stage, nil
	}

	if a.Summary == nil {
		return "", StageNone, ErrSummaryRequired
	}
	summary, err := a.Summary()
	if err != nil {
		return "", StageNone, err
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", StageNone, ErrSummaryRequired
	}
	return summary + "\n\n" + elidedNote, StageNone, nil
}

// AssembleReport builds the daily-report prompt: instruction block,
// body (collected commit report or manual summary), optional extra
// context, focus bullets, blockers, closing instruction. The body is
// bounded by the ceiling; the fixed blocks are the only overhead.
func (a *Assembler) AssembleReport(body string, extraContext string, focusItems []string, blockers string) (string, error) {
	resolved, _, err := a.resolveBody(body, nil)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(reportInstructions)
	b.WriteString("\n\n")

	if ctx := strings.TrimSpace(extraContext); ctx != "" {
		fmt.Fprintf(&b, "It's important to bear the following in mind: %s\n\n", ctx)
	}

	b.WriteString("--- COMMIT HISTORY ---\n")
	b.WriteString(resolved)
	b.WriteString("\n--- END OF COMMIT HISTORY ---\n\n")

	b.WriteString("Focus for today:\n")
	b.WriteString(renderFocus(focusItems))
	b.WriteString("\n\n")

	b.WriteString("Blockers:\n")
	b.WriteString(renderBlockers(blockers))
	b.WriteString("\n\n")

	b.WriteString(reportClosing)
	return b.String(), nil
}

// AssembleCommit builds the commit-message prompt: master prompt,
// optional extra context, then the (narrowed) staged diff between fixed
// markers. filtered provides the primary-extension diff when the full
// one is oversized.
func (a *Assembler) AssembleCommit(diff string, filtered func() (string, error), masterPrompt, extraContext string) (string, error) {
	resolved, stage, err := a.resolveBody(diff, filtered)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(masterPrompt))
	b.WriteString("\n\n")

	if ctx := strings.TrimSpace(extraContext); ctx != "" {
		fmt.Fprintf(&b, "It's important to bear the following in mind: %s\n\n", ctx)
	}

	if stage == StageNone {
		b.WriteString("--- CHANGE SUMMARY ---\n")
		b.WriteString(resolved)
		b.WriteString("\n--- END OF CHANGE SUMMARY ---\n")
	} else {
		b.WriteString("--- GIT DIFF ---\n")
		b.WriteString(resolved)
		b.WriteString("\n--- END OF GIT DIFF ---\n")
	}

	b.WriteString("\nGenerate the commit message now:")
	return b.String(), nil
}

func renderFocus(items []string) string {
	var kept []string
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			kept = append(kept, "* "+s)
		}
	}
	if len(kept) == 0 {
		return placeholder
	}
	return strings.Join(kept, "\n")
}

func renderBlockers(blockers string) string {
	s := strings.TrimSpace(blockers)
	if negations[strings.ToLower(s)] {
		return placeholder
	}
	return s
}
