// Package report collects commit history into the flat text report that
// feeds the daily-report prompt and the commitsMessages file.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luisfpatrocinio/patro/internal/window"
)

var ErrNoCommits = errors.New("no commit messages found")

const separatorWidth = 50

// Source is the revision query surface the collector needs. Lookup
// failures for a single revision come back as ok=false and never abort
// the collection.
type Source interface {
	ListRevisions(w window.Window) ([]string, error)
	ListRecent(count int) ([]string, error)
	Message(hash string) (string, bool)
	Timestamp(hash string) (string, bool)
}

// Record holds one revision's reportable facts. A record only exists
// when both the message and the timestamp were retrievable.
type Record struct {
	Hash      string
	Timestamp string
	Message   string
}

// Render formats one record as a fixed block: optional hash line,
// timestamp line, full message, then a 50-dash separator line.
func Render(rec Record, showHashes bool) string {
	var b strings.Builder
	if showHashes {
		fmt.Fprintf(&b, "Commit Hash: %s\n", rec.Hash)
	}
	fmt.Fprintf(&b, "Timestamp: %s\n", rec.Timestamp)
	b.WriteString(rec.Message)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", separatorWidth))
	b.WriteString("\n")
	return b.String()
}

// Collector turns revision ids into a rendered report. Revisions whose
// message or timestamp cannot be fetched are dropped, matching the
// original tool; Skipped reports how many were lost in the last call.
type Collector struct {
	source     Source
	showHashes bool
	skipped    int
}

func NewCollector(source Source, showHashes bool) *Collector {
	return &Collector{source: source, showHashes: showHashes}
}

// Skipped returns how many revisions were dropped during the most
// recent Collect* call.
func (c *Collector) Skipped() int {
	return c.skipped
}

// Collect renders every commit inside w, newest first. Returns
// ErrNoCommits when the window matched nothing; the caller decides
// whether that is fatal.
func (c *Collector) Collect(w window.Window) (string, error) {
	hashes, err := c.source.ListRevisions(w)
	if err != nil {
		return "", fmt.Errorf("failed to list revisions: %w", err)
	}
	return c.render(hashes)
}

// CollectLatest renders the count most recent commits, newest first.
func (c *Collector) CollectLatest(count int) (string, error) {
	hashes, err := c.source.ListRecent(count)
	if err != nil {
		return "", fmt.Errorf("failed to list recent revisions: %w", err)
	}
	return c.render(hashes)
}

// CollectFromIDs renders the caller-supplied revision ids in the order
// given. Returns ErrNoCommits when the input is empty or every id
// failed to resolve.
func (c *Collector) CollectFromIDs(ids []string) (string, error) {
	return c.render(ids)
}

func (c *Collector) render(hashes []string) (string, error) {
	c.skipped = 0
	if len(hashes) == 0 {
		return "", ErrNoCommits
	}

	var b strings.Builder
	rendered := 0
	for _, h := range hashes {
		msg, ok := c.source.Message(h)
		if !ok {
			c.skipped++
			continue
		}
		ts, ok := c.source.Timestamp(h)
		if !ok {
			c.skipped++
			continue
		}
		b.WriteString(Render(Record{Hash: h, Timestamp: ts, Message: msg}, c.showHashes))
		rendered++
	}

	if rendered == 0 {
		return "", ErrNoCommits
	}
	return b.String(), nil
}
