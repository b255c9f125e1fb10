package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/luisfpatrocinio/patro/internal/window"
)

// fakeSource serves canned revisions keyed by hash. Hashes listed in
// brokenMessage or brokenTimestamp fail the respective lookup.
type fakeSource struct {
	order           []string
	messages        map[string]string
	timestamps      map[string]string
	brokenMessage   map[string]bool
	brokenTimestamp map[string]bool
}

func (f *fakeSource) ListRevisions(w window.Window) ([]string, error) {
	return f.order, nil
}

func (f *fakeSource) ListRecent(count int) ([]string, error) {
	if count >= len(f.order) {
		return f.order, nil
	}
	return f.order[:count], nil
}

func (f *fakeSource) Message(hash string) (string, bool) {
	if f.brokenMessage[hash] {
		return "", false
	}
	msg, ok := f.messages[hash]
	return msg, ok
}

func (f *fakeSource) Timestamp(hash string) (string, bool) {
	if f.brokenTimestamp[hash] {
		return "", false
	}
	ts, ok := f.timestamps[hash]
	return ts, ok
}

func newFakeSource(hashes ...string) *fakeSource {
	f := &fakeSource{
		messages:        map[string]string{},
		timestamps:      map[string]string{},
		brokenMessage:   map[string]bool{},
		brokenTimestamp: map[string]bool{},
	}
	base := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
	for i, h := range hashes {
		f.order = append(f.order, h)
		f.messages[h] = "message for " + h
		f.timestamps[h] = base.Add(-time.Duration(i) * time.Hour).Format("2006-01-02 15:04:05")
	}
	return f
}

func anyWindow(t *testing.T) window.Window {
	t.Helper()
	w, err := window.New(
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return w
}

func TestRender_SeparatorAndIdempotence(t *testing.T) {
	rec := Record{Hash: "abc123", Timestamp: "2024-01-08 09:30:00", Message: "fix: things"}

	out := Render(rec, true)
	if !strings.HasSuffix(out, strings.Repeat("-", 50)+"\n") {
		t.Fatalf("block must end with 50 dashes and a newline, got %q", out)
	}
	if !strings.Contains(out, "Commit Hash: abc123\n") {
		t.Error("missing hash line")
	}
	if !strings.Contains(out, "Timestamp: 2024-01-08 09:30:00\n") {
		t.Error("missing timestamp line")
	}

	if again := Render(rec, true); again != out {
		t.Error("rendering the same record twice must be byte-identical")
	}
}

func TestRender_HashesHidden(t *testing.T) {
	rec := Record{Hash: "abc123", Timestamp: "2024-01-08 09:30:00", Message: "fix: things"}

	out := Render(rec, false)
	if strings.Contains(out, "Commit Hash") {
		t.Error("hash line must be omitted when show_hashes is off")
	}
	if !strings.HasSuffix(out, strings.Repeat("-", 50)+"\n") {
		t.Error("separator missing")
	}
}

func TestCollect_EmptyWindow(t *testing.T) {
	c := NewCollector(newFakeSource(), true)

	_, err := c.Collect(anyWindow(t))
	if !errors.Is(err, ErrNoCommits) {
		t.Fatalf("expected ErrNoCommits, got %v", err)
	}
}

func TestCollectLatest_RoundTrip(t *testing.T) {
	src := newFakeSource("h1", "h2", "h3", "h4", "h5")
	c := NewCollector(src, true)

	out, err := c.CollectLatest(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every message appears verbatim, in the order the query returned.
	last := -1
	for _, h := range src.order {
		idx := strings.Index(out, "message for "+h)
		if idx < 0 {
			t.Fatalf("missing message for %s", h)
		}
		if idx < last {
			t.Fatalf("message for %s out of order", h)
		}
		last = idx
	}

	if got := strings.Count(out, strings.Repeat("-", 50)); got != 5 {
		t.Errorf("expected 5 separator lines, got %d", got)
	}
}

func TestCollect_SkipsPartialRecords(t *testing.T) {
	src := newFakeSource("good", "nomsg", "nots")
	src.brokenMessage["nomsg"] = true
	src.brokenTimestamp["nots"] = true

	c := NewCollector(src, true)
	out, err := c.Collect(anyWindow(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(out, "nomsg") || strings.Contains(out, "nots") {
		t.Error("failed revisions must not appear in the report")
	}
	if !strings.Contains(out, "message for good") {
		t.Error("healthy revision missing from report")
	}
	if c.Skipped() != 2 {
		t.Errorf("expected 2 skipped revisions, got %d", c.Skipped())
	}

	// Exactly one well-formed block.
	if got := strings.Count(out, strings.Repeat("-", 50)); got != 1 {
		t.Errorf("expected 1 separator line, got %d", got)
	}
}

func TestCollectFromIDs(t *testing.T) {
	src := newFakeSource("a", "b")
	c := NewCollector(src, false)

	out, err := c.CollectFromIDs([]string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "message for a") || !strings.Contains(out, "message for b") {
		t.Error("missing messages for supplied ids")
	}

	if _, err := c.CollectFromIDs(nil); !errors.Is(err, ErrNoCommits) {
		t.Errorf("expected ErrNoCommits for empty input, got %v", err)
	}

	src.brokenMessage["a"] = true
	src.brokenMessage["b"] = true
	if _, err := c.CollectFromIDs([]string{"a", "b"}); !errors.Is(err, ErrNoCommits) {
		t.Errorf("expected ErrNoCommits when every id fails, got %v", err)
	}
}
