// Package window computes the half-open date range a report run covers.
package window

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidWindow = errors.New("window since must be before until")

// Window is a half-open interval [Since, Until) used to select revisions.
// It is computed once per run and never mutated.
type Window struct {
	Since time.Time
	Until time.Time
}

// New builds a window and validates the Since < Until invariant.
func New(since, until time.Time) (Window, error) {
	if !since.Before(until) {
		return Window{}, fmt.Errorf("%w: since=%s until=%s",
			ErrInvalidWindow, since.Format("2006-01-02"), until.Format("2006-01-02"))
	}
	return Window{Since: since, Until: until}, nil
}

// Compute derives the report window from a reference time.
//
// Mondays look back 3 days so the report covers the weekend plus the
// prior Friday; every other day looks back 1 day. Until is the start of
// tomorrow, which keeps all of today inside the window. The Monday rule
// assumes a Monday-start week with a two-day weekend; it is a heuristic
// for days with no activity, not a holiday calendar.
func Compute(today time.Time) Window {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	lookback := 1
	if day.Weekday() == time.Monday {
		lookback = 3
	}

	return Window{
		Since: day.AddDate(0, 0, -lookback),
		Until: day.AddDate(0, 0, 1),
	}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Since) && t.Before(w.Until)
}

// Days returns the window length in whole days.
func (w Window) Days() int {
	return int(w.Until.Sub(w.Since).Hours() / 24)
}

// String renders the window for console output.
func (w Window) String() string {
	return fmt.Sprintf("%s to %s", w.Since.Format("2006-01-02"), w.Until.Format("2006-01-02"))
}
