package window

import (
	"testing"
	"time"
)

func TestCompute_MondayLookback(t *testing.T) {
	// Mon 2024-01-08 -> since Fri 2024-01-05, until Tue 2024-01-09
	monday := time.Date(2024, 1, 8, 14, 30, 0, 0, time.UTC)
	w := Compute(monday)

	wantSince := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	wantUntil := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)

	if !w.Since.Equal(wantSince) {
		t.Errorf("since = %s, want %s", w.Since, wantSince)
	}
	if !w.Until.Equal(wantUntil) {
		t.Errorf("until = %s, want %s", w.Until, wantUntil)
	}
	if w.Days() != 4 {
		t.Errorf("Monday window spans %d days, want 4", w.Days())
	}
}

func TestCompute_WeekdayLookback(t *testing.T) {
	days := []time.Time{
		time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC),  // Tuesday
		time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), // Wednesday
		time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC), // Thursday
		time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC), // Friday
		time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC), // Saturday
		time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC), // Sunday
	}

	for _, d := range days {
		w := Compute(d)
		if w.Days() != 2 {
			t.Errorf("%s window spans %d days, want 2", d.Weekday(), w.Days())
		}
	}
}

func TestCompute_InvariantHolds(t *testing.T) {
	// Every day of a full week produces a valid window.
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		w := Compute(start.AddDate(0, 0, i))
		if !w.Since.Before(w.Until) {
			t.Errorf("day %d: since %s not before until %s", i, w.Since, w.Until)
		}
	}
}

func TestCompute_IncludesAllOfToday(t *testing.T) {
	now := time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC)
	w := Compute(now)

	if !w.Contains(now) {
		t.Error("window should contain the reference time")
	}
	tomorrow := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	if w.Contains(tomorrow) {
		t.Error("until must be exclusive")
	}
}

func TestNew_RejectsInvertedWindow(t *testing.T) {
	a := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	if _, err := New(a, b); err == nil {
		t.Fatal("expected error for since after until")
	}
	if _, err := New(a, a); err == nil {
		t.Fatal("expected error for empty window")
	}
	if _, err := New(b, a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
