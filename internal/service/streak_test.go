package service

import (
	"errors"
	"testing"
	"time"

	"chadjee_backend/internal/util"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("ParseDay(%q): %v", s, err)
	}
	return d
}

func TestComputeStreak(t *testing.T) {
	tests := []struct {
		name        string
		dates       []string
		today       string
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "three consecutive days ending today",
			dates:       []string{"2025-05-01", "2025-05-02", "2025-05-03"},
			today:       "2025-05-03",
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "gap resets the run",
			dates:       []string{"2025-05-01", "2025-05-03"},
			today:       "2025-05-03",
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "yesterday grace keeps the streak alive",
			dates:       []string{"2025-05-01", "2025-05-02"},
			today:       "2025-05-03",
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name:        "two day gap breaks the current streak",
			dates:       []string{"2025-05-01", "2025-05-02"},
			today:       "2025-05-04",
			wantCurrent: 0,
			wantLongest: 2,
		},
		{
			name:        "single date equal to today",
			dates:       []string{"2025-05-03"},
			today:       "2025-05-03",
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "single old date",
			dates:       []string{"2025-04-01"},
			today:       "2025-05-03",
			wantCurrent: 0,
			wantLongest: 1,
		},
		{
			name:        "duplicates collapse to one day",
			dates:       []string{"2025-05-02", "2025-05-02", "2025-05-03", "2025-05-03"},
			today:       "2025-05-03",
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name:        "longest run is in the past",
			dates:       []string{"2025-04-01", "2025-04-02", "2025-04-03", "2025-04-04", "2025-05-03"},
			today:       "2025-05-03",
			wantCurrent: 1,
			wantLongest: 4,
		},
		{
			name:        "unsorted input",
			dates:       []string{"2025-05-03", "2025-05-01", "2025-05-02"},
			today:       "2025-05-03",
			wantCurrent: 3,
			wantLongest: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeStreak(tc.dates, day(t, tc.today))
			if err != nil {
				t.Fatalf("ComputeStreak: %v", err)
			}
			if got.Current != tc.wantCurrent || got.Longest != tc.wantLongest {
				t.Fatalf("got current=%d longest=%d, want current=%d longest=%d",
					got.Current, got.Longest, tc.wantCurrent, tc.wantLongest)
			}
			if got.Longest < got.Current {
				t.Fatalf("longest %d smaller than current %d", got.Longest, got.Current)
			}
		})
	}
}

func TestComputeStreakEmpty(t *testing.T) {
	got, err := ComputeStreak(nil, day(t, "2025-05-03"))
	if err != nil {
		t.Fatalf("ComputeStreak: %v", err)
	}
	if got.Current != 0 || got.Longest != 0 {
		t.Fatalf("want zero summary, got %+v", got)
	}
}

func TestComputeStreakInvalidDate(t *testing.T) {
	_, err := ComputeStreak([]string{"05/01/2025"}, day(t, "2025-05-03"))
	if !errors.Is(err, util.ErrInvalidDate) {
		t.Fatalf("want ErrInvalidDate, got %v", err)
	}
}

func TestDaysBetweenIgnoresClockTime(t *testing.T) {
	// 23 hours apart on the clock but one calendar day apart.
	a := time.Date(2025, 3, 8, 23, 30, 0, 0, time.UTC)
	b := time.Date(2025, 3, 9, 22, 30, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 1 {
		t.Fatalf("DaysBetween = %d, want 1", got)
	}
	if got := DaysBetween(b, a); got != -1 {
		t.Fatalf("DaysBetween reversed = %d, want -1", got)
	}
}
