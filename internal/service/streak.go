package service

import (
	"fmt"
	"sort"
	"time"

	"chadjee_backend/internal/model"
	"chadjee_backend/internal/util"
)

const dayLayout = "2006-01-02"

// ParseDay validates a YYYY-MM-DD string and returns it normalized to a
// UTC midnight. Rejecting bad input here keeps NaN-style garbage out of
// every downstream day comparison.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", util.ErrInvalidDate, s)
	}
	return t, nil
}

// CivilDay truncates a timestamp to its calendar date in the timestamp's
// own location, re-anchored at UTC midnight. All streak and gap arithmetic
// runs on these values, so a DST transition never shifts a day boundary.
func CivilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-calendar-day distance from a to b.
func DaysBetween(a, b time.Time) int {
	return int(CivilDay(b).Sub(CivilDay(a)).Hours() / 24)
}

// ComputeStreak derives current and longest consecutive-day streaks from a
// set of activity dates. The current streak is anchored at today, or at
// yesterday when today has no activity yet (the day-boundary grace rule);
// the longest streak is never reported smaller than the current one.
func ComputeStreak(dates []string, today time.Time) (model.StreakSummary, error) {
	if len(dates) == 0 {
		return model.StreakSummary{}, nil
	}

	seen := make(map[string]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		d, err := ParseDay(s)
		if err != nil {
			return model.StreakSummary{}, err
		}
		key := d.Format(dayLayout)
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	todayDay := CivilDay(today)
	yesterday := todayDay.AddDate(0, 0, -1)

	anchor := time.Time{}
	if seen[todayDay.Format(dayLayout)] {
		anchor = todayDay
	} else if seen[yesterday.Format(dayLayout)] {
		anchor = yesterday
	}

	current := 0
	if !anchor.IsZero() {
		current = 1
		for prev := anchor.AddDate(0, 0, -1); seen[prev.Format(dayLayout)]; prev = prev.AddDate(0, 0, -1) {
			current++
		}
	}

	longest := current
	if longest < 1 {
		longest = 1 // at least one dated activity exists
	}
	run := 1
	for i := 1; i < len(days); i++ {
		if DaysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return model.StreakSummary{Current: current, Longest: longest}, nil
}
