package service

import (
	"time"

	"chadjee_backend/internal/model"
)

// aggregateOrder fixes the subject iteration order wherever the aggregate
// map is scanned, so that ties resolve the same way on every run.
var aggregateOrder = []model.Subject{
	model.Mathematics,
	model.Physics,
	model.Chemistry,
	model.GeneralStudy,
	model.SubjectOther,
}

// AggregateSessions folds completed sessions inside the window into
// per-subject stats. Sessions must arrive ordered by start time: the
// bestTime selection is deliberately order-dependent (first completed
// session of at least 25 minutes seeds the candidate, any later session
// longer than the running average replaces it). It is a productivity
// heuristic, not a maximum-finder; "session with the longest duration"
// would be the alternative reading.
func AggregateSessions(sessions []model.StudySession, window model.TimeWindow, now time.Time) map[model.Subject]*model.SubjectStats {
	cutoff := now.AddDate(0, 0, -window.Days())
	stats := make(map[model.Subject]*model.SubjectStats)

	for i := range sessions {
		s := &sessions[i]
		if !s.Completed || s.StartTime.Before(cutoff) {
			continue
		}
		subject := model.NormalizeSubject(string(s.Subject))
		st, ok := stats[subject]
		if !ok {
			st = &model.SubjectStats{Subject: subject}
			stats[subject] = st
		}

		st.Count++
		st.TotalDuration += s.Duration
		st.AverageDuration = st.TotalDuration / st.Count

		if st.BestTime == nil {
			if s.Duration >= 25 {
				t := s.StartTime
				st.BestTime = &t
			}
		} else if s.Duration > st.AverageDuration {
			t := s.StartTime
			st.BestTime = &t
		}
	}

	return stats
}

// MostProductiveSubject returns the subject with the highest average
// duration, scanning subjects in fixed order so ties are deterministic.
func MostProductiveSubject(stats map[model.Subject]*model.SubjectStats) *model.SubjectStats {
	var best *model.SubjectStats
	for _, subject := range aggregateOrder {
		st, ok := stats[subject]
		if !ok {
			continue
		}
		if best == nil || st.AverageDuration > best.AverageDuration {
			best = st
		}
	}
	return best
}

// FocusIssueSubject returns the first subject with at least three sessions
// averaging under 20 minutes. Only the first such subject is considered;
// when the caller already has a recommendation queued for it, nothing is
// returned rather than falling through to the next candidate.
func FocusIssueSubject(stats map[model.Subject]*model.SubjectStats, queued func(model.Subject) bool) *model.SubjectStats {
	for _, subject := range aggregateOrder {
		st, ok := stats[subject]
		if !ok {
			continue
		}
		if st.Count >= 3 && st.AverageDuration < 20 {
			if queued(subject) {
				return nil
			}
			return st
		}
	}
	return nil
}
