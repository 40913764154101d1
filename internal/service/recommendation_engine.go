package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"chadjee_backend/internal/model"
)

// EngineInput is a read-only snapshot of one user's study data. The engine
// never touches the clock or storage itself: the caller injects the
// evaluation time along with already-fetched collections, so identical
// inputs always produce identical output and concurrent invocations for
// different users cannot interfere.
type EngineInput struct {
	Now      time.Time
	Window   model.TimeWindow
	Sessions []model.StudySession // ordered by start time ascending
	Tests    []model.TestRecord
	Progress map[model.Subject]model.SubjectProgress
	Streak   model.StreakSummary
}

// BuildRecommendations runs the per-subject decision tree over the three
// main subjects, adds the session-balance and streak suggestions, and
// returns the list sorted by descending priority, capped at
// model.MaxRecommendations. At most one entry per subject survives, the
// synthetic streak subject excepted.
func BuildRecommendations(in EngineInput) ([]model.Recommendation, error) {
	recs := make([]model.Recommendation, 0, 8)
	queued := make(map[model.Subject]bool)

	push := func(r model.Recommendation) {
		recs = append(recs, r)
		queued[r.Subject] = true
	}

	for _, subject := range model.MainSubjects {
		rec, handled, err := evaluateSubject(in, subject)
		if err != nil {
			return nil, err
		}
		if handled {
			push(rec)
		}
	}

	window := in.Window
	if window == "" {
		window = model.WindowMonth
	}
	stats := AggregateSessions(in.Sessions, window, in.Now)

	if top := MostProductiveSubject(stats); top != nil && top.BestTime != nil && !queued[top.Subject] {
		block := model.BlockForHour(top.BestTime.Hour())
		push(model.Recommendation{
			ID:      recID(top.Subject, model.RecStudyBalance),
			Subject: top.Subject,
			Recommendation: fmt.Sprintf("%s is your most productive subject, and your best sessions happen in the %s. Schedule tomorrow's session then.",
				top.Subject, block),
			Type:     model.RecStudyBalance,
			Priority: 3,
		})
	}

	if weak := FocusIssueSubject(stats, func(s model.Subject) bool { return queued[s] }); weak != nil {
		push(model.Recommendation{
			ID:      recID(weak.Subject, model.RecStudyBalance),
			Subject: weak.Subject,
			Recommendation: fmt.Sprintf("Your %s sessions average under 20 minutes. Try a full 25-minute Pomodoro without interruptions.",
				weak.Subject),
			Type:     model.RecStudyBalance,
			Priority: 4,
		})
	}

	if streak := streakRecommendation(in.Streak); streak != nil {
		recs = append(recs, *streak)
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Priority > recs[j].Priority })
	if len(recs) > model.MaxRecommendations {
		recs = recs[:model.MaxRecommendations]
	}
	return recs, nil
}

// evaluateSubject applies the decision tree for one main subject:
// low test score short-circuits, then study gap, then missing data.
func evaluateSubject(in EngineInput, subject model.Subject) (model.Recommendation, bool, error) {
	if latest, err := latestTest(in.Tests, subject); err != nil {
		return model.Recommendation{}, false, err
	} else if latest != nil && latest.MaxScore > 0 &&
		latest.Score/latest.MaxScore < 0.5 && latest.AreasOfImprovement != "" {
		topic := latest.SubTopic
		if topic == "" {
			topic = string(subject)
		}
		pct := int(math.Round(latest.Score / latest.MaxScore * 100))
		return model.Recommendation{
			ID:       recID(subject, model.RecTestScore),
			Subject:  subject,
			SubTopic: latest.SubTopic,
			Recommendation: fmt.Sprintf("You scored %d%% in %s. Work on: %s",
				pct, topic, latest.AreasOfImprovement),
			Type:     model.RecTestScore,
			Priority: 5,
		}, true, nil
	}

	prog, tracked := in.Progress[subject]
	if !tracked {
		// the tracker has never seen this subject, nothing to say yet
		return model.Recommendation{}, false, nil
	}

	if prog.LastStudied != "" {
		last, err := ParseDay(prog.LastStudied)
		if err != nil {
			return model.Recommendation{}, false, err
		}
		if days := DaysBetween(last, in.Now); days > 5 {
			priority := days / 2
			if priority > 4 {
				priority = 4
			}
			return model.Recommendation{
				ID:      recID(subject, model.RecTimeGap),
				Subject: subject,
				Recommendation: fmt.Sprintf("You haven't studied %s for %d days. Time to get back to it.",
					subject, days),
				Type:     model.RecTimeGap,
				Priority: priority,
			}, true, nil
		}
		return model.Recommendation{}, false, nil
	}

	if !hasSessionFor(in.Sessions, subject) && !hasTestFor(in.Tests, subject) {
		return model.Recommendation{
			ID:      recID(subject, model.RecLowFrequency),
			Subject: subject,
			Recommendation: fmt.Sprintf("No study sessions or tests recorded for %s yet. Start with a short Pomodoro.",
				subject),
			Type:     model.RecLowFrequency,
			Priority: 1,
		}, true, nil
	}

	return model.Recommendation{}, false, nil
}

func streakRecommendation(streak model.StreakSummary) *model.Recommendation {
	switch {
	case streak.Current > 0:
		return &model.Recommendation{
			ID:      recID(model.StreakSubject, model.RecStreak),
			Subject: model.StreakSubject,
			Recommendation: fmt.Sprintf("%d-day study streak. Log a session today to keep it alive.",
				streak.Current),
			Type:     model.RecStreak,
			Priority: 2,
		}
	case streak.Longest > 0:
		return &model.Recommendation{
			ID:      recID(model.StreakSubject, model.RecStreak),
			Subject: model.StreakSubject,
			Recommendation: fmt.Sprintf("Your record is a %d-day streak. Start a new one today and beat it.",
				streak.Longest),
			Type:     model.RecStreak,
			Priority: 1,
		}
	default:
		return nil
	}
}

// latestTest returns the newest test record for the subject, or nil.
// Date strings are validated before comparison; ties on the same date
// keep the later entry in input order.
func latestTest(tests []model.TestRecord, subject model.Subject) (*model.TestRecord, error) {
	var latest *model.TestRecord
	var latestDay time.Time
	for i := range tests {
		t := &tests[i]
		if model.NormalizeSubject(string(t.Subject)) != subject {
			continue
		}
		day, err := ParseDay(t.Date)
		if err != nil {
			return nil, err
		}
		if latest == nil || !day.Before(latestDay) {
			latest = t
			latestDay = day
		}
	}
	return latest, nil
}

func hasSessionFor(sessions []model.StudySession, subject model.Subject) bool {
	for i := range sessions {
		if model.NormalizeSubject(string(sessions[i].Subject)) == subject {
			return true
		}
	}
	return false
}

func hasTestFor(tests []model.TestRecord, subject model.Subject) bool {
	for i := range tests {
		if model.NormalizeSubject(string(tests[i].Subject)) == subject {
			return true
		}
	}
	return false
}

func recID(subject model.Subject, recType model.RecommendationType) string {
	return fmt.Sprintf("%s:%s", recType, subject)
}
