package service

import (
	"testing"
	"time"

	"chadjee_backend/internal/model"
)

func session(subject model.Subject, start time.Time, minutes int, completed bool) model.StudySession {
	return model.StudySession{
		Subject:   subject,
		Kind:      model.SessionFocus,
		StartTime: start,
		Duration:  minutes,
		Completed: completed,
	}
}

func TestAggregateSessionsFiltersAndAverages(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	sessions := []model.StudySession{
		session(model.Mathematics, now.AddDate(0, 0, -40), 60, true), // outside the month window
		session(model.Mathematics, now.AddDate(0, 0, -3), 30, true),
		session(model.Mathematics, now.AddDate(0, 0, -2), 20, true),
		session(model.Mathematics, now.AddDate(0, 0, -1), 45, false), // abandoned
		session(model.Physics, now.AddDate(0, 0, -1), 50, true),
	}

	stats := AggregateSessions(sessions, model.WindowMonth, now)

	math := stats[model.Mathematics]
	if math == nil {
		t.Fatal("no mathematics stats")
	}
	if math.Count != 2 || math.TotalDuration != 50 || math.AverageDuration != 25 {
		t.Fatalf("mathematics stats = %+v", math)
	}

	phys := stats[model.Physics]
	if phys == nil || phys.Count != 1 || phys.TotalDuration != 50 {
		t.Fatalf("physics stats = %+v", phys)
	}
	if _, ok := stats[model.Chemistry]; ok {
		t.Fatal("chemistry stats present without sessions")
	}
}

func TestAggregateSessionsBestTime(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	seed := now.AddDate(0, 0, -5)
	better := now.AddDate(0, 0, -1)

	t.Run("short sessions never seed a best time", func(t *testing.T) {
		stats := AggregateSessions([]model.StudySession{
			session(model.Physics, seed, 10, true),
			session(model.Physics, better, 15, true),
		}, model.WindowMonth, now)
		if stats[model.Physics].BestTime != nil {
			t.Fatalf("best time = %v, want nil", stats[model.Physics].BestTime)
		}
	})

	t.Run("first long session seeds, longer one replaces", func(t *testing.T) {
		stats := AggregateSessions([]model.StudySession{
			session(model.Physics, seed, 25, true),
			session(model.Physics, better, 40, true),
		}, model.WindowMonth, now)
		bt := stats[model.Physics].BestTime
		if bt == nil || !bt.Equal(better) {
			t.Fatalf("best time = %v, want %v", bt, better)
		}
	})

	t.Run("below average session keeps the seed", func(t *testing.T) {
		stats := AggregateSessions([]model.StudySession{
			session(model.Physics, seed, 40, true),
			session(model.Physics, better, 20, true),
		}, model.WindowMonth, now)
		bt := stats[model.Physics].BestTime
		if bt == nil || !bt.Equal(seed) {
			t.Fatalf("best time = %v, want %v", bt, seed)
		}
	})
}

func TestMostProductiveSubject(t *testing.T) {
	stats := map[model.Subject]*model.SubjectStats{
		model.Mathematics: {Subject: model.Mathematics, AverageDuration: 30},
		model.Physics:     {Subject: model.Physics, AverageDuration: 45},
		model.Chemistry:   {Subject: model.Chemistry, AverageDuration: 45},
	}
	top := MostProductiveSubject(stats)
	if top == nil || top.Subject != model.Physics {
		t.Fatalf("most productive = %+v, want physics (first of the tied pair)", top)
	}

	if MostProductiveSubject(nil) != nil {
		t.Fatal("expected nil for empty stats")
	}
}

func TestFocusIssueSubject(t *testing.T) {
	stats := map[model.Subject]*model.SubjectStats{
		model.Mathematics: {Subject: model.Mathematics, Count: 3, AverageDuration: 12},
		model.Physics:     {Subject: model.Physics, Count: 2, AverageDuration: 10},
		model.Chemistry:   {Subject: model.Chemistry, Count: 5, AverageDuration: 35},
	}

	weak := FocusIssueSubject(stats, func(model.Subject) bool { return false })
	if weak == nil || weak.Subject != model.Mathematics {
		t.Fatalf("focus issue = %+v, want mathematics", weak)
	}

	// skipped when the subject already has a recommendation queued
	weak = FocusIssueSubject(stats, func(s model.Subject) bool { return s == model.Mathematics })
	if weak != nil {
		t.Fatalf("focus issue = %+v, want nil", weak)
	}
}
