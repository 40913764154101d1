package service

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"chadjee_backend/internal/model"
)

func TestBuildRecommendationsEmptyInput(t *testing.T) {
	recs, err := BuildRecommendations(EngineInput{
		Now:    time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC),
		Window: model.WindowMonth,
	})
	if err != nil {
		t.Fatalf("BuildRecommendations: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("want empty output, got %+v", recs)
	}
}

func TestBuildRecommendationsLowTestScore(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	in := EngineInput{
		Now:    now,
		Window: model.WindowMonth,
		Tests: []model.TestRecord{
			{
				Subject:            model.Mathematics,
				SubTopic:           "Calculus",
				Score:              40,
				MaxScore:           100,
				Date:               "2025-05-03",
				AreasOfImprovement: "Integration",
			},
		},
	}

	recs, err := BuildRecommendations(in)
	if err != nil {
		t.Fatalf("BuildRecommendations: %v", err)
	}

	var mathRecs []model.Recommendation
	for _, r := range recs {
		if r.Subject == model.Mathematics {
			mathRecs = append(mathRecs, r)
		}
	}
	if len(mathRecs) != 1 {
		t.Fatalf("want exactly one mathematics recommendation, got %+v", mathRecs)
	}

	rec := mathRecs[0]
	if rec.Type != model.RecTestScore {
		t.Fatalf("type = %s, want %s", rec.Type, model.RecTestScore)
	}
	if rec.Priority != 5 {
		t.Fatalf("priority = %d, want 5", rec.Priority)
	}
	for _, want := range []string{"40%", "Calculus", "Integration"} {
		if !strings.Contains(rec.Recommendation, want) {
			t.Fatalf("text %q does not contain %q", rec.Recommendation, want)
		}
	}
}

func TestBuildRecommendationsTestScoreShortCircuitsTimeGap(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	in := EngineInput{
		Now:    now,
		Window: model.WindowMonth,
		Tests: []model.TestRecord{
			{
				Subject:            model.Physics,
				Score:              20,
				MaxScore:           80,
				Date:               "2025-04-25",
				AreasOfImprovement: "Rotational dynamics",
			},
		},
		Progress: map[model.Subject]model.SubjectProgress{
			// stale enough for a time-gap on its own
			model.Physics: {Subject: model.Physics, LastStudied: "2025-04-20"},
		},
	}

	recs, err := BuildRecommendations(in)
	if err != nil {
		t.Fatalf("BuildRecommendations: %v", err)
	}
	for _, r := range recs {
		if r.Subject == model.Physics && r.Type != model.RecTestScore {
			t.Fatalf("physics got a %s recommendation alongside the test score", r.Type)
		}
	}
}

func TestBuildRecommendationsTimeGap(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	in := EngineInput{
		Now:    now,
		Window: model.WindowMonth,
		Progress: map[model.Subject]model.SubjectProgress{
			model.Chemistry: {Subject: model.Chemistry, LastStudied: "2025-04-25"}, // 8 days
		},
	}

	recs, err := BuildRecommendations(in)
	if err != nil {
		t.Fatalf("BuildRecommendations: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("want one recommendation, got %+v", recs)
	}
	rec := recs[0]
	if rec.Type != model.RecTimeGap || rec.Subject != model.Chemistry {
		t.Fatalf("unexpected recommendation %+v", rec)
	}
	if rec.Priority != 4 { // floor(8/2), capped at 4
		t.Fatalf("priority = %d, want 4", rec.Priority)
	}
	if !strings.Contains(rec.Recommendation, "8 days") {
		t.Fatalf("text %q does not mention the gap", rec.Recommendation)
	}
}

func TestBuildRecommendationsRecentStudyIsHealthy(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	in := EngineInput{
		Now:    now,
		Window: model.WindowMonth,
		Progress: map[model.Subject]model.SubjectProgress{
			model.Mathematics: {Subject: model.Mathematics, LastStudied: "2025-05-01"},
		},
	}

	recs, err := BuildRecommendations(in)
	if err != nil {
		t.Fatalf("BuildRecommendations: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("healthy subject produced %+v", recs)
	}
}

func TestBuildRecommendationsNoDataSubject(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	in := EngineInput{
		Now:    now,
		Window: model.WindowMonth,
		Progress: map[model.Subject]model.SubjectProgress{
			// tracked via topic setup, never studied or tested
			model.Physics: {Subject: model.Physics, TopicsTotal: 12},
		},
	}

	recs, err := BuildRecommendations(in)
	if err != nil {
		t.Fatalf("BuildRecommendations: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("want one recommendation, got %+v", recs)
	}
	if recs[0].Type != model.RecLowFrequency || recs[0].Priority != 1 {
		t.Fatalf("unexpected recommendation %+v", recs[0])
	}
}

// capSortInput produces six candidates: three time-gap, a study-balance
// best-time entry, a short-session focus entry and a streak entry.
func capSortInput(now time.Time) EngineInput {
	sessions := []model.StudySession{
		session(model.GeneralStudy, now.AddDate(0, 0, -4), 40, true),
		session(model.SubjectOther, now.AddDate(0, 0, -3), 10, true),
		session(model.SubjectOther, now.AddDate(0, 0, -2), 10, true),
		session(model.SubjectOther, now.AddDate(0, 0, -1), 10, true),
	}
	return EngineInput{
		Now:      now,
		Window:   model.WindowMonth,
		Sessions: sessions,
		Progress: map[model.Subject]model.SubjectProgress{
			model.Mathematics: {Subject: model.Mathematics, LastStudied: "2025-04-10"},
			model.Physics:     {Subject: model.Physics, LastStudied: "2025-04-12"},
			model.Chemistry:   {Subject: model.Chemistry, LastStudied: "2025-04-14"},
		},
		Streak: model.StreakSummary{Current: 3, Longest: 7},
	}
}

func TestBuildRecommendationsCapAndOrder(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	recs, err := BuildRecommendations(capSortInput(now))
	if err != nil {
		t.Fatalf("BuildRecommendations: %v", err)
	}

	if len(recs) != model.MaxRecommendations {
		t.Fatalf("len = %d, want %d", len(recs), model.MaxRecommendations)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Priority > recs[i-1].Priority {
			t.Fatalf("priorities not non-increasing: %+v", recs)
		}
	}

	seen := make(map[model.Subject]bool)
	for _, r := range recs {
		if r.Subject == model.StreakSubject {
			continue
		}
		if seen[r.Subject] {
			t.Fatalf("subject %s appears twice: %+v", r.Subject, recs)
		}
		seen[r.Subject] = true
	}
}

func TestBuildRecommendationsIdempotent(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	first, err := BuildRecommendations(capSortInput(now))
	if err != nil {
		t.Fatalf("BuildRecommendations: %v", err)
	}
	second, err := BuildRecommendations(capSortInput(now))
	if err != nil {
		t.Fatalf("BuildRecommendations: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("outputs differ:\n%+v\n%+v", first, second)
	}
}

func TestBuildRecommendationsStreakOnly(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)

	t.Run("active streak", func(t *testing.T) {
		recs, err := BuildRecommendations(EngineInput{
			Now:    now,
			Streak: model.StreakSummary{Current: 4, Longest: 9},
		})
		if err != nil {
			t.Fatalf("BuildRecommendations: %v", err)
		}
		if len(recs) != 1 || recs[0].Type != model.RecStreak || recs[0].Priority != 2 {
			t.Fatalf("unexpected output %+v", recs)
		}
		if !strings.Contains(recs[0].Recommendation, "4-day") {
			t.Fatalf("text %q does not cite the current streak", recs[0].Recommendation)
		}
	})

	t.Run("broken streak cites the record", func(t *testing.T) {
		recs, err := BuildRecommendations(EngineInput{
			Now:    now,
			Streak: model.StreakSummary{Current: 0, Longest: 9},
		})
		if err != nil {
			t.Fatalf("BuildRecommendations: %v", err)
		}
		if len(recs) != 1 || recs[0].Priority != 1 {
			t.Fatalf("unexpected output %+v", recs)
		}
		if !strings.Contains(recs[0].Recommendation, "9-day") {
			t.Fatalf("text %q does not cite the record", recs[0].Recommendation)
		}
	})
}
