package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"chadjee_backend/internal/model"
	"chadjee_backend/internal/repository"
)

// StreakService maintains the activity log and keeps the per-user streak
// snapshot consistent with it. Recomputation is eager: every activity
// write or delete rebuilds the snapshot from the distinct dates, so a
// deleted session that was the sole contributor to a streak day is
// reflected immediately.
type StreakService struct {
	StreakRepo   *repository.StreakRepository
	ProgressRepo *repository.SubjectProgressRepository
}

func NewStreakService(streakRepo *repository.StreakRepository, progressRepo *repository.SubjectProgressRepository) *StreakService {
	return &StreakService{
		StreakRepo:   streakRepo,
		ProgressRepo: progressRepo,
	}
}

// LogActivity records a study event, bumps the subject tracker, and
// recomputes the streak snapshot.
func (s *StreakService) LogActivity(userID uint, subject model.Subject, activityType model.ActivityType, day time.Time, sourceID string) error {
	date := CivilDay(day).Format(dayLayout)

	if err := s.StreakRepo.CreateActivity(&model.StudyActivity{
		UserID:   userID,
		Subject:  subject,
		Type:     activityType,
		Date:     date,
		SourceID: sourceID,
	}); err != nil {
		return err
	}

	if err := s.ProgressRepo.RecordActivity(userID, subject, date); err != nil {
		return err
	}

	return s.Recompute(userID, day)
}

// RemoveActivitiesForSource drops activities created by a deleted
// session/test and recomputes the snapshot.
func (s *StreakService) RemoveActivitiesForSource(userID uint, sourceID string, now time.Time) error {
	if err := s.StreakRepo.DeleteActivitiesBySource(userID, sourceID); err != nil {
		return err
	}
	return s.Recompute(userID, now)
}

// Recompute rebuilds the snapshot from the distinct activity dates.
func (s *StreakService) Recompute(userID uint, now time.Time) error {
	dates, err := s.StreakRepo.DistinctDates(userID)
	if err != nil {
		return err
	}

	summary, err := ComputeStreak(dates, now)
	if err != nil {
		return err
	}

	lastDate := ""
	if len(dates) > 0 {
		lastDate = dates[len(dates)-1]
	}

	return s.StreakRepo.UpsertSnapshot(&model.StreakSnapshot{
		UserID:   userID,
		Current:  summary.Current,
		Longest:  summary.Longest,
		LastDate: lastDate,
	})
}

// GetSnapshot returns the stored snapshot, refreshed when its current
// streak is stale relative to today (an idle user's streak decays without
// any new writes).
func (s *StreakService) GetSnapshot(userID uint, now time.Time) (*model.StreakSnapshot, error) {
	snapshot, err := s.StreakRepo.GetSnapshot(userID)
	if err != nil {
		return nil, err
	}

	if snapshot.LastDate != "" {
		last, err := ParseDay(snapshot.LastDate)
		if err != nil {
			return nil, err
		}
		if snapshot.Current > 0 && DaysBetween(last, now) > 1 {
			if err := s.Recompute(userID, now); err != nil {
				return nil, err
			}
			return s.StreakRepo.GetSnapshot(userID)
		}
	}

	return snapshot, nil
}

// Summary exposes the snapshot as the engine's value type; a missing
// snapshot means a zero streak, not an error.
func (s *StreakService) Summary(userID uint, now time.Time) (model.StreakSummary, error) {
	snapshot, err := s.GetSnapshot(userID, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.StreakSummary{}, nil
		}
		return model.StreakSummary{}, err
	}
	return model.StreakSummary{Current: snapshot.Current, Longest: snapshot.Longest}, nil
}

// WouldBreakStreak reports whether removing the given source's activities
// would shorten the user's current streak, for a confirmation prompt
// before deletion.
func (s *StreakService) WouldBreakStreak(userID uint, sourceID string, now time.Time) (bool, error) {
	dates, err := s.StreakRepo.DistinctDates(userID)
	if err != nil {
		return false, err
	}
	before, err := ComputeStreak(dates, now)
	if err != nil {
		return false, err
	}

	activities, err := s.StreakRepo.FindActivities(userID, 0)
	if err != nil {
		return false, err
	}
	remaining := make(map[string]bool)
	for _, a := range activities {
		if a.SourceID != sourceID {
			remaining[a.Date] = true
		}
	}
	after := make([]string, 0, len(remaining))
	for d := range remaining {
		after = append(after, d)
	}
	summary, err := ComputeStreak(after, now)
	if err != nil {
		return false, err
	}
	return summary.Current < before.Current, nil
}
