package service

import (
	"context"
	"fmt"
	"time"

	"chadjee_backend/internal/model"
	"chadjee_backend/internal/repository"
	"chadjee_backend/internal/util"

	"gorm.io/gorm"
)

type TestRecordService struct {
	TestRepo        *repository.TestRecordRepository
	Streak          *StreakService
	Recommendations *RecommendationService
}

func NewTestRecordService(
	testRepo *repository.TestRecordRepository,
	streak *StreakService,
	recommendations *RecommendationService,
) *TestRecordService {
	return &TestRecordService{
		TestRepo:        testRepo,
		Streak:          streak,
		Recommendations: recommendations,
	}
}

func (s *TestRecordService) validate(record *model.TestRecord) error {
	if record.MaxScore <= 0 || record.Score < 0 || record.Score > record.MaxScore {
		return util.ErrInvalidScore
	}
	if _, err := ParseDay(record.Date); err != nil {
		return err
	}
	return nil
}

func (s *TestRecordService) CreateRecord(ctx context.Context, record *model.TestRecord) error {
	record.Subject = model.NormalizeSubject(string(record.Subject))
	if err := s.validate(record); err != nil {
		return err
	}

	if err := s.TestRepo.Create(record); err != nil {
		return err
	}

	day, _ := ParseDay(record.Date)
	sourceID := fmt.Sprintf("test:%d", record.ID)
	if err := s.Streak.LogActivity(record.UserID, record.Subject, model.ActivityTest, day, sourceID); err != nil {
		return err
	}

	s.Recommendations.Invalidate(ctx, record.UserID)
	return nil
}

func (s *TestRecordService) ListRecords(userID uint, subject string) ([]model.TestRecord, error) {
	if subject != "" {
		return s.TestRepo.FindByUserAndSubject(userID, model.NormalizeSubject(subject))
	}
	return s.TestRepo.FindByUserID(userID)
}

func (s *TestRecordService) UpdateRecord(ctx context.Context, userID uint, recordID uint, updates *model.TestRecord) (*model.TestRecord, error) {
	existing, err := s.TestRepo.FindByIDAndUserID(recordID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	existing.Subject = model.NormalizeSubject(string(updates.Subject))
	existing.SubTopic = updates.SubTopic
	existing.Score = updates.Score
	existing.MaxScore = updates.MaxScore
	existing.Date = updates.Date
	existing.AreasOfImprovement = updates.AreasOfImprovement

	if err := s.validate(existing); err != nil {
		return nil, err
	}

	if err := s.TestRepo.Update(existing); err != nil {
		return nil, err
	}

	s.Recommendations.Invalidate(ctx, userID)
	return existing, nil
}

func (s *TestRecordService) DeleteRecord(ctx context.Context, userID, recordID uint) error {
	if _, err := s.TestRepo.FindByIDAndUserID(recordID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrTestNotFound
		}
		return err
	}

	if err := s.TestRepo.Delete(recordID, userID); err != nil {
		return err
	}

	sourceID := fmt.Sprintf("test:%d", recordID)
	if err := s.Streak.RemoveActivitiesForSource(userID, sourceID, time.Now()); err != nil {
		return err
	}

	s.Recommendations.Invalidate(ctx, userID)
	return nil
}
