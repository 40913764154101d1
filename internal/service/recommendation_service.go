package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chadjee_backend/internal/model"
	"chadjee_backend/internal/repository"
	"chadjee_backend/pkg/logger"
	"chadjee_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RecommendationService assembles the engine's input snapshot from
// storage, runs the pure ranking pass, and caches the result in redis.
// The engine itself performs no I/O; all of it happens here.
type RecommendationService struct {
	SessionRepo  *repository.StudySessionRepository
	TestRepo     *repository.TestRecordRepository
	ProgressRepo *repository.SubjectProgressRepository
	Streak       *StreakService
	Redis        *redis.Client
	CacheTTL     time.Duration
}

func NewRecommendationService(
	sessionRepo *repository.StudySessionRepository,
	testRepo *repository.TestRecordRepository,
	progressRepo *repository.SubjectProgressRepository,
	streak *StreakService,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *RecommendationService {
	return &RecommendationService{
		SessionRepo:  sessionRepo,
		TestRepo:     testRepo,
		ProgressRepo: progressRepo,
		Streak:       streak,
		Redis:        rdb,
		CacheTTL:     cacheTTL,
	}
}

func cacheKey(userID uint) string {
	return fmt.Sprintf("chadjee:recommendations:%d", userID)
}

// GetRecommendations returns the ranked list for the user, from cache
// when fresh.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID uint) ([]model.Recommendation, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, cacheKey(userID)).Result()
		if err == nil {
			var recs []model.Recommendation
			if json.Unmarshal([]byte(cached), &recs) == nil {
				monitoring.RecommendationRuns.WithLabelValues("cache").Inc()
				return recs, nil
			}
		}
	}
	return s.compute(ctx, userID, time.Now())
}

// Refresh drops the cached list and recomputes. The computation is
// deterministic over its inputs, so a refresh only changes the output
// when the underlying data changed.
func (s *RecommendationService) Refresh(ctx context.Context, userID uint) ([]model.Recommendation, error) {
	s.Invalidate(ctx, userID)
	return s.compute(ctx, userID, time.Now())
}

// Invalidate is called by session/test/activity writers so the next read
// recomputes.
func (s *RecommendationService) Invalidate(ctx context.Context, userID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, cacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("failed to invalidate recommendation cache",
			zap.Uint("userID", userID), zap.Error(err))
	}
}

// BuildInput fetches the user's snapshot for one engine evaluation.
func (s *RecommendationService) BuildInput(userID uint, now time.Time) (EngineInput, error) {
	sessions, err := s.SessionRepo.FindByUserID(userID)
	if err != nil {
		return EngineInput{}, err
	}

	tests, err := s.TestRepo.FindByUserID(userID)
	if err != nil {
		return EngineInput{}, err
	}

	rows, err := s.ProgressRepo.FindByUserID(userID)
	if err != nil {
		return EngineInput{}, err
	}
	progress := make(map[model.Subject]model.SubjectProgress, len(rows))
	for _, row := range rows {
		progress[row.Subject] = row
	}

	streak, err := s.Streak.Summary(userID, now)
	if err != nil {
		return EngineInput{}, err
	}

	return EngineInput{
		Now:      now,
		Window:   model.WindowMonth,
		Sessions: sessions,
		Tests:    tests,
		Progress: progress,
		Streak:   streak,
	}, nil
}

func (s *RecommendationService) compute(ctx context.Context, userID uint, now time.Time) ([]model.Recommendation, error) {
	input, err := s.BuildInput(userID, now)
	if err != nil {
		return nil, err
	}

	recs, err := BuildRecommendations(input)
	if err != nil {
		return nil, err
	}
	monitoring.RecommendationRuns.WithLabelValues("computed").Inc()

	if s.Redis != nil {
		if payload, err := json.Marshal(recs); err == nil {
			if err := s.Redis.Set(ctx, cacheKey(userID), payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache recommendations",
					zap.Uint("userID", userID), zap.Error(err))
			}
		}
	}

	return recs, nil
}
