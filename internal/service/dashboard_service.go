package service

import (
	"context"
	"time"

	"chadjee_backend/internal/model"
	"chadjee_backend/internal/repository"
)

type DashboardService struct {
	TaskRepo        *repository.TaskRepository
	GoalRepo        *repository.GoalRepository
	Streak          *StreakService
	Recommendations *RecommendationService
	Motivation      *MotivationService
}

func NewDashboardService(
	taskRepo *repository.TaskRepository,
	goalRepo *repository.GoalRepository,
	streak *StreakService,
	recommendations *RecommendationService,
	motivation *MotivationService,
) *DashboardService {
	return &DashboardService{
		TaskRepo:        taskRepo,
		GoalRepo:        goalRepo,
		Streak:          streak,
		Recommendations: recommendations,
		Motivation:      motivation,
	}
}

// Dashboard bundles everything the home screen shows in one payload.
type Dashboard struct {
	TodayTasks      []model.Task           `json:"todayTasks"`
	Goals           []model.Goal           `json:"goals"`
	Streak          model.StreakSummary    `json:"streak"`
	Recommendations []model.Recommendation `json:"recommendations"`
	Motivation      *model.Motivation      `json:"motivation,omitempty"`
}

func (s *DashboardService) GetDashboard(ctx context.Context, userID uint, now time.Time) (*Dashboard, error) {
	tasks, err := s.TaskRepo.FindByUserAndDate(userID, now)
	if err != nil {
		return nil, err
	}

	goals, err := s.GoalRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	streak, err := s.Streak.Summary(userID, now)
	if err != nil {
		return nil, err
	}

	recs, err := s.Recommendations.GetRecommendations(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		TodayTasks:      tasks,
		Goals:           goals,
		Streak:          streak,
		Recommendations: recs,
	}

	// The quote is decoration, a missing one never fails the dashboard.
	if quote, err := s.Motivation.Current(); err == nil {
		dashboard.Motivation = quote
	}

	return dashboard, nil
}
