package service

import (
	"chadjee_backend/internal/model"
	"chadjee_backend/internal/repository"
	"chadjee_backend/internal/util"

	"gorm.io/gorm"
)

type GoalService struct {
	GoalRepo *repository.GoalRepository
}

func NewGoalService(goalRepo *repository.GoalRepository) *GoalService {
	return &GoalService{GoalRepo: goalRepo}
}

func (s *GoalService) CreateGoal(goal *model.Goal) error {
	goal.Subject = model.NormalizeSubject(string(goal.Subject))
	if goal.Status == "" {
		goal.Status = model.GoalPending
	}
	syncProgress(goal)
	return s.GoalRepo.Create(goal)
}

func (s *GoalService) ListGoals(userID uint) ([]model.Goal, error) {
	return s.GoalRepo.FindByUserID(userID)
}

// UpdateProgress moves the counter and derives progress/status from it.
func (s *GoalService) UpdateProgress(userID, goalID uint, current int) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(goalID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrGoalNotFound
		}
		return nil, err
	}

	goal.Current = current
	syncProgress(goal)

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) DeleteGoal(userID, goalID uint) error {
	if _, err := s.GoalRepo.FindByIDAndUserID(goalID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrGoalNotFound
		}
		return err
	}
	return s.GoalRepo.Delete(goalID, userID)
}

func syncProgress(goal *model.Goal) {
	if goal.Target <= 0 {
		goal.Progress = 0
		return
	}
	goal.Progress = float64(goal.Current) / float64(goal.Target) * 100
	if goal.Progress >= 100 {
		goal.Progress = 100
		goal.Status = model.GoalCompleted
	} else if goal.Current > 0 {
		goal.Status = model.GoalInProgress
	}
}
