package service

import (
	"chadjee_backend/internal/model"
	"chadjee_backend/internal/repository"
	"chadjee_backend/internal/util"

	"gorm.io/gorm"
)

type TaskService struct {
	TaskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{TaskRepo: taskRepo}
}

func (s *TaskService) CreateTask(task *model.Task) error {
	task.Subject = model.NormalizeSubject(string(task.Subject))
	if task.Status == "" {
		task.Status = model.TaskPending
	}
	if task.Priority == "" {
		task.Priority = model.TaskMedium
	}
	return s.TaskRepo.Create(task)
}

func (s *TaskService) ListTasks(userID uint) ([]model.Task, error) {
	return s.TaskRepo.FindByUserID(userID)
}

func (s *TaskService) UpdateTask(userID, taskID uint, updates *model.Task) (*model.Task, error) {
	existing, err := s.TaskRepo.FindByIDAndUserID(taskID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTaskNotFound
		}
		return nil, err
	}

	existing.Title = updates.Title
	existing.Description = updates.Description
	existing.Subject = model.NormalizeSubject(string(updates.Subject))
	existing.DueDate = updates.DueDate
	existing.Order = updates.Order
	if updates.Status != "" {
		existing.Status = updates.Status
	}
	if updates.Priority != "" {
		existing.Priority = updates.Priority
	}

	if err := s.TaskRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TaskService) UpdateStatus(userID, taskID uint, status model.TaskStatus) error {
	return s.TaskRepo.UpdateStatus(taskID, userID, status)
}

func (s *TaskService) DeleteTask(userID, taskID uint) error {
	if _, err := s.TaskRepo.FindByIDAndUserID(taskID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrTaskNotFound
		}
		return err
	}
	return s.TaskRepo.Delete(taskID, userID)
}
