package service

import (
	"chadjee_backend/internal/model"
	"chadjee_backend/internal/repository"
)

type MotivationService struct {
	MotivationRepo *repository.MotivationRepository
}

func NewMotivationService(motivationRepo *repository.MotivationRepository) *MotivationService {
	return &MotivationService{MotivationRepo: motivationRepo}
}

// Current returns the quote of the day.
func (s *MotivationService) Current() (*model.Motivation, error) {
	return s.MotivationRepo.GetCurrent()
}

func (s *MotivationService) List() ([]model.Motivation, error) {
	return s.MotivationRepo.List()
}
