package service

import (
	"chadjee_backend/internal/model"
	"chadjee_backend/internal/repository"
)

// SubjectService exposes the tracker state kept per subject: when it was
// last studied, how often, and how far its topic syllabus has progressed.
type SubjectService struct {
	ProgressRepo *repository.SubjectProgressRepository
}

func NewSubjectService(progressRepo *repository.SubjectProgressRepository) *SubjectService {
	return &SubjectService{ProgressRepo: progressRepo}
}

func (s *SubjectService) ListProgress(userID uint) ([]model.SubjectProgress, error) {
	return s.ProgressRepo.FindByUserID(userID)
}

// SetTopics records syllabus coverage for a subject, creating the tracker
// row if it does not exist yet.
func (s *SubjectService) SetTopics(userID uint, subject string, complete, total int) (*model.SubjectProgress, error) {
	normalized := model.NormalizeSubject(subject)
	if err := s.ProgressRepo.UpdateTopics(userID, normalized, complete, total); err != nil {
		return nil, err
	}
	return s.ProgressRepo.FindByUserAndSubject(userID, normalized)
}
