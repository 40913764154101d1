package repository

import (
	"chadjee_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type StudySessionRepository struct {
	DB *gorm.DB
}

func NewStudySessionRepository(db *gorm.DB) *StudySessionRepository {
	return &StudySessionRepository{DB: db}
}

func (r *StudySessionRepository) Create(session *model.StudySession) error {
	return r.DB.Create(session).Error
}

func (r *StudySessionRepository) FindByIDAndUserID(id string, userID uint) (*model.StudySession, error) {
	var session model.StudySession
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// FindByUserID returns the user's sessions ordered by start time ascending,
// the order the aggregation heuristics depend on.
func (r *StudySessionRepository) FindByUserID(userID uint) ([]model.StudySession, error) {
	var sessions []model.StudySession
	err := r.DB.Where("user_id = ?", userID).
		Order("start_time ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *StudySessionRepository) FindByUserSince(userID uint, since time.Time) ([]model.StudySession, error) {
	var sessions []model.StudySession
	err := r.DB.Where("user_id = ? AND start_time >= ?", userID, since).
		Order("start_time ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *StudySessionRepository) FindActive(userID uint) (*model.StudySession, error) {
	var session model.StudySession
	err := r.DB.Where("user_id = ? AND end_time IS NULL", userID).
		Order("start_time DESC").
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *StudySessionRepository) Update(session *model.StudySession) error {
	return r.DB.Save(session).Error
}

func (r *StudySessionRepository) Delete(id string, userID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.StudySession{}).Error
}
