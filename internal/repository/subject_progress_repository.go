package repository

import (
	"chadjee_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubjectProgressRepository struct {
	DB *gorm.DB
}

func NewSubjectProgressRepository(db *gorm.DB) *SubjectProgressRepository {
	return &SubjectProgressRepository{DB: db}
}

func (r *SubjectProgressRepository) FindByUserID(userID uint) ([]model.SubjectProgress, error) {
	var rows []model.SubjectProgress
	err := r.DB.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (r *SubjectProgressRepository) FindByUserAndSubject(userID uint, subject model.Subject) (*model.SubjectProgress, error) {
	var row model.SubjectProgress
	err := r.DB.Where("user_id = ? AND subject = ?", userID, subject).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// RecordActivity upserts the tracker row for (user, subject): lastStudied
// is overwritten with the new date, even an earlier one, and frequency
// increments by one.
func (r *SubjectProgressRepository) RecordActivity(userID uint, subject model.Subject, date string) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "subject"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_studied": date,
			"frequency":    gorm.Expr("frequency + 1"),
		}),
	}).Create(&model.SubjectProgress{
		UserID:      userID,
		Subject:     subject,
		LastStudied: date,
		Frequency:   1,
	}).Error
}

func (r *SubjectProgressRepository) UpdateTopics(userID uint, subject model.Subject, complete, total int) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "subject"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"topics_complete": complete,
			"topics_total":    total,
		}),
	}).Create(&model.SubjectProgress{
		UserID:         userID,
		Subject:        subject,
		TopicsComplete: complete,
		TopicsTotal:    total,
	}).Error
}
