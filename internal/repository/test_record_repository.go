package repository

import (
	"chadjee_backend/internal/model"

	"gorm.io/gorm"
)

type TestRecordRepository struct {
	DB *gorm.DB
}

func NewTestRecordRepository(db *gorm.DB) *TestRecordRepository {
	return &TestRecordRepository{DB: db}
}

func (r *TestRecordRepository) Create(record *model.TestRecord) error {
	return r.DB.Create(record).Error
}

func (r *TestRecordRepository) FindByIDAndUserID(id, userID uint) (*model.TestRecord, error) {
	var record model.TestRecord
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *TestRecordRepository) FindByUserID(userID uint) ([]model.TestRecord, error) {
	var records []model.TestRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&records).Error
	return records, err
}

func (r *TestRecordRepository) FindByUserAndSubject(userID uint, subject model.Subject) ([]model.TestRecord, error) {
	var records []model.TestRecord
	err := r.DB.Where("user_id = ? AND subject = ?", userID, subject).
		Order("date DESC, id DESC").
		Find(&records).Error
	return records, err
}

func (r *TestRecordRepository) Update(record *model.TestRecord) error {
	return r.DB.Save(record).Error
}

func (r *TestRecordRepository) Delete(id, userID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TestRecord{}).Error
}
