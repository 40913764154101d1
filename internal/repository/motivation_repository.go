package repository

import (
	"chadjee_backend/internal/model"

	"gorm.io/gorm"
)

type MotivationRepository struct {
	DB *gorm.DB
}

func NewMotivationRepository(db *gorm.DB) *MotivationRepository {
	return &MotivationRepository{DB: db}
}

func (r *MotivationRepository) GetCurrent() (*model.Motivation, error) {
	var motivation model.Motivation
	err := r.DB.Where("is_enabled = ? AND is_currently_used = ?", true, true).
		First(&motivation).Error
	if err != nil {
		return nil, err
	}
	return &motivation, nil
}

func (r *MotivationRepository) List() ([]model.Motivation, error) {
	var motivations []model.Motivation
	err := r.DB.Where("is_enabled = ?", true).Find(&motivations).Error
	return motivations, err
}
