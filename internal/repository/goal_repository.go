package repository

import (
	"chadjee_backend/internal/model"

	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.Goal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) FindByIDAndUserID(id, userID uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) FindByUserID(userID uint) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Where("user_id = ?", userID).
		Order("target_date ASC").
		Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) Update(goal *model.Goal) error {
	return r.DB.Save(goal).Error
}

func (r *GoalRepository) Delete(id, userID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Goal{}).Error
}
