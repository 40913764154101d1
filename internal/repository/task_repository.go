package repository

import (
	"chadjee_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) Create(task *model.Task) error {
	return r.DB.Create(task).Error
}

func (r *TaskRepository) FindByIDAndUserID(id, userID uint) (*model.Task, error) {
	var task model.Task
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindByUserID(userID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.DB.Where("user_id = ?", userID).
		Order("`order` ASC, due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindByUserAndDate(userID uint, date time.Time) ([]model.Task, error) {
	var tasks []model.Task
	err := r.DB.Where("user_id = ? AND due_date >= ? AND due_date < ?",
		userID, date.Format("2006-01-02"), date.AddDate(0, 0, 1).Format("2006-01-02")).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Update(task *model.Task) error {
	return r.DB.Save(task).Error
}

func (r *TaskRepository) UpdateStatus(id, userID uint, status model.TaskStatus) error {
	return r.DB.Model(&model.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", status).
		Error
}

func (r *TaskRepository) Delete(id, userID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Task{}).Error
}
