package repository

import (
	"chadjee_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type CalendarEventRepository struct {
	DB *gorm.DB
}

func NewCalendarEventRepository(db *gorm.DB) *CalendarEventRepository {
	return &CalendarEventRepository{DB: db}
}

func (r *CalendarEventRepository) Create(event *model.CalendarEvent) error {
	return r.DB.Create(event).Error
}

func (r *CalendarEventRepository) FindByIDAndUserID(id, userID uint) (*model.CalendarEvent, error) {
	var event model.CalendarEvent
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *CalendarEventRepository) FindByUserInRange(userID uint, from, to time.Time) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	err := r.DB.Where("user_id = ? AND start_time < ? AND end_time >= ?", userID, to, from).
		Order("start_time ASC").
		Find(&events).Error
	return events, err
}

func (r *CalendarEventRepository) Update(event *model.CalendarEvent) error {
	return r.DB.Save(event).Error
}

func (r *CalendarEventRepository) Delete(id, userID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CalendarEvent{}).Error
}
