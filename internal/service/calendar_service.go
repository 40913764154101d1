package service

import (
	"time"

	"chadjee_backend/internal/model"
	"chadjee_backend/internal/repository"
	"chadjee_backend/internal/util"

	"gorm.io/gorm"
)

type CalendarService struct {
	EventRepo *repository.CalendarEventRepository
}

func NewCalendarService(eventRepo *repository.CalendarEventRepository) *CalendarService {
	return &CalendarService{EventRepo: eventRepo}
}

func (s *CalendarService) CreateEvent(event *model.CalendarEvent) error {
	event.Subject = model.NormalizeSubject(string(event.Subject))
	if event.Kind == "" {
		event.Kind = model.EventStudy
	}
	if event.AllDay {
		event.StartTime = CivilDay(event.StartTime)
		event.EndTime = event.StartTime.AddDate(0, 0, 1)
	}
	return s.EventRepo.Create(event)
}

func (s *CalendarService) ListEvents(userID uint, from, to time.Time) ([]model.CalendarEvent, error) {
	if to.IsZero() {
		to = from.AddDate(0, 1, 0)
	}
	return s.EventRepo.FindByUserInRange(userID, from, to)
}

func (s *CalendarService) UpdateEvent(userID, eventID uint, updates *model.CalendarEvent) (*model.CalendarEvent, error) {
	existing, err := s.EventRepo.FindByIDAndUserID(eventID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrEventNotFound
		}
		return nil, err
	}

	existing.Title = updates.Title
	existing.Description = updates.Description
	existing.Subject = model.NormalizeSubject(string(updates.Subject))
	existing.StartTime = updates.StartTime
	existing.EndTime = updates.EndTime
	existing.AllDay = updates.AllDay
	if updates.Kind != "" {
		existing.Kind = updates.Kind
	}

	if err := s.EventRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CalendarService) DeleteEvent(userID, eventID uint) error {
	if _, err := s.EventRepo.FindByIDAndUserID(eventID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrEventNotFound
		}
		return err
	}
	return s.EventRepo.Delete(eventID, userID)
}
