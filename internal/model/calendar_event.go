package model

import "time"

type EventKind string

const (
	EventStudy    EventKind = "study"
	EventMockTest EventKind = "mock_test"
	EventRevision EventKind = "revision"
	EventOther    EventKind = "other"
)

// CalendarEvent is a planner entry (study block, mock test, revision slot).
type CalendarEvent struct {
	BaseModel
	UserID      uint      `gorm:"index;type:bigint unsigned" json:"userId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Subject     Subject   `gorm:"size:50" json:"subject"`
	Kind        EventKind `gorm:"type:enum('study','mock_test','revision','other');default:'study'" json:"kind"`
	StartTime   time.Time `gorm:"not null;index" json:"startTime"`
	EndTime     time.Time `gorm:"not null" json:"endTime"`
	AllDay      bool      `gorm:"default:false" json:"allDay"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
