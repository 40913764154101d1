package model

import "time"

type SessionKind string

const (
	SessionFocus      SessionKind = "focus"
	SessionShortBreak SessionKind = "short_break"
	SessionLongBreak  SessionKind = "long_break"
)

// StudySession is one Pomodoro interval. A session is created with no end
// time and zero duration, mutated exactly once when it ends, and only
// deleted on explicit user action.
// swagger:model StudySession
type StudySession struct {
	UUIDBase
	UserID    uint        `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Subject   Subject     `gorm:"size:50;index" json:"subject"`
	Kind      SessionKind `gorm:"type:enum('focus','short_break','long_break');default:'focus'" json:"kind"`
	StartTime time.Time   `gorm:"not null;index" json:"startTime"`
	EndTime   *time.Time  `json:"endTime,omitempty"`
	Duration  int         `gorm:"default:0" json:"duration"` // minutes, authoritative once EndTime is set
	Completed bool        `gorm:"default:false" json:"completed"`
	Notes     string      `gorm:"type:text" json:"notes,omitempty"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
