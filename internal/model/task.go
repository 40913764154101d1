package model

import "time"

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskProgress  TaskStatus = "in_progress"
	TaskCompleted TaskStatus = "completed"
)

type TaskPriority string

const (
	TaskLow    TaskPriority = "low"
	TaskMedium TaskPriority = "medium"
	TaskHigh   TaskPriority = "high"
)

type Task struct {
	BaseModel
	UserID      uint         `gorm:"index;type:bigint unsigned" json:"userId"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description,omitempty"`
	Subject     Subject      `gorm:"size:50;index" json:"subject"`
	Status      TaskStatus   `gorm:"type:enum('pending','in_progress','completed');default:'pending'" json:"status"`
	Priority    TaskPriority `gorm:"type:enum('low','medium','high');default:'medium'" json:"priority"`
	DueDate     time.Time    `json:"dueDate"`
	Order       int          `gorm:"default:0" json:"order"`
}

func (Task) TableName() string {
	return "tasks"
}
