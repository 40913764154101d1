package model

type ActivityType string

const (
	ActivitySession ActivityType = "session"
	ActivityTest    ActivityType = "test"
	ActivityTask    ActivityType = "task"
)

// StudyActivity is one row of the activity log: any study event on a
// calendar date. Distinct dates feed the streak calculator; the
// (subject, date) pair feeds the subject-frequency tracker.
// swagger:model StudyActivity
type StudyActivity struct {
	BaseModel
	UserID   uint         `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Subject  Subject      `gorm:"size:50;index" json:"subject"`
	Type     ActivityType `gorm:"type:enum('session','test','task');default:'session'" json:"type"`
	Date     string       `gorm:"size:10;index:idx_user_activity_date" json:"date"` // YYYY-MM-DD
	SourceID string       `gorm:"size:36;index" json:"-"`                           // originating session/test, for eager cleanup on delete
}

func (StudyActivity) TableName() string {
	return "study_activities"
}

// StreakSnapshot is the per-user streak state, recomputed eagerly from the
// distinct activity dates whenever the activity log changes.
type StreakSnapshot struct {
	BaseModel
	UserID   uint   `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	Current  int    `gorm:"default:0" json:"current"`
	Longest  int    `gorm:"default:0" json:"longest"`
	LastDate string `gorm:"size:10" json:"lastDate"`
}

func (StreakSnapshot) TableName() string {
	return "streak_snapshots"
}
