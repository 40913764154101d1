package model

import "strings"

// Subject is the closed set of study categories the recommendation
// engine reasons about. Free-text labels coming in over the API are
// normalized into this set before any per-subject logic runs.
type Subject string

const (
	Mathematics  Subject = "Mathematics"
	Physics      Subject = "Physics"
	Chemistry    Subject = "Chemistry"
	GeneralStudy Subject = "General Study"
	SubjectOther Subject = "Other"

	// StreakSubject is the synthetic subject used only by streak
	// recommendations; it is exempt from per-subject deduplication.
	StreakSubject Subject = "Study Streak"
)

// MainSubjects is the fixed iteration order of the per-subject decision tree.
var MainSubjects = []Subject{Mathematics, Physics, Chemistry}

// NormalizeSubject maps a free-text label onto the closed enumeration.
func NormalizeSubject(raw string) Subject {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "mathematics", "maths", "math":
		return Mathematics
	case "physics":
		return Physics
	case "chemistry":
		return Chemistry
	case "general study", "general", "":
		return GeneralStudy
	default:
		return SubjectOther
	}
}

// SubjectProgress is the per-subject tracker state: when the subject was
// last touched and how many distinct study events it has accumulated.
// Frequency only ever grows for the lifetime of the row.
type SubjectProgress struct {
	BaseModel
	UserID         uint      `gorm:"index:idx_user_subject,unique" json:"userId"`
	Subject        Subject   `gorm:"size:50;index:idx_user_subject,unique" json:"subject"`
	LastStudied    string    `gorm:"size:10" json:"lastStudied"` // YYYY-MM-DD, overwritten on every activity
	Frequency      int       `gorm:"default:0" json:"frequency"`
	TopicsTotal    int       `gorm:"default:0" json:"topicsTotal"`
	TopicsComplete int       `gorm:"default:0" json:"topicsComplete"`
}

func (SubjectProgress) TableName() string {
	return "subject_progress"
}

func (p *SubjectProgress) TopicCompletion() float64 {
	if p.TopicsTotal == 0 {
		return 0
	}
	return float64(p.TopicsComplete) / float64(p.TopicsTotal) * 100
}
