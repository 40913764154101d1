package model

// TestRecord is one user-entered exam or mock-test result.
// swagger:model TestRecord
type TestRecord struct {
	BaseModel
	UserID             uint    `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Subject            Subject `gorm:"size:50;index" json:"subject"`
	SubTopic           string  `gorm:"size:100" json:"subTopic,omitempty"`
	Score              float64 `gorm:"not null" json:"score"`
	MaxScore           float64 `gorm:"not null" json:"maxScore"`
	Date               string  `gorm:"size:10;index" json:"date"` // YYYY-MM-DD
	AreasOfImprovement string  `gorm:"type:text" json:"areasOfImprovement,omitempty"`
}

func (TestRecord) TableName() string {
	return "test_records"
}

// Percentage returns the score as a 0-100 percentage, 0 when MaxScore is 0.
func (t *TestRecord) Percentage() float64 {
	if t.MaxScore == 0 {
		return 0
	}
	return t.Score / t.MaxScore * 100
}
