package model

import "time"

type RecommendationType string

const (
	RecTimeGap      RecommendationType = "time-gap"
	RecLowFrequency RecommendationType = "low-frequency"
	RecTestScore    RecommendationType = "test-score"
	RecStudyBalance RecommendationType = "study-balance"
	RecStreak       RecommendationType = "streak"
)

// MaxRecommendations caps the ranked list handed to the client.
const MaxRecommendations = 5

// Recommendation is one ranked, subject-tagged suggestion. Not persisted:
// the list is recomputed from session/test/streak data on demand.
// swagger:model Recommendation
type Recommendation struct {
	ID             string             `json:"id"`
	Subject        Subject            `json:"subject"`
	SubTopic       string             `json:"subTopic,omitempty"`
	Recommendation string             `json:"recommendation"`
	Type           RecommendationType `json:"type"`
	Priority       int                `json:"priority"` // 1-5, 5 most urgent
}

// StreakSummary is the derived streak pair. Longest is never reported
// smaller than Current.
type StreakSummary struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// TimeWindow selects the aggregation range, relative to the evaluation time.
type TimeWindow string

const (
	WindowWeek  TimeWindow = "week"
	WindowMonth TimeWindow = "month"
	WindowYear  TimeWindow = "year"
)

// Days returns the window length in calendar days; unknown values fall
// back to a week.
func (w TimeWindow) Days() int {
	switch w {
	case WindowMonth:
		return 30
	case WindowYear:
		return 365
	default:
		return 7
	}
}

// SubjectStats is the per-subject output of the session aggregator.
type SubjectStats struct {
	Subject         Subject    `json:"subject"`
	Count           int        `json:"count"`
	TotalDuration   int        `json:"totalDuration"`   // minutes
	AverageDuration int        `json:"averageDuration"` // minutes, integer-rounded
	BestTime        *time.Time `json:"bestTime,omitempty"`
}

// TimeBlock buckets an hour of day for study-balance suggestions.
type TimeBlock string

const (
	BlockMorning   TimeBlock = "morning"   // 05-12
	BlockAfternoon TimeBlock = "afternoon" // 12-17
	BlockEvening   TimeBlock = "evening"   // 17-21
	BlockNight     TimeBlock = "night"
)

// BlockForHour classifies an hour-of-day into a TimeBlock.
func BlockForHour(hour int) TimeBlock {
	switch {
	case hour >= 5 && hour < 12:
		return BlockMorning
	case hour >= 12 && hour < 17:
		return BlockAfternoon
	case hour >= 17 && hour < 21:
		return BlockEvening
	default:
		return BlockNight
	}
}
