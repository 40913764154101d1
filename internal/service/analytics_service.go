package service

import (
	"time"

	"chadjee_backend/internal/model"
	"chadjee_backend/internal/repository"
)

type AnalyticsService struct {
	SessionRepo  *repository.StudySessionRepository
	TestRepo     *repository.TestRecordRepository
	ProgressRepo *repository.SubjectProgressRepository
	Streak       *StreakService
}

func NewAnalyticsService(
	sessionRepo *repository.StudySessionRepository,
	testRepo *repository.TestRecordRepository,
	progressRepo *repository.SubjectProgressRepository,
	streak *StreakService,
) *AnalyticsService {
	return &AnalyticsService{
		SessionRepo:  sessionRepo,
		TestRepo:     testRepo,
		ProgressRepo: progressRepo,
		Streak:       streak,
	}
}

// SubjectBreakdown is one subject's analytics row.
type SubjectBreakdown struct {
	model.SubjectStats
	BestBlock       model.TimeBlock `json:"bestBlock,omitempty"`
	LastStudied     string          `json:"lastStudied,omitempty"`
	Frequency       int             `json:"frequency"`
	TopicCompletion float64         `json:"topicCompletion"`
}

// Overview is the analytics payload for one time window.
type Overview struct {
	Window         model.TimeWindow    `json:"window"`
	TotalMinutes   int                 `json:"totalMinutes"`
	SessionCount   int                 `json:"sessionCount"`
	Subjects       []SubjectBreakdown  `json:"subjects"`
	DailyMinutes   []DailyMinutes      `json:"dailyMinutes"`
	Streak         model.StreakSummary `json:"streak"`
	MostProductive *SubjectBreakdown   `json:"mostProductive,omitempty"`
}

type DailyMinutes struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Minutes int    `json:"minutes"`
}

// GetOverview aggregates the user's completed sessions over the window.
func (s *AnalyticsService) GetOverview(userID uint, window model.TimeWindow, now time.Time) (*Overview, error) {
	since := now.AddDate(0, 0, -window.Days())
	sessions, err := s.SessionRepo.FindByUserSince(userID, since)
	if err != nil {
		return nil, err
	}

	stats := AggregateSessions(sessions, window, now)

	progressRows, err := s.ProgressRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	progress := make(map[model.Subject]model.SubjectProgress, len(progressRows))
	for _, row := range progressRows {
		progress[row.Subject] = row
	}

	overview := &Overview{
		Window:       window,
		DailyMinutes: dailySeries(sessions, window, now),
	}

	for _, subject := range aggregateOrder {
		st, ok := stats[subject]
		if !ok {
			continue
		}
		row := SubjectBreakdown{SubjectStats: *st}
		if st.BestTime != nil {
			row.BestBlock = model.BlockForHour(st.BestTime.Hour())
		}
		if prog, ok := progress[subject]; ok {
			row.LastStudied = prog.LastStudied
			row.Frequency = prog.Frequency
			row.TopicCompletion = prog.TopicCompletion()
		}
		overview.Subjects = append(overview.Subjects, row)
		overview.TotalMinutes += st.TotalDuration
		overview.SessionCount += st.Count
	}

	if top := MostProductiveSubject(stats); top != nil {
		for i := range overview.Subjects {
			if overview.Subjects[i].Subject == top.Subject {
				overview.MostProductive = &overview.Subjects[i]
				break
			}
		}
	}

	streak, err := s.Streak.Summary(userID, now)
	if err != nil {
		return nil, err
	}
	overview.Streak = streak

	return overview, nil
}

// dailySeries buckets completed-session minutes per calendar day, zero
// filled across the window so charts get a continuous axis.
func dailySeries(sessions []model.StudySession, window model.TimeWindow, now time.Time) []DailyMinutes {
	days := window.Days()
	byDate := make(map[string]int)
	for i := range sessions {
		s := &sessions[i]
		if !s.Completed {
			continue
		}
		byDate[CivilDay(s.StartTime).Format(dayLayout)] += s.Duration
	}

	series := make([]DailyMinutes, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := CivilDay(now).AddDate(0, 0, -i).Format(dayLayout)
		series = append(series, DailyMinutes{
			Date:    date,
			Minutes: byDate[date],
		})
	}
	return series
}
