package service

import (
	"context"
	"time"

	"chadjee_backend/internal/model"
	"chadjee_backend/internal/repository"
	"chadjee_backend/internal/util"

	"gorm.io/gorm"
)

// SessionService owns the Pomodoro lifecycle: a session starts with no end
// time, is mutated exactly once when it ends, and may be deleted later.
// Completed focus sessions feed the activity log, which drives the subject
// tracker and the streak snapshot.
type SessionService struct {
	SessionRepo     *repository.StudySessionRepository
	Streak          *StreakService
	Recommendations *RecommendationService
}

func NewSessionService(
	sessionRepo *repository.StudySessionRepository,
	streak *StreakService,
	recommendations *RecommendationService,
) *SessionService {
	return &SessionService{
		SessionRepo:     sessionRepo,
		Streak:          streak,
		Recommendations: recommendations,
	}
}

func (s *SessionService) StartSession(userID uint, subject string, kind model.SessionKind) (*model.StudySession, error) {
	if kind == "" {
		kind = model.SessionFocus
	}
	session := &model.StudySession{
		UserID:    userID,
		Subject:   model.NormalizeSubject(subject),
		Kind:      kind,
		StartTime: time.Now(),
	}

	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) EndSession(ctx context.Context, userID uint, sessionID string, completed bool, notes string) (*model.StudySession, error) {
	session, err := s.SessionRepo.FindByIDAndUserID(sessionID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	if session.EndTime != nil {
		return nil, util.ErrSessionEnded
	}

	endTime := time.Now()
	session.EndTime = &endTime
	session.Duration = int(endTime.Sub(session.StartTime).Minutes())
	session.Completed = completed
	if notes != "" {
		session.Notes = notes
	}

	if err := s.SessionRepo.Update(session); err != nil {
		return nil, err
	}

	if session.Completed && session.Kind == model.SessionFocus {
		if err := s.Streak.LogActivity(userID, session.Subject, model.ActivitySession, endTime, session.ID); err != nil {
			return nil, err
		}
	}

	s.Recommendations.Invalidate(ctx, userID)
	return session, nil
}

func (s *SessionService) ListSessions(userID uint, window model.TimeWindow) ([]model.StudySession, error) {
	if window == "" {
		return s.SessionRepo.FindByUserID(userID)
	}
	since := time.Now().AddDate(0, 0, -window.Days())
	return s.SessionRepo.FindByUserSince(userID, since)
}

func (s *SessionService) GetActiveSession(userID uint) (*model.StudySession, error) {
	session, err := s.SessionRepo.FindActive(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// WouldBreakStreak lets the client warn before a destructive delete.
func (s *SessionService) WouldBreakStreak(userID uint, sessionID string) (bool, error) {
	return s.Streak.WouldBreakStreak(userID, sessionID, time.Now())
}

// DeleteSession removes the session and its activity rows, then eagerly
// recomputes the streak so a lone-contributor day disappears immediately.
func (s *SessionService) DeleteSession(ctx context.Context, userID uint, sessionID string) error {
	if _, err := s.SessionRepo.FindByIDAndUserID(sessionID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrSessionNotFound
		}
		return err
	}

	if err := s.SessionRepo.Delete(sessionID, userID); err != nil {
		return err
	}

	if err := s.Streak.RemoveActivitiesForSource(userID, sessionID, time.Now()); err != nil {
		return err
	}

	s.Recommendations.Invalidate(ctx, userID)
	return nil
}
