package repository

import (
	"chadjee_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StreakRepository owns the study-activity log and the per-user streak
// snapshot derived from it.
type StreakRepository struct {
	DB *gorm.DB
}

func NewStreakRepository(db *gorm.DB) *StreakRepository {
	return &StreakRepository{DB: db}
}

func (r *StreakRepository) CreateActivity(activity *model.StudyActivity) error {
	return r.DB.Create(activity).Error
}

func (r *StreakRepository) DeleteActivitiesBySource(userID uint, sourceID string) error {
	return r.DB.Where("user_id = ? AND source_id = ?", userID, sourceID).
		Delete(&model.StudyActivity{}).Error
}

// DistinctDates returns the deduplicated activity dates for the user,
// sorted ascending.
func (r *StreakRepository) DistinctDates(userID uint) ([]string, error) {
	var dates []string
	err := r.DB.Model(&model.StudyActivity{}).
		Where("user_id = ?", userID).
		Distinct("date").
		Order("date ASC").
		Pluck("date", &dates).Error
	return dates, err
}

func (r *StreakRepository) FindActivities(userID uint, limit int) ([]model.StudyActivity, error) {
	var activities []model.StudyActivity
	q := r.DB.Where("user_id = ?", userID).Order("date DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&activities).Error
	return activities, err
}

func (r *StreakRepository) GetSnapshot(userID uint) (*model.StreakSnapshot, error) {
	var snapshot model.StreakSnapshot
	err := r.DB.Where("user_id = ?", userID).First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *StreakRepository) UpsertSnapshot(snapshot *model.StreakSnapshot) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"current":   snapshot.Current,
			"longest":   snapshot.Longest,
			"last_date": snapshot.LastDate,
		}),
	}).Create(snapshot).Error
}
