package database

import (
	"chadjee_backend/internal/config"
	"chadjee_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.StudySession{},
		&model.TestRecord{},
		&model.Task{},
		&model.Goal{},
		&model.CalendarEvent{},
		&model.SubjectProgress{},
		&model.StudyActivity{},
		&model.StreakSnapshot{},
		&model.Motivation{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedMotivations(db)

	return db, nil
}

// seedMotivations inserts the default dashboard quotes on a fresh database.
func seedMotivations(db *gorm.DB) {
	var count int64
	db.Model(&model.Motivation{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []string{
		"Every Pomodoro you finish is one step closer to your rank.",
		"Consistency beats intensity. Show up for your streak today.",
		"The syllabus is finite. Your effort compounds.",
		"Revise yesterday, practice today, preview tomorrow.",
	}
	for i, content := range defaults {
		db.Create(&model.Motivation{
			Content:         content,
			IsEnabled:       true,
			IsCurrentlyUsed: i == 0,
		})
	}
}
