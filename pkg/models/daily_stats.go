package models

import "time"

// DailyStats accumulates one user's study activity for one calendar day
type DailyStats struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	Date         string    `json:"date" db:"date"` // YYYY-MM-DD
	NewWords     int       `json:"new_words" db:"new_words"`
	ReviewWords  int       `json:"review_words" db:"review_words"`
	StudyMinutes int       `json:"study_minutes" db:"study_minutes"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserStats is the aggregated view shown on the stats screen
type UserStats struct {
	TotalWords     int   `json:"total_words"`
	MasteredWords  int   `json:"mastered_words"`
	LearningWords  int   `json:"learning_words"`
	Streak         int   `json:"streak"`
	TotalStudyDays int   `json:"total_study_days"`
	TodayNewWords  int   `json:"today_new_words"`
	TodayReviews   int   `json:"today_review_words"`
	TodayMinutes   int   `json:"today_study_minutes"`
	WeeklyProgress []int `json:"weekly_progress"` // last 7 days, oldest first
}
