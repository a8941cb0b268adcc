package database

import (
	"context"

	"github.com/example/wordrecall/pkg/models"
)

// DailyStatsRepository accumulates per-day study counters
type DailyStatsRepository struct{}

// NewDailyStatsRepository creates a new repository instance
func NewDailyStatsRepository() *DailyStatsRepository {
	return &DailyStatsRepository{}
}

// Bump adds activity to the user's row for the given date (YYYY-MM-DD),
// creating it on first activity of the day.
func (r *DailyStatsRepository) Bump(ctx context.Context, userID int64, date string, newWords, reviewWords, minutes int) error {
	query := DB.Rebind(`
		INSERT INTO user_daily_stats (user_id, date, new_words, review_words, study_minutes)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, date) DO UPDATE SET
			new_words = user_daily_stats.new_words + excluded.new_words,
			review_words = user_daily_stats.review_words + excluded.review_words,
			study_minutes = user_daily_stats.study_minutes + excluded.study_minutes,
			updated_at = CURRENT_TIMESTAMP
	`)
	if _, err := DB.ExecContext(ctx, query, userID, date, newWords, reviewWords, minutes); err != nil {
		return storeErr("bump daily stats", err)
	}
	return nil
}

// GetRange returns the user's rows between two dates inclusive, oldest first
func (r *DailyStatsRepository) GetRange(ctx context.Context, userID int64, from, to string) ([]models.DailyStats, error) {
	query := DB.Rebind(`
		SELECT * FROM user_daily_stats
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC
	`)
	var stats []models.DailyStats
	if err := DB.SelectContext(ctx, &stats, query, userID, from, to); err != nil {
		return nil, storeErr("get daily stats", err)
	}
	return stats, nil
}

// GetDates returns every study date for the user, newest first. Used for
// streak computation.
func (r *DailyStatsRepository) GetDates(ctx context.Context, userID int64) ([]string, error) {
	query := DB.Rebind(`
		SELECT date FROM user_daily_stats
		WHERE user_id = ?
		ORDER BY date DESC
	`)
	var dates []string
	if err := DB.SelectContext(ctx, &dates, query, userID); err != nil {
		return nil, storeErr("get study dates", err)
	}
	return dates, nil
}
