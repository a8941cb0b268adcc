// Package stats aggregates study activity into the figures shown on the
// statistics screen: mastered/learning counts, the day streak, and the
// weekly activity chart.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/example/wordrecall/pkg/models"
)

const dateLayout = "2006-01-02"

// ProgressLister reads every progress record a user has.
type ProgressLister interface {
	GetAllForUser(ctx context.Context, userID int64) ([]models.ProgressRecord, error)
}

// DailyStatsReader reads the per-day activity rows.
type DailyStatsReader interface {
	GetRange(ctx context.Context, userID int64, from, to string) ([]models.DailyStats, error)
	GetDates(ctx context.Context, userID int64) ([]string, error)
}

// Aggregator assembles a UserStats view from the stores.
type Aggregator struct {
	progress ProgressLister
	daily    DailyStatsReader
}

// New creates an aggregator over the given stores.
func New(progress ProgressLister, daily DailyStatsReader) *Aggregator {
	return &Aggregator{progress: progress, daily: daily}
}

// Summary computes the user's statistics as of now.
func (a *Aggregator) Summary(ctx context.Context, userID int64, now time.Time) (models.UserStats, error) {
	var out models.UserStats

	records, err := a.progress.GetAllForUser(ctx, userID)
	if err != nil {
		return out, fmt.Errorf("failed to load progress: %w", err)
	}
	out.TotalWords = len(records)
	for i := range records {
		switch records[i].State() {
		case models.StateMastered:
			out.MasteredWords++
		case models.StateLearning:
			out.LearningWords++
		}
	}

	today := now.Format(dateLayout)
	weekAgo := now.AddDate(0, 0, -6).Format(dateLayout)
	week, err := a.daily.GetRange(ctx, userID, weekAgo, today)
	if err != nil {
		return out, fmt.Errorf("failed to load weekly stats: %w", err)
	}
	out.WeeklyProgress = WeeklyBuckets(week, now)
	for _, day := range week {
		if day.Date == today {
			out.TodayNewWords = day.NewWords
			out.TodayReviews = day.ReviewWords
			out.TodayMinutes = day.StudyMinutes
		}
	}

	dates, err := a.daily.GetDates(ctx, userID)
	if err != nil {
		return out, fmt.Errorf("failed to load study dates: %w", err)
	}
	out.TotalStudyDays = len(dates)
	out.Streak = Streak(dates, now)

	return out, nil
}

// WeeklyBuckets distributes daily rows into a 7-slot array covering the
// last seven days, oldest first. Days without activity stay zero.
func WeeklyBuckets(rows []models.DailyStats, now time.Time) []int {
	buckets := make([]int, 7)
	today, err := time.Parse(dateLayout, now.Format(dateLayout))
	if err != nil {
		return buckets
	}
	for _, row := range rows {
		day, err := time.Parse(dateLayout, row.Date)
		if err != nil {
			continue
		}
		diff := int(today.Sub(day).Hours() / 24)
		idx := 6 - diff
		if idx >= 0 && idx < 7 {
			buckets[idx] = row.NewWords + row.ReviewWords
		}
	}
	return buckets
}

// Streak counts consecutive study days ending today, or ending yesterday if
// today has no activity yet. dates must be unique YYYY-MM-DD strings sorted
// newest first.
func Streak(dates []string, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	expected, err := time.Parse(dateLayout, now.Format(dateLayout))
	if err != nil {
		return 0
	}
	// An untouched today doesn't break the run.
	if dates[0] != expected.Format(dateLayout) {
		expected = expected.AddDate(0, 0, -1)
	}

	streak := 0
	for _, d := range dates {
		if d != expected.Format(dateLayout) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
