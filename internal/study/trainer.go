package study

import (
	"context"
	"fmt"
	"time"

	"github.com/example/wordrecall/internal/mastery"
	"github.com/example/wordrecall/pkg/models"
)

// ProgressStore is the persistence contract for per-item learning state.
// GetOne returns (nil, nil) when the user has never answered the item.
type ProgressStore interface {
	GetOne(ctx context.Context, userID, itemID int64) (*models.ProgressRecord, error)
	GetMany(ctx context.Context, userID int64, itemIDs []int64) (map[int64]*models.ProgressRecord, error)
	Upsert(ctx context.Context, rec *models.ProgressRecord) error
}

// ContentCatalog lists the authored words of a wordbook. A zero wordbook ID
// means all wordbooks.
type ContentCatalog interface {
	ListItems(ctx context.Context, wordbookID int64) ([]models.Word, error)
}

// DailyStatsRecorder accumulates per-day activity counters.
type DailyStatsRecorder interface {
	Bump(ctx context.Context, userID int64, date string, newWords, reviewWords, minutes int) error
}

// Trainer drives a study session: it builds queues and applies one answer
// at a time. Sessions are sequential per user, so answers for the same item
// reach the store in submission order.
type Trainer struct {
	updater *mastery.Updater
	catalog ContentCatalog
	words   ProgressStore
	daily   DailyStatsRecorder
}

// NewTrainer wires a trainer against the given collaborators. daily may be
// nil when activity tracking is not wanted (tests, one-off tools).
func NewTrainer(updater *mastery.Updater, catalog ContentCatalog, words ProgressStore, daily DailyStatsRecorder) *Trainer {
	if updater == nil {
		updater = mastery.New()
	}
	return &Trainer{updater: updater, catalog: catalog, words: words, daily: daily}
}

// BuildQueue selects the next words for a session from a wordbook.
func (t *Trainer) BuildQueue(ctx context.Context, userID, wordbookID int64, opts QueueOptions, now time.Time) ([]models.Word, error) {
	candidates, err := t.catalog.ListItems(ctx, wordbookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(candidates))
	for i, w := range candidates {
		ids[i] = w.ID
	}
	progress, err := t.words.GetMany(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	return SelectQueue(candidates, progress, opts, now), nil
}

// SubmitAnswer applies one answer outcome: read current progress, compute
// the next record, persist it, and bump the day's counters. Store failures
// propagate to the caller, which decides whether to retry; nothing is held
// locally, so an abandoned session needs no rollback.
func (t *Trainer) SubmitAnswer(ctx context.Context, userID, itemID int64, correct bool, now time.Time) (models.ProgressRecord, error) {
	current, err := t.words.GetOne(ctx, userID, itemID)
	if err != nil {
		return models.ProgressRecord{}, fmt.Errorf("failed to read progress: %w", err)
	}

	next := t.updater.ComputeNextProgress(current, correct, now)
	next.UserID = userID
	next.ItemID = itemID

	if err := t.words.Upsert(ctx, &next); err != nil {
		return models.ProgressRecord{}, fmt.Errorf("failed to save progress: %w", err)
	}

	if t.daily != nil {
		newWords, reviewWords := 0, 1
		if current == nil {
			newWords, reviewWords = 1, 0
		}
		if err := t.daily.Bump(ctx, userID, now.Format("2006-01-02"), newWords, reviewWords, 0); err != nil {
			return models.ProgressRecord{}, fmt.Errorf("failed to update daily stats: %w", err)
		}
	}
	return next, nil
}

// RecordStudyTime adds a finished session's duration to the day's study
// minutes. SubmitAnswer bumps the word counters per answer; elapsed time is
// only known once, at session end, so it lands here.
func (t *Trainer) RecordStudyTime(ctx context.Context, userID int64, now time.Time, duration time.Duration) error {
	if t.daily == nil {
		return nil
	}
	minutes := int(duration.Minutes())
	if minutes <= 0 {
		return nil
	}
	if err := t.daily.Bump(ctx, userID, now.Format("2006-01-02"), 0, 0, minutes); err != nil {
		return fmt.Errorf("failed to update daily stats: %w", err)
	}
	return nil
}
