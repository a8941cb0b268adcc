package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/wordrecall/pkg/models"
)

// ProgressRepository persists per-item learning state. The same shape backs
// word-level and meaning-level progress, so the table is a parameter.
type ProgressRepository struct {
	table string
}

// NewWordProgressRepository returns the store for whole-word progress
func NewWordProgressRepository() *ProgressRepository {
	return &ProgressRepository{table: "user_word_progress"}
}

// NewMeaningProgressRepository returns the store for per-meaning progress
func NewMeaningProgressRepository() *ProgressRepository {
	return &ProgressRepository{table: "user_meaning_progress"}
}

func storeErr(op string, err error) error {
	return fmt.Errorf("failed to %s: %v: %w", op, err, ErrStoreUnavailable)
}

// GetOne returns the progress record for (user, item), or (nil, nil) when
// the user has never answered the item.
func (r *ProgressRepository) GetOne(ctx context.Context, userID, itemID int64) (*models.ProgressRecord, error) {
	query := DB.Rebind(fmt.Sprintf(
		"SELECT * FROM %s WHERE user_id = ? AND item_id = ?", r.table))

	var rec models.ProgressRecord
	err := DB.GetContext(ctx, &rec, query, userID, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get progress", err)
	}
	return &rec, nil
}

// GetMany returns progress records for the given items, keyed by item ID.
// Items without a record are simply absent from the map.
func (r *ProgressRepository) GetMany(ctx context.Context, userID int64, itemIDs []int64) (map[int64]*models.ProgressRecord, error) {
	out := make(map[int64]*models.ProgressRecord, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlxIn(fmt.Sprintf(
		"SELECT * FROM %s WHERE user_id = ? AND item_id IN (?)", r.table), userID, itemIDs)
	if err != nil {
		return nil, err
	}

	var recs []models.ProgressRecord
	if err := DB.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, storeErr("get progress batch", err)
	}
	for i := range recs {
		out[recs[i].ItemID] = &recs[i]
	}
	return out, nil
}

// Upsert inserts or replaces the record for (user, item). The single
// conflict-target statement keeps concurrent submissions for the same item
// serialized by the database row.
func (r *ProgressRepository) Upsert(ctx context.Context, rec *models.ProgressRecord) error {
	if rec.UserID <= 0 {
		return fmt.Errorf("upsert progress for user %d: %w", rec.UserID, ErrNotAuthorized)
	}
	if rec.ItemID <= 0 {
		return fmt.Errorf("upsert progress: invalid item id %d", rec.ItemID)
	}

	query := DB.Rebind(fmt.Sprintf(`
		INSERT INTO %s (
			user_id, item_id, mastery, review_count, correct_count,
			last_reviewed, next_review
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, item_id) DO UPDATE SET
			mastery = excluded.mastery,
			review_count = excluded.review_count,
			correct_count = excluded.correct_count,
			last_reviewed = excluded.last_reviewed,
			next_review = excluded.next_review,
			updated_at = CURRENT_TIMESTAMP
	`, r.table))

	_, err := DB.ExecContext(ctx, query,
		rec.UserID,
		rec.ItemID,
		rec.Mastery,
		rec.ReviewCount,
		rec.CorrectCount,
		rec.LastReviewed,
		rec.NextReview,
	)
	if err != nil {
		return storeErr("upsert progress", err)
	}
	return nil
}

// GetDueForUser returns records whose next review has passed, most overdue
// first.
func (r *ProgressRepository) GetDueForUser(ctx context.Context, userID int64, now time.Time) ([]models.ProgressRecord, error) {
	query := DB.Rebind(fmt.Sprintf(`
		SELECT * FROM %s
		WHERE user_id = ? AND next_review IS NOT NULL AND next_review <= ?
		ORDER BY next_review ASC
	`, r.table))

	var recs []models.ProgressRecord
	if err := DB.SelectContext(ctx, &recs, query, userID, now); err != nil {
		return nil, storeErr("get due items", err)
	}
	return recs, nil
}

// CountDueForUser counts items currently due for review.
func (r *ProgressRepository) CountDueForUser(ctx context.Context, userID int64, now time.Time) (int, error) {
	query := DB.Rebind(fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE user_id = ? AND next_review IS NOT NULL AND next_review <= ?", r.table))

	var count int
	if err := DB.GetContext(ctx, &count, query, userID, now); err != nil {
		return 0, storeErr("count due items", err)
	}
	return count, nil
}

// GetAllForUser returns every progress record the user has.
func (r *ProgressRepository) GetAllForUser(ctx context.Context, userID int64) ([]models.ProgressRecord, error) {
	query := DB.Rebind(fmt.Sprintf(
		"SELECT * FROM %s WHERE user_id = ?", r.table))

	var recs []models.ProgressRecord
	if err := DB.SelectContext(ctx, &recs, query, userID); err != nil {
		return nil, storeErr("get user progress", err)
	}
	return recs, nil
}
