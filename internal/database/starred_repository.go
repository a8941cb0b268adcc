package database

import (
	"context"

	"github.com/example/wordrecall/pkg/models"
)

// StarredRepository handles the user's pinned words
type StarredRepository struct{}

// NewStarredRepository creates a new repository instance
func NewStarredRepository() *StarredRepository {
	return &StarredRepository{}
}

// Star pins a word for a user. Starring twice is a no-op.
func (r *StarredRepository) Star(ctx context.Context, userID, wordID int64) error {
	query := DB.Rebind(`
		INSERT INTO user_starred_words (user_id, word_id)
		VALUES (?, ?)
		ON CONFLICT (user_id, word_id) DO NOTHING
	`)
	if _, err := DB.ExecContext(ctx, query, userID, wordID); err != nil {
		return storeErr("star word", err)
	}
	return nil
}

// Unstar removes the pin
func (r *StarredRepository) Unstar(ctx context.Context, userID, wordID int64) error {
	query := DB.Rebind("DELETE FROM user_starred_words WHERE user_id = ? AND word_id = ?")
	if _, err := DB.ExecContext(ctx, query, userID, wordID); err != nil {
		return storeErr("unstar word", err)
	}
	return nil
}

// ListForUser returns the user's starred words, most recently pinned first
func (r *StarredRepository) ListForUser(ctx context.Context, userID int64) ([]models.Word, error) {
	query := DB.Rebind(`
		SELECT w.* FROM words w
		JOIN user_starred_words s ON s.word_id = w.id
		WHERE s.user_id = ?
		ORDER BY s.created_at DESC, s.id DESC
	`)
	var words []models.Word
	if err := DB.SelectContext(ctx, &words, query, userID); err != nil {
		return nil, storeErr("list starred words", err)
	}
	return words, nil
}

// IsStarred reports whether a word is pinned by the user
func (r *StarredRepository) IsStarred(ctx context.Context, userID, wordID int64) (bool, error) {
	query := DB.Rebind("SELECT COUNT(*) FROM user_starred_words WHERE user_id = ? AND word_id = ?")
	var count int
	if err := DB.GetContext(ctx, &count, query, userID, wordID); err != nil {
		return false, storeErr("check starred word", err)
	}
	return count > 0, nil
}
