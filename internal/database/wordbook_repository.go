package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/wordrecall/pkg/models"
)

// WordbookRepository handles database operations for wordbooks
type WordbookRepository struct{}

// NewWordbookRepository creates a new repository instance
func NewWordbookRepository() *WordbookRepository {
	return &WordbookRepository{}
}

// GetAll returns all active wordbooks
func (r *WordbookRepository) GetAll(ctx context.Context) ([]models.Wordbook, error) {
	var books []models.Wordbook
	err := DB.SelectContext(ctx, &books,
		"SELECT * FROM wordbooks WHERE is_active = true ORDER BY name")
	if err != nil {
		return nil, storeErr("list wordbooks", err)
	}
	return books, nil
}

// GetByID returns a wordbook by ID
func (r *WordbookRepository) GetByID(ctx context.Context, id int64) (*models.Wordbook, error) {
	var book models.Wordbook
	query := DB.Rebind("SELECT * FROM wordbooks WHERE id = ?")
	err := DB.GetContext(ctx, &book, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("wordbook %d not found", id)
	}
	if err != nil {
		return nil, storeErr("get wordbook", err)
	}
	return &book, nil
}

// GetByName returns a wordbook by its unique name, or nil if absent
func (r *WordbookRepository) GetByName(ctx context.Context, name string) (*models.Wordbook, error) {
	var book models.Wordbook
	query := DB.Rebind("SELECT * FROM wordbooks WHERE name = ?")
	err := DB.GetContext(ctx, &book, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get wordbook", err)
	}
	return &book, nil
}

// Create inserts a new wordbook
func (r *WordbookRepository) Create(ctx context.Context, book *models.Wordbook) error {
	query := DB.Rebind(`
		INSERT INTO wordbooks (name, description, icon, category, level, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if book.Category == "" {
		book.Category = "custom"
	}
	book.IsActive = true
	id, err := insertReturningID(ctx, query,
		book.Name, book.Description, book.Icon, book.Category, book.Level, book.IsActive)
	if err != nil {
		return storeErr("create wordbook", err)
	}
	book.ID = id
	return nil
}

// GetSummariesForUser returns every active wordbook with the user's
// mastered/learning counts, mirroring the wordbook overview screen.
func (r *WordbookRepository) GetSummariesForUser(ctx context.Context, userID int64) ([]models.WordbookSummary, error) {
	query := DB.Rebind(fmt.Sprintf(`
		SELECT b.*,
			COUNT(w.id) AS word_count,
			COALESCE(SUM(CASE WHEN p.mastery >= %d THEN 1 ELSE 0 END), 0) AS mastered_count,
			COALESCE(SUM(CASE WHEN p.mastery > 0 AND p.mastery < %d THEN 1 ELSE 0 END), 0) AS learning_count
		FROM wordbooks b
		LEFT JOIN words w ON w.wordbook_id = b.id
		LEFT JOIN user_word_progress p ON p.item_id = w.id AND p.user_id = ?
		WHERE b.is_active = true
		GROUP BY b.id
		ORDER BY b.name
	`, models.MasteredThreshold, models.MasteredThreshold))

	var summaries []models.WordbookSummary
	if err := DB.SelectContext(ctx, &summaries, query, userID); err != nil {
		return nil, storeErr("get wordbook summaries", err)
	}
	return summaries, nil
}
