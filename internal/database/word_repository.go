package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/wordrecall/pkg/models"
)

// WordRepository handles database operations for words
type WordRepository struct{}

// NewWordRepository creates a new repository instance
func NewWordRepository() *WordRepository {
	return &WordRepository{}
}

// ListItems returns the words of a wordbook ordered by authored sort order.
// A zero wordbook ID returns words from every wordbook.
func (r *WordRepository) ListItems(ctx context.Context, wordbookID int64) ([]models.Word, error) {
	var words []models.Word
	var err error
	if wordbookID == 0 {
		err = DB.SelectContext(ctx, &words,
			"SELECT * FROM words ORDER BY wordbook_id, sort_order, id")
	} else {
		query := DB.Rebind("SELECT * FROM words WHERE wordbook_id = ? ORDER BY sort_order, id")
		err = DB.SelectContext(ctx, &words, query, wordbookID)
	}
	if err != nil {
		return nil, storeErr("list words", err)
	}
	return words, nil
}

// GetByID returns a word by ID, or nil when it does not exist.
func (r *WordRepository) GetByID(ctx context.Context, id int64) (*models.Word, error) {
	var word models.Word
	query := DB.Rebind("SELECT * FROM words WHERE id = ?")
	err := DB.GetContext(ctx, &word, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get word", err)
	}
	return &word, nil
}

// GetByIDs returns the given words keyed by ID
func (r *WordRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]models.Word, error) {
	out := make(map[int64]models.Word, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := sqlxIn("SELECT * FROM words WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	var words []models.Word
	if err := DB.SelectContext(ctx, &words, query, args...); err != nil {
		return nil, storeErr("get words", err)
	}
	for _, w := range words {
		out[w.ID] = w
	}
	return out, nil
}

// Create inserts a new word
func (r *WordRepository) Create(ctx context.Context, word *models.Word) error {
	query := DB.Rebind(`
		INSERT INTO words (
			wordbook_id, word, phonetic, meaning, example, example_translation,
			audio_url, exam_priority, frequency_rank, is_high_frequency, sort_order
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	id, err := insertReturningID(ctx, query,
		word.WordbookID,
		word.Word,
		word.Phonetic,
		word.Meaning,
		word.Example,
		word.ExampleTranslation,
		word.AudioURL,
		word.ExamPriority,
		word.FrequencyRank,
		word.IsHighFrequency,
		word.SortOrder,
	)
	if err != nil {
		return storeErr("create word", err)
	}
	word.ID = id
	return nil
}

// Update modifies an existing word
func (r *WordRepository) Update(ctx context.Context, word *models.Word) error {
	query := DB.Rebind(`
		UPDATE words SET
			word = ?,
			phonetic = ?,
			meaning = ?,
			example = ?,
			example_translation = ?,
			audio_url = ?,
			exam_priority = ?,
			frequency_rank = ?,
			is_high_frequency = ?,
			sort_order = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`)
	result, err := DB.ExecContext(ctx, query,
		word.Word,
		word.Phonetic,
		word.Meaning,
		word.Example,
		word.ExampleTranslation,
		word.AudioURL,
		word.ExamPriority,
		word.FrequencyRank,
		word.IsHighFrequency,
		word.SortOrder,
		word.ID,
	)
	if err != nil {
		return storeErr("update word", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("word %d not found", word.ID)
	}
	return nil
}

// Delete removes a word
func (r *WordRepository) Delete(ctx context.Context, id int64) error {
	query := DB.Rebind("DELETE FROM words WHERE id = ?")
	if _, err := DB.ExecContext(ctx, query, id); err != nil {
		return storeErr("delete word", err)
	}
	return nil
}

// Search finds words by substring match on the word or its meaning
func (r *WordRepository) Search(ctx context.Context, text string) ([]models.Word, error) {
	pattern := "%" + text + "%"
	query := DB.Rebind(`
		SELECT * FROM words
		WHERE LOWER(word) LIKE LOWER(?) OR LOWER(meaning) LIKE LOWER(?)
		ORDER BY word
	`)
	var words []models.Word
	if err := DB.SelectContext(ctx, &words, query, pattern, pattern); err != nil {
		return nil, storeErr("search words", err)
	}
	return words, nil
}

// GetByWordAndWordbook looks a word up by its text within one wordbook
func (r *WordRepository) GetByWordAndWordbook(ctx context.Context, text string, wordbookID int64) (*models.Word, error) {
	var word models.Word
	query := DB.Rebind("SELECT * FROM words WHERE word = ? AND wordbook_id = ?")
	err := DB.GetContext(ctx, &word, query, text, wordbookID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get word", err)
	}
	return &word, nil
}

// WordsMissingExamples returns words with no example sentence yet
func (r *WordRepository) WordsMissingExamples(ctx context.Context, limit int) ([]models.Word, error) {
	query := DB.Rebind("SELECT * FROM words WHERE example = '' ORDER BY id LIMIT ?")
	var words []models.Word
	if err := DB.SelectContext(ctx, &words, query, limit); err != nil {
		return nil, storeErr("list words missing examples", err)
	}
	return words, nil
}
