package database

import (
	"context"

	"github.com/example/wordrecall/pkg/models"
)

// MeaningRepository handles database operations for word meanings
type MeaningRepository struct{}

// NewMeaningRepository creates a new repository instance
func NewMeaningRepository() *MeaningRepository {
	return &MeaningRepository{}
}

// GetByWord returns all meanings of a word, most frequent sense first
func (r *MeaningRepository) GetByWord(ctx context.Context, wordID int64) ([]models.WordMeaning, error) {
	query := DB.Rebind(`
		SELECT * FROM word_meanings
		WHERE word_id = ?
		ORDER BY frequency_score DESC, meaning_order ASC
	`)
	var meanings []models.WordMeaning
	if err := DB.SelectContext(ctx, &meanings, query, wordID); err != nil {
		return nil, storeErr("list meanings", err)
	}
	return meanings, nil
}

// GetExamFocus returns exam-focus meanings, optionally restricted to one
// wordbook. These back the "familiar word, unfamiliar meaning" drill.
func (r *MeaningRepository) GetExamFocus(ctx context.Context, wordbookID int64) ([]models.WordMeaning, error) {
	var meanings []models.WordMeaning
	var err error
	if wordbookID == 0 {
		err = DB.SelectContext(ctx, &meanings, `
			SELECT * FROM word_meanings
			WHERE is_exam_focus = true
			ORDER BY frequency_score DESC`)
	} else {
		query := DB.Rebind(`
			SELECT m.* FROM word_meanings m
			JOIN words w ON w.id = m.word_id
			WHERE m.is_exam_focus = true AND w.wordbook_id = ?
			ORDER BY m.frequency_score DESC`)
		err = DB.SelectContext(ctx, &meanings, query, wordbookID)
	}
	if err != nil {
		return nil, storeErr("list exam-focus meanings", err)
	}
	return meanings, nil
}

// Create inserts a new meaning
func (r *MeaningRepository) Create(ctx context.Context, m *models.WordMeaning) error {
	query := DB.Rebind(`
		INSERT INTO word_meanings (
			word_id, meaning, meaning_order, part_of_speech, frequency_score,
			is_primary, is_exam_focus, example, example_translation, usage_note
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	id, err := insertReturningID(ctx, query,
		m.WordID, m.Meaning, m.MeaningOrder, m.PartOfSpeech, m.FrequencyScore,
		m.IsPrimary, m.IsExamFocus, m.Example, m.ExampleTranslation, m.UsageNote)
	if err != nil {
		return storeErr("create meaning", err)
	}
	m.ID = id
	return nil
}
