package database

import (
	"context"

	"github.com/example/wordrecall/pkg/models"
)

// SessionRepository handles database operations for study sessions
type SessionRepository struct{}

// NewSessionRepository creates a new repository instance
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// Create records a completed study session
func (r *SessionRepository) Create(ctx context.Context, s *models.StudySession) error {
	query := DB.Rebind(`
		INSERT INTO study_sessions (user_id, wordbook_id, mode, words_studied, correct_count, duration_minutes)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	id, err := insertReturningID(ctx, query,
		s.UserID, s.WordbookID, s.Mode, s.WordsStudied, s.CorrectCount, s.DurationMinutes)
	if err != nil {
		return storeErr("create study session", err)
	}
	s.ID = id
	return nil
}

// GetRecentForUser returns the user's latest sessions, newest first
func (r *SessionRepository) GetRecentForUser(ctx context.Context, userID int64, limit int) ([]models.StudySession, error) {
	query := DB.Rebind(`
		SELECT * FROM study_sessions
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`)
	var sessions []models.StudySession
	if err := DB.SelectContext(ctx, &sessions, query, userID, limit); err != nil {
		return nil, storeErr("list study sessions", err)
	}
	return sessions, nil
}
