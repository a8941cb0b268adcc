package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/example/wordrecall/pkg/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// GetByTelegramID returns a user by Telegram ID, or nil if unknown
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	var user models.User
	query := DB.Rebind(`
		SELECT telegram_id, username, first_name, last_name, is_admin,
			notification_enabled, notification_hour, words_per_day,
			created_at, updated_at
		FROM users WHERE telegram_id = ?
	`)
	err := DB.GetContext(ctx, &user, query, telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get user", err)
	}
	return &user, nil
}

// GetOrCreate returns the user for a Telegram ID, registering them with
// defaults on first contact.
func (r *UserRepository) GetOrCreate(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := r.GetByTelegramID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	query := DB.Rebind(`
		INSERT INTO users (telegram_id, username, first_name, last_name, is_admin,
			notification_enabled, notification_hour, words_per_day)
		VALUES (?, ?, ?, ?, false, true, 9, 20)
	`)
	if _, err := DB.ExecContext(ctx, query,
		user.ID, user.Username, user.FirstName, user.LastName); err != nil {
		return nil, storeErr("create user", err)
	}
	return r.GetByTelegramID(ctx, user.ID)
}

// UpdateSettings stores notification and study preferences
func (r *UserRepository) UpdateSettings(ctx context.Context, user *models.User) error {
	query := DB.Rebind(`
		UPDATE users SET
			notification_enabled = ?,
			notification_hour = ?,
			words_per_day = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE telegram_id = ?
	`)
	if _, err := DB.ExecContext(ctx, query,
		user.NotificationEnabled, user.NotificationHour, user.WordsPerDay, user.ID); err != nil {
		return storeErr("update user settings", err)
	}
	return nil
}

// GetUsersForNotification returns users wanting a reminder at the given hour
func (r *UserRepository) GetUsersForNotification(ctx context.Context, hour int) ([]models.User, error) {
	query := DB.Rebind(`
		SELECT telegram_id, username, first_name, last_name, is_admin,
			notification_enabled, notification_hour, words_per_day,
			created_at, updated_at
		FROM users
		WHERE notification_enabled = true AND notification_hour = ?
	`)
	var users []models.User
	if err := DB.SelectContext(ctx, &users, query, hour); err != nil {
		return nil, storeErr("get users for notification", err)
	}
	return users, nil
}
