package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. SQLite is the default;
// set DB_TYPE=postgres and DATABASE_URL to use PostgreSQL.
func Connect() error {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var db *sqlx.DB
	var err error

	switch dbType {
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
	default:
		dataDir := "data"
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}
		dbPath := filepath.Join(dataDir, "wordrecall.db")
		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db
	return initializeSchema(DB)
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates the tables if they don't exist
func initializeSchema(db *sqlx.DB) error {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if db.DriverName() == "postgres" {
		pk = "BIGSERIAL PRIMARY KEY"
	}

	statements := []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS users (
			id %s,
			telegram_id INTEGER UNIQUE NOT NULL,
			username TEXT,
			first_name TEXT,
			last_name TEXT,
			is_admin BOOLEAN DEFAULT false,
			notification_enabled BOOLEAN DEFAULT true,
			notification_hour INTEGER DEFAULT 9,
			words_per_day INTEGER DEFAULT 20,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, pk),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS wordbooks (
			id %s,
			name TEXT NOT NULL UNIQUE,
			description TEXT DEFAULT '',
			icon TEXT DEFAULT '',
			category TEXT DEFAULT 'custom',
			level TEXT DEFAULT '',
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, pk),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS words (
			id %s,
			wordbook_id INTEGER NOT NULL,
			word TEXT NOT NULL,
			phonetic TEXT DEFAULT '',
			meaning TEXT NOT NULL,
			example TEXT DEFAULT '',
			example_translation TEXT DEFAULT '',
			audio_url TEXT DEFAULT '',
			exam_priority INTEGER DEFAULT 0,
			frequency_rank INTEGER DEFAULT 0,
			is_high_frequency BOOLEAN DEFAULT false,
			sort_order INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (wordbook_id) REFERENCES wordbooks(id),
			UNIQUE(wordbook_id, word)
		)`, pk),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS word_meanings (
			id %s,
			word_id INTEGER NOT NULL,
			meaning TEXT NOT NULL,
			meaning_order INTEGER DEFAULT 0,
			part_of_speech TEXT DEFAULT '',
			frequency_score INTEGER DEFAULT 0,
			is_primary BOOLEAN DEFAULT false,
			is_exam_focus BOOLEAN DEFAULT false,
			example TEXT DEFAULT '',
			example_translation TEXT DEFAULT '',
			usage_note TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (word_id) REFERENCES words(id)
		)`, pk),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS user_word_progress (
			id %s,
			user_id INTEGER NOT NULL,
			item_id INTEGER NOT NULL,
			mastery INTEGER DEFAULT 0,
			review_count INTEGER DEFAULT 0,
			correct_count INTEGER DEFAULT 0,
			last_reviewed TIMESTAMP,
			next_review TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (item_id) REFERENCES words(id),
			UNIQUE(user_id, item_id)
		)`, pk),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS user_meaning_progress (
			id %s,
			user_id INTEGER NOT NULL,
			item_id INTEGER NOT NULL,
			mastery INTEGER DEFAULT 0,
			review_count INTEGER DEFAULT 0,
			correct_count INTEGER DEFAULT 0,
			last_reviewed TIMESTAMP,
			next_review TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (item_id) REFERENCES word_meanings(id),
			UNIQUE(user_id, item_id)
		)`, pk),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS study_sessions (
			id %s,
			user_id INTEGER NOT NULL,
			wordbook_id INTEGER,
			mode TEXT NOT NULL,
			words_studied INTEGER DEFAULT 0,
			correct_count INTEGER DEFAULT 0,
			duration_minutes INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, pk),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS user_daily_stats (
			id %s,
			user_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			new_words INTEGER DEFAULT 0,
			review_words INTEGER DEFAULT 0,
			study_minutes INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(user_id, date)
		)`, pk),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS user_starred_words (
			id %s,
			user_id INTEGER NOT NULL,
			word_id INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (word_id) REFERENCES words(id),
			UNIQUE(user_id, word_id)
		)`, pk),
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}
	return nil
}
