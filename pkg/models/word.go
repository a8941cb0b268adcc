package models

import "time"

// Word represents a single vocabulary entry inside a wordbook
type Word struct {
	ID                 int64     `json:"id" db:"id"`
	WordbookID         int64     `json:"wordbook_id" db:"wordbook_id"`
	Word               string    `json:"word" db:"word"`
	Phonetic           string    `json:"phonetic" db:"phonetic"`
	Meaning            string    `json:"meaning" db:"meaning"`
	Example            string    `json:"example" db:"example"`
	ExampleTranslation string    `json:"example_translation" db:"example_translation"`
	AudioURL           string    `json:"audio_url" db:"audio_url"`
	ExamPriority       int       `json:"exam_priority" db:"exam_priority"`   // 0-100, set at authoring time
	FrequencyRank      int       `json:"frequency_rank" db:"frequency_rank"` // lower = more frequent
	IsHighFrequency    bool      `json:"is_high_frequency" db:"is_high_frequency"`
	SortOrder          int       `json:"sort_order" db:"sort_order"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
