package models

import "time"

// WordMeaning is one sense of a word; quizzes may target a specific sense
// instead of the whole word ("familiar word, unfamiliar meaning").
type WordMeaning struct {
	ID                 int64     `json:"id" db:"id"`
	WordID             int64     `json:"word_id" db:"word_id"`
	Meaning            string    `json:"meaning" db:"meaning"`
	MeaningOrder       int       `json:"meaning_order" db:"meaning_order"`
	PartOfSpeech       string    `json:"part_of_speech" db:"part_of_speech"`
	FrequencyScore     int       `json:"frequency_score" db:"frequency_score"`
	IsPrimary          bool      `json:"is_primary" db:"is_primary"`
	IsExamFocus        bool      `json:"is_exam_focus" db:"is_exam_focus"`
	Example            string    `json:"example" db:"example"`
	ExampleTranslation string    `json:"example_translation" db:"example_translation"`
	UsageNote          string    `json:"usage_note" db:"usage_note"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
