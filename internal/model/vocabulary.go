package model

import (
	"time"

	"github.com/google/uuid"
)

// Proficiency bounds. Every write to VocabularyEntry.Proficiency is
// clamped into this range.
const (
	MinProficiency = 0.0
	MaxProficiency = 5.0
)

// VocabularyEntry is a word the user is learning, with its mastery score
// and review metadata. Word is stored lower-cased.
type VocabularyEntry struct {
	EntryID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"entry_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_user_word,unique" json:"-"`
	Word         string    `gorm:"not null;index:idx_user_word,unique" json:"word"`
	Translation  string    `gorm:"not null" json:"translation"`
	Language     string    `gorm:"not null" json:"language"`
	Context      string    `json:"context,omitempty"`
	Proficiency  float64   `gorm:"not null;default:0" json:"proficiency"`
	ReviewCount  int       `gorm:"not null;default:0" json:"review_count"`
	LastReviewed time.Time `json:"last_reviewed"`
	CreatedAt    time.Time `json:"created_at"`
}

func (VocabularyEntry) TableName() string {
	return "vocabulary_entries"
}

// ClampProficiency bounds a proficiency score to [MinProficiency, MaxProficiency].
func ClampProficiency(p float64) float64 {
	if p < MinProficiency {
		return MinProficiency
	}
	if p > MaxProficiency {
		return MaxProficiency
	}
	return p
}

type CreateVocabularyRequest struct {
	Word        string  `json:"word" validate:"required,max=100"`
	Translation string  `json:"translation" validate:"required,max=100"`
	Context     string  `json:"context" validate:"omitempty,max=500"`
	Proficiency float64 `json:"proficiency" validate:"gte=0,lte=5"`
}

// LookupWordRequest is the body of the word search endpoint.
type LookupWordRequest struct {
	Word string `json:"word" validate:"required,max=100"`
}

// LookupWordResponse reports whether a word is known to the user's
// vocabulary or the catalog, and surfaces the translation from whichever
// source matched.
type LookupWordResponse struct {
	Word         string   `json:"word"`
	Exists       bool     `json:"exists"`
	InVocabulary bool     `json:"in_vocabulary"`
	Translation  *string  `json:"translation,omitempty"`
	Proficiency  *float64 `json:"proficiency,omitempty"`
}
