package model

import (
	"time"

	"github.com/google/uuid"
)

// DailySuggestion is a word offered to a user on one calendar day.
// The unique index on (user_id, suggestion_date, word) keeps a concurrent
// duplicate generation from persisting two batches for the same day.
type DailySuggestion struct {
	SuggestionID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"suggestion_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_user_date_word,unique" json:"-"`
	Word           string    `gorm:"not null;index:idx_user_date_word,unique" json:"word"`
	Translation    string    `gorm:"not null" json:"translation"`
	SuggestionDate time.Time `gorm:"type:date;not null;index:idx_user_date_word,unique" json:"date"`
	Practiced      bool      `gorm:"not null;default:false" json:"practiced"`
}

func (DailySuggestion) TableName() string {
	return "daily_suggestions"
}

// Day truncates t to calendar-date precision in UTC. Suggestion rows are
// keyed by this value.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
