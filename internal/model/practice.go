package model

import (
	"time"

	"github.com/google/uuid"
)

// PracticeSession is an append-only log record of one practice
// interaction. Rows are never updated or deleted.
type PracticeSession struct {
	SessionID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"session_id"`
	UserID                uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	SessionDate           time.Time `gorm:"not null" json:"session_date"`
	WordsPracticed        int       `gorm:"not null;default:0" json:"words_practiced"`
	CorrectPronunciations int       `gorm:"not null;default:0" json:"correct_pronunciations"`
	SessionDuration       int       `gorm:"not null;default:0" json:"session_duration"`
}

func (PracticeSession) TableName() string {
	return "practice_sessions"
}

type PracticeResultRequest struct {
	Word    string `json:"word" validate:"required,max=100"`
	Correct *bool  `json:"correct" validate:"required"`
}

// PracticeResultResponse carries the human-readable outcome of a recorded
// practice result. An unknown word is a valid outcome, not an error.
type PracticeResultResponse struct {
	Word         string   `json:"word"`
	InVocabulary bool     `json:"in_vocabulary"`
	Proficiency  *float64 `json:"proficiency,omitempty"`
	Message      string   `json:"message"`
}

// PracticeWord is one item of the pronunciation practice set.
type PracticeWord struct {
	Word        string  `json:"word"`
	Translation string  `json:"translation"`
	Proficiency float64 `json:"proficiency"`
}
