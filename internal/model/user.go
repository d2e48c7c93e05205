package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account that owns vocabulary entries, practice sessions
// and daily suggestions.
type User struct {
	UserID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Username       string         `gorm:"unique;not null" json:"username"`
	Email          string         `gorm:"unique;not null" json:"email"`
	PasswordHash   string         `gorm:"not null" json:"-"`
	NativeLanguage string         `gorm:"not null;default:English" json:"native_language"`
	TargetLanguage string         `gorm:"not null;default:Spanish" json:"target_language"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Vocabulary       []VocabularyEntry `gorm:"foreignKey:UserID" json:"-"`
	PracticeSessions []PracticeSession `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// RegisterRequest is the request body for the registration endpoint.
type RegisterRequest struct {
	Username       string `json:"username" validate:"required,min=2,max=20"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8,max=72"`
	NativeLanguage string `json:"native_language" validate:"omitempty,max=50"`
	TargetLanguage string `json:"target_language" validate:"omitempty,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a User.
type UserResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	NativeLanguage string    `json:"native_language"`
	TargetLanguage string    `json:"target_language"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		UserID:         u.UserID,
		Username:       u.Username,
		Email:          u.Email,
		NativeLanguage: u.NativeLanguage,
		TargetLanguage: u.TargetLanguage,
		CreatedAt:      u.CreatedAt,
	}
}
