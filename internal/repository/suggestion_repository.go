package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SuggestionRepository interface {
	FindByUserAndDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) ([]*model.DailySuggestion, error)
	FindByUserDateAndWord(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time, word string) (*model.DailySuggestion, error)
	DeleteByUserAndDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date time.Time) error
	CreateBatch(ctx context.Context, tx *gorm.DB, suggestions []*model.DailySuggestion) error
	MarkPracticed(ctx context.Context, tx *gorm.DB, suggestionID uuid.UUID) error
}

type gormSuggestionRepository struct{}

func NewGormSuggestionRepository() SuggestionRepository {
	return &gormSuggestionRepository{}
}

func (r *gormSuggestionRepository) FindByUserAndDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) ([]*model.DailySuggestion, error) {
	logger := middleware.GetLogger(ctx)
	var suggestions []*model.DailySuggestion
	result := db.WithContext(ctx).
		Where("user_id = ? AND suggestion_date = ?", userID, model.Day(date)).
		Order("word ASC").
		Find(&suggestions)
	if result.Error != nil {
		logger.Error("Error finding daily suggestions in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormSuggestionRepository.FindByUserAndDate: %w", result.Error)
	}
	return suggestions, nil
}

func (r *gormSuggestionRepository) FindByUserDateAndWord(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time, word string) (*model.DailySuggestion, error) {
	var suggestion model.DailySuggestion
	result := db.WithContext(ctx).
		Where("user_id = ? AND suggestion_date = ? AND word = ?", userID, model.Day(date), word).
		First(&suggestion)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormSuggestionRepository.FindByUserDateAndWord: %w", result.Error)
	}
	return &suggestion, nil
}

func (r *gormSuggestionRepository) DeleteByUserAndDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date time.Time) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("user_id = ? AND suggestion_date = ?", userID, model.Day(date)).
		Delete(&model.DailySuggestion{})
	if result.Error != nil {
		logger.Error("Error deleting stale daily suggestions in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return fmt.Errorf("gormSuggestionRepository.DeleteByUserAndDate: %w", result.Error)
	}
	return nil
}

func (r *gormSuggestionRepository) CreateBatch(ctx context.Context, tx *gorm.DB, suggestions []*model.DailySuggestion) error {
	logger := middleware.GetLogger(ctx)
	if len(suggestions) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).Create(&suggestions).Error; err != nil {
		if isUniqueViolation(err) {
			// A concurrent request persisted today's batch first.
			return model.ErrConflict
		}
		logger.Error("Error creating daily suggestion batch in DB",
			"error", err,
			"count", len(suggestions),
		)
		return fmt.Errorf("gormSuggestionRepository.CreateBatch: %w", err)
	}
	return nil
}

func (r *gormSuggestionRepository) MarkPracticed(ctx context.Context, tx *gorm.DB, suggestionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.DailySuggestion{}).
		Where("suggestion_id = ?", suggestionID).
		Update("practiced", true)
	if result.Error != nil {
		logger.Error("Error marking suggestion practiced in DB",
			"error", result.Error,
			"suggestion_id", suggestionID.String(),
		)
		return fmt.Errorf("gormSuggestionRepository.MarkPracticed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
