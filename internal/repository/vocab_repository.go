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

type VocabRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *model.VocabularyEntry) error
	FindByID(ctx context.Context, db *gorm.DB, userID, entryID uuid.UUID) (*model.VocabularyEntry, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.VocabularyEntry, error)
	FindByWord(ctx context.Context, db *gorm.DB, userID uuid.UUID, word string) (*model.VocabularyEntry, error)
	FindBelowProficiency(ctx context.Context, db *gorm.DB, userID uuid.UUID, ceiling float64, limit int) ([]*model.VocabularyEntry, error)
	Update(ctx context.Context, tx *gorm.DB, entry *model.VocabularyEntry) error
	Delete(ctx context.Context, tx *gorm.DB, userID, entryID uuid.UUID) error
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	CountInProficiencyRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, gt, lte float64) (int64, error)
	CountCreatedSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time) (int64, error)
}

type gormVocabRepository struct{}

func NewGormVocabRepository() VocabRepository {
	return &gormVocabRepository{}
}

func (r *gormVocabRepository) Create(ctx context.Context, tx *gorm.DB, entry *model.VocabularyEntry) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(entry).Error; err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		logger.Error("Error creating vocabulary entry in DB",
			"error", err,
			"user_id", entry.UserID.String(),
			"word", entry.Word,
		)
		return fmt.Errorf("gormVocabRepository.Create: %w", err)
	}
	return nil
}

func (r *gormVocabRepository) FindByID(ctx context.Context, db *gorm.DB, userID, entryID uuid.UUID) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.VocabularyEntry
	result := db.WithContext(ctx).Where("user_id = ? AND entry_id = ?", userID, entryID).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vocabulary entry by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"entry_id", entryID.String(),
		)
		return nil, fmt.Errorf("gormVocabRepository.FindByID: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormVocabRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.VocabularyEntry
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&entries)
	if result.Error != nil {
		logger.Error("Error listing vocabulary entries in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormVocabRepository.FindByUser: %w", result.Error)
	}
	return entries, nil
}

func (r *gormVocabRepository) FindByWord(ctx context.Context, db *gorm.DB, userID uuid.UUID, word string) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.VocabularyEntry
	result := db.WithContext(ctx).Where("user_id = ? AND word = ?", userID, word).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vocabulary entry by word in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"word", word,
		)
		return nil, fmt.Errorf("gormVocabRepository.FindByWord: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormVocabRepository) FindBelowProficiency(ctx context.Context, db *gorm.DB, userID uuid.UUID, ceiling float64, limit int) ([]*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.VocabularyEntry
	result := db.WithContext(ctx).
		Where("user_id = ? AND proficiency < ?", userID, ceiling).
		Order("proficiency ASC, created_at ASC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		logger.Error("Error finding low-proficiency entries in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormVocabRepository.FindBelowProficiency: %w", result.Error)
	}
	return entries, nil
}

func (r *gormVocabRepository) Update(ctx context.Context, tx *gorm.DB, entry *model.VocabularyEntry) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(entry)
	if result.Error != nil {
		logger.Error("Error updating vocabulary entry in DB",
			"error", result.Error,
			"entry_id", entry.EntryID.String(),
		)
		return fmt.Errorf("gormVocabRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormVocabRepository) Delete(ctx context.Context, tx *gorm.DB, userID, entryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND entry_id = ?", userID, entryID).Delete(&model.VocabularyEntry{})
	if result.Error != nil {
		logger.Error("Error deleting vocabulary entry in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"entry_id", entryID.String(),
		)
		return fmt.Errorf("gormVocabRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.VocabularyEntry{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormVocabRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

// CountInProficiencyRange counts entries with gt < proficiency <= lte.
// Pass a gt below MinProficiency to make the lower bound inclusive of 0.
func (r *gormVocabRepository) CountInProficiencyRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, gt, lte float64) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.VocabularyEntry{}).
		Where("user_id = ? AND proficiency > ? AND proficiency <= ?", userID, gt, lte).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormVocabRepository.CountInProficiencyRange: %w", result.Error)
	}
	return count, nil
}

func (r *gormVocabRepository) CountCreatedSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.VocabularyEntry{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormVocabRepository.CountCreatedSince: %w", result.Error)
	}
	return count, nil
}
