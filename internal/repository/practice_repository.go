package repository

import (
	"context"
	"errors"
	"fmt"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PracticeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.PracticeSession) error
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	SumWordsPracticed(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	FindLatestByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.PracticeSession, error)
}

type gormPracticeRepository struct{}

func NewGormPracticeRepository() PracticeRepository {
	return &gormPracticeRepository{}
}

func (r *gormPracticeRepository) Create(ctx context.Context, tx *gorm.DB, session *model.PracticeSession) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(session).Error; err != nil {
		logger.Error("Error creating practice session in DB",
			"error", err,
			"user_id", session.UserID.String(),
		)
		return fmt.Errorf("gormPracticeRepository.Create: %w", err)
	}
	return nil
}

func (r *gormPracticeRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.PracticeSession{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormPracticeRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormPracticeRepository) SumWordsPracticed(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	// COALESCE keeps the zero-row case a plain 0 instead of a NULL scan error.
	var total int64
	result := db.WithContext(ctx).Model(&model.PracticeSession{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(words_practiced), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, fmt.Errorf("gormPracticeRepository.SumWordsPracticed: %w", result.Error)
	}
	return total, nil
}

func (r *gormPracticeRepository) FindLatestByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.PracticeSession, error) {
	var session model.PracticeSession
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("session_date DESC").
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormPracticeRepository.FindLatestByUser: %w", result.Error)
	}
	return &session, nil
}
