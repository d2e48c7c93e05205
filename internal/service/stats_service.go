package service

import (
	"context"
	"errors"
	"time"

	"lingualearn/internal/config"
	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatsService interface {
	GetStatistics(ctx context.Context, userID uuid.UUID) (*model.StatisticsResponse, error)
}

type statsService struct {
	db           *gorm.DB
	vocabRepo    repository.VocabRepository
	practiceRepo repository.PracticeRepository
	userRepo     repository.UserRepository
}

func NewStatsService(db *gorm.DB, vocabRepo repository.VocabRepository, practiceRepo repository.PracticeRepository, userRepo repository.UserRepository) StatsService {
	return &statsService{
		db:           db,
		vocabRepo:    vocabRepo,
		practiceRepo: practiceRepo,
		userRepo:     userRepo,
	}
}

// GetStatistics aggregates the user's vocabulary and practice history by
// full scan. Empty tables yield zeros, never errors.
func (s *statsService) GetStatistics(ctx context.Context, userID uuid.UUID) (*model.StatisticsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())

	total, err := s.vocabRepo.CountByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count vocabulary", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load statistics.", "", err)
	}

	// The bands partition [0,5]: [0,2], (2,4], (4,5]. The lower bound of
	// the first band sits below MinProficiency so 0 is included.
	beginner, err := s.vocabRepo.CountInProficiencyRange(ctx, s.db, userID, model.MinProficiency-1, 2)
	if err != nil {
		logger.Error("Failed to count beginner band", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load statistics.", "", err)
	}
	intermediate, err := s.vocabRepo.CountInProficiencyRange(ctx, s.db, userID, 2, 4)
	if err != nil {
		logger.Error("Failed to count intermediate band", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load statistics.", "", err)
	}
	advanced, err := s.vocabRepo.CountInProficiencyRange(ctx, s.db, userID, 4, model.MaxProficiency)
	if err != nil {
		logger.Error("Failed to count advanced band", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load statistics.", "", err)
	}

	since := time.Now().AddDate(0, 0, -config.RecentWordsWindowDays)
	recent, err := s.vocabRepo.CountCreatedSince(ctx, s.db, userID, since)
	if err != nil {
		logger.Error("Failed to count recent words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load statistics.", "", err)
	}

	sessionCount, err := s.practiceRepo.CountByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count practice sessions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load statistics.", "", err)
	}
	wordsPracticed, err := s.practiceRepo.SumWordsPracticed(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to sum practiced words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load statistics.", "", err)
	}

	lastSession, err := s.practiceRepo.FindLatestByUser(ctx, s.db, userID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to load latest practice session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load statistics.", "", err)
	}

	wordsByLanguage := map[string]int64{}
	if user, err := s.userRepo.FindByID(ctx, s.db, userID); err == nil {
		wordsByLanguage[user.TargetLanguage] = total
	}

	return &model.StatisticsResponse{
		TotalWords: total,
		Distribution: model.ProficiencyDistribution{
			Beginner:     beginner,
			Intermediate: intermediate,
			Advanced:     advanced,
		},
		RecentWords:           recent,
		TotalPracticeSessions: sessionCount,
		TotalWordsPracticed:   wordsPracticed,
		LastSession:           lastSession,
		WordsByLanguage:       wordsByLanguage,
	}, nil
}
