package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"lingualearn/internal/config"
	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PracticeService interface {
	RecordResult(ctx context.Context, userID uuid.UUID, word string, correct bool) (*model.PracticeResultResponse, error)
	GetPracticeWords(ctx context.Context, userID uuid.UUID) ([]model.PracticeWord, error)
}

type practiceService struct {
	db           *gorm.DB
	vocabRepo    repository.VocabRepository
	suggRepo     repository.SuggestionRepository
	practiceRepo repository.PracticeRepository
	cfg          *config.Config
}

func NewPracticeService(db *gorm.DB, vocabRepo repository.VocabRepository, suggRepo repository.SuggestionRepository, practiceRepo repository.PracticeRepository, cfg *config.Config) PracticeService {
	return &practiceService{
		db:           db,
		vocabRepo:    vocabRepo,
		suggRepo:     suggRepo,
		practiceRepo: practiceRepo,
		cfg:          cfg,
	}
}

// RecordResult applies one pronunciation-practice outcome. A word absent
// from the vocabulary is an expected state: the practice is still logged
// and no entry is created. All writes commit or roll back together.
func (s *practiceService) RecordResult(ctx context.Context, userID uuid.UUID, word string, correct bool) (*model.PracticeResultResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())
	word = strings.ToLower(strings.TrimSpace(word))

	resp := &model.PracticeResultResponse{Word: word}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := s.vocabRepo.FindByWord(ctx, tx, userID, word)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to look up vocabulary entry", "error", err, "word", word)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record the practice result.", "", err)
		}

		if entry != nil {
			entry.ReviewCount++
			if correct {
				entry.Proficiency = model.ClampProficiency(entry.Proficiency + config.ProficiencyGainOnCorrect)
			} else {
				entry.Proficiency = model.ClampProficiency(entry.Proficiency - config.ProficiencyLossOnMiss)
			}
			entry.LastReviewed = time.Now()
			if err := s.vocabRepo.Update(ctx, tx, entry); err != nil {
				logger.Error("Failed to update vocabulary entry", "error", err, "word", word)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record the practice result.", "", err)
			}

			resp.InVocabulary = true
			p := entry.Proficiency
			resp.Proficiency = &p
			if correct {
				resp.Message = "Great pronunciation! Your proficiency for this word went up."
			} else {
				resp.Message = "Not quite. This word needs more practice."
			}
		} else {
			resp.Message = "This word is not in your vocabulary; the practice was logged anyway."
		}

		// Flip today's suggestion if the practiced word is one of them.
		suggestion, err := s.suggRepo.FindByUserDateAndWord(ctx, tx, userID, time.Now(), word)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to look up daily suggestion", "error", err, "word", word)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record the practice result.", "", err)
		}
		if suggestion != nil && !suggestion.Practiced {
			if err := s.suggRepo.MarkPracticed(ctx, tx, suggestion.SuggestionID); err != nil {
				logger.Error("Failed to mark suggestion practiced", "error", err, "word", word)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record the practice result.", "", err)
			}
		}

		correctCount := 0
		if correct {
			correctCount = 1
		}
		session := &model.PracticeSession{
			SessionID:             uuid.New(),
			UserID:                userID,
			SessionDate:           time.Now(),
			WordsPracticed:        1,
			CorrectPronunciations: correctCount,
			SessionDuration:       config.PlaceholderSessionDuration,
		}
		if err := s.practiceRepo.Create(ctx, tx, session); err != nil {
			logger.Error("Failed to append practice session", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record the practice result.", "", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Practice result recorded", "word", word, "correct", correct, "in_vocabulary", resp.InVocabulary)
	return resp, nil
}

// GetPracticeWords returns the pronunciation practice set: the user's
// weakest vocabulary entries, or today's suggestions when the vocabulary
// has nothing below the practice ceiling.
func (s *practiceService) GetPracticeWords(ctx context.Context, userID uuid.UUID) ([]model.PracticeWord, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())

	entries, err := s.vocabRepo.FindBelowProficiency(ctx, s.db, userID, config.PracticeProficiencyCeiling, s.cfg.App.PracticeWordLimit)
	if err != nil {
		logger.Error("Failed to load practice words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load practice words.", "", err)
	}

	if len(entries) > 0 {
		words := make([]model.PracticeWord, 0, len(entries))
		for _, e := range entries {
			words = append(words, model.PracticeWord{
				Word:        e.Word,
				Translation: e.Translation,
				Proficiency: e.Proficiency,
			})
		}
		return words, nil
	}

	suggestions, err := s.suggRepo.FindByUserAndDate(ctx, s.db, userID, time.Now())
	if err != nil {
		logger.Error("Failed to load suggestions as practice fallback", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load practice words.", "", err)
	}
	words := make([]model.PracticeWord, 0, len(suggestions))
	for _, sg := range suggestions {
		words = append(words, model.PracticeWord{
			Word:        sg.Word,
			Translation: sg.Translation,
		})
	}
	return words, nil
}
