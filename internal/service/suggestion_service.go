package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"lingualearn/internal/catalog"
	"lingualearn/internal/config"
	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SuggestionService interface {
	GetDailySuggestions(ctx context.Context, userID uuid.UUID, today time.Time) ([]*model.DailySuggestion, error)
}

type suggestionService struct {
	db        *gorm.DB
	suggRepo  repository.SuggestionRepository
	vocabRepo repository.VocabRepository
	userRepo  repository.UserRepository
	catalog   *catalog.Catalog
	cfg       *config.Config
}

func NewSuggestionService(db *gorm.DB, suggRepo repository.SuggestionRepository, vocabRepo repository.VocabRepository, userRepo repository.UserRepository, cat *catalog.Catalog, cfg *config.Config) SuggestionService {
	return &suggestionService{
		db:        db,
		suggRepo:  suggRepo,
		vocabRepo: vocabRepo,
		userRepo:  userRepo,
		catalog:   cat,
		cfg:       cfg,
	}
}

// GetDailySuggestions returns the stored suggestion set for (user, day),
// generating and persisting one on first access. Repeated calls on the
// same day are pure reads, so the set is stable for the whole day.
func (s *suggestionService) GetDailySuggestions(ctx context.Context, userID uuid.UUID, today time.Time) ([]*model.DailySuggestion, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())

	existing, err := s.suggRepo.FindByUserAndDate(ctx, s.db, userID, today)
	if err != nil {
		logger.Error("Failed to read daily suggestions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load today's words.", "", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to load user for suggestion generation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load today's words.", "", err)
	}

	selected := s.pickCandidates(ctx, user)
	if len(selected) == 0 {
		logger.Info("No catalog entries available for language", "language", user.TargetLanguage)
		return []*model.DailySuggestion{}, nil
	}

	day := model.Day(today)
	suggestions := make([]*model.DailySuggestion, 0, len(selected))
	for _, entry := range selected {
		suggestions = append(suggestions, &model.DailySuggestion{
			SuggestionID:   uuid.New(),
			UserID:         userID,
			Word:           entry.Word,
			Translation:    entry.Translation,
			SuggestionDate: day,
		})
	}

	// Delete-then-insert as one unit: a failure rolls the whole batch
	// back, and the unique (user, date, word) index rejects a concurrent
	// duplicate batch.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.suggRepo.DeleteByUserAndDate(ctx, tx, userID, today); err != nil {
			return err
		}
		return s.suggRepo.CreateBatch(ctx, tx, suggestions)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			// Lost the race with a concurrent request; the winner's rows
			// are the set for today.
			logger.Info("Concurrent suggestion generation detected, returning persisted set")
			return s.suggRepo.FindByUserAndDate(ctx, s.db, userID, today)
		}
		logger.Error("Failed to persist daily suggestions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to generate today's words.", "", err)
	}

	logger.Info("Generated daily suggestions", "count", len(suggestions), "language", user.TargetLanguage)
	return suggestions, nil
}

// pickCandidates filters the catalog list by the user's known words and
// samples the daily set. When excluding known words would leave fewer
// than a full set, the full catalog list is used instead: a complete
// daily set wins over strict freshness.
func (s *suggestionService) pickCandidates(ctx context.Context, user *model.User) []catalog.Entry {
	logger := middleware.GetLogger(ctx)

	all := s.catalog.Words(user.TargetLanguage)
	if len(all) == 0 {
		return nil
	}

	known := make(map[string]bool)
	entries, err := s.vocabRepo.FindByUser(ctx, s.db, user.UserID)
	if err != nil {
		// Exclusion is a preference; fall back to the full list rather
		// than failing the day's generation.
		logger.Warn("Failed to load vocabulary for exclusion, using full catalog", "error", err)
	} else {
		for _, e := range entries {
			known[strings.ToLower(e.Word)] = true
		}
	}

	candidates := make([]catalog.Entry, 0, len(all))
	for _, entry := range all {
		if !known[strings.ToLower(entry.Word)] {
			candidates = append(candidates, entry)
		}
	}
	if len(candidates) < s.cfg.App.SuggestionCount {
		candidates = all
	}

	return sampleEntries(candidates, s.cfg.App.SuggestionCount)
}

// sampleEntries draws up to n distinct entries uniformly without
// replacement.
func sampleEntries(entries []catalog.Entry, n int) []catalog.Entry {
	if n > len(entries) {
		n = len(entries)
	}
	shuffled := append([]catalog.Entry(nil), entries...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
