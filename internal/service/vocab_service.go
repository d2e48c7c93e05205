package service

import (
	"context"
	"errors"
	"strings"

	"lingualearn/internal/catalog"
	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VocabService interface {
	ListVocabulary(ctx context.Context, userID uuid.UUID) ([]*model.VocabularyEntry, error)
	CreateEntry(ctx context.Context, userID uuid.UUID, req *model.CreateVocabularyRequest) (*model.VocabularyEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error
	LookupWord(ctx context.Context, userID uuid.UUID, word string) (*model.LookupWordResponse, error)
}

type vocabService struct {
	db        *gorm.DB
	vocabRepo repository.VocabRepository
	userRepo  repository.UserRepository
	catalog   *catalog.Catalog
}

func NewVocabService(db *gorm.DB, vocabRepo repository.VocabRepository, userRepo repository.UserRepository, cat *catalog.Catalog) VocabService {
	return &vocabService{
		db:        db,
		vocabRepo: vocabRepo,
		userRepo:  userRepo,
		catalog:   cat,
	}
}

func (s *vocabService) ListVocabulary(ctx context.Context, userID uuid.UUID) ([]*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	entries, err := s.vocabRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list vocabulary", "error", err, "user_id", userID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the vocabulary list.", "", err)
	}
	return entries, nil
}

// CreateEntry adds a word to the user's vocabulary. The word is stored
// lower-cased and tagged with the user's target language; duplicates per
// user are rejected.
func (s *vocabService) CreateEntry(ctx context.Context, userID uuid.UUID, req *model.CreateVocabularyRequest) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())

	word := strings.ToLower(strings.TrimSpace(req.Word))
	if word == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "A word is required.", "word", model.ErrInvalidInput)
	}

	var created *model.VocabularyEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return err
			}
			logger.Error("Failed to load user for vocabulary create", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to add the word.", "", err)
		}

		entry := &model.VocabularyEntry{
			EntryID:     uuid.New(),
			UserID:      userID,
			Word:        word,
			Translation: req.Translation,
			Language:    user.TargetLanguage,
			Context:     req.Context,
			Proficiency: model.ClampProficiency(req.Proficiency),
		}
		if err := s.vocabRepo.Create(ctx, tx, entry); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Duplicate vocabulary word", "word", word)
				return model.NewAppError("DUPLICATE_WORD", "This word is already in your vocabulary.", "word", model.ErrConflict)
			}
			logger.Error("Failed to create vocabulary entry", "error", err, "word", word)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to add the word.", "", err)
		}
		created = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Vocabulary entry created", "word", word)
	return created, nil
}

func (s *vocabService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	err := s.vocabRepo.Delete(ctx, s.db, userID, entryID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Failed to delete vocabulary entry", "error", err, "entry_id", entryID.String())
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete the word.", "", err)
	}
	logger.Info("Vocabulary entry deleted", "entry_id", entryID.String())
	return nil
}

// LookupWord checks the user's vocabulary first and then the catalog for
// the user's target language. Whichever source matches supplies the
// translation; a vocabulary match also surfaces the proficiency score.
func (s *vocabService) LookupWord(ctx context.Context, userID uuid.UUID, word string) (*model.LookupWordResponse, error) {
	logger := middleware.GetLogger(ctx)
	word = strings.ToLower(strings.TrimSpace(word))

	resp := &model.LookupWordResponse{Word: word}

	entry, err := s.vocabRepo.FindByWord(ctx, s.db, userID, word)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to search vocabulary", "error", err, "word", word)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to search for the word.", "", err)
	}
	if entry != nil {
		resp.Exists = true
		resp.InVocabulary = true
		resp.Translation = &entry.Translation
		p := entry.Proficiency
		resp.Proficiency = &p
	}

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to load user for word lookup", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to search for the word.", "", err)
	}

	if catalogEntry, ok := s.catalog.Find(user.TargetLanguage, word); ok {
		resp.Exists = true
		if resp.Translation == nil {
			resp.Translation = &catalogEntry.Translation
		}
	}

	return resp, nil
}
