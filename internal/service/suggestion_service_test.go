// internal/service/suggestion_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"lingualearn/internal/catalog"
	"lingualearn/internal/config"
	"lingualearn/internal/model"
	"lingualearn/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBSuggestion() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testSuggestionConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.SuggestionCount = 5
	return cfg
}

func testCatalog() *catalog.Catalog {
	return catalog.NewFromMap(map[string][]catalog.Entry{
		"Spanish": {
			{Word: "hola", Translation: "hello"},
			{Word: "adios", Translation: "goodbye"},
			{Word: "gracias", Translation: "thank you"},
			{Word: "por favor", Translation: "please"},
			{Word: "agua", Translation: "water"},
			{Word: "comida", Translation: "food"},
			{Word: "casa", Translation: "house"},
			{Word: "libro", Translation: "book"},
			{Word: "tiempo", Translation: "time"},
			{Word: "amigo", Translation: "friend"},
		},
	})
}

func Test_suggestionService_GetDailySuggestions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	today := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	user := &model.User{UserID: userID, TargetLanguage: "Spanish"}

	existingSet := []*model.DailySuggestion{
		{SuggestionID: uuid.New(), UserID: userID, Word: "agua", Translation: "water", SuggestionDate: model.Day(today)},
		{SuggestionID: uuid.New(), UserID: userID, Word: "casa", Translation: "house", SuggestionDate: model.Day(today)},
	}

	tests := []struct {
		name      string
		setupMock func(suggRepo *mocks.SuggestionRepository, vocabRepo *mocks.VocabRepository, userRepo *mocks.UserRepository)
		wantCount int
		wantErr   bool
		wantSet   []*model.DailySuggestion
	}{
		{
			name: "returns existing set without regenerating",
			setupMock: func(suggRepo *mocks.SuggestionRepository, vocabRepo *mocks.VocabRepository, userRepo *mocks.UserRepository) {
				suggRepo.On("FindByUserAndDate", ctx, mock.AnythingOfType("*gorm.DB"), userID, today).
					Return(existingSet, nil).Once()
				// Neither the user nor the vocabulary is touched.
			},
			wantCount: 2,
			wantSet:   existingSet,
		},
		{
			name: "generates a full set on first access of the day",
			setupMock: func(suggRepo *mocks.SuggestionRepository, vocabRepo *mocks.VocabRepository, userRepo *mocks.UserRepository) {
				suggRepo.On("FindByUserAndDate", ctx, mock.AnythingOfType("*gorm.DB"), userID, today).
					Return([]*model.DailySuggestion{}, nil).Once()
				userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(user, nil).Once()
				vocabRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return([]*model.VocabularyEntry{}, nil).Once()
				suggRepo.On("DeleteByUserAndDate", ctx, mock.AnythingOfType("*gorm.DB"), userID, today).
					Return(nil).Once()
				suggRepo.On("CreateBatch", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]*model.DailySuggestion")).
					Run(func(args mock.Arguments) {
						batch := args.Get(2).([]*model.DailySuggestion)
						assert.Len(t, batch, 5)
						seen := make(map[string]bool)
						for _, s := range batch {
							assert.Equal(t, userID, s.UserID)
							assert.Equal(t, model.Day(today), s.SuggestionDate)
							assert.False(t, seen[s.Word], "duplicate word in batch")
							seen[s.Word] = true
						}
					}).Return(nil).Once()
			},
			wantCount: 5,
		},
		{
			name: "excludes known words from the generated set",
			setupMock: func(suggRepo *mocks.SuggestionRepository, vocabRepo *mocks.VocabRepository, userRepo *mocks.UserRepository) {
				suggRepo.On("FindByUserAndDate", ctx, mock.AnythingOfType("*gorm.DB"), userID, today).
					Return([]*model.DailySuggestion{}, nil).Once()
				userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(user, nil).Once()
				vocabRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return([]*model.VocabularyEntry{
						{Word: "hola"}, {Word: "Adios"}, {Word: "gracias"}, {Word: "agua"},
					}, nil).Once()
				suggRepo.On("DeleteByUserAndDate", ctx, mock.AnythingOfType("*gorm.DB"), userID, today).
					Return(nil).Once()
				suggRepo.On("CreateBatch", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]*model.DailySuggestion")).
					Run(func(args mock.Arguments) {
						batch := args.Get(2).([]*model.DailySuggestion)
						assert.Len(t, batch, 5)
						for _, s := range batch {
							// 6 unknown words remain, so no known word should appear.
							assert.NotContains(t, []string{"hola", "adios", "gracias", "agua"}, s.Word)
						}
					}).Return(nil).Once()
			},
			wantCount: 5,
		},
		{
			name: "falls back to the full catalog when too few unknown words remain",
			setupMock: func(suggRepo *mocks.SuggestionRepository, vocabRepo *mocks.VocabRepository, userRepo *mocks.UserRepository) {
				suggRepo.On("FindByUserAndDate", ctx, mock.AnythingOfType("*gorm.DB"), userID, today).
					Return([]*model.DailySuggestion{}, nil).Once()
				userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(user, nil).Once()
				vocabRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return([]*model.VocabularyEntry{
						{Word: "hola"}, {Word: "adios"}, {Word: "gracias"}, {Word: "por favor"},
						{Word: "agua"}, {Word: "comida"}, {Word: "casa"},
					}, nil).Once()
				suggRepo.On("DeleteByUserAndDate", ctx, mock.AnythingOfType("*gorm.DB"), userID, today).
					Return(nil).Once()
				// Only 3 unknown words remain, so the sample comes from all 10.
				suggRepo.On("CreateBatch", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]*model.DailySuggestion")).
					Return(nil).Once()
			},
			wantCount: 5,
		},
		{
			name: "concurrent generation returns the winner's set",
			setupMock: func(suggRepo *mocks.SuggestionRepository, vocabRepo *mocks.VocabRepository, userRepo *mocks.UserRepository) {
				suggRepo.On("FindByUserAndDate", ctx, mock.AnythingOfType("*gorm.DB"), userID, today).
					Return([]*model.DailySuggestion{}, nil).Once()
				userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(user, nil).Once()
				vocabRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return([]*model.VocabularyEntry{}, nil).Once()
				suggRepo.On("DeleteByUserAndDate", ctx, mock.AnythingOfType("*gorm.DB"), userID, today).
					Return(nil).Once()
				suggRepo.On("CreateBatch", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]*model.DailySuggestion")).
					Return(model.ErrConflict).Once()
				// Re-read picks up whatever the concurrent request persisted.
				suggRepo.On("FindByUserAndDate", ctx, mock.AnythingOfType("*gorm.DB"), userID, today).
					Return(existingSet, nil).Once()
			},
			wantCount: 2,
			wantSet:   existingSet,
		},
		{
			name: "read failure propagates as internal error",
			setupMock: func(suggRepo *mocks.SuggestionRepository, vocabRepo *mocks.VocabRepository, userRepo *mocks.UserRepository) {
				suggRepo.On("FindByUserAndDate", ctx, mock.AnythingOfType("*gorm.DB"), userID, today).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBSuggestion()
			suggRepo := new(mocks.SuggestionRepository)
			vocabRepo := new(mocks.VocabRepository)
			userRepo := new(mocks.UserRepository)
			tt.setupMock(suggRepo, vocabRepo, userRepo)

			svc := NewSuggestionService(db, suggRepo, vocabRepo, userRepo, testCatalog(), testSuggestionConfig())

			got, err := svc.GetDailySuggestions(ctx, userID, today)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, tt.wantCount)
				if tt.wantSet != nil {
					assert.Equal(t, tt.wantSet, got)
				}
			}
			suggRepo.AssertExpectations(t)
			vocabRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func Test_suggestionService_GetDailySuggestions_EmptyCatalog(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSuggestion()
	userID := uuid.New()
	today := time.Now()

	suggRepo := new(mocks.SuggestionRepository)
	vocabRepo := new(mocks.VocabRepository)
	userRepo := new(mocks.UserRepository)

	suggRepo.On("FindByUserAndDate", ctx, mock.AnythingOfType("*gorm.DB"), userID, today).
		Return([]*model.DailySuggestion{}, nil).Once()
	userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
		Return(&model.User{UserID: userID, TargetLanguage: "Klingon"}, nil).Once()

	// Catalog with no entries at all: an empty set is a result, not an error.
	svc := NewSuggestionService(db, suggRepo, vocabRepo, userRepo, catalog.NewFromMap(map[string][]catalog.Entry{}), testSuggestionConfig())

	got, err := svc.GetDailySuggestions(ctx, userID, today)
	require.NoError(t, err)
	assert.Empty(t, got)
	suggRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func Test_sampleEntries(t *testing.T) {
	entries := []catalog.Entry{
		{Word: "a"}, {Word: "b"}, {Word: "c"},
	}

	t.Run("n larger than the pool returns every entry", func(t *testing.T) {
		got := sampleEntries(entries, 10)
		assert.Len(t, got, 3)
	})

	t.Run("draws without replacement", func(t *testing.T) {
		got := sampleEntries(entries, 2)
		require.Len(t, got, 2)
		assert.NotEqual(t, got[0].Word, got[1].Word)
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		before := append([]catalog.Entry(nil), entries...)
		sampleEntries(entries, 3)
		assert.Equal(t, before, entries)
	})
}
