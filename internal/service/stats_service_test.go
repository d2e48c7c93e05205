// internal/service/stats_service_test.go
package service

import (
	"context"
	"testing"

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

func setupTestDBStats() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func Test_statsService_GetStatistics(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := &model.User{UserID: userID, TargetLanguage: "Spanish"}

	t.Run("aggregates vocabulary and practice history", func(t *testing.T) {
		db := setupTestDBStats()
		vocabRepo := new(mocks.VocabRepository)
		practiceRepo := new(mocks.PracticeRepository)
		userRepo := new(mocks.UserRepository)

		lastSession := &model.PracticeSession{SessionID: uuid.New(), UserID: userID, WordsPracticed: 1}

		vocabRepo.On("CountByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(int64(12), nil).Once()
		vocabRepo.On("CountInProficiencyRange", ctx, mock.AnythingOfType("*gorm.DB"), userID, model.MinProficiency-1, 2.0).
			Return(int64(7), nil).Once()
		vocabRepo.On("CountInProficiencyRange", ctx, mock.AnythingOfType("*gorm.DB"), userID, 2.0, 4.0).
			Return(int64(4), nil).Once()
		vocabRepo.On("CountInProficiencyRange", ctx, mock.AnythingOfType("*gorm.DB"), userID, 4.0, model.MaxProficiency).
			Return(int64(1), nil).Once()
		vocabRepo.On("CountCreatedSince", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.AnythingOfType("time.Time")).
			Return(int64(3), nil).Once()
		practiceRepo.On("CountByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(int64(20), nil).Once()
		practiceRepo.On("SumWordsPracticed", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(int64(20), nil).Once()
		practiceRepo.On("FindLatestByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(lastSession, nil).Once()
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(user, nil).Once()

		svc := NewStatsService(db, vocabRepo, practiceRepo, userRepo)

		got, err := svc.GetStatistics(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(12), got.TotalWords)
		// The bands partition the total.
		assert.Equal(t, got.TotalWords, got.Distribution.Beginner+got.Distribution.Intermediate+got.Distribution.Advanced)
		assert.Equal(t, int64(3), got.RecentWords)
		assert.Equal(t, int64(20), got.TotalPracticeSessions)
		assert.Equal(t, lastSession, got.LastSession)
		assert.Equal(t, int64(12), got.WordsByLanguage["Spanish"])

		vocabRepo.AssertExpectations(t)
		practiceRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("brand-new user gets zeros, not errors", func(t *testing.T) {
		db := setupTestDBStats()
		vocabRepo := new(mocks.VocabRepository)
		practiceRepo := new(mocks.PracticeRepository)
		userRepo := new(mocks.UserRepository)

		vocabRepo.On("CountByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(int64(0), nil).Once()
		vocabRepo.On("CountInProficiencyRange", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.AnythingOfType("float64"), mock.AnythingOfType("float64")).
			Return(int64(0), nil).Times(3)
		vocabRepo.On("CountCreatedSince", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.AnythingOfType("time.Time")).
			Return(int64(0), nil).Once()
		practiceRepo.On("CountByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(int64(0), nil).Once()
		practiceRepo.On("SumWordsPracticed", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(int64(0), nil).Once()
		practiceRepo.On("FindLatestByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, model.ErrNotFound).Once()
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(user, nil).Once()

		svc := NewStatsService(db, vocabRepo, practiceRepo, userRepo)

		got, err := svc.GetStatistics(ctx, userID)
		require.NoError(t, err)
		assert.Zero(t, got.TotalWords)
		assert.Zero(t, got.TotalPracticeSessions)
		assert.Nil(t, got.LastSession)

		vocabRepo.AssertExpectations(t)
		practiceRepo.AssertExpectations(t)
	})
}
