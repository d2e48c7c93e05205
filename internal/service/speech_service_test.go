// internal/service/speech_service_test.go
package service

import (
	"context"
	"errors"
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

func setupTestDBSpeech() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

type stubSynthesizer struct {
	audio    []byte
	err      error
	lastLang string
	lastText string
}

func (s *stubSynthesizer) Synthesize(ctx context.Context, text, langCode string) ([]byte, error) {
	s.lastText = text
	s.lastLang = langCode
	if s.err != nil {
		return nil, s.err
	}
	return s.audio, nil
}

type stubSink struct {
	available bool
	playErr   error
	played    [][]byte
}

func (s *stubSink) Play(ctx context.Context, audio []byte) error {
	if s.playErr != nil {
		return s.playErr
	}
	s.played = append(s.played, audio)
	return nil
}

func (s *stubSink) Available() bool { return s.available }
func (s *stubSink) Name() string    { return "stub" }

func Test_speechService_Speak(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := &model.User{UserID: userID, TargetLanguage: "French"}

	tests := []struct {
		name          string
		synth         *stubSynthesizer
		sink          *stubSink
		wantAvailable bool
		wantFallback  bool
		wantLang      string
	}{
		{
			name:          "synthesizes and plays in the target language",
			synth:         &stubSynthesizer{audio: []byte("mp3-bytes")},
			sink:          &stubSink{available: true},
			wantAvailable: true,
			wantLang:      "fr",
		},
		{
			name:         "no audio player degrades to a textual fallback",
			synth:        &stubSynthesizer{audio: []byte("mp3-bytes")},
			sink:         &stubSink{available: false},
			wantFallback: true,
			wantLang:     "fr",
		},
		{
			name:         "synthesis failure degrades instead of erroring",
			synth:        &stubSynthesizer{err: errors.New("tts unreachable")},
			sink:         &stubSink{available: true},
			wantFallback: true,
			wantLang:     "fr",
		},
		{
			name:         "playback failure degrades instead of erroring",
			synth:        &stubSynthesizer{audio: []byte("mp3-bytes")},
			sink:         &stubSink{available: true, playErr: model.ErrUnavailable},
			wantFallback: true,
			wantLang:     "fr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBSpeech()
			userRepo := new(mocks.UserRepository)
			userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
				Return(user, nil).Once()

			svc := NewSpeechService(db, userRepo, tt.synth, tt.sink)

			got, err := svc.Speak(ctx, userID, "bonjour")
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, got.Available)
			assert.Equal(t, tt.wantLang, got.Language)
			assert.NotEmpty(t, got.Message)
			if tt.wantFallback {
				assert.Contains(t, got.Fallback, "bonjour")
			}
			if tt.wantAvailable {
				require.Len(t, tt.sink.played, 1)
				assert.Equal(t, []byte("mp3-bytes"), tt.sink.played[0])
				assert.Equal(t, "fr", tt.synth.lastLang)
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func Test_speechService_Speak_UnknownUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSpeech()
	userID := uuid.New()

	userRepo := new(mocks.UserRepository)
	userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
		Return(nil, model.ErrNotFound).Once()

	svc := NewSpeechService(db, userRepo, &stubSynthesizer{}, &stubSink{available: true})

	_, err := svc.Speak(ctx, userID, "bonjour")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
