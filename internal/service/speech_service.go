package service

import (
	"context"
	"strings"

	"lingualearn/internal/audio"
	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/repository"
	"lingualearn/internal/tts"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpeechService interface {
	Speak(ctx context.Context, userID uuid.UUID, word string) (*model.SpeakResponse, error)
}

type speechService struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	synthesizer tts.Synthesizer
	sink        audio.Sink
}

func NewSpeechService(db *gorm.DB, userRepo repository.UserRepository, synthesizer tts.Synthesizer, sink audio.Sink) SpeechService {
	return &speechService{
		db:          db,
		userRepo:    userRepo,
		synthesizer: synthesizer,
		sink:        sink,
	}
}

// Speak synthesizes and plays the word in the user's target language.
// TTS and playback are best effort: any failure degrades to an
// "unavailable" result with a textual fallback instead of failing the
// request.
func (s *speechService) Speak(ctx context.Context, userID uuid.UUID, word string) (*model.SpeakResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())
	word = strings.TrimSpace(word)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	langCode := tts.LanguageCode(user.TargetLanguage)
	resp := &model.SpeakResponse{
		Word:     word,
		Language: langCode,
	}

	if !s.sink.Available() {
		logger.Info("Audio playback unavailable, returning textual fallback")
		resp.Message = "Audio playback is not available on this system."
		resp.Fallback = "Read the word aloud: " + word
		return resp, nil
	}

	audioBytes, err := s.synthesizer.Synthesize(ctx, word, langCode)
	if err != nil {
		logger.Warn("TTS synthesis failed", "error", err, "word", word)
		resp.Message = "Pronunciation audio is temporarily unavailable."
		resp.Fallback = "Read the word aloud: " + word
		return resp, nil
	}

	if err := s.sink.Play(ctx, audioBytes); err != nil {
		logger.Warn("Audio playback failed", "error", err, "sink", s.sink.Name())
		resp.Message = "Pronunciation audio could not be played."
		resp.Fallback = "Read the word aloud: " + word
		return resp, nil
	}

	resp.Available = true
	resp.Message = "Playing pronunciation."
	return resp, nil
}
