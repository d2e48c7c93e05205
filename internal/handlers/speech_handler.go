// internal/handlers/speech_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/service"
	"lingualearn/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type SpeechHandler struct {
	service service.SpeechService
	logger  *slog.Logger
}

func NewSpeechHandler(s service.SpeechService, logger *slog.Logger) *SpeechHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpeechHandler{
		service: s,
		logger:  logger,
	}
}

// Speak plays the pronunciation of a word. Playback failure is reported
// in the body, not as an HTTP error.
func (h *SpeechHandler) Speak(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Speak"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.SpeakRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))

			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.service.Speak(r.Context(), userID, req.Word)
	if err != nil {
		logger.Error("Error speaking word in service", slog.Any("error", err), slog.String("word", req.Word))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Speak request handled", slog.String("word", result.Word), slog.Bool("available", result.Available))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
