// internal/handlers/practice_handler.go
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

type PracticeHandler struct {
	service service.PracticeService
	logger  *slog.Logger
}

func NewPracticeHandler(s service.PracticeService, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeHandler{
		service: s,
		logger:  logger,
	}
}

// GetWords returns the pronunciation practice set for the user.
func (h *PracticeHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWords"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	words, err := h.service.GetPracticeWords(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting practice words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []model.PracticeWord{}
	}
	logger.Info("Practice words returned", slog.Int("count", len(words)))
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

// PostResult records one pronunciation attempt and adjusts proficiency.
func (h *PracticeHandler) PostResult(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostResult"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.PracticeResultRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))

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

	result, err := h.service.RecordResult(r.Context(), userID, req.Word, *req.Correct)
	if err != nil {
		logger.Error("Error recording practice result in service", slog.Any("error", err), slog.String("word", req.Word))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Practice result recorded", slog.String("word", result.Word), slog.Bool("in_vocabulary", result.InVocabulary))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
