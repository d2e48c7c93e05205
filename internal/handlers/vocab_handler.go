// internal/handlers/vocab_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/service"
	"lingualearn/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type VocabHandler struct {
	service service.VocabService
	logger  *slog.Logger
}

func NewVocabHandler(s service.VocabService, logger *slog.Logger) *VocabHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabHandler{
		service: s,
		logger:  logger,
	}
}

// GetVocabulary returns the authenticated user's vocabulary, newest first.
func (h *VocabHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabulary"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	entries, err := h.service.ListVocabulary(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if entries == nil {
		entries = []*model.VocabularyEntry{}
	}
	logger.Info("Vocabulary listed successfully", slog.Int("count", len(entries)))
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

// PostVocabulary adds a word to the authenticated user's vocabulary.
func (h *VocabHandler) PostVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostVocabulary"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.CreateVocabularyRequest
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

	entry, err := h.service.CreateEntry(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating vocabulary entry in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary entry created successfully", slog.String("entry_id", entry.EntryID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, entry, logger)
}

// DeleteVocabulary removes an entry owned by the authenticated user.
func (h *VocabHandler) DeleteVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteVocabulary"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	entryIDStr := chi.URLParam(r, "entry_id")
	entryID, err := uuid.Parse(entryIDStr)
	if err != nil {
		logger.Warn("Invalid entry ID format in URL", slog.String("entry_id_str", entryIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "entry_id is not a valid identifier.", "entry_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("entry_id", entryID.String()))

	if err := h.service.DeleteEntry(r.Context(), userID, entryID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Vocabulary entry not found", slog.Any("error", err))
		} else {
			logger.Error("Error deleting vocabulary entry in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary entry deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// SearchWord looks a word up in the user's vocabulary and the built-in
// catalog for the user's target language.
func (h *VocabHandler) SearchWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SearchWord"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.LookupWordRequest
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

	result, err := h.service.LookupWord(r.Context(), userID, req.Word)
	if err != nil {
		logger.Error("Error looking up word in service", slog.Any("error", err), slog.String("word", req.Word))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word lookup completed", slog.String("word", req.Word), slog.Bool("exists", result.Exists))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
