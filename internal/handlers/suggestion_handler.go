// internal/handlers/suggestion_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/service"
	"lingualearn/internal/webutil"
)

type SuggestionHandler struct {
	service service.SuggestionService
	logger  *slog.Logger
}

func NewSuggestionHandler(s service.SuggestionService, logger *slog.Logger) *SuggestionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SuggestionHandler{
		service: s,
		logger:  logger,
	}
}

// GetToday returns today's suggestion set for the authenticated user,
// generating it on first access of the day.
func (h *SuggestionHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetToday"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	suggestions, err := h.service.GetDailySuggestions(r.Context(), userID, time.Now())
	if err != nil {
		logger.Error("Error getting daily suggestions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if suggestions == nil {
		suggestions = []*model.DailySuggestion{}
	}
	logger.Info("Daily suggestions returned", slog.Int("count", len(suggestions)))
	webutil.RespondWithJSON(w, http.StatusOK, suggestions, logger)
}
