// internal/handlers/stats_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/service"
	"lingualearn/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
	logger  *slog.Logger
}

func NewStatsHandler(s service.StatsService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{
		service: s,
		logger:  logger,
	}
}

// GetStatistics returns learning statistics for the authenticated user.
func (h *StatsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStatistics"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	stats, err := h.service.GetStatistics(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting statistics in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Statistics returned", slog.Int64("total_words", stats.TotalWords))
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
