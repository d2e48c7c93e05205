package middleware

import (
	"context"
	"log"
	"net/http"

	"lingualearn/internal/model"
	"lingualearn/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware is a development and test shim: it takes the
// user ID from the X-User-ID header without touching the database and
// puts it in the context the same way SessionAuthMiddleware would.
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			log.Println("[DEV AUTH] Failed: X-User-ID header missing")
			webutil.RespondWithJSON(w, http.StatusUnauthorized, model.APIErrorResponse{
				Error: model.ErrorDetail{Code: "UNAUTHORIZED", Message: "[DEV] Missing X-User-ID header"},
			}, nil)
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			log.Printf("[DEV AUTH] Failed: invalid X-User-ID format: %s", userIDStr)
			webutil.RespondWithJSON(w, http.StatusUnauthorized, model.APIErrorResponse{
				Error: model.ErrorDetail{Code: "UNAUTHORIZED", Message: "[DEV] Invalid X-User-ID format"},
			}, nil)
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
