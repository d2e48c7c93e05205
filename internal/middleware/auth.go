package middleware

import (
	"context"
	"errors"
	"net/http"

	"lingualearn/internal/config"
	"lingualearn/internal/model"
	"lingualearn/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionAuthMiddleware authenticates requests from the session cookie.
// The cookie value is a signed HS256 token carrying the user ID as its
// subject, the Go equivalent of a framework-signed session cookie.
func SessionAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			cookie, err := r.Cookie(cfg.Auth.CookieName)
			if err != nil {
				logger.Warn("Session auth failed: cookie missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.Auth.JWTSecret), nil
			})
			if err != nil {
				logger.Warn("Session auth failed: invalid token", "error", err)
				clearSessionCookie(w, cfg)
				appErr := model.NewAppError("INVALID_SESSION", "Your session is invalid or has expired. Please log in again.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || !token.Valid {
				logger.Warn("Session auth failed: unexpected claims type")
				clearSessionCookie(w, cfg)
				appErr := model.NewAppError("INVALID_SESSION", "Your session is invalid. Please log in again.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			subject, err := claims.GetSubject()
			if err != nil {
				logger.Warn("Session auth failed: subject claim missing", "error", err)
				appErr := model.NewAppError("INVALID_SESSION", "Your session is invalid. Please log in again.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("Session auth failed: invalid subject format", "subject", subject)
				appErr := model.NewAppError("INVALID_SESSION", "Your session is invalid. Please log in again.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext retrieves the authenticated user ID placed in the
// context by SessionAuthMiddleware.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Could not resolve the authenticated user.", "", model.ErrInternalServer)
	}
	return value, nil
}

func clearSessionCookie(w http.ResponseWriter, cfg *config.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
