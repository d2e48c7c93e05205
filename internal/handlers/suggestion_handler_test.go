// internal/handlers/suggestion_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"lingualearn/internal/handlers"
	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSuggestionRouter(svc *mocks.MockSuggestionService) *chi.Mux {
	h := handlers.NewSuggestionHandler(svc, testLogger())
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Get("/api/v1/suggestions/today", h.GetToday)
	return router
}

func TestSuggestionHandler_GetToday(t *testing.T) {
	userID := uuid.New()

	t.Run("returns today's set", func(t *testing.T) {
		svc := mocks.NewMockSuggestionService(t)
		set := []*model.DailySuggestion{
			{SuggestionID: uuid.New(), Word: "agua", Translation: "water", SuggestionDate: model.Day(time.Now())},
			{SuggestionID: uuid.New(), Word: "casa", Translation: "house", SuggestionDate: model.Day(time.Now())},
		}
		svc.On("GetDailySuggestions", mock.Anything, userID, mock.AnythingOfType("time.Time")).
			Return(set, nil).Once()
		router := newSuggestionRouter(svc)

		rec := doRequest(t, router, http.MethodGet, "/api/v1/suggestions/today", nil, userHeader(userID.String()))

		require.Equal(t, http.StatusOK, rec.Code)
		var got []model.DailySuggestion
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "agua", got[0].Word)
	})

	t.Run("missing auth is rejected", func(t *testing.T) {
		svc := mocks.NewMockSuggestionService(t)
		router := newSuggestionRouter(svc)

		rec := doRequest(t, router, http.MethodGet, "/api/v1/suggestions/today", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty set serializes as an empty array", func(t *testing.T) {
		svc := mocks.NewMockSuggestionService(t)
		svc.On("GetDailySuggestions", mock.Anything, userID, mock.AnythingOfType("time.Time")).
			Return(nil, nil).Once()
		router := newSuggestionRouter(svc)

		rec := doRequest(t, router, http.MethodGet, "/api/v1/suggestions/today", nil, userHeader(userID.String()))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}
