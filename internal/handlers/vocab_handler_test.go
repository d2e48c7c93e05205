// internal/handlers/vocab_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
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

func newVocabRouter(svc *mocks.MockVocabService) *chi.Mux {
	h := handlers.NewVocabHandler(svc, testLogger())
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Get("/api/v1/vocabulary", h.GetVocabulary)
	router.Post("/api/v1/vocabulary", h.PostVocabulary)
	router.Delete("/api/v1/vocabulary/{entry_id}", h.DeleteVocabulary)
	router.Post("/api/v1/words/search", h.SearchWord)
	return router
}

func TestVocabHandler_PostVocabulary(t *testing.T) {
	userID := uuid.New()

	validReq := model.CreateVocabularyRequest{
		Word:        "hola",
		Translation: "hello",
		Proficiency: 1.0,
	}
	createdEntry := &model.VocabularyEntry{
		EntryID:     uuid.New(),
		UserID:      userID,
		Word:        "hola",
		Translation: "hello",
		Language:    "Spanish",
		Proficiency: 1.0,
		CreatedAt:   time.Now(),
	}

	tests := []struct {
		name           string
		headers        map[string]string
		body           interface{}
		setupMock      func(svc *mocks.MockVocabService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:    "Success - valid request",
			headers: userHeader(userID.String()),
			body:    validReq,
			setupMock: func(svc *mocks.MockVocabService) {
				svc.On("CreateEntry", mock.Anything, userID, &validReq).
					Return(createdEntry, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - missing auth",
			headers:        nil,
			body:           validReq,
			setupMock:      func(svc *mocks.MockVocabService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Fail - malformed JSON body",
			headers:        userHeader(userID.String()),
			body:           `{"word": `,
			setupMock:      func(svc *mocks.MockVocabService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "Fail - missing word",
			headers:        userHeader(userID.String()),
			body:           model.CreateVocabularyRequest{Translation: "hello"},
			setupMock:      func(svc *mocks.MockVocabService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "Fail - proficiency out of range",
			headers:        userHeader(userID.String()),
			body:           model.CreateVocabularyRequest{Word: "hola", Translation: "hello", Proficiency: 7},
			setupMock:      func(svc *mocks.MockVocabService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:    "Fail - duplicate word",
			headers: userHeader(userID.String()),
			body:    validReq,
			setupMock: func(svc *mocks.MockVocabService) {
				svc.On("CreateEntry", mock.Anything, userID, &validReq).
					Return(nil, model.NewAppError("DUPLICATE_WORD", "This word is already in your vocabulary.", "word", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_WORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockVocabService(t)
			tt.setupMock(svc)
			router := newVocabRouter(svc)

			rec := doRequest(t, router, http.MethodPost, "/api/v1/vocabulary", tt.body, tt.headers)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				decodeErrorResponse(t, rec, tt.expectedCode)
			}
			if tt.expectedStatus == http.StatusCreated {
				var got model.VocabularyEntry
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, createdEntry.EntryID, got.EntryID)
				assert.Equal(t, "hola", got.Word)
			}
		})
	}
}

func TestVocabHandler_GetVocabulary(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the list newest first", func(t *testing.T) {
		svc := mocks.NewMockVocabService(t)
		entries := []*model.VocabularyEntry{
			{EntryID: uuid.New(), Word: "libro", Translation: "book"},
			{EntryID: uuid.New(), Word: "hola", Translation: "hello"},
		}
		svc.On("ListVocabulary", mock.Anything, userID).Return(entries, nil).Once()
		router := newVocabRouter(svc)

		rec := doRequest(t, router, http.MethodGet, "/api/v1/vocabulary", nil, userHeader(userID.String()))

		require.Equal(t, http.StatusOK, rec.Code)
		var got []model.VocabularyEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "libro", got[0].Word)
	})

	t.Run("empty vocabulary serializes as an empty array", func(t *testing.T) {
		svc := mocks.NewMockVocabService(t)
		svc.On("ListVocabulary", mock.Anything, userID).Return(nil, nil).Once()
		router := newVocabRouter(svc)

		rec := doRequest(t, router, http.MethodGet, "/api/v1/vocabulary", nil, userHeader(userID.String()))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestVocabHandler_DeleteVocabulary(t *testing.T) {
	userID := uuid.New()
	entryID := uuid.New()

	tests := []struct {
		name           string
		path           string
		setupMock      func(svc *mocks.MockVocabService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success - entry deleted",
			path: fmt.Sprintf("/api/v1/vocabulary/%s", entryID),
			setupMock: func(svc *mocks.MockVocabService) {
				svc.On("DeleteEntry", mock.Anything, userID, entryID).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Fail - malformed entry id",
			path:           "/api/v1/vocabulary/not-a-uuid",
			setupMock:      func(svc *mocks.MockVocabService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_URL_PARAM",
		},
		{
			name: "Fail - entry not found",
			path: fmt.Sprintf("/api/v1/vocabulary/%s", entryID),
			setupMock: func(svc *mocks.MockVocabService) {
				svc.On("DeleteEntry", mock.Anything, userID, entryID).Return(model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockVocabService(t)
			tt.setupMock(svc)
			router := newVocabRouter(svc)

			rec := doRequest(t, router, http.MethodDelete, tt.path, nil, userHeader(userID.String()))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				decodeErrorResponse(t, rec, tt.expectedCode)
			}
		})
	}
}

func TestVocabHandler_SearchWord(t *testing.T) {
	userID := uuid.New()

	t.Run("found word reports source and translation", func(t *testing.T) {
		svc := mocks.NewMockVocabService(t)
		translation := "water"
		svc.On("LookupWord", mock.Anything, userID, "agua").
			Return(&model.LookupWordResponse{
				Word:        "agua",
				Exists:      true,
				Translation: &translation,
			}, nil).Once()
		router := newVocabRouter(svc)

		rec := doRequest(t, router, http.MethodPost, "/api/v1/words/search",
			model.LookupWordRequest{Word: "agua"}, userHeader(userID.String()))

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.LookupWordResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.Exists)
		require.NotNil(t, got.Translation)
		assert.Equal(t, "water", *got.Translation)
	})

	t.Run("missing word in body is rejected", func(t *testing.T) {
		svc := mocks.NewMockVocabService(t)
		router := newVocabRouter(svc)

		rec := doRequest(t, router, http.MethodPost, "/api/v1/words/search",
			model.LookupWordRequest{}, userHeader(userID.String()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		decodeErrorResponse(t, rec, "VALIDATION_ERROR")
	})
}
