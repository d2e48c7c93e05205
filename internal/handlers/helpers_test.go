// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"lingualearn/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger discards everything; handler log output is noise in tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// doRequest runs one request against the router and returns the recorder.
// A string body is sent raw so malformed-JSON cases stay expressible.
func doRequest(t *testing.T, router *chi.Mux, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reqBody = strings.NewReader(raw)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBody = bytes.NewBuffer(b)
		}
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeErrorResponse unmarshals the error envelope and checks the code.
func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, wantCode string) {
	t.Helper()

	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp), "Failed to decode error response")
	assert.Equal(t, wantCode, errResp.Error.Code)
	assert.NotEmpty(t, errResp.Error.Message)
}

func userHeader(id string) map[string]string {
	return map[string]string{"X-User-ID": id}
}
