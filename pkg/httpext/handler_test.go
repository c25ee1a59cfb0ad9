package httpext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type teapotError struct{}

func (teapotError) Error() string   { return "short and stout" }
func (teapotError) HTTPStatus() int { return http.StatusTeapot }

func TestHandle(t *testing.T) {
	tests := []struct {
		name           string
		handler        HandlerFunc
		expectedStatus int
		expectedError  string
	}{
		{
			name: "success passes through",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				w.WriteHeader(http.StatusAccepted)
				return nil
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name: "plain error becomes 500",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				return errors.New("boom")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal Server Error",
		},
		{
			name: "wrapped status coder picks the status",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				return fmt.Errorf("brewing: %w", teapotError{})
			},
			expectedStatus: http.StatusTeapot,
			expectedError:  "I'm a teapot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Handle(tt.handler).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError == "" {
				return
			}

			var response ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tt.expectedError, response.Error)
		})
	}
}

func TestHandleLogsWithRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	requestLogger := zerolog.New(&buf).With().Str("request_id", "req-123").Logger()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(requestLogger.WithContext(req.Context()))

	w := httptest.NewRecorder()
	Handle(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("boom")
	}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "Unhandled request error", entry["message"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
}
