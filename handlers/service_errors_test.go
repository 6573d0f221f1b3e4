package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HAMZAOUI-AMENY/devops-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// brokenWriter fails every body write, as when the client has gone away
type brokenWriter struct {
	header http.Header
	status int
}

func (b *brokenWriter) Header() http.Header {
	if b.header == nil {
		b.header = http.Header{}
	}
	return b.header
}

func (b *brokenWriter) WriteHeader(status int)    { b.status = status }
func (b *brokenWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestHandleServiceError(t *testing.T) {
	t.Run("invalid input maps to 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleServiceError(w, services.NewInvalidInputError("Invalid item ID"), zap.NewNop())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "invalid_input", body["error"])
		assert.Equal(t, "Invalid item ID", body["message"])
	})

	t.Run("malformed request maps to 422 with details", func(t *testing.T) {
		w := httptest.NewRecorder()
		err := services.NewMalformedRequestError("Validation failed",
			map[string]interface{}{"Name": "Name is required"})
		HandleServiceError(w, err, zap.NewNop())

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "malformed_request", body["error"])
		assert.Contains(t, body["details"].(map[string]interface{}), "Name")
	})

	t.Run("internal error maps to 500 without leaking the cause", func(t *testing.T) {
		w := httptest.NewRecorder()
		err := services.NewInternalError("pricing failed", errors.New("overflow"))
		HandleServiceError(w, err, zap.NewNop())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "internal_error", body["error"])
		assert.Equal(t, "An internal error occurred", body["message"])
		assert.NotContains(t, w.Body.String(), "overflow")
	})

	t.Run("plain errors are treated as internal", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleServiceError(w, errors.New("boom"), zap.NewNop())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal_error", decodeBody(t, w)["error"])
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleServiceError(w, nil, zap.NewNop())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestRespondOK(t *testing.T) {
	t.Run("writes the payload as JSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		respondOK(w, map[string]string{"status": "ok"}, zap.NewNop())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", decodeBody(t, w)["status"])
	})

	t.Run("logs encode failures as internal faults", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		logger := zap.New(core)

		w := &brokenWriter{}
		respondOK(w, map[string]string{"status": "ok"}, logger)

		assert.Equal(t, http.StatusOK, w.status)
		require.Equal(t, 1, logs.Len())

		entry := logs.All()[0]
		assert.Equal(t, "failed to write response", entry.Message)

		logged, ok := entry.ContextMap()["error"].(string)
		require.True(t, ok)
		assert.Contains(t, logged, "response encoding failed")
		assert.Contains(t, logged, "connection reset")
	})
}
