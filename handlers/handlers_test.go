package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/HAMZAOUI-AMENY/devops-api/app"
	"github.com/HAMZAOUI-AMENY/devops-api/config"
	"github.com/HAMZAOUI-AMENY/devops-api/internal/observability"
	"github.com/HAMZAOUI-AMENY/devops-api/services/pricing"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestDeps builds a Dependencies container without touching the
// environment
func newTestDeps(t *testing.T) *app.Dependencies {
	t.Helper()

	logger := zap.NewNop()
	return &app.Dependencies{
		Config: &config.Config{
			Environment: "test",
			Observability: config.ObservabilityConfig{
				LogLevel:       "error",
				LogFormat:      "json",
				MetricsEnabled: true,
			},
		},
		Logger:  logger,
		Metrics: observability.NewMetrics(),
		Pricing: pricing.NewService(logger),
	}
}

// decodeBody decodes a recorded JSON response body
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}
