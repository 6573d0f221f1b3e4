package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/HAMZAOUI-AMENY/devops-api/app"
	"github.com/HAMZAOUI-AMENY/devops-api/config"
	"github.com/HAMZAOUI-AMENY/devops-api/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	// Setup
	os.Setenv("ENVIRONMENT", "test")
	os.Setenv("LOG_LEVEL", "error")

	// Run tests
	code := m.Run()

	// Teardown
	os.Exit(code)
}

func TestApplicationStartup(t *testing.T) {
	t.Run("successful startup with real wiring", func(t *testing.T) {
		ctx := context.Background()

		cfg, err := config.New(ctx)
		require.NoError(t, err)

		logger := zaptest.NewLogger(t)

		deps, err := app.NewDependencies(ctx, cfg, logger)
		require.NoError(t, err)
		defer deps.Close(ctx)

		handler := routes.SetupRoutes(deps)
		require.NotNil(t, handler)

		// Create test server
		ts := httptest.NewServer(handler)
		defer ts.Close()

		// Test health check endpoint
		resp, err := http.Get(ts.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		err = json.NewDecoder(resp.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "ok", body["status"])
	})
}
