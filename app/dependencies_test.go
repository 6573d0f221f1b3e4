package app

import (
	"context"
	"testing"

	"github.com/HAMZAOUI-AMENY/devops-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewDependencies(t *testing.T) {
	cfg := &config.Config{
		Environment: "test",
		Observability: config.ObservabilityConfig{
			LogLevel:       "error",
			LogFormat:      "json",
			MetricsEnabled: true,
		},
	}
	logger := zaptest.NewLogger(t)

	deps, err := NewDependencies(context.Background(), cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, deps)

	assert.Same(t, cfg, deps.Config)
	assert.Same(t, logger, deps.Logger)
	assert.NotNil(t, deps.Metrics)
	assert.NotNil(t, deps.Pricing)

	assert.NoError(t, deps.Close(context.Background()))
}
