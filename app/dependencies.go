package app

import (
	"context"

	"github.com/HAMZAOUI-AMENY/devops-api/config"
	"github.com/HAMZAOUI-AMENY/devops-api/internal/observability"
	"github.com/HAMZAOUI-AMENY/devops-api/services/pricing"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	Logger *zap.Logger

	// Metrics is the shared request accumulator. It is the only
	// mutable state in the process and is mutated once per request
	// by the instrumentation middleware.
	Metrics *observability.Metrics

	// Services
	Pricing *pricing.Service
}

// NewDependencies creates and wires up all application dependencies
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:  cfg,
		Logger:  logger,
		Metrics: observability.NewMetrics(),
		Pricing: pricing.NewService(logger),
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	// Sync logger
	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	return nil
}
