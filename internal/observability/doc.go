// Package observability provides structured logging and metrics
// for the DevOps API.
//
// This package implements:
//   - Structured logging (zap-based), configured from the environment
//   - Prometheus metrics collection on a private registry
//   - The text-exposition handler served at /metrics
//
// The metrics accumulator is injected into the request pipeline at
// construction time; nothing in this package is process-global.
package observability
