package handlers

import (
	"net/http"

	"github.com/HAMZAOUI-AMENY/devops-api/app"
)

// Root returns the greeting handler for GET /
func Root(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deps.Logger.Info("root endpoint called")
		respondOK(w, map[string]string{"message": "Hello, DevOps!"}, deps.Logger)
	}
}

// HealthCheck returns a simple health check handler
func HealthCheck(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deps.Logger.Info("health check called")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
