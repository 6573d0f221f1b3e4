package handlers

import (
	"net/http"

	"github.com/HAMZAOUI-AMENY/devops-api/app"
	"go.uber.org/zap"
)

// resultResponse is the payload returned by the calculator endpoints
type resultResponse struct {
	Result float64 `json:"result"`
}

// Sum handles GET /sum?a=..&b=..
func Sum(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := parseFloatQuery(r, "a")
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}
		b, err := parseFloatQuery(r, "b")
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		result := a + b
		deps.Logger.Info("summing numbers",
			zap.Float64("a", a),
			zap.Float64("b", b),
			zap.Float64("result", result))

		respondOK(w, resultResponse{Result: result}, deps.Logger)
	}
}

// Multiply handles GET /multiply?a=..&b=..
func Multiply(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := parseFloatQuery(r, "a")
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}
		b, err := parseFloatQuery(r, "b")
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		result := a * b
		deps.Logger.Info("multiplying numbers",
			zap.Float64("a", a),
			zap.Float64("b", b),
			zap.Float64("result", result))

		respondOK(w, resultResponse{Result: result}, deps.Logger)
	}
}
