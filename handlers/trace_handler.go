package handlers

import (
	"fmt"
	"net/http"

	"github.com/HAMZAOUI-AMENY/devops-api/app"
	"go.uber.org/zap"
)

// traceResponse is the payload returned by GET /trace-example/{user_id}
type traceResponse struct {
	UserID  int    `json:"user_id"`
	Message string `json:"message"`
}

// TraceExample handles GET /trace-example/{user_id}.
// No validation is applied to the user ID beyond integer parsing.
func TraceExample(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIntParam(r, "user_id")
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		deps.Logger.Info("tracing request for user", zap.Int("user_id", userID))

		respondOK(w, traceResponse{
			UserID:  userID,
			Message: fmt.Sprintf("Hello user %d!", userID),
		}, deps.Logger)
	}
}
