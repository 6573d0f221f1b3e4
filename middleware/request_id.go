package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader is the header used to propagate request IDs
const requestIDHeader = "X-Request-Id"

// RequestID is a middleware that assigns every request a request ID.
// An ID supplied by the client is kept; otherwise a new UUID is
// generated. The ID is echoed back on the response and stored in the
// request context for downstream logging.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)

		ctx := WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
