package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/HAMZAOUI-AMENY/devops-api/utils"
	"go.uber.org/zap"
)

// Recovery returns a middleware that converts panics in downstream
// handlers into a generic JSON 500 response. The panic value and
// stack are logged; the client never sees them.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.String("request_id", GetRequestIDFromContext(r.Context())),
						zap.ByteString("stack", debug.Stack()))

					_ = utils.WriteInternalServerError(w, "An internal error occurred")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
