package httpx

import (
	"net/http"
	"runtime/debug"

	"libfinder/internal/logger"
)

// RecoveryMiddleware turns a handler panic into a 500 envelope. Install it
// inside AccessLogMiddleware so it can tell whether a response was already
// started.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.L().Error("panic_recovered",
				"request_id", RequestIDFrom(r),
				"path", r.URL.Path,
				"panic", v,
				"stack", string(debug.Stack()),
			)
			if rec, ok := w.(*statusRecorder); ok && rec.committed() {
				return
			}
			JSONError(w, r, http.StatusInternalServerError, CodeInternal, "Internal server error", nil)
		}()
		next.ServeHTTP(w, r)
	})
}
