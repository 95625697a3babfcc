package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/pvolkova/bookshelf-api/internal/api/apperr"
	"github.com/pvolkova/bookshelf-api/internal/logger"
)

// Recovery turns a handler panic into an unknown_error envelope. The panic
// value and stack stay in the log.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				log := logger.Get()
				log.Error().
					Str("request_id", GetRequestID(r)).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msgf("panic: %v", v)

				apperr.Write(w, r, apperr.E(apperr.Unknown,
					"Unknown internal server error occurred", fmt.Sprint(v)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
