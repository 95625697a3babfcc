package utils

import "net/http"

// Middleware wraps a handler with extra behavior.
type Middleware func(http.Handler) http.Handler

// ApplyMiddleware chains middlewares around h; the first argument ends up
// outermost.
func ApplyMiddleware(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
