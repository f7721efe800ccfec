package middleware

import "net/http"

// Chain applies middlewares so they execute in the order given:
// Chain(mux, RequestLogging, Auth(...)) logs first, then resolves auth.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
