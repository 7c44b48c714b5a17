package middleware

import "net/http"

// Chain applies middleware so they execute in the order given:
//
//	handler := Chain(mux,
//	    Config(cfg),      // executes first
//	    NonceMiddleware,  // executes second
//	)
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
