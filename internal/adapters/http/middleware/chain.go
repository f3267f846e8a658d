package middleware

import (
	"net/http"
	"slices"
)

// Chain folds middlewares into one, outermost first. The server builds its
// catalog pipeline with it:
//
//	Chain(Recovery(logger), RequestID(), CorrelationID(),
//		OpenTelemetry(metrics), Logging(logger), Timeout(writeTimeout))
//
// so a panic inside a saga step is still caught by Recovery and every log
// line written by Logging already carries the request and correlation IDs.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for _, mw := range slices.Backward(middlewares) {
			handler = mw(handler)
		}
		return handler
	}
}
