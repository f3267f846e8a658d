// Package middleware holds the inbound pipeline wrapped around the catalog
// admin routes.
//
// Requests pass Recovery, RequestID, CorrelationID, OpenTelemetry, Logging
// and Timeout before reaching a handler. The request logger stored in the
// context carries the request and correlation IDs, so the saga log lines of a
// half-compensated delete share them with the access log of the request that
// started it.
package middleware
