// Package logger provides a structured logging facility based on Zap.
//
// It builds a development or production logger from configuration and attaches request
// context from Fiber handlers. Commands, HTTP handlers and the module loader all log through it.
//
// # Context Awareness
//
// Request logs carry the RayID (request ID) set by the rayid middleware. WithRayID reads it
// from the Fiber context so every log line of one request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
