// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure: listen port, optional API key and shutdown timeout.
package server
