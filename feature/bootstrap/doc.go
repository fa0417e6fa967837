// Package bootstrap runs the catalogue module loader and keeps its reports.
//
// The start command runs the loader once at start-up; the HTTP endpoints expose the
// result and allow re-runs. Concurrent re-runs with the same filter share one run.
//
// Reports are kept in memory, saved to the run history when a database is connected,
// and archived to the storage bucket under reports/<run-id>.json when storage is enabled.
// Persistence failures are logged and never fail a run.
//
// # HTTP Endpoints
//
//   - GET /bootstrap : Latest report of this process.
//   - POST /bootstrap/run : Run the loader (supports ?category= and ?priority=).
//   - GET /bootstrap/runs : Persisted runs (supports ?limit=).
//   - GET /bootstrap/runs/:id : One run by id.
package bootstrap
