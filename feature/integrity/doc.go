// Package integrity provides health checks for the catalogue and its backends.
//
// # Checks Provided
//
//   - Catalog: Validates every descriptor and reconciles the catalogue against the module table
//     (descriptors without a module, modules without a descriptor).
//   - Storage: Checks that the bucket and its catalog/ and reports/ folders exist.
//   - Server: Validates that the run history tables have their expected columns.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/catalog : Runs the catalogue check.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/server : Runs the server schema check.
package integrity
