// Package loader provides the plugin-like feature loading system.
//
// It covers two kinds of features:
//
//   - Catalogue modules: one module per feature descriptor, registered at compile time in a
//     Table keyed by descriptor id. The Loader flattens the catalogue, loads every module and
//     calls its optional Init hook.
//   - HTTP features: route groups (catalog, bootstrap, integrity) mounted on the Fiber app
//     through the Manager.
//
// # Module Table
//
//	type Module interface {
//	    Name() string
//	}
//
//	type Initializer interface {
//	    Init(ctx context.Context) error
//	}
//
// A module is loaded by calling its Factory. Modules that need start-up work also implement
// Initializer; modules that don't are reported as loaded.
//
// # Loader
//
// Run starts one task per descriptor and waits for all of them. Failures (missing module,
// factory error, Init error, panic) are logged and recorded in the Report; they never cancel
// other tasks. A Report always satisfies Total == Succeeded + Failed.
//
// # Manager
//
// The Manager holds the HTTP features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
package loader
