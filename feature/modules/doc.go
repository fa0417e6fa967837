// Package modules is the static registration table of catalogue modules.
//
// Every descriptor in the feature catalogue has one module here, keyed by descriptor id.
// Modules are grouped one file per catalogue category, matching the descriptor's file field.
// The subsystems the features describe live elsewhere; these modules only take part in the
// start-up lifecycle (load, then optional Init).
package modules
