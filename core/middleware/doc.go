// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation protecting every endpoint except the skipped prefixes.
//   - RayID: a unique request id (RayID) for every incoming request, stored in the
//     context locals and echoed in the X-Ray-ID response header for tracing.
package middleware
