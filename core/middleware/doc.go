// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: verifies HS256 bearer tokens and stores the user id in the request Locals.
//     Handlers read it with auth.UserID, so every operation is scoped to the caller
//     without any process-wide session state.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// These middleware components are registered globally in cmd/start.go.
package middleware
