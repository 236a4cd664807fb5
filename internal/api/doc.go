// Package api provides the HTTP handlers for the photo API: registration,
// login, token refresh, and the owner-scoped album and photo endpoints.
// Handlers stay thin: decode, validate, call the service, map the result
// onto the response envelope.
package api
