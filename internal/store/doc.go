// Package store defines the persistence interfaces for the photo API and
// the shared error taxonomy returned by their implementations. Handlers and
// services depend on these interfaces, never on a concrete database, so
// tests can substitute in-memory doubles.
package store
