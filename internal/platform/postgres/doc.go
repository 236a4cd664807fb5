// Package postgres provides PostgreSQL implementations of the store
// interfaces using database/sql with the pgx stdlib driver. Constraint
// violations reported by the driver are translated into the store error
// taxonomy so the database remains the authoritative uniqueness guard.
package postgres
