// Package gallery implements the owner-scoped album and photo operations.
// It is the enforcement point for resource ownership: every per-ID
// operation loads the persisted resource and denies access unless it
// belongs to the calling user.
package gallery
