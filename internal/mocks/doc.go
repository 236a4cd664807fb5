// Package mocks provides in-memory implementations of the store
// interfaces for use in tests. They enforce the same error contracts as
// the postgres implementations, including uniqueness of emails and of
// album/photo association pairs.
package mocks
