// Package shared holds the request/response plumbing common to all API
// handlers: the response envelope, JSON decoding, request validation, and
// the context keys the auth middleware populates.
package shared
