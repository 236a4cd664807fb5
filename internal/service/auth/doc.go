// Package auth implements the token and credential services: issuing and
// validating JWT access and refresh tokens, and hashing and verifying
// passwords with bcrypt. Tokens are stateless; there is no revocation
// store, so a refresh token remains valid until it expires.
package auth
