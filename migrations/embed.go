// Package migrations embeds the goose SQL migrations so the server binary
// can apply them at startup without a filesystem dependency.
package migrations

import "embed"

// FS holds the embedded SQL migration files.
//
//go:embed *.sql
var FS embed.FS
