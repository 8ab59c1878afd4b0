package migrations

import "embed"

// FS contains embedded SQLite migrations for item storage.
//
//go:embed *.sql
var FS embed.FS
