package migrations

import "embed"

// FS contains embedded PostgreSQL migrations for item storage.
//
//go:embed *.sql
var FS embed.FS
