// Package migrations holds the numbered history.db schema scripts.
package migrations

import "embed"

// FS holds the *.up.sql and *.down.sql scripts, applied in version order.
//
//go:embed *.sql
var FS embed.FS
