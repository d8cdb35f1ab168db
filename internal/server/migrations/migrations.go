// Package migrations embeds the goose SQL migrations that are applied at
// startup, before the first request is served.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
