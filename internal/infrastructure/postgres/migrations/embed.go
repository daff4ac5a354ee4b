// Package migrations embebe los scripts SQL (formato goose) del esquema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
