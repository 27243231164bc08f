// Package migrations embeds the goose SQL migrations for the server
// schema, one directory per supported database dialect.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
