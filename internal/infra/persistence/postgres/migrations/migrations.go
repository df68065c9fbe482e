// Package migrations embeds the goose SQL migrations applied at startup.
package migrations

import "embed"

// Migrations holds the versioned schema files goose applies in order.
//
//go:embed *.sql
var Migrations embed.FS
