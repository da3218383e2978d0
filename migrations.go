// Package studyshare holds the embedded SQL migrations applied by the migrate command.
package studyshare

import "embed"

// Migrations contains the goose migration files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
