// Package aurora exposes repo-level embedded assets, currently the database
// migration files consumed by the migrate command and integration tests.
package aurora

import "embed"

// Migrations holds the embedded goose migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
