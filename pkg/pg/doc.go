// Package pg bootstraps the Postgres layer behind the usage stores: pool
// construction with retry, schema migrations via goose, and a health probe.
// The API is deliberately thin; everything interesting happens in pgx.
package pg
