// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package, the schema
// migrations embedded from migrations/, and mapping of Postgres error codes
// onto store errors.
package postgres
