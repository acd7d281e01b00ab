// Package testdb provides helpers for Postgres integration tests.
//
// Tests obtain a migrated database with GetTestDBWithT, which skips the test
// when no database URL is configured, and isolate their writes with WithTx,
// which rolls the transaction back when the test function returns.
package testdb
