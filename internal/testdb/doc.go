// Package testdb provides helpers for PostgreSQL integration tests.
//
// Tests that need a real database call GetTestDBWithT, which skips the test
// when DATABASE_URL is not set, applies the embedded migrations, and closes
// the pool at cleanup. WithTx runs a test body inside a transaction that is
// always rolled back, so tests do not leak rows into each other.
package testdb
