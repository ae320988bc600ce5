// Package config provides PostgreSQL database configuration for journal testing.
//
// This package contains factory functions for creating database connections
// using the journal's supported PostgreSQL adapters (pgx.Pool, sql.DB, sqlx.DB)
// with a pre-configured test database DSN.
//
// The DSN defaults to a local test database and can be overridden with the
// CHARTER_TEST_DSN environment variable, which the integration tests also use
// as their gate: without it they skip.
package config
