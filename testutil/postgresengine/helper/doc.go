// Package helper provides test utilities for the Postgres journal engine:
// charter scoped arrange helpers, cleanup, and spies for the journal's
// logging, metrics, and tracing hooks.
package helper
