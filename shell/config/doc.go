// Package config provides configuration helpers for the charter engine:
// PostgreSQL connections, OpenTelemetry providers and collectors, and the
// operational policies (tax, compliance, approval, billing terms).
//
// Configuration is read from the environment, with a .env file loaded via
// godotenv when present. Every setting has a default so a bare environment
// still yields a working local setup.
//
// This package is part of the shell (infrastructure) layer.
package config
