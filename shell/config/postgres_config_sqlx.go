package config

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// PostgresSQLXCharterConfig creates a configured *sqlx.DB for the charter journal database.
func PostgresSQLXCharterConfig() *sqlx.DB {
	return buildSQLXDB(PostgresCharterDSN())
}

// PostgresSQLXReplicaConfig creates a configured *sqlx.DB for the read replica.
// It returns nil when no replica DSN is configured.
func PostgresSQLXReplicaConfig() *sqlx.DB {
	dsn := PostgresReplicaDSN()
	if dsn == "" {
		return nil
	}

	return buildSQLXDB(dsn)
}

func buildSQLXDB(dsn string) *sqlx.DB {
	const defaultMaxOpenConnections = 50
	const defaultMaxIdleConnections = 10
	const defaultMaxConnLifetime = time.Hour
	const defaultMaxConnIdleTime = time.Minute * 5

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection, error: ", err)
	}

	// Configure connection pool settings
	db.SetMaxOpenConns(defaultMaxOpenConnections)
	db.SetMaxIdleConns(defaultMaxIdleConnections)
	db.SetConnMaxLifetime(defaultMaxConnLifetime)
	db.SetConnMaxIdleTime(defaultMaxConnIdleTime)

	// Test the connection
	if pingErr := db.PingContext(context.Background()); pingErr != nil {
		log.Fatal("Failed to ping database, error: ", pingErr)
	}

	return db
}
