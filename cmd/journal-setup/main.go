// Package main provides the schema setup tool for the charter journal database.
// It creates the journal and snapshot tables with the indexes the Postgres
// engine relies on, and can recreate both from scratch for a clean environment.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arrowlimo/arrow-limo-sub005/shell/config"
)

const (
	defaultJournalTable  = "charter_journal"
	defaultSnapshotTable = "charter_snapshots"
)

// Config holds the command-line configuration for the setup tool.
type Config struct {
	DSN           string
	JournalTable  string
	SnapshotTable string
	DropFirst     bool
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	if pingErr := pool.Ping(ctx); pingErr != nil {
		log.Fatalf("Failed to connect to database: %v", pingErr)
	}

	if cfg.DropFirst {
		log.Printf("Dropping tables %s and %s", cfg.JournalTable, cfg.SnapshotTable)

		if dropErr := execAll(ctx, pool, dropStatements(cfg)); dropErr != nil {
			log.Fatalf("Failed to drop tables: %v", dropErr)
		}
	}

	log.Printf("Creating journal table %s with indexes", cfg.JournalTable)
	log.Printf("Creating snapshot table %s", cfg.SnapshotTable)

	if createErr := execAll(ctx, pool, createStatements(cfg)); createErr != nil {
		log.Fatalf("Failed to create schema: %v", createErr)
	}

	log.Printf("Schema ready")
}

func parseFlags() Config {
	var (
		dsn           = flag.String("dsn", "", "Database DSN (default: CHARTER_DB_DSN or the local development default)")
		journalTable  = flag.String("journal-table", defaultJournalTable, "Name of the journal table")
		snapshotTable = flag.String("snapshot-table", defaultSnapshotTable, "Name of the snapshot table")
		dropFirst     = flag.Bool("drop-first", false, "Drop existing tables before creating them")
	)

	flag.Parse()

	resolvedDSN := *dsn
	if resolvedDSN == "" {
		resolvedDSN = config.PostgresCharterDSN()
	}

	return Config{
		DSN:           resolvedDSN,
		JournalTable:  *journalTable,
		SnapshotTable: *snapshotTable,
		DropFirst:     *dropFirst,
	}
}

// createStatements builds the DDL for the two tables. The journal's sequence
// number is generated by the database; appends never supply it. The GIN index
// with jsonb_path_ops carries the tag-containment queries.
func createStatements(cfg Config) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			sequence_number BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			occurred_at TIMESTAMPTZ NOT NULL,
			event_type TEXT NOT NULL,
			payload JSONB NOT NULL,
			metadata JSONB NOT NULL
		)`, cfg.JournalTable),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_event_type ON %[1]s (event_type)`, cfg.JournalTable),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_occurred_at ON %[1]s (occurred_at)`, cfg.JournalTable),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_payload_gin ON %[1]s USING gin (payload jsonb_path_ops)`,
			cfg.JournalTable),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_metadata_gin ON %[1]s USING gin (metadata jsonb_path_ops)`,
			cfg.JournalTable),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			projection_type TEXT NOT NULL,
			scope_hash TEXT NOT NULL,
			sequence_number BIGINT NOT NULL,
			data JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (projection_type, scope_hash)
		)`, cfg.SnapshotTable),
	}
}

func dropStatements(cfg Config) []string {
	return []string{
		fmt.Sprintf(`DROP TABLE IF EXISTS %s`, cfg.JournalTable),
		fmt.Sprintf(`DROP TABLE IF EXISTS %s`, cfg.SnapshotTable),
	}
}

func execAll(ctx context.Context, pool *pgxpool.Pool, statements []string) error {
	for _, statement := range statements {
		if _, err := pool.Exec(ctx, statement); err != nil {
			return err
		}
	}

	return nil
}
