package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/notesvc/internal/config"
)

// Setup connects to the test database and opens a transaction that is
// rolled back when the test finishes. Paths are relative to the calling
// test package.
func Setup(t *testing.T) (*sql.DB, *sql.Tx) {
	t.Helper()

	const projRoot = "../../"

	if err := env.Load(projRoot + ".env.testing"); err != nil {
		t.Fatalf("failed to load environment file: %v", err)
	}

	cfg, err := config.Load(projRoot + "config.json")
	if err != nil {
		t.Fatalf("failed to load config file: %v", err)
	}

	conn, err := NewPostgresDB(context.Background(), cfg.DB)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	tx, err := conn.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Logf("failed to rollback transaction: %v", err)
		}
		if err := conn.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})

	return conn, tx
}
