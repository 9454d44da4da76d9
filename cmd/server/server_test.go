package main

import (
	"database/sql"
	"testing"

	"github.com/lndn-movers/removals/internal/migrations"
	"github.com/lndn-movers/removals/internal/seed"

	_ "modernc.org/sqlite"
)

func newTestServer(t *testing.T) *server {
	t.Helper()

	database, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if _, err := seed.Run(database); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	return &server{db: database}
}

func seedQuoteRow(t *testing.T, db *sql.DB, ref, jobID, createdAt string, totalCost float64) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO quotes (
			quote_ref, job_id, created_at, total_volume, num_heavy_items,
			vehicle_type, crew_size, zone, total_cost, inputs_json, result_json
		) VALUES (?, ?, ?, 5.0, 1, 'Medium Van', 2, 'local', ?, '{}', '{}')
	`, ref, jobID, createdAt, totalCost)
	if err != nil {
		t.Fatalf("failed to seed quote: %v", err)
	}
}
