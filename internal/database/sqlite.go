package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/astrolab/aspectra/internal/ingest"
)

const createSQLiteTableSQL = `
CREATE TABLE IF NOT EXISTS longitudes (
    time   TEXT NOT NULL,
    body   TEXT NOT NULL,
    degree REAL NOT NULL,
    PRIMARY KEY (time, body)
);`

// sqliteArchive stores samples in a local SQLite file.
type sqliteArchive struct {
	db *sql.DB
}

func openSQLite(path string) (Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite archive %s: %w", path, err)
	}
	if _, err := db.Exec(createSQLiteTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing longitudes table: %w", err)
	}
	return &sqliteArchive{db: db}, nil
}

func (a *sqliteArchive) StoreSamples(ctx context.Context, samples []ingest.Sample) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO longitudes (time, body, degree) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range samples {
		if _, err := stmt.ExecContext(ctx, s.Date.UTC().Format(time.RFC3339), s.Body, s.Degree); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting sample: %w", err)
		}
	}
	return tx.Commit()
}

func (a *sqliteArchive) FetchRange(ctx context.Context, start, end time.Time) (*ingest.Table, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT time, body, degree FROM longitudes WHERE time >= ? AND time <= ? ORDER BY body, time`,
		start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("querying samples: %w", err)
	}
	defer rows.Close()

	var samples []ingest.Sample
	for rows.Next() {
		var ts, body string
		var degree float64
		if err := rows.Scan(&ts, &body, &degree); err != nil {
			return nil, fmt.Errorf("scanning sample: %w", err)
		}
		date, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing archived timestamp %q: %w", ts, err)
		}
		samples = append(samples, ingest.Sample{Date: date.UTC(), Body: body, Degree: degree})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}

	return ingest.FromSamples(samples)
}

func (a *sqliteArchive) Close() error {
	return a.db.Close()
}
