// Package database archives normalized longitude samples so repeated
// chart runs don't need the original export file. Two backends: a
// TimescaleDB/Postgres hypertable for shared deployments and a local
// SQLite file for single-user work. The DSN selects the backend.
package database

import (
	"context"
	"strings"
	"time"

	"github.com/astrolab/aspectra/internal/ingest"
)

// Archive stores and retrieves longitude samples.
type Archive interface {
	// StoreSamples upserts a batch of samples.
	StoreSamples(ctx context.Context, samples []ingest.Sample) error
	// FetchRange reads every sample with start <= date <= end back into
	// a table. Returns ingest.ErrNoData when the range is empty.
	FetchRange(ctx context.Context, start, end time.Time) (*ingest.Table, error)
	Close() error
}

// Open connects to the archive selected by the DSN: postgres:// (or
// postgresql://) opens the TimescaleDB backend, anything else is treated
// as a SQLite file path.
func Open(dsn string) (Archive, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return openTimescale(dsn)
	}
	return openSQLite(dsn)
}

// LongitudeRecord is the archive row shape.
type LongitudeRecord struct {
	Time   time.Time `gorm:"column:time;primaryKey"`
	Body   string    `gorm:"column:body;primaryKey"`
	Degree float64   `gorm:"column:degree;not null"`
}

// TableName implements GORM's Tabler for the archive table.
func (LongitudeRecord) TableName() string {
	return "longitudes"
}

func recordsFrom(samples []ingest.Sample) []LongitudeRecord {
	out := make([]LongitudeRecord, len(samples))
	for i, s := range samples {
		out[i] = LongitudeRecord{Time: s.Date, Body: s.Body, Degree: s.Degree}
	}
	return out
}
