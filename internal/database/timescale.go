package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/astrolab/aspectra/internal/ingest"
	"github.com/astrolab/aspectra/internal/log"
	"go.uber.org/zap"
)

const createLongitudesSQL = `
CREATE TABLE IF NOT EXISTS longitudes (
    time   TIMESTAMPTZ      NOT NULL,
    body   TEXT             NOT NULL,
    degree DOUBLE PRECISION NOT NULL,
    PRIMARY KEY (time, body)
);`

const createExtensionSQL = `CREATE EXTENSION IF NOT EXISTS timescaledb;`

const createHypertableSQL = `SELECT create_hypertable('longitudes', 'time', if_not_exists => TRUE);`

// timescaleArchive stores samples in a TimescaleDB hypertable through GORM.
type timescaleArchive struct {
	db *gorm.DB
}

func openTimescale(dsn string) (Archive, error) {
	dbLogger := logger.New(
		zap.NewStdLog(log.GetZapLogger()),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	log.Infof("connecting to TimescaleDB...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("connecting to TimescaleDB: %w", err)
	}

	for _, ddl := range []string{createLongitudesSQL, createExtensionSQL, createHypertableSQL} {
		if err := db.Exec(ddl).Error; err != nil {
			return nil, fmt.Errorf("preparing longitudes hypertable: %w", err)
		}
	}

	return &timescaleArchive{db: db}, nil
}

func (a *timescaleArchive) StoreSamples(ctx context.Context, samples []ingest.Sample) error {
	if len(samples) == 0 {
		return nil
	}
	err := a.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(recordsFrom(samples), 500).Error
	if err != nil {
		return fmt.Errorf("storing samples: %w", err)
	}
	return nil
}

func (a *timescaleArchive) FetchRange(ctx context.Context, start, end time.Time) (*ingest.Table, error) {
	var records []LongitudeRecord
	err := a.db.WithContext(ctx).
		Where("time >= ? AND time <= ?", start, end).
		Order("body, time").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("querying samples: %w", err)
	}

	samples := make([]ingest.Sample, len(records))
	for i, r := range records {
		samples[i] = ingest.Sample{Date: r.Time.UTC(), Body: r.Body, Degree: r.Degree}
	}
	return ingest.FromSamples(samples)
}

func (a *timescaleArchive) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
