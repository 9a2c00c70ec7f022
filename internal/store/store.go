// Package store persists output records to SQLite through GORM so several
// runs can be queried side by side.
package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/records"
)

// batchSize is the number of rows per INSERT statement.
const batchSize = 500

// Store is a SQLite-backed record store.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the database at dsn and migrates the schema.
// GORM statements are logged at debug level on log.
func Open(dsn string, log *zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newLogger(log),
	})
	if err != nil {
		return nil, errors.WrapResource("open", "database", dsn, err)
	}

	if err := db.AutoMigrate(&Row{}); err != nil {
		return nil, errors.WrapResource("migrate", "database", dsn, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save replaces the rows of runID with recs inside one transaction.
func (s *Store) Save(ctx context.Context, runID string, recs []records.Record) error {
	if runID == "" {
		return errors.NewValidationError("run_id", runID, "must not be empty")
	}

	rows := make([]Row, len(recs))
	for i, r := range recs {
		rows[i] = NewRow(runID, r)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", runID).Delete(&Row{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, batchSize).Error
	})
	if err != nil {
		return errors.WrapResource("save", "run", runID, err)
	}
	return nil
}

// Rows returns the rows of runID in record order.
func (s *Store) Rows(ctx context.Context, runID string) ([]Row, error) {
	var rows []Row
	err := s.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, errors.WrapResource("load", "run", runID, err)
	}
	return rows, nil
}

// Count returns the number of rows stored for runID.
func (s *Store) Count(ctx context.Context, runID string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Row{}).Where("run_id = ?", runID).Count(&n).Error
	if err != nil {
		return 0, errors.WrapResource("count", "run", runID, err)
	}
	return n, nil
}

// printfWriter adapts a zerolog logger to the GORM logger writer.
type printfWriter struct {
	log *zerolog.Logger
}

func (w printfWriter) Printf(format string, args ...any) {
	w.log.Debug().Msgf(format, args...)
}

func newLogger(log *zerolog.Logger) logger.Interface {
	if log == nil {
		return logger.Discard
	}
	return logger.New(printfWriter{log: log}, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
