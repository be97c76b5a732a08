// Package badger backs the marketplace collections with an embedded
// BadgerDB key-value store. Each logical collection lives under a single
// key as one JSON document.
package badger

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// Config captures the settings needed to open the local store.
type Config struct {
	// Dir is the directory for database files. Created if missing.
	// Ignored when InMemory is set.
	Dir string
	// InMemory keeps all data in RAM; used by tests.
	InMemory bool
	// SyncWrites forces every write to disk before the call returns.
	SyncWrites bool
}

// Open opens the underlying BadgerDB. The caller owns the returned handle
// and must Close it on shutdown.
func Open(cfg Config, logger zerolog.Logger) (*badger.DB, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Dir == "" {
			return nil, fmt.Errorf("store: data directory is required")
		}
		if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
			return nil, fmt.Errorf("store: create data directory %s: %w", cfg.Dir, err)
		}
		opts = badger.DefaultOptions(cfg.Dir)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithLogger(&badgerLogger{logger: logger})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger at %q: %w", cfg.Dir, err)
	}
	return db, nil
}

// badgerLogger routes BadgerDB's internal logging through zerolog.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}
