package storage

import (
	"fmt"
	"os"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/ternarybob/arbor"

	"github.com/svenskadata/bolagskollen/internal/common"
	"github.com/svenskadata/bolagskollen/internal/interfaces"
)

// FilingCache is a badger-backed byte cache for downloaded filing archives.
// Entries expire after the configured TTL so a newly filed report eventually
// replaces a cached one.
type FilingCache struct {
	db     *badger.DB
	ttl    time.Duration
	logger arbor.ILogger
}

// NewFilingCache opens the cache database. An empty path disables caching
// and returns a no-op cache.
func NewFilingCache(config *common.BadgerConfig, logger arbor.ILogger) (interfaces.FilingCache, error) {
	if config.Path == "" {
		logger.Debug().Msg("Filing cache disabled (no storage path configured)")
		return noopCache{}, nil
	}

	if err := os.MkdirAll(config.Path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	options := badger.DefaultOptions(config.Path)
	options.Logger = nil // arbor handles logging

	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open filing cache: %w", err)
	}

	ttl := config.FileTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	logger.Debug().Str("path", config.Path).Msg("Filing cache initialized")

	return &FilingCache{db: db, ttl: ttl, logger: logger}, nil
}

// Get returns the cached bytes for a key, if present and not expired
func (c *FilingCache) Get(key string) ([]byte, bool) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set stores bytes under a key with the configured TTL
func (c *FilingCache) Set(key string, value []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
}

// Close closes the underlying database
func (c *FilingCache) Close() error {
	return c.db.Close()
}

// noopCache is used when no storage path is configured
type noopCache struct{}

func (noopCache) Get(string) ([]byte, bool)  { return nil, false }
func (noopCache) Set(string, []byte) error   { return nil }
func (noopCache) Close() error               { return nil }
