package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"github.com/MrLoydHD/mei-aa-p1/core"
)

var (
	// ErrNotFound is returned by Get when no graph is stored under the key.
	ErrNotFound = errors.New("store: graph not found")

	// ErrCorrupt is returned when a stored value cannot be decoded.
	ErrCorrupt = errors.New("store: corrupt graph record")

	// ErrClosed is returned by operations on a closed Store.
	ErrClosed = errors.New("store: closed")
)

// Config holds configuration for a Store.
type Config struct {
	// Path is the directory for BadgerDB files. Ignored when InMemory is true.
	Path string

	// InMemory enables in-memory mode (no disk persistence). Useful for testing.
	InMemory bool

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool

	// Logger receives store and BadgerDB diagnostics. If nil, a logger
	// discarding everything below warning level is used.
	Logger *logrus.Logger
}

// DefaultConfig returns a persistent configuration rooted at path.
func DefaultConfig(path string) Config {
	return Config{Path: path}
}

// InMemoryConfig returns configuration optimized for testing.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// Store is a BadgerDB-backed graph cache.
type Store struct {
	db  *badger.DB
	log *logrus.Logger
}

// badgerLogger adapts logrus to BadgerDB's Logger interface.
type badgerLogger struct {
	entry *logrus.Entry
}

func (l *badgerLogger) Errorf(format string, args ...interface{})   { l.entry.Errorf(format, args...) }
func (l *badgerLogger) Warningf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }
func (l *badgerLogger) Infof(format string, args ...interface{})    { l.entry.Debugf(format, args...) }
func (l *badgerLogger) Debugf(format string, args ...interface{})   { l.entry.Tracef(format, args...) }

// Open opens (creating if needed) the graph cache described by cfg.
func Open(cfg Config) (*Store, error) {
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("store: path is required for persistent cache")
		}
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create cache directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.
		WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(&badgerLogger{entry: log.WithField("component", "badger")})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}
	log.WithFields(logrus.Fields{
		"path":      cfg.Path,
		"in_memory": cfg.InMemory,
	}).Debug("graph cache opened")

	return &Store{db: db, log: log}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db.IsClosed() {
		return nil
	}

	return s.db.Close()
}

// Put stores g under k, replacing any previous value.
func (s *Store) Put(k Key, g *core.Graph) error {
	if s.db.IsClosed() {
		return ErrClosed
	}
	val, err := encodeGraph(g)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(k.String()), val)
	})
	if err != nil {
		return fmt.Errorf("store: put %s: %w", k, err)
	}

	return nil
}

// Get loads the graph stored under k.
//
// Errors:
//   - ErrNotFound, ErrCorrupt, ErrClosed.
func (s *Store) Get(k Key) (*core.Graph, error) {
	if s.db.IsClosed() {
		return nil, ErrClosed
	}

	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(k.String()))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("store: get %s: %w", k, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", k, err)
	}

	g, err := decodeGraph(val)
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", k, err)
	}

	return g, nil
}

// GetOrBuild returns the cached graph for k, or calls build, stores its
// result and returns it. The boolean reports a cache hit. A corrupt record
// is logged and rebuilt.
func (s *Store) GetOrBuild(k Key, build func() (*core.Graph, error)) (*core.Graph, bool, error) {
	g, err := s.Get(k)
	switch {
	case err == nil:
		return g, true, nil
	case errors.Is(err, ErrCorrupt):
		s.log.WithError(err).WithField("key", k.String()).Warn("rebuilding corrupt cached graph")
	case !errors.Is(err, ErrNotFound):
		return nil, false, err
	}

	g, err = build()
	if err != nil {
		return nil, false, err
	}
	if err := s.Put(k, g); err != nil {
		return nil, false, err
	}

	return g, false, nil
}

// Len returns the number of cached graphs.
func (s *Store) Len() (int, error) {
	if s.db.IsClosed() {
		return 0, ErrClosed
	}

	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})

	return n, err
}

// putRaw stores an arbitrary value; tests use it to plant corrupt records.
func (s *Store) putRaw(k Key, val []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(k.String()), val)
	})
}
