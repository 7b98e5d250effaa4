package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/popcorn/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var bucketWatchList = []byte("watchlist")

// DefaultKey is the slot holding the serialized watch-list
const DefaultKey = "watched"

// WatchListStore implements domain.WatchListStore using BoltDB.
// The whole list lives as one JSON value under a single key.
type WatchListStore struct {
	db  *bolt.DB
	key []byte
	mu  sync.RWMutex

	// Memory-only mode holds the serialized slot here
	mem []byte
}

// NewWatchListStore opens (or creates) the store at path. An empty path selects
// memory-only mode with no persistence.
func NewWatchListStore(path, key string) (*WatchListStore, error) {
	if key == "" {
		key = DefaultKey
	}
	if path == "" {
		return &WatchListStore{key: []byte(key)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketWatchList)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &WatchListStore{db: db, key: []byte(key)}, nil
}

// Close releases the underlying database
func (s *WatchListStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the watch-list. An absent slot yields an empty list.
func (s *WatchListStore) Load() ([]domain.WatchedEntry, error) {
	data, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	entries := []domain.WatchedEntry{}
	if data == nil {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: corrupt watch-list: %v", domain.ErrStorage, err)
	}
	if entries == nil {
		// Slot held JSON null
		entries = []domain.WatchedEntry{}
	}
	return entries, nil
}

// Save replaces the slot with the serialized list (last write wins)
func (s *WatchListStore) Save(entries []domain.WatchedEntry) error {
	if entries == nil {
		entries = []domain.WatchedEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if err := s.write(data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

func (s *WatchListStore) read() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		if s.mem == nil {
			return nil, nil
		}
		out := make([]byte, len(s.mem))
		copy(out, s.mem)
		return out, nil
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketWatchList)
		if b == nil {
			return nil
		}
		if v := b.Get(s.key); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	return data, err
}

func (s *WatchListStore) write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		s.mem = data
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketWatchList)
		if err != nil {
			return err
		}
		return b.Put(s.key, data)
	})
}
