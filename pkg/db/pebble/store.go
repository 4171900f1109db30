package pebble

import (
	"errors"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/eigerco/prefixvarint/pkg/db"
	"github.com/eigerco/prefixvarint/pkg/log"
	"github.com/eigerco/prefixvarint/pkg/varint"
)

var _ db.Store = (*Store)(nil)

type Store struct {
	db     *pebble.DB
	closed bool
	mu     sync.RWMutex
}

// NewStore opens or creates a store at path.
func NewStore(path string) (*Store, error) {
	return open(path, &pebble.Options{
		Cache:        pebble.NewCache(64 * 1024 * 1024), // 64MB
		MemTableSize: 32 * 1024 * 1024,                  // 32MB

		// stop writes once 128MB of memtables are queued
		MemTableStopWritesThreshold: 4,
	})
}

// NewMemStore returns a store kept entirely in memory.
func NewMemStore() (*Store, error) {
	return open("", &pebble.Options{FS: vfs.NewMem()})
}

func open(path string, opts *pebble.Options) (*Store, error) {
	pdb, err := pebble.Open(path, opts)
	if err != nil {
		return nil, err
	}
	log.Store.Debug().Str("path", path).Msg("store opened")
	return &Store{db: pdb}, nil
}

func encodeKey(key uint64) []byte {
	return varint.AppendUvarint(make([]byte, 0, varint.MaxLen), key)
}

func decodeKey(b []byte) (uint64, error) {
	v, n := varint.Uvarint(b)
	if n == 0 || n != len(b) {
		return 0, ErrInvalidKey
	}
	return v, nil
}

func (s *Store) Get(key uint64) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	value, closer, err := s.db.Get(encodeKey(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

func (s *Store) Put(key uint64, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	return s.db.Set(encodeKey(key), value, pebble.Sync)
}

func (s *Store) Delete(key uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	return s.db.Delete(encodeKey(key), pebble.Sync)
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	log.Store.Debug().Msg("store closed")
	return s.db.Close()
}
