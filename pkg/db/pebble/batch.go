package pebble

import (
	"sync/atomic"

	"github.com/cockroachdb/pebble"

	"github.com/eigerco/prefixvarint/pkg/db"
)

type Batch struct {
	store *Store
	batch *pebble.Batch
	done  atomic.Bool
}

// NewBatch starts a batch. A batch started on a closed store fails every
// operation with ErrClosed.
func (s *Store) NewBatch() db.Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return &Batch{store: s}
	}
	return &Batch{
		store: s,
		batch: s.db.NewBatch(),
	}
}

func (b *Batch) check() error {
	if b.done.Load() {
		return ErrBatchDone
	}
	if b.batch == nil {
		return ErrClosed
	}
	return nil
}

func (b *Batch) Put(key uint64, value []byte) error {
	if err := b.check(); err != nil {
		return err
	}
	return b.batch.Set(encodeKey(key), value, nil)
}

func (b *Batch) Delete(key uint64) error {
	if err := b.check(); err != nil {
		return err
	}
	return b.batch.Delete(encodeKey(key), nil)
}

func (b *Batch) Commit() error {
	if err := b.check(); err != nil {
		return err
	}

	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	// the store may have been closed after the batch was started
	if b.store.closed {
		return ErrClosed
	}
	if err := b.batch.Commit(pebble.Sync); err != nil {
		return err
	}
	b.done.Store(true)
	return b.batch.Close()
}

func (b *Batch) Close() error {
	if !b.done.CompareAndSwap(false, true) || b.batch == nil {
		return nil
	}
	return b.batch.Close()
}
