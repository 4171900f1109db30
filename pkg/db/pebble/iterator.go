package pebble

import (
	"fmt"
	"math"

	"github.com/cockroachdb/pebble"

	"github.com/eigerco/prefixvarint/pkg/db"
)

type Iterator struct {
	iter    *pebble.Iterator
	started bool
}

// NewIterator iterates the keys in [start, end]. Since encoded keys sort in
// numeric order, the exclusive pebble upper bound is the encoding of end+1.
func (s *Store) NewIterator(start, end uint64) (db.Iterator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	opts := &pebble.IterOptions{LowerBound: encodeKey(start)}
	if end != math.MaxUint64 {
		opts.UpperBound = encodeKey(end + 1)
	}
	iter, err := s.db.NewIter(opts)
	if err != nil {
		return nil, fmt.Errorf(ErrInIteratorCreation, err)
	}
	return &Iterator{iter: iter}, nil
}

func (it *Iterator) Next() bool {
	// The first call positions the iterator at the first key
	if !it.started {
		it.started = true
		return it.iter.First()
	}
	// Once exhausted it stays exhausted
	if !it.iter.Valid() {
		return false
	}
	return it.iter.Next()
}

func (it *Iterator) Key() (uint64, error) {
	if !it.iter.Valid() {
		return 0, ErrIteratorInvalid
	}
	return decodeKey(it.iter.Key())
}

func (it *Iterator) Value() ([]byte, error) {
	if !it.iter.Valid() {
		return nil, ErrIteratorInvalid
	}

	val, err := it.iter.ValueAndErr()
	if err != nil {
		return nil, fmt.Errorf(ErrIteratorValue, err)
	}

	result := make([]byte, len(val))
	copy(result, val)
	return result, nil
}

func (it *Iterator) Valid() bool {
	return it.iter.Valid()
}

func (it *Iterator) Close() error {
	return it.iter.Close()
}
