package db

// Store is an ordered key-value store keyed by uint64. Keys are stored as
// prefix varints, so iteration visits them in ascending numeric order.
type Store interface {
	Writer
	Get(key uint64) ([]byte, error)
	Delete(key uint64) error
	NewBatch() Batch
	// NewIterator iterates keys in [start, end]; both bounds are inclusive.
	NewIterator(start, end uint64) (Iterator, error)
	Close() error
}

type Writer interface {
	Put(key uint64, value []byte) error
}

// Batch represents an atomic batch of operations.
// All operations in a batch are performed atomically.
type Batch interface {
	Writer
	Delete(key uint64) error
	Commit() error
	Close() error
}

// Iterator provides sequential access over a range of key-value pairs.
// Iterators must be closed after use.
type Iterator interface {
	Next() bool
	Key() (uint64, error)
	Value() ([]byte, error)
	Valid() bool
	Close() error
}
