package store

import (
	"bytes"

	"github.com/google/btree"
)

// SliceIterator wraps an Iterator over a slice of models
type SliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*SliceIterator)(nil)

// NewSliceIterator creates a new Iterator over this slice
func NewSliceIterator(data []Model) *SliceIterator {
	return &SliceIterator{data: data}
}

// Valid implements Iterator and returns true iff it can be read
func (s *SliceIterator) Valid() bool {
	return s.idx < len(s.data)
}

// Next moves the iterator to the next sequential key in the database, as
// defined by order of iteration.
//
// If Valid returns false, this method will panic.
func (s *SliceIterator) Next() {
	s.assertValid()
	s.idx++
}

func (s *SliceIterator) assertValid() {
	if s.idx >= len(s.data) {
		panic("passed end of slice")
	}
}

// Key returns the key of the cursor.
func (s *SliceIterator) Key() (key []byte) {
	s.assertValid()
	return s.data[s.idx].Key
}

// Value returns the value of the cursor.
func (s *SliceIterator) Value() (value []byte) {
	s.assertValid()
	return s.data[s.idx].Value
}

// Close releases the Iterator.
func (s *SliceIterator) Close() {
	s.data = nil
}

// mergeIterator combines cached btree items with the parent iterator. Both
// inputs must be ordered in the same direction. A cached item shadows the
// parent entry with the same key, and deleted items hide it. The parent is
// drained and closed before returning.
func mergeIterator(cached []btree.Item, parent Iterator, descending bool) *SliceIterator {
	defer parent.Close()

	before := func(a, b []byte) bool {
		if descending {
			return bytes.Compare(a, b) > 0
		}
		return bytes.Compare(a, b) < 0
	}

	var res []Model
	emit := func(i btree.Item) {
		if set, ok := i.(setItem); ok {
			res = append(res, Model{Key: set.key, Value: set.value})
		}
	}

	for parent.Valid() {
		pkey := parent.Key()
		for len(cached) > 0 && before(cached[0].(keyer).Key(), pkey) {
			emit(cached[0])
			cached = cached[1:]
		}
		if len(cached) > 0 && bytes.Equal(cached[0].(keyer).Key(), pkey) {
			emit(cached[0])
			cached = cached[1:]
		} else {
			res = append(res, Model{Key: pkey, Value: parent.Value()})
		}
		parent.Next()
	}
	for _, i := range cached {
		emit(i)
	}
	return NewSliceIterator(res)
}
