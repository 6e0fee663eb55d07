package store

import (
	"fmt"
	"testing"

	"github.com/hodl4me/hodl/hodltest/assert"
)

// TestSuite runs the same set of behaviour checks against any CacheableKVStore
// implementation. It is used by this package for MemStore and by store/iavl
// for the merkle tree adapter.
type TestSuite struct {
	makeBase TestStoreConstructor
}

// TestStoreConstructor returns a fresh store together with a cleanup function.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

// NewTestSuite returns a suite testing stores created by given constructor.
func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{makeBase: constructor}
}

// AssertGetHas checks both Get and Has results for a key.
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

// GetSet checks that cached writes are isolated until written.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("depositor"), []byte("bank")
	s.AssertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	s.AssertGetHas(t, base, k, v, true)

	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, k, v, true)

	k2, v2 := []byte("override"), []byte{1}
	s.AssertGetHas(t, cache, k2, nil, false)
	assert.Nil(t, cache.Set(k2, v2))
	s.AssertGetHas(t, cache, k2, v2, true)
	s.AssertGetHas(t, base, k2, nil, false)

	assert.Nil(t, cache.Write())
	s.AssertGetHas(t, base, k2, v2, true)

	// a discarded cache leaves nothing behind
	cache = base.CacheWrap()
	assert.Nil(t, cache.Delete(k))
	s.AssertGetHas(t, cache, k, nil, false)
	cache.Discard()
	s.AssertGetHas(t, base, k, v, true)
}

// Delete checks that deletes shadow the backing store at every layer.
func (s *TestSuite) Delete(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("one"), []byte("1")
	assert.Nil(t, base.Set(k, v))

	outer := base.CacheWrap()
	inner := outer.CacheWrap()
	assert.Nil(t, inner.Delete(k))
	s.AssertGetHas(t, inner, k, nil, false)
	s.AssertGetHas(t, outer, k, v, true)

	assert.Nil(t, inner.Write())
	s.AssertGetHas(t, outer, k, nil, false)
	s.AssertGetHas(t, base, k, v, true)

	assert.Nil(t, outer.Write())
	s.AssertGetHas(t, base, k, nil, false)
}

// Iterate checks ordering and merging of cached and stored entries in both
// directions.
func (s *TestSuite) Iterate(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	for i := 0; i < 6; i++ {
		assert.Nil(t, base.Set(key(i), []byte(fmt.Sprintf("base-%d", i))))
	}

	cache := base.CacheWrap()
	assert.Nil(t, cache.Delete(key(1)))
	assert.Nil(t, cache.Set(key(2), []byte("cache-2")))
	assert.Nil(t, cache.Set(key(7), []byte("cache-7")))

	cases := map[string]struct {
		start, end []byte
		reverse    bool
		want       []string
	}{
		"all ascending": {
			want: []string{"base-0", "cache-2", "base-3", "base-4", "base-5", "cache-7"},
		},
		"all descending": {
			reverse: true,
			want:    []string{"cache-7", "base-5", "base-4", "base-3", "cache-2", "base-0"},
		},
		"bounded ascending": {
			start: key(1),
			end:   key(4),
			want:  []string{"cache-2", "base-3"},
		},
		"bounded descending": {
			start:   key(2),
			end:     key(7),
			reverse: true,
			want:    []string{"base-5", "base-4", "base-3", "cache-2"},
		},
		"open end": {
			start: key(5),
			want:  []string{"base-5", "cache-7"},
		},
		"open start": {
			end:  key(2),
			want: []string{"base-0"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var (
				it  Iterator
				err error
			)
			if tc.reverse {
				it, err = cache.ReverseIterator(tc.start, tc.end)
			} else {
				it, err = cache.Iterator(tc.start, tc.end)
			}
			assert.Nil(t, err)
			defer it.Close()

			var got []string
			for ; it.Valid(); it.Next() {
				got = append(got, string(it.Value()))
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

// Batch checks that batched writes become visible only once written.
func (s *TestSuite) Batch(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	assert.Nil(t, base.Set(key(1), []byte("a")))

	batch := base.NewBatch()
	assert.Nil(t, batch.Set(key(2), []byte("b")))
	assert.Nil(t, batch.Delete(key(1)))
	s.AssertGetHas(t, base, key(2), nil, false)
	s.AssertGetHas(t, base, key(1), []byte("a"), true)

	assert.Nil(t, batch.Write())
	s.AssertGetHas(t, base, key(2), []byte("b"), true)
	s.AssertGetHas(t, base, key(1), nil, false)
}

func key(i int) []byte {
	return []byte(fmt.Sprintf("key-%02d", i))
}
