package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memSuite() *TestSuite {
	return NewTestSuite(func() (CacheableKVStore, func()) {
		return MemStore(), func() {}
	})
}

func TestMemStoreGetSet(t *testing.T)  { memSuite().GetSet(t) }
func TestMemStoreDelete(t *testing.T)  { memSuite().Delete(t) }
func TestMemStoreIterate(t *testing.T) { memSuite().Iterate(t) }
func TestMemStoreBatch(t *testing.T)   { memSuite().Batch(t) }

func TestLogableStore(t *testing.T) {
	kv, ops := LogableStore()

	cache := kv.CacheWrap()
	require.NoError(t, cache.Set([]byte("a"), []byte("1")))
	require.NoError(t, cache.Delete([]byte("b")))
	assert.Empty(t, ops.ShowOps())

	require.NoError(t, cache.Write())
	got := ops.ShowOps()
	require.Len(t, got, 2)
	assert.True(t, got[0].IsSetOp())
	assert.Equal(t, []byte("a"), got[0].Key())
	assert.Equal(t, []byte("1"), got[0].Value())
	assert.False(t, got[1].IsSetOp())
	assert.Equal(t, []byte("b"), got[1].Key())
}

func TestNilKey(t *testing.T) {
	kv := MemStore()
	assert.Error(t, kv.Set(nil, []byte("x")))
	assert.Error(t, kv.Delete(nil))
}

func TestSliceIterator(t *testing.T) {
	it := NewSliceIterator([]Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
	})
	require.True(t, it.Valid())
	assert.Equal(t, []byte("a"), it.Key())
	it.Next()
	assert.Equal(t, []byte("2"), it.Value())
	it.Next()
	assert.False(t, it.Valid())
	assert.Panics(t, func() { it.Next() })
	assert.Panics(t, func() { it.Key() })
}
