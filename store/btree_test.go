package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreReadsItsOwnWrites(t *testing.T) {
	kv := MemStore()

	v, err := kv.Get([]byte("missing"))
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, kv.Set([]byte("a"), []byte("1")))
	v, err = kv.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	ok, err := kv.Has([]byte("a"))
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, kv.Delete([]byte("a")))
	v, err = kv.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestCacheWrapWriteFlushes(t *testing.T) {
	kv := MemStore()
	require.NoError(t, kv.Set([]byte("k"), []byte("base")))

	cache := kv.CacheWrap()
	require.NoError(t, cache.Set([]byte("k"), []byte("cached")))
	require.NoError(t, cache.Set([]byte("new"), []byte("x")))

	// The wrap observes its own writes, the base does not yet.
	v, err := cache.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("cached"), v)
	v, err = kv.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("base"), v)

	require.NoError(t, cache.Write())

	v, err = kv.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("cached"), v)
	v, err = kv.Get([]byte("new"))
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), v)
}

func TestCacheWrapDiscardLeavesNoTrace(t *testing.T) {
	kv := MemStore()
	require.NoError(t, kv.Set([]byte("k"), []byte("base")))

	cache := kv.CacheWrap()
	require.NoError(t, cache.Set([]byte("k"), []byte("cached")))
	require.NoError(t, cache.Delete([]byte("k")))
	require.NoError(t, cache.Set([]byte("other"), []byte("y")))
	cache.Discard()

	v, err := kv.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("base"), v)
	ok, err := kv.Has([]byte("other"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheWrapDeleteShadowsBackingStore(t *testing.T) {
	kv := MemStore()
	require.NoError(t, kv.Set([]byte("k"), []byte("base")))

	cache := kv.CacheWrap()
	require.NoError(t, cache.Delete([]byte("k")))

	v, err := cache.Get([]byte("k"))
	require.NoError(t, err)
	assert.Nil(t, v)
	ok, err := cache.Has([]byte("k"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Write())
	ok, err = kv.Has([]byte("k"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNestedCacheWraps(t *testing.T) {
	kv := MemStore()
	outer := kv.CacheWrap()
	require.NoError(t, outer.Set([]byte("a"), []byte("1")))

	inner := outer.CacheWrap()
	require.NoError(t, inner.Set([]byte("b"), []byte("2")))

	// Inner sees through to outer.
	v, err := inner.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	inner.Discard()
	ok, err := outer.Has([]byte("b"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, outer.Write())
	v, err = kv.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
}

func TestCountingStore(t *testing.T) {
	kv := NewCountingStore(MemStore())

	require.NoError(t, kv.Set([]byte("a"), []byte("1")))
	_, err := kv.Get([]byte("a"))
	require.NoError(t, err)
	_, err = kv.Has([]byte("a"))
	require.NoError(t, err)
	require.NoError(t, kv.Delete([]byte("a")))

	ops := kv.Ops()
	assert.Equal(t, Ops{Gets: 1, Has: 1, Sets: 1, Deletes: 1}, ops)
	assert.Equal(t, 4, ops.Total())

	kv.Reset()
	assert.Equal(t, Ops{}, kv.Ops())
}
