package hashx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertLookup(t *testing.T) {
	ix := New[int](1009)

	for i := 0; i < 100; i++ {
		ix.Insert(fmt.Sprintf("KEY%d", i), i)
	}
	for i := 0; i < 100; i++ {
		v, ok := ix.Lookup(fmt.Sprintf("KEY%d", i))
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	_, ok := ix.Lookup("MISSING")
	assert.False(t, ok)
}

func TestCollisionChaining(t *testing.T) {
	// Every key lands in the same bucket, forcing a chain.
	ix := New[string](1)

	ix.Insert("A", "a")
	ix.Insert("B", "b")
	ix.Insert("C", "c")

	for key, want := range map[string]string{"A": "a", "B": "b", "C": "c"} {
		v, ok := ix.Lookup(key)
		require.True(t, ok, "key %s", key)
		assert.Equal(t, want, v)
	}
}

func TestLookupReturnsMostRecentInsert(t *testing.T) {
	ix := New[int](8)
	ix.Insert("X", 1)
	ix.Insert("X", 2)

	v, ok := ix.Lookup("X")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestDelete(t *testing.T) {
	ix := New[int](1)
	ix.Insert("A", 1)
	ix.Insert("B", 2)
	ix.Insert("C", 3)

	require.True(t, ix.Delete("B"))
	_, ok := ix.Lookup("B")
	assert.False(t, ok)

	// Neighbours in the chain survive.
	v, ok := ix.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = ix.Lookup("C")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	assert.False(t, ix.Delete("B"))
	assert.False(t, ix.Delete("MISSING"))
}

func TestDeleteHead(t *testing.T) {
	ix := New[int](1)
	ix.Insert("A", 1)
	ix.Insert("B", 2)

	// B is the chain head after the second insert.
	require.True(t, ix.Delete("B"))
	v, ok := ix.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestHashIsDJB2(t *testing.T) {
	// djb2("A") = 5381*33 + 65 = 177638
	assert.Equal(t, 177638%1009, Hash("A", 1009))
	assert.Equal(t, 0, Hash("ANYTHING", 1))
}

func TestNewClampsSize(t *testing.T) {
	ix := New[int](0)
	ix.Insert("A", 1)
	v, ok := ix.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}
