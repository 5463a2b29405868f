// SPDX-License-Identifier: MIT

package minheap_test

import (
	"testing"

	"github.com/katalvlaran/pathfinder/minheap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromKeys_EmptyAndSingleton(t *testing.T) {
	h := minheap.FromKeys[int]()
	assert.Zero(t, h.Len())
	_, err := h.ExtractMin()
	assert.ErrorIs(t, err, minheap.ErrEmpty)
	_, err = h.Min()
	assert.ErrorIs(t, err, minheap.ErrEmpty)

	h = minheap.FromKeys(42)
	k, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 42, k)
	assert.True(t, h.IsEmpty())
}

func TestKeyHeap_Duplicates(t *testing.T) {
	h := minheap.FromKeys(13, 11, 9, 12, 4, 9, 8, 4, 4)
	require.NoError(t, h.Verify())

	require.NoError(t, h.Delete(4))
	require.NoError(t, h.Delete(9))
	require.NoError(t, h.Verify())
	assert.Equal(t, 7, h.Len())

	h.Insert(1)
	h.Insert(4)
	require.NoError(t, h.Verify())

	var got []int
	for !h.IsEmpty() {
		k, err := h.ExtractMin()
		require.NoError(t, err)
		got = append(got, k)
	}
	assert.Equal(t, []int{1, 4, 4, 4, 8, 9, 11, 12, 13}, got)

	assert.ErrorIs(t, h.Delete(4), minheap.ErrNotFound)
}

func TestKeyHeap_KeysArrayOrder(t *testing.T) {
	h := minheap.FromKeys(3, 1, 2)
	assert.Equal(t, []int{1, 3, 2}, h.Keys())

	m, err := h.Min()
	require.NoError(t, err)
	assert.Equal(t, 1, m)
}

// TestKeyHeap_InsertAfterDrain interleaves inserts with deletes so that
// internal sequence numbers outlive the keys they tagged.
func TestKeyHeap_InsertAfterDrain(t *testing.T) {
	h := minheap.FromKeys(5, 5, 5)

	for round := 0; round < 50; round++ {
		require.NotPanics(t, func() {
			h.Insert(round)
			h.Insert(round)
		})
		require.NoError(t, h.Delete(round))
		require.NoError(t, h.Delete(round))
	}
	require.NoError(t, h.Verify())
	assert.Equal(t, []int{5, 5, 5}, h.Keys())
}
