// SPDX-License-Identifier: MIT

package minheap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by heap operations.
var (
	// ErrEmpty indicates ExtractMin or Peek was called on an empty heap.
	ErrEmpty = errors.New("minheap: heap is empty")

	// ErrNotFound indicates the requested node or key is not in the heap.
	ErrNotFound = errors.New("minheap: not found")

	// ErrDuplicateNode indicates an insert of a node that is already present.
	ErrDuplicateNode = errors.New("minheap: node already present")

	// ErrKeyIncrease indicates DecreaseKey was asked to raise a key.
	ErrKeyIncrease = errors.New("minheap: new key is greater than current key")

	// ErrHeapProperty indicates a broken heap or position invariant.
	ErrHeapProperty = errors.New("minheap: invariant violated")
)

// Entry pairs a node with its current key.
type Entry[N comparable, K constraints.Ordered] struct {
	Node N
	Key  K
}

// parent returns the parent position of p; the root is its own parent.
func parent(p int) int {
	if p == 0 {
		return 0
	}

	return (p - 1) / 2
}

func left(p int) int  { return 2*p + 1 }
func right(p int) int { return 2*p + 2 }
