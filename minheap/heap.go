// SPDX-License-Identifier: MIT

package minheap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Heap is a binary min-heap of (node, key) entries ordered by key.
//
// The zero value is not usable; construct with New.
type Heap[N comparable, K constraints.Ordered] struct {
	entries []Entry[N, K]
	pos     map[N]int // node → index into entries, kept in sync on every swap
}

// New builds a heap over entries in O(n). The slice is copied.
//
// Errors:
//   - ErrDuplicateNode: if two entries share a node.
func New[N comparable, K constraints.Ordered](entries ...Entry[N, K]) (*Heap[N, K], error) {
	h := &Heap[N, K]{
		entries: make([]Entry[N, K], len(entries)),
		pos:     make(map[N]int, len(entries)),
	}
	copy(h.entries, entries)

	for i, e := range h.entries {
		if _, dup := h.pos[e.Node]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateNode, e.Node)
		}
		h.pos[e.Node] = i
	}
	h.heapify()

	return h, nil
}

// WithCapacity returns an empty heap with room for n entries.
func WithCapacity[N comparable, K constraints.Ordered](n int) *Heap[N, K] {
	return &Heap[N, K]{
		entries: make([]Entry[N, K], 0, n),
		pos:     make(map[N]int, n),
	}
}

// Len returns the number of live entries.
func (h *Heap[N, K]) Len() int { return len(h.entries) }

// IsEmpty reports whether the heap has no entries.
func (h *Heap[N, K]) IsEmpty() bool { return len(h.entries) == 0 }

// Contains reports whether node is currently in the heap.
func (h *Heap[N, K]) Contains(node N) bool {
	_, ok := h.pos[node]
	return ok
}

// Key returns the current key of node.
func (h *Heap[N, K]) Key(node N) (K, bool) {
	i, ok := h.pos[node]
	if !ok {
		var zero K
		return zero, false
	}

	return h.entries[i].Key, true
}

// Entries returns a copy of the entries in array order.
func (h *Heap[N, K]) Entries() []Entry[N, K] {
	out := make([]Entry[N, K], len(h.entries))
	copy(out, h.entries)

	return out
}

// Insert adds node with key and bubbles it up.
//
// Errors:
//   - ErrDuplicateNode: if node is already present.
func (h *Heap[N, K]) Insert(node N, key K) error {
	if _, dup := h.pos[node]; dup {
		return fmt.Errorf("%w: %v", ErrDuplicateNode, node)
	}

	h.entries = append(h.entries, Entry[N, K]{Node: node, Key: key})
	i := len(h.entries) - 1
	h.pos[node] = i
	h.up(i)

	return nil
}

// Peek returns the minimum entry without removing it.
func (h *Heap[N, K]) Peek() (Entry[N, K], error) {
	if len(h.entries) == 0 {
		return Entry[N, K]{}, ErrEmpty
	}

	return h.entries[0], nil
}

// ExtractMin removes and returns the minimum entry.
//
// Errors:
//   - ErrEmpty: if the heap has no entries.
func (h *Heap[N, K]) ExtractMin() (Entry[N, K], error) {
	if len(h.entries) == 0 {
		return Entry[N, K]{}, ErrEmpty
	}

	return h.removeAt(0), nil
}

// Delete removes node wherever it sits in the tree.
//
// Errors:
//   - ErrNotFound: if node is absent.
func (h *Heap[N, K]) Delete(node N) (Entry[N, K], error) {
	i, ok := h.pos[node]
	if !ok {
		return Entry[N, K]{}, fmt.Errorf("%w: node %v", ErrNotFound, node)
	}

	return h.removeAt(i), nil
}

// DeleteKey removes one entry whose key equals key. When several entries
// share the key, the one at the lowest array index is removed.
//
// Errors:
//   - ErrNotFound: if no entry has this key.
func (h *Heap[N, K]) DeleteKey(key K) (Entry[N, K], error) {
	for i := range h.entries {
		if h.entries[i].Key == key {
			return h.removeAt(i), nil
		}
	}

	return Entry[N, K]{}, fmt.Errorf("%w: key %v", ErrNotFound, key)
}

// DecreaseKey lowers the key of node and bubbles it up. An equal key is a
// no-op.
//
// Errors:
//   - ErrNotFound: if node is absent.
//   - ErrKeyIncrease: if key is greater than the current key.
func (h *Heap[N, K]) DecreaseKey(node N, key K) error {
	i, ok := h.pos[node]
	if !ok {
		return fmt.Errorf("%w: node %v", ErrNotFound, node)
	}
	if h.entries[i].Key < key {
		return fmt.Errorf("%w: node %v %v → %v", ErrKeyIncrease, node, h.entries[i].Key, key)
	}

	h.entries[i].Key = key
	h.up(i)

	return nil
}

// Update sets the key of node to any value and restores the invariant. It is
// equivalent to Delete followed by Insert without the intermediate shrink.
//
// Errors:
//   - ErrNotFound: if node is absent.
func (h *Heap[N, K]) Update(node N, key K) error {
	i, ok := h.pos[node]
	if !ok {
		return fmt.Errorf("%w: node %v", ErrNotFound, node)
	}

	h.entries[i].Key = key
	h.fix(i)

	return nil
}

// Verify checks the heap property at every non-root position and that the
// position map agrees with the array. It is O(n) and meant for tests and
// debug assertions.
func (h *Heap[N, K]) Verify() error {
	if len(h.pos) != len(h.entries) {
		return fmt.Errorf("%w: %d positions for %d entries", ErrHeapProperty, len(h.pos), len(h.entries))
	}
	for p, e := range h.entries {
		if h.pos[e.Node] != p {
			return fmt.Errorf("%w: node %v recorded at %d, stored at %d", ErrHeapProperty, e.Node, h.pos[e.Node], p)
		}
		if p > 0 && h.entries[p].Key < h.entries[parent(p)].Key {
			return fmt.Errorf("%w: key at %d is less than its parent", ErrHeapProperty, p)
		}
	}

	return nil
}

// removeAt moves the last entry into position i, shrinks the slice and
// repairs the tree from i.
func (h *Heap[N, K]) removeAt(i int) Entry[N, K] {
	last := len(h.entries) - 1
	removed := h.entries[i]
	if i != last {
		h.swap(i, last)
	}

	h.entries[last] = Entry[N, K]{}
	h.entries = h.entries[:last]
	delete(h.pos, removed.Node)

	if i < last {
		h.fix(i)
	}

	return removed
}

// fix bubbles the entry at i up; if it did not move, it bubbles it down.
// A single replacement can only break the order in one direction.
func (h *Heap[N, K]) fix(i int) {
	if !h.up(i) {
		h.down(i)
	}
}

// heapify sifts down every internal node from the last one to the root.
func (h *Heap[N, K]) heapify() {
	for i := len(h.entries)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}

// up swaps the entry at i with its parent while the parent is greater.
// It reports whether the entry moved.
func (h *Heap[N, K]) up(i int) bool {
	start := i
	for i > 0 {
		p := parent(i)
		if !(h.entries[i].Key < h.entries[p].Key) {
			break
		}
		h.swap(i, p)
		i = p
	}

	return i != start
}

// down swaps the entry at i with its smaller child while that child is
// smaller. Positions i >= n/2 are leaves; a left-only child exists when the
// right index is out of range; ties between children go to the left one.
func (h *Heap[N, K]) down(i int) {
	n := len(h.entries)
	for i < n/2 {
		m := left(i)
		if r := right(i); r < n && h.entries[r].Key < h.entries[m].Key {
			m = r
		}
		if !(h.entries[m].Key < h.entries[i].Key) {
			return
		}
		h.swap(i, m)
		i = m
	}
}

func (h *Heap[N, K]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.pos[h.entries[i].Node] = i
	h.pos[h.entries[j].Node] = j
}
