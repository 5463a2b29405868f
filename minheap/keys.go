// SPDX-License-Identifier: MIT

package minheap

import "golang.org/x/exp/constraints"

// KeyHeap is a min-heap over bare keys. Duplicate keys are allowed; each key
// is tracked internally under a private sequence number so it can share the
// position-tracked machinery of Heap.
type KeyHeap[K constraints.Ordered] struct {
	h    *Heap[int, K]
	next int
}

// FromKeys heapifies keys in O(n). The slice is copied; empty and single
// key inputs give a valid heap.
func FromKeys[K constraints.Ordered](keys ...K) *KeyHeap[K] {
	entries := make([]Entry[int, K], len(keys))
	for i, k := range keys {
		entries[i] = Entry[int, K]{Node: i, Key: k}
	}
	h, err := New(entries...)
	if err != nil {
		// sequence numbers are unique
		panic("minheap: FromKeys: " + err.Error())
	}

	return &KeyHeap[K]{h: h, next: len(keys)}
}

// Len returns the number of keys in the heap.
func (k *KeyHeap[K]) Len() int { return k.h.Len() }

// IsEmpty reports whether the heap has no keys.
func (k *KeyHeap[K]) IsEmpty() bool { return k.h.IsEmpty() }

// Insert adds key. next only grows, so the sequence number is never
// already in the heap; a failure there is a broken invariant and panics.
func (k *KeyHeap[K]) Insert(key K) {
	if err := k.h.Insert(k.next, key); err != nil {
		panic("minheap: KeyHeap.Insert: " + err.Error())
	}
	k.next++
}

// Min returns the smallest key without removing it.
func (k *KeyHeap[K]) Min() (K, error) {
	e, err := k.h.Peek()
	return e.Key, err
}

// ExtractMin removes and returns the smallest key, or ErrEmpty.
func (k *KeyHeap[K]) ExtractMin() (K, error) {
	e, err := k.h.ExtractMin()
	return e.Key, err
}

// Delete removes one occurrence of key: the one at the lowest array index.
// It returns ErrNotFound if key is absent.
func (k *KeyHeap[K]) Delete(key K) error {
	_, err := k.h.DeleteKey(key)
	return err
}

// Keys returns the keys in array order.
func (k *KeyHeap[K]) Keys() []K {
	out := make([]K, k.h.Len())
	for i, e := range k.h.entries {
		out[i] = e.Key
	}

	return out
}

// Verify checks the heap property; see Heap.Verify.
func (k *KeyHeap[K]) Verify() error { return k.h.Verify() }
