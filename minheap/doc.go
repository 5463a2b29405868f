// SPDX-License-Identifier: MIT

// Package minheap implements an array-backed, index-addressable binary
// min-heap: the frontier behind the dijkstra package.
//
// Layout:
//
//	The heap is a slice of Entry{Node, Key} read as a complete binary tree.
//	Position p has children 2p+1 and 2p+2 and parent (p-1)/2; the root p=0
//	has no parent. For every p > 0: entries[parent(p)].Key <= entries[p].Key.
//
// Position tracking:
//
//	Every swap also updates a node → array-index map, so Delete(node) and
//	DecreaseKey(node, k) locate their entry in O(1) and repair the tree in
//	O(log n). A node may be present at most once (ErrDuplicateNode).
//
// Operations and costs:
//
//	New / FromKeys   O(n)      bottom-up heapify
//	Insert           O(log n)  append, bubble up
//	ExtractMin       O(log n)  last entry to the root, bubble down
//	Delete           O(log n)  last entry into the hole, bubble up or down
//	DecreaseKey      O(log n)  bubble up
//	DeleteKey        O(n)      value scan (lowest array index wins), then Delete
//
// Errors (sentinel):
//
//	ErrEmpty          ExtractMin/Peek on an empty heap.
//	ErrNotFound       Delete/DeleteKey/DecreaseKey/Update on an absent node or key.
//	ErrDuplicateNode  Insert/New with a node that is already present.
//	ErrKeyIncrease    DecreaseKey with a larger key.
//	ErrHeapProperty   reported by Verify when an invariant does not hold.
//
// Keys must be totally ordered: a NaN float key silently breaks the
// ordering and is the caller's responsibility to keep out.
//
// A Heap is not safe for concurrent use; each engine run owns its own.
package minheap
