package fheap

import "errors"

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap is returned by FindMin/ExtractMin on an empty heap. Per
	// spec.md §7 this is a programmer error: callers are expected to check
	// Len() first in any loop that might drain the heap.
	ErrEmptyHeap = errors.New("fheap: heap is empty")

	// ErrInvalidHandle is returned by DecreaseKey/Delete when the handle does
	// not refer to a live entry (already extracted, or from a different heap).
	ErrInvalidHandle = errors.New("fheap: handle does not refer to a live entry")

	// ErrKeyIncreased is returned by DecreaseKey when newKey is greater than
	// the entry's current key; decrease-key is one-directional by definition.
	ErrKeyIncreased = errors.New("fheap: new key is greater than current key")
)

// Handle addresses a single entry inserted into a Heap.
type Handle int

// nilHandle marks "no such entry" (absent parent, absent child, empty heap).
const nilHandle Handle = -1

// node is one arena slot: a tree node in the Fibonacci heap forest, or a
// free slot recycled from a prior ExtractMin/Delete.
type node[T any] struct {
	key    float64
	value  T
	degree int
	mark   bool

	parent, child Handle
	left, right   Handle // circular doubly-linked sibling list

	alive bool
}

// Heap is an addressable Fibonacci heap over values of type T.
//
// less breaks ties between equal keys deterministically (spec.md §4.7:
// "priorities compare by numeric key first, then by a stable secondary
// key"). A nil less leaves ties in arbitrary (but still deterministic for a
// given sequence of operations) arena order.
type Heap[T any] struct {
	nodes []node[T]
	free  []Handle
	min   Handle
	size  int
	less  func(a, b T) bool
}

// New constructs an empty Heap. less, if non-nil, is the stable tie-break
// comparator used when two entries share a key.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{min: nilHandle, less: less}
}

// Len returns the number of live entries.
func (h *Heap[T]) Len() int { return h.size }
