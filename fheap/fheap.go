// File: fheap.go
// Role: insert / find-min / extract-min / decrease-key / delete / merge.
package fheap

import (
	"fmt"
	"math"
)

// higherPriority reports whether entry a should be extracted before entry b:
// strictly smaller key, or equal key and a precedes b under less.
func (h *Heap[T]) higherPriority(a, b Handle) bool {
	na, nb := &h.nodes[a], &h.nodes[b]
	if na.key != nb.key {
		return na.key < nb.key
	}
	if h.less != nil {
		return h.less(na.value, nb.value)
	}

	return false
}

// unlink removes x from whatever circular list currently contains it
// (root list or a sibling/child list) and returns x's former right
// neighbor, or nilHandle if x was the list's only member.
func (h *Heap[T]) unlink(x Handle) Handle {
	xn := &h.nodes[x]
	left, right := xn.left, xn.right
	xn.left, xn.right = x, x
	if left == x {
		return nilHandle
	}
	h.nodes[left].right = right
	h.nodes[right].left = left

	return right
}

// insertIntoList splices singleton x into the circular list containing
// anchor (or makes x a singleton list if anchor is nilHandle), returning the
// (unchanged) anchor handle.
func (h *Heap[T]) insertIntoList(anchor, x Handle) Handle {
	if anchor == nilHandle {
		h.nodes[x].left, h.nodes[x].right = x, x

		return x
	}
	an := &h.nodes[anchor]
	xn := &h.nodes[x]
	right := an.right
	xn.left, xn.right = anchor, right
	an.right = x
	h.nodes[right].left = x

	return anchor
}

// spliceLists concatenates two circular lists given representative members
// a and b, merging b's ring into a's.
func spliceLists[T any](nodes []node[T], a, b Handle) {
	an, bn := &nodes[a], &nodes[b]
	aRight, bLeft := an.right, bn.left
	an.right = b
	bn.left = a
	nodes[aRight].left = bLeft
	nodes[bLeft].right = aRight
}

// alloc reuses a free arena slot or grows the arena, returning a fresh
// singleton node holding (key, value).
func (h *Heap[T]) alloc(key float64, value T) Handle {
	n := node[T]{key: key, value: value, parent: nilHandle, child: nilHandle, alive: true}
	if len(h.free) > 0 {
		idx := h.free[len(h.free)-1]
		h.free = h.free[:len(h.free)-1]
		n.left, n.right = idx, idx
		h.nodes[idx] = n

		return idx
	}
	idx := Handle(len(h.nodes))
	n.left, n.right = idx, idx
	h.nodes = append(h.nodes, n)

	return idx
}

// Insert adds value under key and returns a Handle valid for DecreaseKey/
// Delete until the entry is removed. Amortized O(1).
func (h *Heap[T]) Insert(key float64, value T) Handle {
	idx := h.alloc(key, value)
	if h.min == nilHandle {
		h.min = idx
	} else {
		h.min = h.insertIntoList(h.min, idx)
		if h.higherPriority(idx, h.min) {
			h.min = idx
		}
	}
	h.size++

	return idx
}

// FindMin returns the minimum entry without removing it. O(1).
func (h *Heap[T]) FindMin() (value T, key float64, err error) {
	if h.min == nilHandle {
		err = ErrEmptyHeap

		return
	}
	n := &h.nodes[h.min]

	return n.value, n.key, nil
}

// ExtractMin removes and returns the minimum entry, re-consolidating the
// root list. Amortized O(log n).
func (h *Heap[T]) ExtractMin() (value T, key float64, err error) {
	if h.min == nilHandle {
		err = ErrEmptyHeap

		return
	}
	z := h.min
	value, key = h.nodes[z].value, h.nodes[z].key

	if child := h.nodes[z].child; child != nilHandle {
		members := make([]Handle, 0, h.nodes[z].degree)
		c := child
		for {
			members = append(members, c)
			c = h.nodes[c].right
			if c == child {
				break
			}
		}
		for _, m := range members {
			h.unlink(m)
			h.nodes[m].parent = nilHandle
			h.nodes[m].mark = false
			h.min = h.insertIntoList(h.min, m)
		}
	}

	next := h.unlink(z)
	h.nodes[z].child = nilHandle
	if next == nilHandle {
		h.min = nilHandle
	} else {
		h.min = next
		h.consolidate()
	}

	h.nodes[z].alive = false
	h.free = append(h.free, z)
	h.size--

	return value, key, nil
}

// consolidate merges root-list trees of equal degree until all roots have
// distinct degree, restoring the amortized extract-min bound.
func (h *Heap[T]) consolidate() {
	if h.min == nilHandle {
		return
	}

	roots := make([]Handle, 0, h.size)
	start := h.min
	c := start
	for {
		roots = append(roots, c)
		c = h.nodes[c].right
		if c == start {
			break
		}
	}

	maxDegree := 2*len(h.nodes) + 2
	degTable := make([]Handle, maxDegree)
	for i := range degTable {
		degTable[i] = nilHandle
	}

	for _, w := range roots {
		x := w
		d := h.nodes[x].degree
		for degTable[d] != nilHandle {
			y := degTable[d]
			if h.higherPriority(y, x) {
				x, y = y, x
			}
			h.link(y, x)
			degTable[d] = nilHandle
			d++
		}
		degTable[d] = x
	}

	h.min = nilHandle
	for _, x := range degTable {
		if x == nilHandle {
			continue
		}
		h.nodes[x].parent = nilHandle
		if h.min == nilHandle {
			h.nodes[x].left, h.nodes[x].right = x, x
			h.min = x

			continue
		}
		h.min = h.insertIntoList(h.min, x)
		if h.higherPriority(x, h.min) {
			h.min = x
		}
	}
}

// link makes y a child of x. Caller guarantees x has priority over y.
func (h *Heap[T]) link(y, x Handle) {
	h.unlink(y)
	h.nodes[y].parent = x
	h.nodes[y].mark = false

	xn := &h.nodes[x]
	xn.child = h.insertIntoList(xn.child, y)
	xn.degree++
}

// DecreaseKey lowers x's key. If this violates heap order against x's
// parent, x is cut into the root list and a cascading cut runs up the
// ancestor chain (spec.md §4.7). Amortized O(1).
func (h *Heap[T]) DecreaseKey(x Handle, newKey float64) error {
	if int(x) < 0 || int(x) >= len(h.nodes) || !h.nodes[x].alive {
		return ErrInvalidHandle
	}
	if newKey > h.nodes[x].key {
		return fmt.Errorf("%w: %v > %v", ErrKeyIncreased, newKey, h.nodes[x].key)
	}
	h.nodes[x].key = newKey

	p := h.nodes[x].parent
	if p != nilHandle && h.higherPriority(x, p) {
		h.cut(x, p)
		h.cascadingCut(p)
	}
	if h.higherPriority(x, h.min) {
		h.min = x
	}

	return nil
}

// cut detaches x from its parent p's child list and splices it into the
// root list, unmarked.
func (h *Heap[T]) cut(x, p Handle) {
	pn := &h.nodes[p]
	if pn.child == x {
		next := h.nodes[x].right
		if next == x {
			pn.child = nilHandle
		} else {
			pn.child = next
		}
	}
	h.unlink(x)
	pn.degree--

	h.nodes[x].parent = nilHandle
	h.nodes[x].mark = false
	h.min = h.insertIntoList(h.min, x)
}

// cascadingCut implements the mark/cascade policy: an unmarked node that
// loses a child is marked; a marked node that loses a child is itself cut
// and the cascade continues upward.
func (h *Heap[T]) cascadingCut(y Handle) {
	p := h.nodes[y].parent
	if p == nilHandle {
		return
	}
	if !h.nodes[y].mark {
		h.nodes[y].mark = true

		return
	}
	h.cut(y, p)
	h.cascadingCut(p)
}

// Delete removes the entry at x regardless of its key, by driving it to
// -Inf and extracting it. Amortized O(log n).
func (h *Heap[T]) Delete(x Handle) error {
	if int(x) < 0 || int(x) >= len(h.nodes) || !h.nodes[x].alive {
		return ErrInvalidHandle
	}
	h.nodes[x].key = math.Inf(-1)
	if p := h.nodes[x].parent; p != nilHandle {
		h.cut(x, p)
		h.cascadingCut(p)
	}
	h.min = x
	_, _, err := h.ExtractMin()

	return err
}

// Merge absorbs other into h and empties other.
//
// Deviation from the spec.md §4.7 table's O(1) merge: because entries are
// addressed by per-heap arena index, an O(1) merge requires both heaps to
// share one arena from construction. This implementation re-indexes other's
// entries into h's arena instead, costing O(other.Len()). No call site in
// this module merges heaps in a hot loop, so the trade-off is inert in
// practice; see DESIGN.md.
func (h *Heap[T]) Merge(other *Heap[T]) {
	if other == nil || len(other.nodes) == 0 {
		return
	}

	offset := Handle(len(h.nodes))
	for _, on := range other.nodes {
		nn := on
		if nn.alive {
			if nn.parent != nilHandle {
				nn.parent += offset
			}
			if nn.child != nilHandle {
				nn.child += offset
			}
			nn.left += offset
			nn.right += offset
		}
		h.nodes = append(h.nodes, nn)
	}
	for _, f := range other.free {
		h.free = append(h.free, f+offset)
	}

	if other.min != nilHandle {
		otherMin := other.min + offset
		if h.min == nilHandle {
			h.min = otherMin
		} else {
			spliceLists(h.nodes, h.min, otherMin)
			if h.higherPriority(otherMin, h.min) {
				h.min = otherMin
			}
		}
	}
	h.size += other.size

	*other = Heap[T]{min: nilHandle, less: other.less}
}
