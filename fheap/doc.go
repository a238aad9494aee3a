// Package fheap implements an addressable Fibonacci heap (spec.md §4.7): a
// forest of heap-ordered trees linked into a circular root list, supporting
// amortized O(1) insert/find-min/decrease-key and amortized O(log n)
// extract-min/delete.
//
// Entries live in an arena (a slice of nodes inside Heap) addressed by
// Handle, an opaque index. This sidesteps reference-counted parent/child/
// sibling cycles (spec.md §9): a Handle returned by Insert stays valid for
// DecreaseKey/Delete until the entry leaves the heap via ExtractMin or
// Delete, at which point its arena slot is recycled.
//
// This is the hot spot behind Nagamochi–Ibaraki CAPFOREST (package
// sparsify): nodes are keyed by -r[v] so that "extract the maximum r" is
// implemented as ExtractMin, and r[v] increases via DecreaseKey on the
// negated priority.
package fheap
