// Package queue provides the matcher's work list.
package queue

import "slices"

// WorkList is an indexed list of pending items.
//
// The matcher walks it with an index that keeps advancing after RemoveAt, so
// the item that slides into the removed slot is skipped until the next pass.
// Items appended during a pass are visited later in the same pass if the
// index reaches them.
//
// The zero value is an empty list ready to use.
type WorkList[T any] struct {
	items []T
}

// New creates a work list holding a copy of items, in order.
func New[T any](items ...T) *WorkList[T] {
	return &WorkList[T]{items: slices.Clone(items)}
}

// Len returns the number of pending items.
func (l *WorkList[T]) Len() int {
	return len(l.items)
}

// At returns the item at index i.
func (l *WorkList[T]) At(i int) T {
	return l.items[i]
}

// Append adds v at the end.
func (l *WorkList[T]) Append(v T) {
	l.items = append(l.items, v)
}

// RemoveAt deletes the item at index i, shifting later items down by one.
func (l *WorkList[T]) RemoveAt(i int) {
	l.items = slices.Delete(l.items, i, i+1)
}
