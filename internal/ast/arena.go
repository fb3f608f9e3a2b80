// Package ast is the syntactic AST produced by the parser: a plain,
// immutable tree over the source language's grammar.
package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is a generic, append-only, 1-based-indexed store. Index 0 is
// reserved as "no value" across every ID type built on top of it.
type Arena[T any] struct {
	data []*T
}

// NewArena creates an Arena with capHint pre-reserved slots.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]*T, 0, capHint)}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	elem := new(T)
	*elem = value
	a.data = append(a.data, elem)
	return a.Len()
}

// Get returns a pointer to the element at index, or nil for index 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return a.data[index-1]
}

// Slice returns a read-only copy of the arena's contents in order.
func (a *Arena[T]) Slice() []T {
	out := make([]T, len(a.data))
	for i, p := range a.data {
		out[i] = *p
	}
	return out
}

// Len returns the number of elements allocated so far.
func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("ast: arena length overflow: %w", err))
	}
	return n
}
