package telemetry

import (
	"iter"

	"github.com/oomph-ac/parkour/oerror"
)

// History is a bounded queue of samples. Once full, appending drops the oldest sample.
type History[T any] struct {
	items []T
	head  int
	tail  int
	size  int
}

// NewHistory returns a History holding at most capacity items.
func NewHistory[T any](capacity int) *History[T] {
	return &History[T]{items: make([]T, capacity)}
}

// Append appends an item, dropping the oldest one if the history is full.
func (h *History[T]) Append(item T) error {
	if len(h.items) == 0 {
		return oerror.New("telemetry: append on zero-capacity history")
	}
	h.items[h.tail] = item
	if h.size == len(h.items) {
		h.head = (h.head + 1) % len(h.items)
	} else {
		h.size++
	}
	h.tail = (h.tail + 1) % len(h.items)
	return nil
}

// Get returns the item at logical position index, where 0 is the oldest.
func (h *History[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= h.size {
		return zero, oerror.New("telemetry: index %d out of range", index)
	}
	return h.items[(h.head+index)%len(h.items)], nil
}

// Latest returns the newest item. The boolean is false if the history is empty.
func (h *History[T]) Latest() (item T, ok bool) {
	if h.size == 0 {
		return item, false
	}
	return h.items[(h.tail-1+len(h.items))%len(h.items)], true
}

// All iterates from the oldest to the newest item.
func (h *History[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range h.size {
			if !yield(h.items[(h.head+index)%len(h.items)]) {
				return
			}
		}
	}
}

// Len returns the number of items held.
func (h *History[T]) Len() int {
	return h.size
}

// Cap returns the maximum number of items the history can hold.
func (h *History[T]) Cap() int {
	return len(h.items)
}

// Reset removes all items.
func (h *History[T]) Reset() {
	clear(h.items)
	h.head, h.tail, h.size = 0, 0, 0
}
