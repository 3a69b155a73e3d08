package arraylist

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrOutOfRange is returned when an index is outside the range valid for the operation.
	ErrOutOfRange = errors.New("index out of range")
	// ErrNoSuchElement is returned by [Iterator.Next] when there are no elements left.
	ErrNoSuchElement = errors.New("no elements left in list")
	// ErrIllegalState is returned by [Iterator.Remove] when it isn't preceded by a call to
	// [Iterator.Next].
	ErrIllegalState = errors.New("unable to remove element")
)

// List is an ordered sequence of elements backed by a contiguous buffer that grows on demand.
//
// The buffer is reallocated according to the configured [GrowthPolicy] whenever an insertion
// would exceed its capacity. Capacity never shrinks.
//
// List is not safe for concurrent use. Mutating a list while it's being traversed by an
// [Iterator] or by [List.Values] / [List.All] is unsupported, except through [Iterator.Remove].
type List[T any] struct {
	// len(data) is the size and cap(data) is the capacity. Slots in [len, cap) hold zero values.
	data    []T
	equal   func(a, b T) bool
	growth  GrowthPolicy
	metrics *metrics
}

// New returns an empty list of comparable elements, compared with ==.
//
// Default configuration:
//   - Capacity: [DefaultCapacity]
//   - Growth: [growth.Doubling]
//   - Prometheus: nil (disabled)
func New[T comparable](configFuncs ...ConfigFunc) *List[T] {
	return NewFunc(func(a, b T) bool { return a == b }, configFuncs...)
}

// NewFunc returns an empty list whose elements are compared with the equal function. It allows
// element types that aren't comparable, like slices or structs containing them.
//
// See [New] for the default configuration.
func NewFunc[T any](equal func(a, b T) bool, configFuncs ...ConfigFunc) *List[T] {
	if equal == nil {
		panic("equal can't be nil")
	}

	cfg := newConfig(configFuncs...)

	list := List[T]{
		data:    make([]T, 0, cfg.capacity),
		equal:   equal,
		growth:  cfg.growth,
		metrics: cfg.prometheus.metrics(),
	}

	return &list
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int {
	return len(l.data)
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return len(l.data) == 0
}

// Cap returns the capacity of the backing buffer.
func (l *List[T]) Cap() int {
	return cap(l.data)
}

// Get returns the element at index.
//
// Returns [ErrOutOfRange] unless 0 <= index < [List.Size].
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.data[index], nil
}

// Set replaces the element at index with value and returns the replaced element.
//
// Returns [ErrOutOfRange] unless 0 <= index < [List.Size].
func (l *List[T]) Set(index int, value T) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	old := l.data[index]
	l.data[index] = value
	return old, nil
}

// IndexOf returns the index of the first element equal to value, or -1 if there is none.
func (l *List[T]) IndexOf(value T) int {
	for i, v := range l.data {
		if l.equal(v, value) {
			return i
		}
	}
	return -1
}

// Contains reports whether the list has an element equal to value.
func (l *List[T]) Contains(value T) bool {
	return l.IndexOf(value) >= 0
}

// Add appends value to the end of the list and reports whether the size increased, which is
// always the case.
func (l *List[T]) Add(value T) bool {
	size := len(l.data)
	l.EnsureCapacity(size + 1)
	l.data = append(l.data, value)
	l.metrics.added(1)
	return len(l.data) == size+1
}

// Insert inserts value at index, shifting the element at index and all following elements one
// position to the right. Inserting at index == [List.Size] appends.
//
// Returns [ErrOutOfRange] unless 0 <= index <= [List.Size].
func (l *List[T]) Insert(index int, value T) error {
	size := len(l.data)
	if index < 0 || index > size {
		return l.outOfRange(index)
	}

	l.EnsureCapacity(size + 1)

	var zero T
	l.data = append(l.data, zero)
	copy(l.data[index+1:], l.data[index:size])
	l.data[index] = value
	l.metrics.added(1)

	return nil
}

// RemoveAt removes and returns the element at index, shifting all following elements one
// position to the left.
//
// Returns [ErrOutOfRange] unless 0 <= index < [List.Size].
func (l *List[T]) RemoveAt(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.removeAt(index), nil
}

// Remove removes the first element equal to value and reports whether there was one.
func (l *List[T]) Remove(value T) bool {
	index := l.IndexOf(value)
	if index < 0 {
		return false
	}
	l.removeAt(index)
	return true
}

// Clear removes all elements from the list. Capacity is kept.
func (l *List[T]) Clear() {
	removed := len(l.data)
	clear(l.data)
	l.data = l.data[:0]
	l.metrics.removed(removed)
}

// EnsureCapacity grows the backing buffer so that it can hold at least minCapacity elements.
//
// If a growth is needed, the new capacity is the maximum of minCapacity and the capacity
// returned by the [GrowthPolicy]. Elements are copied in order and the old buffer is discarded.
func (l *List[T]) EnsureCapacity(minCapacity int) {
	capacity := cap(l.data)
	if minCapacity <= capacity {
		return
	}

	data := make([]T, len(l.data), max(l.growth.Grow(capacity), minCapacity))
	copy(data, l.data)
	l.data = data
	l.metrics.grew(len(data))
}

// Iterator returns a new [Iterator] positioned before the first element of the list.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		list: l,
	}
}

// Values returns a sequence of the elements of the list in order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(l.data); i++ {
			if !yield(l.data[i]) {
				return
			}
		}
	}
}

// All returns a sequence of index-element pairs of the list in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(l.data); i++ {
			if !yield(i, l.data[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements of the list.
func (l *List[T]) Slice() []T {
	out := make([]T, len(l.data))
	copy(out, l.data)
	return out
}

// Clone returns a list with the same elements, capacity and configuration that doesn't share
// its backing buffer with l.
func (l *List[T]) Clone() *List[T] {
	data := make([]T, len(l.data), cap(l.data))
	copy(data, l.data)

	clone := List[T]{
		data:    data,
		equal:   l.equal,
		growth:  l.growth,
		metrics: l.metrics,
	}
	l.metrics.added(len(data))

	return &clone
}

// String returns the elements formatted as "[ e0, e1, ..., ek ]", or "[ ]" if the list is
// empty.
func (l *List[T]) String() string {
	if len(l.data) == 0 {
		return "[ ]"
	}

	var b strings.Builder
	b.WriteString("[ ")
	for i, v := range l.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteString(" ]")

	return b.String()
}

// removeAt expects 0 <= index < len(l.data).
func (l *List[T]) removeAt(index int) T {
	value := l.data[index]
	last := len(l.data) - 1
	copy(l.data[index:], l.data[index+1:])

	// Release whatever the vacated slot still references.
	var zero T
	l.data[last] = zero
	l.data = l.data[:last]
	l.metrics.removed(1)

	return value
}

func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index >= len(l.data) {
		return l.outOfRange(index)
	}
	return nil
}

func (l *List[T]) outOfRange(index int) error {
	l.metrics.outOfRange()
	return fmt.Errorf("%w: index: %d, size: %d", ErrOutOfRange, index, len(l.data))
}
