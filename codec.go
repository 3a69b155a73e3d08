package arraylist

import (
	"fmt"
	"iter"
)

// Codec serializes list elements. Implementations live in the codec subpackages and are not
// considered thread-safe.
type Codec[T any] interface {
	Encode(seq iter.Seq[T]) ([]byte, error)
	Decode(data []byte, push func(T)) error
}

// Encode serializes the elements of the list in order.
func (l *List[T]) Encode(codec Codec[T]) ([]byte, error) {
	data, err := codec.Encode(l.Values())
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// Decode appends the elements decoded from data to the end of the list.
//
// If decoding fails, the list is left unchanged.
func (l *List[T]) Decode(codec Codec[T], data []byte) error {
	var decoded []T
	if err := codec.Decode(data, func(v T) { decoded = append(decoded, v) }); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	l.EnsureCapacity(len(l.data) + len(decoded))
	l.data = append(l.data, decoded...)
	l.metrics.added(len(decoded))

	return nil
}
