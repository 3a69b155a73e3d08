// This package contains the main [Codec] interface and several implementations inside subpackages.
package codec

import "iter"

// Codec encodes and decodes list elements.
//
// Implementations are not considered thread-safe.
type Codec[T any] interface {
	// Encode serializes a sequence of elements into a byte slice.
	Encode(seq iter.Seq[T]) ([]byte, error)
	// Decode deserializes a byte slice into elements, pushing each to the provided function in
	// the order they were encoded.
	Decode(data []byte, push func(T)) error
}
