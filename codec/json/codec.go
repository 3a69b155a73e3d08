package json

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"

	"github.com/teenjuna/arraylist/codec"
)

// Codec encodes elements as a single JSON array.
type Codec[T any] struct {
	buf *bytes.Buffer
}

var _ codec.Codec[any] = (*Codec[any])(nil)

// New returns a JSON codec. T must be encodable by encoding/json.
func New[T any]() *Codec[T] {
	return &Codec[T]{
		buf: new(bytes.Buffer),
	}
}

// Encode writes the elements as one JSON array. An empty sequence is encoded as [] rather than
// null.
func (c *Codec[T]) Encode(seq iter.Seq[T]) ([]byte, error) {
	items := slices.Collect(seq)
	if items == nil {
		items = make([]T, 0)
	}

	c.buf.Reset()
	enc := json.NewEncoder(c.buf)

	if err := enc.Encode(items); err != nil {
		return nil, err
	}

	res := c.buf.Bytes()
	out := make([]byte, len(res))
	copy(out, res)

	return out, nil
}

// Decode pushes the elements of a JSON array in order. Nothing is pushed if data isn't a valid
// array of T.
func (c *Codec[T]) Decode(data []byte, push func(T)) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	for _, item := range items {
		push(item)
	}

	return nil
}
