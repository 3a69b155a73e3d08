package gob

import (
	"bytes"
	"encoding/gob"
	"io"
	"iter"

	"github.com/teenjuna/arraylist/codec"
)

// Codec encodes elements as a gob stream of individually encoded values.
type Codec[T any] struct {
	buf *bytes.Buffer
}

var _ codec.Codec[any] = (*Codec[any])(nil)

// New returns a gob codec. Interface element types must be registered with [gob.Register].
func New[T any]() *Codec[T] {
	return &Codec[T]{
		buf: new(bytes.Buffer),
	}
}

// Encode writes one gob value per element to a single stream, so type information is written
// once.
func (c *Codec[T]) Encode(seq iter.Seq[T]) ([]byte, error) {
	c.buf.Reset()
	enc := gob.NewEncoder(c.buf)

	for item := range seq {
		if err := enc.Encode(&item); err != nil {
			return nil, err
		}
	}

	res := c.buf.Bytes()
	out := make([]byte, len(res))
	copy(out, res)

	return out, nil
}

// Decode pushes values until the stream ends. Values decoded before an error are pushed.
func (c *Codec[T]) Decode(data []byte, push func(T)) error {
	dec := gob.NewDecoder(bytes.NewReader(data))

	for {
		var item T
		err := dec.Decode(&item)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		push(item)
	}
}
