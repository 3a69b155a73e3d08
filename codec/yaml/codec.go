package yaml

import (
	"bytes"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/teenjuna/arraylist/codec"
)

// Codec encodes elements as a single YAML sequence.
type Codec[T any] struct {
	buf *bytes.Buffer
}

var _ codec.Codec[any] = (*Codec[any])(nil)

func New[T any]() *Codec[T] {
	return &Codec[T]{
		buf: new(bytes.Buffer),
	}
}

func (c *Codec[T]) Encode(seq iter.Seq[T]) ([]byte, error) {
	items := slices.Collect(seq)
	if items == nil {
		items = make([]T, 0)
	}

	c.buf.Reset()
	enc := yaml.NewEncoder(c.buf)
	enc.SetIndent(2)

	if err := enc.Encode(items); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	res := c.buf.Bytes()
	out := make([]byte, len(res))
	copy(out, res)

	return out, nil
}

func (c *Codec[T]) Decode(data []byte, push func(T)) error {
	var items []T
	if err := yaml.Unmarshal(data, &items); err != nil {
		return err
	}

	for _, item := range items {
		push(item)
	}

	return nil
}
