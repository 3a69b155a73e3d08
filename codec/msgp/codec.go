package msgp

import (
	"iter"

	"github.com/tinylib/msgp/msgp"

	"github.com/teenjuna/arraylist/codec"
)

// Codec encodes elements as concatenated MessagePack objects. The element pointer type must
// implement the methods generated by the msgp tool.
type Codec[T any, TPtr msgpable[T]] struct {
	buf []byte
}

var _ codec.Codec[msgp.Raw] = (*Codec[msgp.Raw, *msgp.Raw])(nil)

func New[T any, TPtr msgpable[T]]() *Codec[T, TPtr] {
	buf := make([]byte, 0)
	return &Codec[T, TPtr]{
		buf: buf,
	}
}

func (c *Codec[T, TPtr]) Encode(seq iter.Seq[T]) ([]byte, error) {
	c.buf = c.buf[:0]
	for item := range seq {
		b, err := TPtr(&item).MarshalMsg(c.buf)
		if err != nil {
			return nil, err
		}
		c.buf = b
	}

	out := make([]byte, len(c.buf))
	copy(out, c.buf)

	return out, nil
}

func (c *Codec[T, TPtr]) Decode(data []byte, push func(T)) error {
	for len(data) > 0 {
		var item T
		d, err := TPtr(&item).UnmarshalMsg(data)
		if err != nil {
			return err
		}
		data = d
		push(item)
	}

	return nil
}

type msgpable[T any] interface {
	*T
	msgp.Encodable
	msgp.Decodable
	msgp.Marshaler
	msgp.Unmarshaler
}
