package arraylist

// Iterator is a cursor over the elements of a [List] that can remove the element it yielded
// last.
//
// Each call to [Iterator.Next] may be followed by at most one call to [Iterator.Remove]. Used
// this way, the iterator yields every remaining element exactly once even though removal shifts
// the positions of the following elements. Any other structural change of the list during
// iteration leaves the cursor in an unspecified position.
type Iterator[T any] struct {
	list      *List[T]
	cursor    int
	removable bool
}

// HasNext reports whether [Iterator.Next] will return an element.
func (it *Iterator[T]) HasNext() bool {
	return it.cursor < it.list.Size()
}

// Next returns the next element and advances the cursor.
//
// Returns [ErrNoSuchElement] if there are no elements left.
func (it *Iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoSuchElement
	}

	value, err := it.list.Get(it.cursor)
	if err != nil {
		return value, err
	}
	it.cursor++
	it.removable = true

	return value, nil
}

// Remove removes the element returned by the last call to [Iterator.Next].
//
// Returns [ErrIllegalState] if Next wasn't called yet or if Remove was already called after the
// last Next.
func (it *Iterator[T]) Remove() error {
	if !it.removable {
		return ErrIllegalState
	}

	if _, err := it.list.RemoveAt(it.cursor - 1); err != nil {
		return err
	}
	it.cursor--
	it.removable = false

	return nil
}
