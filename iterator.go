package vector

import "iter"

// Iterator is a position handle into a Vector. It stores an index, not an
// address, so it stays usable after a reallocation; the element it
// designates is unspecified once the vector has been inserted into, erased
// from or reallocated.
type Iterator[T any] struct {
	v *Vector[T]
	i int
}

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any] struct {
	v *Vector[T]
	i int
}

// Position is implemented by Iterator and ConstIterator, so either kind of
// handle can name the place for Insert and Erase.
type Position[T any] interface {
	position() (*Vector[T], int)
}

func (it Iterator[T]) position() (*Vector[T], int)      { return it.v, it.i }
func (it ConstIterator[T]) position() (*Vector[T], int) { return it.v, it.i }

// Begin returns a handle to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v: v}
}

// End returns the past-the-end handle.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, i: v.size}
}

// CBegin returns a read-only handle to the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{v: v}
}

// CEnd returns the read-only past-the-end handle.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{v: v, i: v.size}
}

// All returns a sequence of index/element pairs over [0, Size()). Each
// range over it starts again from the first element.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.items.At(i)) {
				return
			}
		}
	}
}

// Values returns a sequence of the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.items.At(i)) {
				return
			}
		}
	}
}

// Backward returns a sequence of index/element pairs from the last element
// to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.items.At(i)) {
				return
			}
		}
	}
}

// Index returns the position the handle refers to.
func (it Iterator[T]) Index() int { return it.i }

// Get returns the element at the handle.
func (it Iterator[T]) Get() T { return *it.v.Index(it.i) }

// Set overwrites the element at the handle.
func (it Iterator[T]) Set(x T) { *it.v.Index(it.i) = x }

// Ptr returns a pointer to the element at the handle.
func (it Iterator[T]) Ptr() *T { return it.v.Index(it.i) }

// Next returns a handle one position forward.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns a handle one position back.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns a handle n positions away.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.i += n
	return it
}

// Distance returns the number of positions from it to other.
func (it Iterator[T]) Distance(other Iterator[T]) int { return other.i - it.i }

// Equal reports whether both handles refer to the same position of the
// same vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.i == other.i
}

// Const returns a read-only handle to the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{v: it.v, i: it.i}
}

// Index returns the position of the handle.
func (it ConstIterator[T]) Index() int { return it.i }

// Get returns a copy of the element at the handle.
func (it ConstIterator[T]) Get() T { return *it.v.Index(it.i) }

// Next returns a handle one position toward the end.
func (it ConstIterator[T]) Next() ConstIterator[T] { return it.Add(1) }

// Prev returns a handle one position toward the start.
func (it ConstIterator[T]) Prev() ConstIterator[T] { return it.Add(-1) }

// Add returns a handle n positions away; n may be negative.
func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	it.i += n
	return it
}

// Distance returns the number of positions from it to other.
func (it ConstIterator[T]) Distance(other ConstIterator[T]) int { return other.i - it.i }

// Equal reports whether both handles refer to the same position of the
// same vector.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.v == other.v && it.i == other.i
}
