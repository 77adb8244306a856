package vector

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// growthFactor is the capacity multiplier applied when PushBack or Insert
// run out of room.
const growthFactor = 2

// Vector is a contiguous, growable sequence of T built on a single Buffer.
// Positions [0, Size()) are the contents; [Size(), Capacity()) are
// allocated slots that are logically absent.
//
// The zero value is an empty vector ready for use. A Vector must not be
// copied by value: use Clone or Assign for a deep copy and Move, MoveFrom
// or Swap to hand its storage to another vector.
type Vector[T any] struct {
	items Buffer[T]
	size  int
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithSize returns a vector of n zero values with capacity n.
func NewWithSize[T any](n int) (*Vector[T], error) {
	b, err := NewBuffer[T](n)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{items: b.Move(), size: n}, nil
}

// NewFilled returns a vector of n copies of value with capacity n.
func NewFilled[T any](n int, value T) (*Vector[T], error) {
	v, err := NewWithSize[T](n)
	if err != nil {
		return nil, err
	}
	s := v.items.Slice()
	for i := range s {
		s[i] = value
	}
	return v, nil
}

// Of returns a vector holding a copy of values, in order, with size and
// capacity equal to len(values).
func Of[T any](values ...T) *Vector[T] {
	if len(values) == 0 {
		return &Vector[T]{}
	}
	return &Vector[T]{
		items: Buffer[T]{items: slices.Clone(values)},
		size:  len(values),
	}
}

// NewWithCapacity returns an empty vector with room for n elements.
func NewWithCapacity[T any](n int) (*Vector[T], error) {
	b, err := NewBuffer[T](n)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{items: b.Move()}, nil
}

// Clone returns a deep copy of v with the same size and capacity.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	b, err := v.copyBuffer()
	if err != nil {
		return nil, err
	}
	return &Vector[T]{items: b.Move(), size: v.size}, nil
}

// Assign replaces the contents of v with a deep copy of src. On error v is
// left untouched.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	b, err := src.copyBuffer()
	if err != nil {
		return err
	}
	v.items.Swap(b)
	v.size = src.size
	return nil
}

func (v *Vector[T]) copyBuffer() (*Buffer[T], error) {
	b, err := NewBuffer[T](v.Capacity())
	if err != nil {
		return nil, err
	}
	copy(b.Slice(), v.Slice())
	return b, nil
}

// Move transfers the storage of v to a new vector and leaves v empty with
// no capacity.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{items: v.items.Move(), size: v.size}
	v.size = 0
	return out
}

// MoveFrom takes over the storage of src, dropping whatever v held. src is
// left empty with no capacity.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.items = src.items.Move()
	v.size = src.size
	src.size = 0
}

// Size returns the number of elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return v.items.Len()
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Index returns a pointer to element i without checking it against Size.
// Indexes in [Size(), Capacity()) reach logically absent slots; anything
// past Capacity panics.
func (v *Vector[T]) Index(i int) *T {
	return v.items.At(i)
}

// At returns a pointer to element i, or ErrOutOfRange if i is not in
// [0, Size()).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d with size %d", i, v.size)
	}
	return v.items.At(i), nil
}

// Slice returns the elements as a slice sharing the vector's storage. It is
// invalidated by any operation that changes the capacity.
func (v *Vector[T]) Slice() []T {
	return v.items.Slice()[:v.size]
}

// Clear sets the size to 0. The storage and the stale values in it are kept.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize sets the size to n. Shrinking keeps the storage. Growing past the
// capacity reserves exactly n slots, and every newly exposed slot holds the
// zero value.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrAllocation, "negative size %d", n)
	}
	if n <= v.size {
		v.size = n
		return nil
	}
	if n > v.Capacity() {
		if err := v.Reserve(n); err != nil {
			return err
		}
	}
	clear(v.items.Slice()[v.size:n])
	v.size = n
	return nil
}

// PushBack appends x, doubling the capacity first if the vector is full.
func (v *Vector[T]) PushBack(x T) error {
	if err := v.growIfFull(); err != nil {
		return err
	}
	*v.items.At(v.size) = x
	v.size++
	return nil
}

// PopBack removes the last element. It is a no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size > 0 {
		v.size--
	}
}

// Insert places x before pos and returns a handle to it. pos may be an
// Iterator or a ConstIterator; it must belong to v and lie within
// [Begin(), End()].
func (v *Vector[T]) Insert(pos Position[T], x T) (Iterator[T], error) {
	owner, i := pos.position()
	v.checkOwner(owner)
	if err := v.InsertAt(i, x); err != nil {
		return Iterator[T]{v: v, i: i}, err
	}
	return Iterator[T]{v: v, i: i}, nil
}

// InsertAt places x at index i, shifting elements at and after i one slot
// toward the end. It panics if i is not in [0, Size()].
func (v *Vector[T]) InsertAt(i int, x T) error {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vector: iterator out of range: insert at %d with size %d", i, v.size))
	}
	if err := v.growIfFull(); err != nil {
		return err
	}
	s := v.items.Slice()
	// copy moves overlapping ranges back to front here, so no element is
	// overwritten before it has been shifted.
	copy(s[i+1:v.size+1], s[i:v.size])
	s[i] = x
	v.size++
	return nil
}

// Erase removes the element at pos and returns a handle to the element that
// took its place. pos may be an Iterator or a ConstIterator; it must belong
// to v and lie within [Begin(), End()).
func (v *Vector[T]) Erase(pos Position[T]) Iterator[T] {
	owner, i := pos.position()
	v.checkOwner(owner)
	v.EraseAt(i)
	return Iterator[T]{v: v, i: i}
}

// EraseAt removes element i, shifting the following elements one slot
// toward the start. It panics if i is not in [0, Size()).
func (v *Vector[T]) EraseAt(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: iterator out of range: erase at %d with size %d", i, v.size))
	}
	s := v.items.Slice()
	copy(s[i:v.size-1], s[i+1:v.size])
	v.size--

	// The vacated slot still holds a duplicate of the last element.
	var zero T
	s[v.size] = zero
}

// Reserve grows the capacity to exactly n if n exceeds it. The size and the
// elements are unchanged; on error so is the capacity.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Capacity() {
		return nil
	}
	b, err := NewBuffer[T](n)
	if err != nil {
		return err
	}
	copy(b.Slice(), v.Slice())
	v.items.Swap(b)
	return nil
}

// Swap exchanges the storage and size of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
}

// String formats the elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

// growIfFull applies the growth policy: max(1, capacity*growthFactor).
func (v *Vector[T]) growIfFull() error {
	if v.size < v.Capacity() {
		return nil
	}
	return v.Reserve(max(1, v.Capacity()*growthFactor))
}

func (v *Vector[T]) checkOwner(owner *Vector[T]) {
	if owner != v {
		panic("vector: iterator out of range: handle belongs to another vector")
	}
}
