package vector

import (
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"
)

// DefaultMaxAllocBytes is the largest block the Go runtime can address: the
// 48-bit heap on 64-bit platforms, the full address space on 32-bit ones.
const DefaultMaxAllocBytes uint64 = 1<<(32+16*(bits.UintSize/64)) - 1

var maxAllocBytes atomic.Uint64

func init() {
	maxAllocBytes.Store(DefaultMaxAllocBytes)
}

// SetMaxAllocBytes sets the largest block, in bytes, that NewBuffer will
// request and returns the previous ceiling. Requests above it fail with
// ErrAllocation before anything is allocated. A limit of 0 restores
// DefaultMaxAllocBytes.
//
// The runtime aborts the process when it cannot satisfy an allocation, so
// a ceiling below the memory actually available is the only way to get an
// error back for oversized requests.
func SetMaxAllocBytes(n uint64) uint64 {
	if n == 0 || n > DefaultMaxAllocBytes {
		n = DefaultMaxAllocBytes
	}
	return maxAllocBytes.Swap(n)
}

// MaxAllocBytes returns the current allocation ceiling.
func MaxAllocBytes() uint64 {
	return maxAllocBytes.Load()
}

// Buffer exclusively owns one fixed-size block of T. It has no notion of
// size versus capacity; every slot is always a live, zero-initialized or
// assigned value.
//
// A Buffer is never copied. Ownership moves with Move or Swap, and the
// source of a Move is left empty.
type Buffer[T any] struct {
	items []T
}

// NewBuffer allocates a buffer of exactly capacity zero-valued slots.
// A capacity of 0 returns an empty buffer without allocating.
func NewBuffer[T any](capacity int) (*Buffer[T], error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrAllocation, "negative capacity %d", capacity)
	}
	if capacity == 0 {
		return &Buffer[T]{}, nil
	}

	var zero T
	limit := MaxAllocBytes()
	if elemSize := uint64(unsafe.Sizeof(zero)); elemSize > 0 && uint64(capacity) > limit/elemSize {
		return nil, errors.Wrapf(ErrAllocation, "%d elements of %d bytes exceed the %d byte limit", capacity, elemSize, limit)
	}
	return &Buffer[T]{items: make([]T, capacity)}, nil
}

// Len returns the number of slots the buffer was allocated with.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// At returns a pointer to slot i. The caller is responsible for keeping
// i within [0, Len()).
func (b *Buffer[T]) At(i int) *T {
	return &b.items[i]
}

// Slice exposes the whole block.
func (b *Buffer[T]) Slice() []T {
	return b.items
}

// Swap exchanges the blocks owned by b and other without moving elements.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.items, other.items = other.items, b.items
}

// Move transfers the block to the returned buffer and leaves b empty.
func (b *Buffer[T]) Move() Buffer[T] {
	out := Buffer[T]{items: b.items}
	b.items = nil
	return out
}

// Release drops the block. Releasing an empty buffer is a no-op.
func (b *Buffer[T]) Release() {
	b.items = nil
}
