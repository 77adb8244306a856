// Package vector implements a generic dynamic array for Go.
//
// # Overview
//
// A Vector is a contiguous sequence of elements with a size (the elements
// it holds) kept separate from its capacity (the slots it has allocated).
// Appending is amortized O(1): when a PushBack or Insert finds the vector
// full, the capacity doubles (starting from 1). Reserve and Resize grow to
// exactly the requested capacity instead.
//
// Storage lives in a Buffer, a fixed-size block with a single owner. Every
// capacity change allocates a new Buffer, copies the elements into it and
// swaps it in, so a failed allocation never disturbs the existing vector.
//
// # Basic Usage
//
//	v := vector.Of(1, 2, 3)
//	_ = v.PushBack(4)                     // [1 2 3 4]
//	_, _ = v.Insert(v.Begin().Next(), 10) // [1 10 2 3 4]
//	v.Erase(v.Begin().Add(2))             // [1 10 3 4]
//	v.PopBack()                           // [1 10 3]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Copy and Move
//
// Vectors are handled by pointer. Clone and Assign make deep copies; Move,
// MoveFrom and Swap hand the storage to another vector in constant time and
// leave the source empty.
//
// # Access
//
// Index is unchecked against the size, like a slice index into the
// allocated capacity. At checks and returns ErrOutOfRange. Begin/End and
// CBegin/CEnd return index-based handles; after an insert, erase or
// reallocation the element a handle designates is unspecified.
//
// # Errors
//
// Operations that may allocate return ErrAllocation when the requested
// buffer is negative or larger than the allocation ceiling; the vector is
// left unchanged. At returns ErrOutOfRange. Both are wrapped with context
// and can be tested with errors.Is.
//
// The ceiling defaults to DefaultMaxAllocBytes, the most the runtime can
// address. The runtime aborts the process when memory below that is
// exhausted, so programs that must survive oversized requests lower it:
//
//	vector.SetMaxAllocBytes(1 << 30)
//
// # Thread Safety
//
// A Vector is not safe for concurrent use. Writes concurrent with any other
// access must be serialized by the caller.
//
// # Metrics
//
// Metrics reports the size, capacity and memory footprint of a vector:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Bytes reserved: %d\n", m.BytesReserved)
package vector
