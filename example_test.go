package vector

import (
	"errors"
	"fmt"
)

// Example demonstrates basic vector usage
func Example() {
	v := Of(1, 2, 3)

	// Append; a full vector doubles its capacity
	_ = v.PushBack(4)
	fmt.Printf("After PushBack: %v size=%d\n", v, v.Size())

	// Insert before the second element
	_, _ = v.Insert(v.Begin().Next(), 10)
	fmt.Printf("After Insert: %v size=%d\n", v, v.Size())

	// Erase the third element
	v.Erase(v.Begin().Add(2))
	fmt.Printf("After Erase: %v size=%d\n", v, v.Size())

	v.PopBack()
	fmt.Printf("After PopBack: %v size=%d\n", v, v.Size())

	// Output:
	// After PushBack: [1 2 3 4] size=4
	// After Insert: [1 10 2 3 4] size=5
	// After Erase: [1 10 3 4] size=4
	// After PopBack: [1 10 3] size=3
}

// ExampleVector_Reserve shows that an explicit reservation is exact and that
// only implicit growth doubles
func ExampleVector_Reserve() {
	var v Vector[int]
	_ = v.Reserve(5)
	fmt.Printf("Reserved: size=%d capacity=%d\n", v.Size(), v.Capacity())

	for i := 0; i < 5; i++ {
		_ = v.PushBack(i)
	}
	fmt.Printf("Filled: size=%d capacity=%d\n", v.Size(), v.Capacity())

	_ = v.PushBack(5)
	fmt.Printf("Grown: size=%d capacity=%d\n", v.Size(), v.Capacity())

	// Output:
	// Reserved: size=0 capacity=5
	// Filled: size=5 capacity=5
	// Grown: size=6 capacity=10
}

// ExampleVector_At demonstrates checked access
func ExampleVector_At() {
	v := Of("a", "b", "c")

	if x, err := v.At(1); err == nil {
		fmt.Println("At(1):", *x)
	}

	_, err := v.At(5)
	fmt.Println("out of range:", errors.Is(err, ErrOutOfRange))
	fmt.Println(err)

	// Output:
	// At(1): b
	// out of range: true
	// index 5 with size 3: vector: index out of range
}

// ExampleVector_All ranges over the live elements
func ExampleVector_All() {
	v, _ := NewWithCapacity[string](10)
	_ = v.PushBack("x")
	_ = v.PushBack("y")

	for i, s := range v.All() {
		fmt.Println(i, s)
	}

	// Output:
	// 0 x
	// 1 y
}

// ExampleVector_Clone demonstrates deep-copy isolation
func ExampleVector_Clone() {
	orig := Of(1, 2, 3)
	c, _ := orig.Clone()
	*c.Index(0) = 100

	fmt.Println("original:", orig)
	fmt.Println("copy:", c)

	moved := c.Move()
	fmt.Printf("after move: copy size=%d capacity=%d, moved %v\n", c.Size(), c.Capacity(), moved)

	// Output:
	// original: [1 2 3]
	// copy: [100 2 3]
	// after move: copy size=0 capacity=0, moved [100 2 3]
}

// ExampleCompare demonstrates lexicographic ordering
func ExampleCompare() {
	a := Of(1, 2, 3)
	b := Of(1, 2, 4)
	c := Of(1, 2)

	fmt.Println(Compare(a, b), Less(a, b))
	fmt.Println(Compare(a, c), Greater(a, c))
	fmt.Println(Equal(a, Of(1, 2, 3)))

	// Output:
	// -1 true
	// 1 true
	// true
}

// ExampleVectorMetrics demonstrates monitoring vector memory use
func ExampleVectorMetrics() {
	v, _ := NewWithCapacity[int64](8)
	for i := 0; i < 6; i++ {
		_ = v.PushBack(int64(i))
	}

	metrics := v.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Size: %d\n", metrics.Size)
	fmt.Printf("  Capacity: %d\n", metrics.Capacity)
	fmt.Printf("  Size in use: %d bytes\n", metrics.SizeInUse)
	fmt.Printf("  Reserved: %d bytes\n", metrics.BytesReserved)
	fmt.Printf("  Utilization: %.1f%%\n", metrics.Utilization*100)

	// Output:
	// Metrics:
	//   Size: 6
	//   Capacity: 8
	//   Size in use: 48 bytes
	//   Reserved: 64 bytes
	//   Utilization: 75.0%
}
