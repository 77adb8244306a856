package vector

import (
	"fmt"
	"testing"
)

// BenchmarkRealisticUsage compares the vector against the built-in slice in
// common usage patterns
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Appending with amortized growth
	for _, n := range []int{16, 1024, 65536} {
		b.Run(fmt.Sprintf("PushBack_%d/Vector", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var v Vector[int]
				for j := 0; j < n; j++ {
					_ = v.PushBack(j)
				}
			}
		})

		b.Run(fmt.Sprintf("PushBack_%d/Builtin", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var s []int
				for j := 0; j < n; j++ {
					s = append(s, j)
				}
				_ = s
			}
		})
	}

	// Test 2: Reserve up front, then fill
	b.Run("ReservedPush/Vector", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v, _ := NewWithCapacity[int](1024)
			for j := 0; j < 1024; j++ {
				_ = v.PushBack(j)
			}
		}
	})

	b.Run("ReservedPush/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, 1024)
			for j := 0; j < 1024; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 3: Reuse one buffer across rounds (simulates request cleanup)
	b.Run("ClearReuse/Vector", func(b *testing.B) {
		v := New[int]()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				_ = v.PushBack(j)
			}
			v.Clear()
		}
	})

	// Test 4: Front insertion, the worst case for shifting
	b.Run("InsertFront/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v Vector[int]
			for j := 0; j < 256; j++ {
				_, _ = v.Insert(v.Begin(), j)
			}
		}
	})

	b.Run("InsertFront/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 256; j++ {
				s = append(s, 0)
				copy(s[1:], s)
				s[0] = j
			}
		}
	})

	// Test 5: Erasing from the front
	b.Run("EraseFront/Vector", func(b *testing.B) {
		src := Of(make([]int, 256)...)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			b.StopTimer()
			v, _ := src.Clone()
			b.StartTimer()
			for !v.IsEmpty() {
				v.Erase(v.Begin())
			}
		}
	})
}

// BenchmarkIteration compares the ways of walking a vector
func BenchmarkIteration(b *testing.B) {
	v := New[int]()
	for j := 0; j < 4096; j++ {
		_ = v.PushBack(j)
	}

	b.Run("Index", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for j := 0; j < v.Size(); j++ {
				sum += *v.Index(j)
			}
			_ = sum
		}
	})

	b.Run("Iterator", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for it := v.CBegin(); !it.Equal(v.CEnd()); it = it.Next() {
				sum += it.Get()
			}
			_ = sum
		}
	})

	b.Run("All", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for _, x := range v.All() {
				sum += x
			}
			_ = sum
		}
	})

	b.Run("Slice", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for _, x := range v.Slice() {
				sum += x
			}
			_ = sum
		}
	})
}

func BenchmarkCopy(b *testing.B) {
	src := Of(make([]int, 4096)...)

	b.Run("Clone", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = src.Clone()
		}
	})

	b.Run("Move", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			src.MoveFrom(src.Move())
		}
	})
}
