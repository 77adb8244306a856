package vector

import "unsafe"

// ElemSize returns the size in bytes of one element slot.
func (v *Vector[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeInUse returns the number of bytes held by the live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.size * v.ElemSize()
}

// BytesReserved returns the number of bytes of the whole buffer, live and
// absent slots alike.
func (v *Vector[T]) BytesReserved() int {
	return v.Capacity() * v.ElemSize()
}

// Utilization returns the ratio of size to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:          v.Size(),
		Capacity:      v.Capacity(),
		ElemSize:      v.ElemSize(),
		SizeInUse:     v.SizeInUse(),
		BytesReserved: v.BytesReserved(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size          int     // Elements in use
	Capacity      int     // Allocated slots
	ElemSize      int     // Bytes per slot
	SizeInUse     int     // Bytes held by elements in use
	BytesReserved int     // Bytes held by the whole buffer
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}
