// Package tensor provides the core tensor container and operators for minitensor.
package tensor

import (
	"fmt"
	"reflect"
)

// Tensor pairs a data payload of type T with its shape.
//
// A Tensor is built only by the conversion contract (see IntoTensor) or
// returned by an operator, so its shape always matches its payload:
// a scalar payload has shape [], a slice payload has shape [len].
//
// Type Parameters:
//   - T: payload type (float64 for scalars, []E for sequences)
//
// Example:
//
//	v := tensor.FromSlice([]float64{1, 2, 3})
//	s := tensor.FromScalar(2)
//	r := tensor.MulSequenceScalar(v, s) // [2 4 6], shape [3]
type Tensor[T any] struct {
	data  T
	shape Shape
}

// newTensor is the only constructor; callers are responsible for the shape invariant.
func newTensor[T any](data T, shape Shape) *Tensor[T] {
	return &Tensor[T]{
		data:  data,
		shape: shape,
	}
}

// Shape returns the tensor's shape.
// The returned Shape is a copy and may be modified freely.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of dimensions (0 for scalars, 1 for sequences).
func (t *Tensor[T]) Rank() int {
	return t.shape.Rank()
}

// Data returns the tensor's payload.
//
// WARNING: for slice payloads the returned slice shares memory with the
// tensor. Treat it as read-only.
func (t *Tensor[T]) Data() T {
	return t.data
}

// Clone creates a deep copy of the tensor.
// Slice payloads are duplicated, so the clone shares no storage with t.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return newTensor(clonePayload(t.data), t.shape.Clone())
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor%s{%v}", t.shape, t.data)
}

// clonePayload duplicates slice payloads; any other value is copied by assignment.
func clonePayload[T any](v T) T {
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	dup := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(dup, rv)
	return dup.Interface().(T)
}
