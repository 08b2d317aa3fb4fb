// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/minitensor/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{3} is a sequence of three elements, Shape{} is a scalar.
type Shape = tensor.Shape

// Tensor is a generic container pairing a payload of type T with its shape.
//
// Fields are unexported: a Tensor can only be obtained from FromScalar,
// FromSlice, Into, or an operator, which keeps shape and payload consistent.
//
// Example:
//
//	v := tensor.FromSlice([]float64{1, 2, 3})
//	v.Shape() // [3]
//	v.Data()  // [1 2 3]
type Tensor[T any] = tensor.Tensor[T]

// IntoTensor is implemented by raw values that can become a Tensor.
type IntoTensor[T any] = tensor.IntoTensor[T]

// Scalar is a float64 that implements IntoTensor[float64].
type Scalar = tensor.Scalar

// Sequence is a slice that implements IntoTensor[[]E].
type Sequence[E any] = tensor.Sequence[E]

// Conversion functions

// FromScalar creates a rank-0 tensor.
//
// Example:
//
//	s := tensor.FromScalar(2.0) // shape []
func FromScalar(x float64) *Tensor[float64] {
	return tensor.FromScalar(x)
}

// FromSlice creates a rank-1 tensor that takes ownership of data.
//
// Example:
//
//	v := tensor.FromSlice([]float64{1, 2, 3}) // shape [3]
func FromSlice[E any](data []E) *Tensor[[]E] {
	return tensor.FromSlice(data)
}

// Into converts any IntoTensor implementation.
func Into[T any](v IntoTensor[T]) *Tensor[T] {
	return tensor.Into(v)
}

// Operators

// Neg returns the negation of a scalar tensor.
func Neg(s *Tensor[float64]) *Tensor[float64] {
	return tensor.Neg(s)
}

// MulScalarSequence scales every element of v by s.
func MulScalarSequence(s *Tensor[float64], v *Tensor[[]float64]) *Tensor[[]float64] {
	return tensor.MulScalarSequence(s, v)
}

// MulSequenceScalar scales every element of v by s.
// The result has v's shape.
func MulSequenceScalar(v *Tensor[[]float64], s *Tensor[float64]) *Tensor[[]float64] {
	return tensor.MulSequenceScalar(v, s)
}
