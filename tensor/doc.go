// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a minimal, type-checked tensor container for Go.
//
// # Overview
//
// A Tensor pairs a payload with its shape:
//   - rank 0: a float64 scalar, shape []
//   - rank 1: a slice, shape [len]
//
// Tensors are created through the conversion contract (IntoTensor) and by
// operators. They have no mutation methods.
//
// # Basic Usage
//
//	import "github.com/born-ml/minitensor/tensor"
//
//	func main() {
//	    v := tensor.FromSlice([]float64{2, 3, 4})
//	    s := tensor.FromScalar(2)
//
//	    r := tensor.MulSequenceScalar(v, s) // [4 6 8], shape [3]
//	    n := tensor.Neg(s)                  // -2, shape []
//	}
//
// # Operators
//
// Operators exist only between the scalar and sequence instantiations:
//
//	tensor.Neg(s)                   // Tensor[float64] -> Tensor[float64]
//	tensor.MulScalarSequence(s, v)  // Tensor[float64] * Tensor[[]float64]
//	tensor.MulSequenceScalar(v, s)  // Tensor[[]float64] * Tensor[float64]
//
// There is no broadcasting beyond scaling a sequence by a scalar, and no
// shape validation: every operator is total. IEEE special values (Inf,
// NaN) propagate through arithmetic as usual.
package tensor
