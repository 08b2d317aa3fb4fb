package tensor

import "gonum.org/v1/gonum/floats"

// Operators are defined only between the scalar (Tensor[float64]) and
// sequence (Tensor[[]float64]) instantiations. Each returns a new tensor
// and leaves its operands untouched.

// Neg returns a scalar tensor holding -s. The shape is carried over.
func Neg(s *Tensor[float64]) *Tensor[float64] {
	return newTensor(-s.data, s.shape.Clone())
}

// MulScalarSequence multiplies every element of v by s.
// It is MulSequenceScalar with the operands swapped.
func MulScalarSequence(s *Tensor[float64], v *Tensor[[]float64]) *Tensor[[]float64] {
	return MulSequenceScalar(v, s)
}

// MulSequenceScalar multiplies every element of v by s, preserving order.
// The result has v's shape and its own backing slice.
//
// Example:
//
//	v := tensor.FromSlice([]float64{2, -3, 4})
//	r := tensor.MulSequenceScalar(v, tensor.Neg(tensor.FromScalar(2)))
//	r.Data() // [-4 6 -8]
func MulSequenceScalar(v *Tensor[[]float64], s *Tensor[float64]) *Tensor[[]float64] {
	out := make([]float64, len(v.data))
	floats.ScaleTo(out, s.data, v.data)
	return newTensor(out, v.shape.Clone())
}
