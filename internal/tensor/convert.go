package tensor

// IntoTensor is implemented by raw values that can become a Tensor.
// The tensor's shape is computed from the value's own structure.
type IntoTensor[T any] interface {
	IntoTensor() *Tensor[T]
}

// Scalar is a float64 that converts into a rank-0 tensor.
type Scalar float64

// IntoTensor wraps the scalar in a tensor with shape [].
func (s Scalar) IntoTensor() *Tensor[float64] {
	return newTensor(float64(s), Shape{})
}

// Sequence is an ordered slice that converts into a rank-1 tensor.
type Sequence[E any] []E

// IntoTensor wraps the sequence in a tensor with shape [len(s)].
// The slice is taken over, not copied; an empty sequence yields shape [0].
func (s Sequence[E]) IntoTensor() *Tensor[[]E] {
	return newTensor([]E(s), Shape{len(s)})
}

// Into converts any IntoTensor implementation.
func Into[T any](v IntoTensor[T]) *Tensor[T] {
	return v.IntoTensor()
}

// FromScalar creates a rank-0 tensor holding x.
func FromScalar(x float64) *Tensor[float64] {
	return Scalar(x).IntoTensor()
}

// FromSlice creates a rank-1 tensor holding data.
// The tensor takes ownership of data; callers should not modify it afterwards.
func FromSlice[E any](data []E) *Tensor[[]E] {
	return Sequence[E](data).IntoTensor()
}
