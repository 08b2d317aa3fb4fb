// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/minitensor/tensor"
)

// TestIntoTensorImplementations verifies the conversion contract is satisfied.
func TestIntoTensorImplementations(_ *testing.T) {
	var _ tensor.IntoTensor[float64] = tensor.Scalar(0)
	var _ tensor.IntoTensor[[]float64] = tensor.Sequence[float64](nil)
	var _ tensor.IntoTensor[[]int32] = tensor.Sequence[int32](nil)
}

func TestConversionLaws(t *testing.T) {
	s := tensor.Scalar(1.5).IntoTensor()
	assert.Equal(t, tensor.Shape{}, s.Shape())
	assert.Equal(t, 1.5, s.Data())

	v := tensor.Sequence[float64]{1, 2, 3, 4, 5}.IntoTensor()
	assert.Equal(t, tensor.Shape{5}, v.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, v.Data())
}

func TestPublicOperators(t *testing.T) {
	v := tensor.FromSlice([]float64{2, -3, 4})
	s := tensor.Neg(tensor.FromScalar(2))

	left := tensor.MulScalarSequence(s, v)
	right := tensor.MulSequenceScalar(v, s)

	assert.Equal(t, []float64{-4, 6, -8}, left.Data())
	assert.Equal(t, left.Data(), right.Data())
	assert.Equal(t, tensor.Shape{3}, right.Shape())
}
