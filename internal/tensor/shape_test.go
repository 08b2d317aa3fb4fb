package tensor

import "testing"

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // Scalar
		{Shape{0}, 0},        // Empty sequence
		{Shape{5}, 5},        // 1D
		{Shape{3, 4}, 12},    // 2D
		{Shape{2, 3, 4}, 24}, // 3D
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeRank(t *testing.T) {
	if r := (Shape{}).Rank(); r != 0 {
		t.Errorf("Shape{}.Rank() = %d, want 0", r)
	}
	if r := (Shape{7}).Rank(); r != 1 {
		t.Errorf("Shape{7}.Rank() = %d, want 1", r)
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b  Shape
		equal bool
	}{
		{Shape{}, Shape{}, true},
		{Shape{}, nil, true},
		{Shape{3}, Shape{3}, true},
		{Shape{3}, Shape{4}, false},
		{Shape{3}, Shape{}, false},
		{Shape{0}, Shape{}, false},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.equal {
			t.Errorf("Shape%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestShapeClone(t *testing.T) {
	original := Shape{3}
	clone := original.Clone()
	assertEqualShape(t, original, clone, "Clone")

	clone[0] = 99
	if original[0] != 3 {
		t.Errorf("modifying clone changed original: %v", original)
	}
}

func TestShapeString(t *testing.T) {
	if s := (Shape{}).String(); s != "[]" {
		t.Errorf("Shape{}.String() = %q, want %q", s, "[]")
	}
	if s := (Shape{3}).String(); s != "[3]" {
		t.Errorf("Shape{3}.String() = %q, want %q", s, "[3]")
	}
}
