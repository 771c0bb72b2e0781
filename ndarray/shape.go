package ndarray

// Shape is the ordered dimension list of an N-dimensional array.
// Example: Shape{2, 3, 4} describes a 3-D array with 2×3×4 elements.
type Shape []int

// Validate checks that the shape has at least two dimensions and that
// every dimension is positive. Returns ErrInvalidShape otherwise.
// Complexity: O(len).
func (s Shape) Validate() error {
	if len(s) < 2 {
		return ErrInvalidShape
	}
	for _, d := range s {
		if d < 1 {
			return ErrInvalidShape
		}
	}

	return nil
}

// NumElements returns the total logical element count, the product of all
// dimensions.
// Complexity: O(len).
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// RowCount returns the number of backing rows: the product of every
// dimension except the last.
// Complexity: O(len).
func (s Shape) RowCount() int {
	n := 1
	for _, d := range s[:len(s)-1] {
		n *= d
	}

	return n
}

// RowLen returns the length of each backing row: the last dimension.
// Complexity: O(1).
func (s Shape) RowLen() int {
	return s[len(s)-1]
}

// Clone returns an independent copy of the shape.
// Complexity: O(len).
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)

	return c
}

// Equal reports whether two shapes have identical dimensions.
// Complexity: O(len).
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}
