package ndarray

// Cursor is an external, forward-only iterator over an NDArray.
// It walks the flattened coordinate space in row-major order: row 0 start
// to end, then row 1, and so on — exactly the order the coordinates
// flatten to. The cursor owns its position; the array holds no iteration
// state. Single-consumer, like the fixedarray cursor.
type Cursor[T any] struct {
	arr *NDArray[T]
	row int // current row, 0..len(rows)
	col int // next index inside the current row
}

// Next yields the element at the current position and advances.
// It returns (zero, false) once all Len() elements have been yielded;
// further calls keep returning false until Reset.
// Complexity: O(1).
func (c *Cursor[T]) Next() (T, bool) {
	if c.row >= len(c.arr.rows) {
		var zero T
		return zero, false
	}
	v, _ := c.arr.rows[c.row].At(c.col)
	c.col++
	if c.col >= c.arr.shape.RowLen() {
		c.col = 0
		c.row++
	}

	return v, true
}

// Reset rewinds the cursor to coordinate origin, restarting the sequence.
// Complexity: O(1).
func (c *Cursor[T]) Reset() {
	c.row, c.col = 0, 0
}
