package fixedarray

// Cursor is an external, forward-only iterator over a FixedArray.
// It owns its position; the underlying array holds no iteration state.
// A Cursor is single-consumer: do not advance one cursor from multiple
// goroutines without external synchronization.
type Cursor[T any] struct {
	arr *FixedArray[T]
	pos int // next index to yield, 0..arr.size
}

// Next yields the element at the current position and advances.
// It returns (zero, false) once the cursor is exhausted; further calls
// keep returning false until Reset.
// Complexity: O(1).
func (c *Cursor[T]) Next() (T, bool) {
	if c.pos >= c.arr.size {
		var zero T
		return zero, false
	}
	v := c.arr.data[c.pos]
	c.pos++

	return v, true
}

// Reset rewinds the cursor to index 0, restarting the sequence.
// Complexity: O(1).
func (c *Cursor[T]) Reset() {
	c.pos = 0
}
