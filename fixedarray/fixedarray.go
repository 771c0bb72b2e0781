// Package fixedarray provides FixedArray[T], a fixed-length, bounds-checked
// linear container, plus typed variants with explicit value coercion.
// FixedArray stores elements in a flat slice for cache friendliness; the
// length is fixed at construction and never changes.
package fixedarray

// FixedArray is a fixed-capacity, homogeneously-typed linear container.
// size is the immutable element count; data holds exactly size slots.
// There is no growth or shrink operation.
type FixedArray[T any] struct {
	size int // fixed element count, set once at construction
	data []T // flat backing storage, length == size
}

// New creates a FixedArray of the given size with every slot set to the
// zero value of T.
// Stage 1 (Validate): ensure size > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new FixedArray or ErrInvalidSize.
// Complexity: O(size) time and memory.
func New[T any](size int) (*FixedArray[T], error) {
	// Validate size before any allocation
	if size < 1 {
		return nil, ErrInvalidSize
	}

	return &FixedArray[T]{size: size, data: make([]T, size)}, nil
}

// Len returns the fixed element count.
// Complexity: O(1).
func (a *FixedArray[T]) Len() int {
	return a.size
}

// checkIndex validates 0 ≤ i < size or returns ErrIndexOutOfRange.
// All public indexers route bounds checking through here.
// Complexity: O(1).
func (a *FixedArray[T]) checkIndex(i int) error {
	if i < 0 || i >= a.size {
		return ErrIndexOutOfRange
	}

	return nil
}

// At retrieves the element at index i.
// Returns the zero value of T and ErrIndexOutOfRange on invalid index.
// Complexity: O(1).
func (a *FixedArray[T]) At(i int) (T, error) {
	if err := a.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}

	return a.data[i], nil
}

// Set assigns value v at index i.
// Returns ErrIndexOutOfRange on invalid index; the container is untouched
// on failure.
// Complexity: O(1).
func (a *FixedArray[T]) Set(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.data[i] = v

	return nil
}

// Reset sets every slot back to the zero value of T in one pass.
// Complexity: O(size).
func (a *FixedArray[T]) Reset() {
	var zero T
	for i := range a.data {
		a.data[i] = zero
	}
}

// Fill writes v into every slot in one pass.
// Complexity: O(size).
func (a *FixedArray[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns a deep copy of the array.
// The returned FixedArray is independent of the original.
// Complexity: O(size).
func (a *FixedArray[T]) Clone() *FixedArray[T] {
	data := make([]T, a.size)
	copy(data, a.data)

	return &FixedArray[T]{size: a.size, data: data}
}

// Values returns a fresh forward cursor positioned before index 0.
// Each call creates an independent cursor; the array itself carries no
// iteration state, so multiple cursors may traverse concurrently as long
// as nobody writes.
// Complexity: O(1).
func (a *FixedArray[T]) Values() *Cursor[T] {
	return &Cursor[T]{arr: a}
}
