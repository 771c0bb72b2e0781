// Package ndarray provides NDArray[T], an N-dimensional logical view over
// fixedarray rows. Coordinates are flattened row-major onto a linear row
// list: the last coordinate indexes inside a row, the leading coordinates
// select the row.
package ndarray

import (
	"github.com/katalvlaran/arrays/fixedarray"
)

// NDArray is a fixed-shape N-dimensional container.
// shape is immutable after construction; rows holds RowCount() fixed
// arrays of RowLen() elements each. The NDArray exclusively owns its rows.
type NDArray[T any] struct {
	shape Shape
	rows  []*fixedarray.FixedArray[T]
}

// New creates an NDArray of the given shape with every slot set to the
// zero value of T.
// Stage 1 (Validate): shape needs ≥2 positive dimensions.
// Stage 2 (Prepare): allocate RowCount() rows of RowLen() slots.
// Stage 3 (Finalize): return new NDArray or ErrInvalidShape.
// Complexity: O(NumElements) time and memory.
func New[T any](shape Shape) (*NDArray[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	rows := make([]*fixedarray.FixedArray[T], shape.RowCount())
	for i := range rows {
		// RowLen ≥ 1 by shape validation, so New cannot fail here.
		row, err := fixedarray.New[T](shape.RowLen())
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}

	return &NDArray[T]{shape: shape.Clone(), rows: rows}, nil
}

// Shape returns a copy of the fixed shape.
// Complexity: O(len(shape)).
func (a *NDArray[T]) Shape() Shape {
	return a.shape.Clone()
}

// Len returns the total logical element count.
// Complexity: O(len(shape)).
func (a *NDArray[T]) Len() int {
	return a.shape.NumElements()
}

// rowIndex validates coords and maps its leading coordinates to the
// backing row index, row-major (last dimension fastest-varying).
// Incremental form: start group = RowCount(); for each leading dimension
// i, divide group by shape[i] and accumulate coords[i]*group. Dimension
// products divide evenly by construction, so this stays in exact integer
// arithmetic.
// Returns ErrInvalidIndex on wrong arity or any out-of-bounds coordinate.
// Complexity: O(len(shape)).
func (a *NDArray[T]) rowIndex(coords []int) (int, error) {
	if len(coords) != len(a.shape) {
		return 0, ErrInvalidIndex
	}
	for i, c := range coords {
		if c < 0 || c >= a.shape[i] {
			return 0, ErrInvalidIndex
		}
	}

	idx := 0
	group := a.shape.RowCount()
	for i := 0; i < len(a.shape)-1; i++ {
		group /= a.shape[i]
		idx += coords[i] * group
	}

	return idx, nil
}

// At retrieves the element at the given coordinates.
// Returns ErrInvalidIndex on wrong arity or out-of-bounds coordinates.
// Complexity: O(len(shape)).
func (a *NDArray[T]) At(coords ...int) (T, error) {
	idx, err := a.rowIndex(coords)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.rows[idx].At(coords[len(coords)-1])
}

// Set assigns v at the given coordinates.
// Returns ErrInvalidIndex on wrong arity or out-of-bounds coordinates; the
// container is untouched on failure.
// Complexity: O(len(shape)).
func (a *NDArray[T]) Set(v T, coords ...int) error {
	idx, err := a.rowIndex(coords)
	if err != nil {
		return err
	}

	return a.rows[idx].Set(coords[len(coords)-1], v)
}

// Reset sets every slot in every row back to the zero value of T.
// Complexity: O(NumElements).
func (a *NDArray[T]) Reset() {
	for _, row := range a.rows {
		row.Reset()
	}
}

// Fill writes v into every slot of every row.
// Complexity: O(NumElements).
func (a *NDArray[T]) Fill(v T) {
	for _, row := range a.rows {
		row.Fill(v)
	}
}

// Values returns a fresh cursor over all elements in row-major order.
// Each call creates an independent cursor; the array carries no iteration
// state.
// Complexity: O(1).
func (a *NDArray[T]) Values() *Cursor[T] {
	return &Cursor[T]{arr: a}
}
