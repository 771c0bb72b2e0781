// Package ndarray: typed variants over the generic core.
// Mirrors fixedarray's typed layer: the core alone validates coordinates,
// the variants add per-type coercion on every write. All element access —
// character variant included — goes through the indexing contract.

package ndarray

import "github.com/katalvlaran/arrays/fixedarray"

// AnyNDArray is an N-dimensional container of opaque values.
// Writes never reject; the default element is nil.
type AnyNDArray struct {
	arr *NDArray[any]
}

// NewAnyNDArray creates an AnyNDArray of the given shape, all slots nil.
// Returns ErrInvalidShape unless the shape has ≥2 positive dimensions.
func NewAnyNDArray(shape Shape) (*AnyNDArray, error) {
	arr, err := New[any](shape)
	if err != nil {
		return nil, err
	}

	return &AnyNDArray{arr: arr}, nil
}

// Shape returns a copy of the fixed shape.
func (a *AnyNDArray) Shape() Shape { return a.arr.Shape() }

// Len returns the total logical element count.
func (a *AnyNDArray) Len() int { return a.arr.Len() }

// At retrieves the element at the given coordinates.
func (a *AnyNDArray) At(coords ...int) (any, error) { return a.arr.At(coords...) }

// Set assigns v at the given coordinates. Any value is accepted.
func (a *AnyNDArray) Set(v any, coords ...int) error { return a.arr.Set(v, coords...) }

// Reset sets every slot to nil.
func (a *AnyNDArray) Reset() { a.arr.Reset() }

// ResetTo sets every slot to the caller-supplied default.
func (a *AnyNDArray) ResetTo(def any) { a.arr.Fill(def) }

// Fill writes v into every slot.
func (a *AnyNDArray) Fill(v any) { a.arr.Fill(v) }

// Values returns a fresh row-major cursor over all elements.
func (a *AnyNDArray) Values() *Cursor[any] { return a.arr.Values() }

// IntNDArray is an N-dimensional container of 32-bit signed integers.
// Every write is coerced via fixedarray.ToInt32; the default element is 0.
type IntNDArray struct {
	arr *NDArray[int32]
}

// NewIntNDArray creates an IntNDArray of the given shape, all slots 0.
// Returns ErrInvalidShape unless the shape has ≥2 positive dimensions.
func NewIntNDArray(shape Shape) (*IntNDArray, error) {
	arr, err := New[int32](shape)
	if err != nil {
		return nil, err
	}

	return &IntNDArray{arr: arr}, nil
}

// Shape returns a copy of the fixed shape.
func (a *IntNDArray) Shape() Shape { return a.arr.Shape() }

// Len returns the total logical element count.
func (a *IntNDArray) Len() int { return a.arr.Len() }

// At retrieves the element at the given coordinates.
func (a *IntNDArray) At(coords ...int) (int32, error) { return a.arr.At(coords...) }

// Set coerces v via fixedarray.ToInt32 and assigns it at the coordinates.
// Fails with fixedarray.ErrCoercion on a non-coercible value,
// ErrInvalidIndex on bad coordinates; untouched on failure.
func (a *IntNDArray) Set(v any, coords ...int) error {
	n, err := fixedarray.ToInt32(v)
	if err != nil {
		return err
	}

	return a.arr.Set(n, coords...)
}

// Reset sets every slot back to 0.
func (a *IntNDArray) Reset() { a.arr.Reset() }

// Fill validates v exactly as Set does, then writes it into every slot.
func (a *IntNDArray) Fill(v any) error {
	n, err := fixedarray.ToInt32(v)
	if err != nil {
		return err
	}
	a.arr.Fill(n)

	return nil
}

// Values returns a fresh row-major cursor over all elements.
func (a *IntNDArray) Values() *Cursor[int32] { return a.arr.Values() }

// FloatNDArray is an N-dimensional container of double-precision floats.
// Every write is coerced via fixedarray.ToFloat64; the default element is 0.0.
type FloatNDArray struct {
	arr *NDArray[float64]
}

// NewFloatNDArray creates a FloatNDArray of the given shape, all slots 0.0.
// Returns ErrInvalidShape unless the shape has ≥2 positive dimensions.
func NewFloatNDArray(shape Shape) (*FloatNDArray, error) {
	arr, err := New[float64](shape)
	if err != nil {
		return nil, err
	}

	return &FloatNDArray{arr: arr}, nil
}

// Shape returns a copy of the fixed shape.
func (a *FloatNDArray) Shape() Shape { return a.arr.Shape() }

// Len returns the total logical element count.
func (a *FloatNDArray) Len() int { return a.arr.Len() }

// At retrieves the element at the given coordinates.
func (a *FloatNDArray) At(coords ...int) (float64, error) { return a.arr.At(coords...) }

// Set coerces v via fixedarray.ToFloat64 and assigns it at the coordinates.
func (a *FloatNDArray) Set(v any, coords ...int) error {
	f, err := fixedarray.ToFloat64(v)
	if err != nil {
		return err
	}

	return a.arr.Set(f, coords...)
}

// Reset sets every slot back to 0.0.
func (a *FloatNDArray) Reset() { a.arr.Reset() }

// Fill validates v exactly as Set does, then writes it into every slot.
func (a *FloatNDArray) Fill(v any) error {
	f, err := fixedarray.ToFloat64(v)
	if err != nil {
		return err
	}
	a.arr.Fill(f)

	return nil
}

// Values returns a fresh row-major cursor over all elements.
func (a *FloatNDArray) Values() *Cursor[float64] { return a.arr.Values() }

// CharNDArray is an N-dimensional container of single-character strings.
// Every write is coerced via fixedarray.ToChar; the default element is "".
type CharNDArray struct {
	arr *NDArray[string]
}

// NewCharNDArray creates a CharNDArray of the given shape, all slots "".
// Returns ErrInvalidShape unless the shape has ≥2 positive dimensions.
func NewCharNDArray(shape Shape) (*CharNDArray, error) {
	arr, err := New[string](shape)
	if err != nil {
		return nil, err
	}

	return &CharNDArray{arr: arr}, nil
}

// Shape returns a copy of the fixed shape.
func (a *CharNDArray) Shape() Shape { return a.arr.Shape() }

// Len returns the total logical element count.
func (a *CharNDArray) Len() int { return a.arr.Len() }

// At retrieves the element at the given coordinates ("" for unset slots).
func (a *CharNDArray) At(coords ...int) (string, error) { return a.arr.At(coords...) }

// Set coerces v via fixedarray.ToChar and assigns it at the coordinates.
// Fails with fixedarray.ErrTypeMismatch unless v is a single character.
func (a *CharNDArray) Set(v any, coords ...int) error {
	s, err := fixedarray.ToChar(v)
	if err != nil {
		return err
	}

	return a.arr.Set(s, coords...)
}

// Reset sets every slot back to "".
func (a *CharNDArray) Reset() { a.arr.Reset() }

// Fill validates v exactly as Set does, then writes it into every slot.
func (a *CharNDArray) Fill(v any) error {
	s, err := fixedarray.ToChar(v)
	if err != nil {
		return err
	}
	a.arr.Fill(s)

	return nil
}

// Values returns a fresh row-major cursor over all elements.
func (a *CharNDArray) Values() *Cursor[string] { return a.arr.Values() }
