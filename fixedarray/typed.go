// Package fixedarray: typed variants over the generic core.
// Each variant pins the element type and funnels every write through its
// coercion rule. Bounds checking lives in FixedArray alone — the variants
// add type enforcement, nothing else.

package fixedarray

// AnyArray is a fixed-capacity container of opaque values.
// Writes never reject; the default element is nil.
type AnyArray struct {
	arr *FixedArray[any]
}

// NewAnyArray creates an AnyArray of the given size, all slots nil.
// Returns ErrInvalidSize unless size > 0.
func NewAnyArray(size int) (*AnyArray, error) {
	arr, err := New[any](size)
	if err != nil {
		return nil, err
	}

	return &AnyArray{arr: arr}, nil
}

// Len returns the fixed element count.
func (a *AnyArray) Len() int { return a.arr.Len() }

// At retrieves the element at index i.
func (a *AnyArray) At(i int) (any, error) { return a.arr.At(i) }

// Set assigns v at index i. Any value is accepted.
func (a *AnyArray) Set(i int, v any) error { return a.arr.Set(i, v) }

// Reset sets every slot to nil.
func (a *AnyArray) Reset() { a.arr.Reset() }

// ResetTo sets every slot to the caller-supplied default.
// The opaque variant is the only one that honors a caller default; the
// typed variants always restore their fixed type default.
func (a *AnyArray) ResetTo(def any) { a.arr.Fill(def) }

// Fill writes v into every slot.
func (a *AnyArray) Fill(v any) { a.arr.Fill(v) }

// Values returns a fresh forward cursor over the elements.
func (a *AnyArray) Values() *Cursor[any] { return a.arr.Values() }

// IntArray is a fixed-capacity container of 32-bit signed integers.
// Every write is coerced via ToInt32; the default element is 0.
type IntArray struct {
	arr *FixedArray[int32]
}

// NewIntArray creates an IntArray of the given size, all slots 0.
// Returns ErrInvalidSize unless size > 0.
func NewIntArray(size int) (*IntArray, error) {
	arr, err := New[int32](size)
	if err != nil {
		return nil, err
	}

	return &IntArray{arr: arr}, nil
}

// Len returns the fixed element count.
func (a *IntArray) Len() int { return a.arr.Len() }

// At retrieves the element at index i.
func (a *IntArray) At(i int) (int32, error) { return a.arr.At(i) }

// Set coerces v via ToInt32 and assigns it at index i.
// Fails with ErrCoercion on a non-coercible value, ErrIndexOutOfRange on
// an invalid index; the array is untouched on failure.
func (a *IntArray) Set(i int, v any) error {
	n, err := ToInt32(v)
	if err != nil {
		return err
	}

	return a.arr.Set(i, n)
}

// Reset sets every slot back to 0, regardless of any prior Fill.
func (a *IntArray) Reset() { a.arr.Reset() }

// Fill validates v exactly as Set does, then writes it into every slot.
func (a *IntArray) Fill(v any) error {
	n, err := ToInt32(v)
	if err != nil {
		return err
	}
	a.arr.Fill(n)

	return nil
}

// Values returns a fresh forward cursor over the elements.
func (a *IntArray) Values() *Cursor[int32] { return a.arr.Values() }

// FloatArray is a fixed-capacity container of double-precision floats.
// Every write is coerced via ToFloat64; the default element is 0.0.
type FloatArray struct {
	arr *FixedArray[float64]
}

// NewFloatArray creates a FloatArray of the given size, all slots 0.0.
// Returns ErrInvalidSize unless size > 0.
func NewFloatArray(size int) (*FloatArray, error) {
	arr, err := New[float64](size)
	if err != nil {
		return nil, err
	}

	return &FloatArray{arr: arr}, nil
}

// Len returns the fixed element count.
func (a *FloatArray) Len() int { return a.arr.Len() }

// At retrieves the element at index i.
func (a *FloatArray) At(i int) (float64, error) { return a.arr.At(i) }

// Set coerces v via ToFloat64 and assigns it at index i.
func (a *FloatArray) Set(i int, v any) error {
	f, err := ToFloat64(v)
	if err != nil {
		return err
	}

	return a.arr.Set(i, f)
}

// Reset sets every slot back to 0.0, regardless of any prior Fill.
func (a *FloatArray) Reset() { a.arr.Reset() }

// Fill validates v exactly as Set does, then writes it into every slot.
func (a *FloatArray) Fill(v any) error {
	f, err := ToFloat64(v)
	if err != nil {
		return err
	}
	a.arr.Fill(f)

	return nil
}

// Values returns a fresh forward cursor over the elements.
func (a *FloatArray) Values() *Cursor[float64] { return a.arr.Values() }

// CharArray is a fixed-capacity container of single-character strings.
// Every write is coerced via ToChar; the default element is "".
type CharArray struct {
	arr *FixedArray[string]
}

// NewCharArray creates a CharArray of the given size, all slots "".
// Returns ErrInvalidSize unless size > 0.
func NewCharArray(size int) (*CharArray, error) {
	arr, err := New[string](size)
	if err != nil {
		return nil, err
	}

	return &CharArray{arr: arr}, nil
}

// Len returns the fixed element count.
func (a *CharArray) Len() int { return a.arr.Len() }

// At retrieves the element at index i ("" for an unset slot).
func (a *CharArray) At(i int) (string, error) { return a.arr.At(i) }

// Set coerces v via ToChar and assigns it at index i.
// Fails with ErrTypeMismatch unless v is a single character; the array is
// untouched on failure.
func (a *CharArray) Set(i int, v any) error {
	s, err := ToChar(v)
	if err != nil {
		return err
	}

	return a.arr.Set(i, s)
}

// Reset sets every slot back to "", regardless of any prior Fill.
func (a *CharArray) Reset() { a.arr.Reset() }

// Fill validates v exactly as Set does, then writes it into every slot.
func (a *CharArray) Fill(v any) error {
	s, err := ToChar(v)
	if err != nil {
		return err
	}
	a.arr.Fill(s)

	return nil
}

// Values returns a fresh forward cursor over the elements.
func (a *CharArray) Values() *Cursor[string] { return a.arr.Values() }
