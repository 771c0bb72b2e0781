package ndarray_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arrays/ndarray"
)

//----------------------------------------------------------------------------//
// Shape and construction
//----------------------------------------------------------------------------//

// TestNew_InvalidShape verifies that too-short and non-positive shapes are
// rejected, including the deliberate single-dimension rejection.
func TestNew_InvalidShape(t *testing.T) {
	cases := []struct {
		name  string
		shape ndarray.Shape
	}{
		{"Empty", ndarray.Shape{}},
		{"SingleDim", ndarray.Shape{5}},
		{"ZeroDim", ndarray.Shape{2, 0}},
		{"NegativeDim", ndarray.Shape{2, -3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ndarray.New[int](tc.shape)
			if !errors.Is(err, ndarray.ErrInvalidShape) {
				t.Errorf("New(%v) error = %v; want ErrInvalidShape", tc.shape, err)
			}
		})
	}
}

// TestShape_Derived verifies NumElements, RowCount and RowLen for the
// canonical (2,3,4) shape.
func TestShape_Derived(t *testing.T) {
	s := ndarray.Shape{2, 3, 4}
	require.NoError(t, s.Validate())
	require.Equal(t, 24, s.NumElements())
	require.Equal(t, 6, s.RowCount())
	require.Equal(t, 4, s.RowLen())
}

// TestShape_CloneEqual verifies clone independence and equality.
func TestShape_CloneEqual(t *testing.T) {
	s := ndarray.Shape{2, 3}
	c := s.Clone()
	require.True(t, s.Equal(c))
	c[0] = 9
	require.False(t, s.Equal(c))
	require.Equal(t, 2, s[0])
}

// TestNew_ShapeImmutable verifies the array keeps its own copy of the
// shape: mutating the caller's slice or the returned one changes nothing.
func TestNew_ShapeImmutable(t *testing.T) {
	s := ndarray.Shape{2, 3}
	m, err := ndarray.New[int](s)
	require.NoError(t, err)

	s[0] = 99
	got := m.Shape()
	require.Equal(t, ndarray.Shape{2, 3}, got)

	got[1] = 77
	require.Equal(t, ndarray.Shape{2, 3}, m.Shape())
}

//----------------------------------------------------------------------------//
// Flattening
//----------------------------------------------------------------------------//

// TestScenario234 replays the canonical (2,3,4) scenario: 6 rows, 24
// elements, a round-trip at (1,2,3), and isolation from (0,0,0).
func TestScenario234(t *testing.T) {
	m, err := ndarray.New[int](ndarray.Shape{2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 24, m.Len())

	require.NoError(t, m.Set(7, 1, 2, 3))
	v, err := m.At(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 7, v)

	require.NoError(t, m.Set(1, 0, 0, 0))
	v, err = m.At(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 7, v, "distinct coordinates must not alias")
}

// TestFlattening_Injectivity writes a unique value at every coordinate of
// a (2,3,4) array, then reads them all back: distinct coordinate tuples
// must map to distinct storage slots.
func TestFlattening_Injectivity(t *testing.T) {
	shape := ndarray.Shape{2, 3, 4}
	m, err := ndarray.New[int](shape)
	require.NoError(t, err)

	n := 0
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				require.NoError(t, m.Set(n, i, j, k))
				n++
			}
		}
	}
	require.Equal(t, m.Len(), n)

	n = 0
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				v, err := m.At(i, j, k)
				require.NoError(t, err)
				require.Equal(t, n, v, "coordinate (%d,%d,%d)", i, j, k)
				n++
			}
		}
	}
}

// TestFlattening_ClosedForm4D cross-checks the incremental flattening
// against the closed form Σ c_i·Π d_j on a 4-D shape, via the row-major
// cursor order.
func TestFlattening_ClosedForm4D(t *testing.T) {
	shape := ndarray.Shape{2, 3, 2, 5}
	m, err := ndarray.New[int](shape)
	require.NoError(t, err)

	// flat(c) = ((c0*3 + c1)*2 + c2)*5 + c3 under row-major order.
	for c0 := 0; c0 < shape[0]; c0++ {
		for c1 := 0; c1 < shape[1]; c1++ {
			for c2 := 0; c2 < shape[2]; c2++ {
				for c3 := 0; c3 < shape[3]; c3++ {
					flat := ((c0*3+c1)*2+c2)*5 + c3
					require.NoError(t, m.Set(flat, c0, c1, c2, c3))
				}
			}
		}
	}

	cur := m.Values()
	want := 0
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		require.Equal(t, want, v)
		want++
	}
	require.Equal(t, m.Len(), want)
}

//----------------------------------------------------------------------------//
// Coordinate validation
//----------------------------------------------------------------------------//

// TestAtSet_InvalidCoords checks wrong arity and out-of-bounds components.
func TestAtSet_InvalidCoords(t *testing.T) {
	m, err := ndarray.New[int](ndarray.Shape{2, 3})
	require.NoError(t, err)
	require.NoError(t, m.Set(5, 1, 2))

	cases := []struct {
		name   string
		coords []int
	}{
		{"TooFew", []int{1}},
		{"TooMany", []int{1, 2, 0}},
		{"None", nil},
		{"NegativeFirst", []int{-1, 0}},
		{"NegativeLast", []int{0, -1}},
		{"FirstTooBig", []int{2, 0}},
		{"LastTooBig", []int{0, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := m.At(tc.coords...); !errors.Is(err, ndarray.ErrInvalidIndex) {
				t.Errorf("At(%v) error = %v; want ErrInvalidIndex", tc.coords, err)
			}
			if err := m.Set(9, tc.coords...); !errors.Is(err, ndarray.ErrInvalidIndex) {
				t.Errorf("Set(%v) error = %v; want ErrInvalidIndex", tc.coords, err)
			}
		})
	}

	// State untouched by the failed writes.
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5, v)
}

//----------------------------------------------------------------------------//
// Bulk operations and iteration
//----------------------------------------------------------------------------//

// TestResetFill verifies Fill reaches every slot across rows and Reset
// restores zeros.
func TestResetFill(t *testing.T) {
	m, err := ndarray.New[float64](ndarray.Shape{3, 2})
	require.NoError(t, err)

	m.Fill(1.5)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			v, _ := m.At(i, j)
			require.Equal(t, 1.5, v)
		}
	}

	m.Reset()
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			v, _ := m.At(i, j)
			require.Zero(t, v)
		}
	}
}

// TestCursor_RowMajorAndRestart verifies the N-D cursor yields all Len()
// elements in row-major order and restarts cleanly.
func TestCursor_RowMajorAndRestart(t *testing.T) {
	m, err := ndarray.New[int](ndarray.Shape{2, 3})
	require.NoError(t, err)
	want := []int{1, 2, 3, 4, 5, 6}
	n := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, m.Set(want[n], i, j))
			n++
		}
	}

	cur := m.Values()
	var got []int
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		got = append(got, v)
	}
	require.Equal(t, want, got)

	// Exhaustion is sticky until Reset.
	_, ok := cur.Next()
	require.False(t, ok)

	cur.Reset()
	got = got[:0]
	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
		got = append(got, v)
	}
	require.Equal(t, want, got)
}
