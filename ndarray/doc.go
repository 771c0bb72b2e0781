// Package ndarray provides N-dimensional fixed-shape array containers
// built on fixedarray rows, with row-major coordinate flattening.
//
// 🚀 What is ndarray?
//
//	A logical N-D view over linear storage. A Shape{d0, ..., dn-1} with
//	n ≥ 2 allocates d0·…·dn-2 rows of length dn-1; coordinates map to
//	(row, column) with the last coordinate varying fastest. It supports:
//	  • NDArray[T] — the generic core: variadic At/Set, Reset, Fill
//	  • IntNDArray / FloatNDArray / CharNDArray — typed variants sharing
//	    fixedarray's coercion rules
//	  • AnyNDArray — the opaque variant
//	  • Cursor[T] — restartable row-major traversal of the whole array
//
// 🧮 Flattening:
//
//	For shape (d0, ..., dn-1) and coordinates (c0, ..., cn-1):
//
//	    rowIndex = Σ_{i<n-1} c_i · Π_{i<j<n-1} d_j
//
//	computed incrementally with exact integer division; cn-1 indexes
//	inside the selected row. Distinct coordinate tuples always land on
//	distinct storage slots.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/arrays/ndarray"
//
//	m, err := ndarray.NewIntNDArray(ndarray.Shape{2, 3, 4}) // 24 zeros
//	_ = m.Set(7, 1, 2, 3)
//	v, _ := m.At(1, 2, 3) // 7
//
// A single-dimension shape is rejected with ErrInvalidShape — use
// fixedarray for linear storage. Coordinate failures return
// ErrInvalidIndex; coercion failures surface fixedarray's sentinels.
// Match everything with errors.Is.
//
// Performance:
//
//   - At/Set: O(n) in the number of dimensions (bounds walk), O(1) access
//   - Reset/Fill: O(NumElements)
//   - Cursor.Next: O(1)
package ndarray
