// Package fixedarray provides fixed-capacity, bounds-checked 1-D array
// containers with strongly-typed variants.
//
// 🚀 What is fixedarray?
//
//	A fixed-length linear container whose size is set once at construction
//	and never changes. It supports:
//	  • FixedArray[T] — the generic core: At/Set with bounds checking,
//	    bulk Reset and Fill, deep Clone
//	  • IntArray / FloatArray / CharArray — typed variants that coerce
//	    every written value (ToInt32, ToFloat64, ToChar) and reject what
//	    cannot be converted
//	  • AnyArray — the opaque variant: accepts anything, honors a
//	    caller-supplied default on ResetTo
//	  • Cursor[T] — an external, restartable forward iterator; the
//	    container itself carries no iteration state
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/arrays/fixedarray"
//
//	a, err := fixedarray.NewIntArray(3)   // [0 0 0]
//	_ = a.Set(1, "5")                     // coerced: [0 5 0]
//	err = a.Set(0, "x")                   // errors.Is(err, fixedarray.ErrCoercion)
//
//	cur := a.Values()
//	for v, ok := cur.Next(); ok; v, ok = cur.Next() {
//	    fmt.Println(v)
//	}
//	cur.Reset() // same cursor, fresh pass
//
// Error discipline: every failure is one of the package sentinels
// (ErrInvalidSize, ErrIndexOutOfRange, ErrCoercion, ErrTypeMismatch),
// possibly wrapped with context — always match with errors.Is. No
// operation mutates the container before its checks pass.
//
// Concurrency: containers are not internally synchronized. Independent
// cursors may read concurrently, but any write requires external
// synchronization.
//
// Performance:
//
//   - At/Set: O(1)
//   - Reset/Fill/Clone: O(n)
//   - Cursor.Next: O(1)
package fixedarray
