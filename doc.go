// Package arrays is a small toolbox of fixed-capacity, strongly-typed
// array containers — from a single generic 1-D block to an N-dimensional
// view flattened onto it.
//
// 🚀 What is arrays?
//
//	A compact, dependency-light library that brings together:
//		• FixedArray[T]: a fixed-length, bounds-checked linear container
//		• Typed variants: integer, float and single-character arrays with
//		  explicit, fallible value coercion
//		• NDArray[T]: an N-dimensional logical view over FixedArray rows,
//		  with row-major coordinate flattening
//		• External cursors: restartable forward iteration without any
//		  mutable state on the container itself
//
// ✨ Why choose arrays?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – sentinel errors, errors.Is everywhere, no panics on
//     user input
//   - Pure Go – no cgo, no hidden runtime deps
//   - Honest capacity – no growth, no shrink, no surprises
//
// Everything is organized under two subpackages:
//
//	fixedarray/ — FixedArray[T], typed 1-D variants, coercion helpers
//	ndarray/    — Shape, NDArray[T] and typed N-D variants
//
// Quick ASCII example:
//
//	shape (2,3,4)          rows (6 × FixedArray of length 4)
//	┌───────────┐          row 0: [· · · ·]
//	│ c=(1,2,3) │  ──►     ...
//	└───────────┘          row 5: [· · · ·]   rowIndex((1,2)) = 5
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/arrays
package arrays
