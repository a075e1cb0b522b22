// Package twine provides a lazy, allocation-avoiding representation of
// string concatenation.
//
// # Overview
//
// Building a string out of many fragments with + pays an allocation and a
// copy per intermediate result. A Twine instead records *how* the final
// string would be assembled: it is a small, fixed-size concatenation tree
// whose leaves borrow the caller's data (strings, numbers, nested twines).
// Nothing is rendered until the caller asks for it, and a Twine that is
// only inspected (IsEmpty, EstimatedCapacity) never materializes a string
// at all.
//
// # Shapes
//
// A Twine has exactly four shapes:
//
//   - Null: absorbing "no value"; concatenating anything with Null yields Null
//   - Empty: identity element; renders to the empty string
//   - Unary: a single leaf
//   - Binary: two leaves rendered left to right
//
// Leaves are either nested twines, strings, runes, integers rendered in
// decimal or hex, pre-built format arguments, or raw UTF-16LE /
// Windows-1252 byte slices that are transcoded during rendering.
//
// # Zero-Copy Design
//
// A Twine is a zero-copy view over caller-owned data. It is exactly six
// machine words, trivially copyable, and never owns what it describes.
// The caller must keep borrowed data alive and unmutated while a Twine
// referencing it is in use; the garbage collector takes care of the
// "alive" half, the "unmutated" half is a documented obligation.
//
// # Usage
//
//	foo := twine.FromString("foo")
//	bar := twine.FromString("bar")
//	t := foo.Concat(&bar)
//	s := t.StringPrealloc() // "foobar", rendered once
//
// # Thread Safety
//
// A Twine is immutable after construction and safe for concurrent reads.
// The package provides no synchronization for the borrowed leaf data
// itself.
package twine
