package twine

import (
	"unsafe"

	"github.com/XOSplicer/twine/internal/buf"
)

// kind is the shape tag of a Twine.
type kind uint8

const (
	kindNull kind = iota
	kindEmpty
	kindUnary
	kindBinary
)

// Twine is an immutable, non-owning concatenation tree.
//
// The zero value is Null. A Twine is exactly six machine words, the
// footprint of three string headers: a two-word header slot holding the
// shape and leaf tags, plus two leaf payloads of two words each. Copying
// a Twine copies only these six words, never the data it refers to.
//
// A Unary node keeps its leaf in the lhs slot; rhs is unused. A Binary
// node renders lhs then rhs with no separator.
type Twine struct {
	kind    kind
	lhsKind childKind
	rhsKind childKind
	// Pad the tag header to a full two-word slot so the size invariant
	// holds on any word size.
	_   [2*unsafe.Sizeof(uintptr(0)) - 3]byte
	lhs child
	rhs child
}

// Null returns the absorbing "no value" Twine. Concatenating anything with
// Null yields Null.
func Null() Twine {
	return Twine{kind: kindNull}
}

// Empty returns the identity Twine. It renders to the empty string and
// disappears under concatenation.
func Empty() Twine {
	return Twine{kind: kindEmpty}
}

// FromString wraps s as a single-leaf Twine. The empty string normalizes
// to Empty, so a string leaf is never zero length.
func FromString(s string) Twine {
	if s == "" {
		return Empty()
	}
	return unary(childString, strChild(s))
}

// FromRune wraps the rune pointed to by r. The rune is borrowed; it is
// rendered as UTF-8 at materialization time.
func FromRune(r *rune) Twine {
	return unary(childRune, ptrChild(unsafe.Pointer(r)))
}

// FromTwine wraps t as a nested leaf. The referenced Twine is borrowed,
// not copied; t must stay valid while the result is in use.
func FromTwine(t *Twine) Twine {
	return unary(childTwine, ptrChild(unsafe.Pointer(t)))
}

// FromArg wraps a pre-built format argument as a single-leaf Twine.
func FromArg(a *FormatArg) Twine {
	return unary(childFormat, ptrChild(unsafe.Pointer(a)))
}

// FromUTF16LE wraps a UTF-16LE encoded byte slice. The bytes are borrowed
// and transcoded to UTF-8 during rendering. An odd trailing byte is
// ignored.
func FromUTF16LE(b []byte) Twine {
	return unary(childUTF16LE, bytesChild(b))
}

// FromLatin1 wraps a Windows-1252 encoded byte slice. The bytes are
// borrowed and transcoded to UTF-8 during rendering.
func FromLatin1(b []byte) Twine {
	return unary(childLatin1, bytesChild(b))
}

// DecU16 wraps an unsigned 16-bit integer rendered in decimal.
func DecU16(v *uint16) Twine { return unary(childDecU16, ptrChild(unsafe.Pointer(v))) }

// DecU32 wraps an unsigned 32-bit integer rendered in decimal.
func DecU32(v *uint32) Twine { return unary(childDecU32, ptrChild(unsafe.Pointer(v))) }

// DecU64 wraps an unsigned 64-bit integer rendered in decimal.
func DecU64(v *uint64) Twine { return unary(childDecU64, ptrChild(unsafe.Pointer(v))) }

// DecUint wraps a word-sized unsigned integer rendered in decimal.
func DecUint(v *uint) Twine { return unary(childDecUint, ptrChild(unsafe.Pointer(v))) }

// DecI16 wraps a signed 16-bit integer rendered in decimal.
func DecI16(v *int16) Twine { return unary(childDecI16, ptrChild(unsafe.Pointer(v))) }

// DecI32 wraps a signed 32-bit integer rendered in decimal.
func DecI32(v *int32) Twine { return unary(childDecI32, ptrChild(unsafe.Pointer(v))) }

// DecI64 wraps a signed 64-bit integer rendered in decimal.
func DecI64(v *int64) Twine { return unary(childDecI64, ptrChild(unsafe.Pointer(v))) }

// DecInt wraps a word-sized signed integer rendered in decimal.
func DecInt(v *int) Twine { return unary(childDecInt, ptrChild(unsafe.Pointer(v))) }

// HexU64 wraps an unsigned 64-bit integer rendered as lower-case hex with
// no prefix and no padding.
func HexU64(v *uint64) Twine { return unary(childHexU64, ptrChild(unsafe.Pointer(v))) }

// HexUint wraps a word-sized unsigned integer rendered as lower-case hex
// with no prefix and no padding.
func HexUint(v *uint) Twine { return unary(childHexUint, ptrChild(unsafe.Pointer(v))) }

// FromPair builds a Twine from two string fragments, applying the same
// empty-absorption rule as Concat: both empty yields Empty, one empty
// yields a Unary of the other, otherwise a Binary of the two. A Binary
// node therefore never carries a trivially-empty string side.
func FromPair(a, b string) Twine {
	switch {
	case a == "" && b == "":
		return Empty()
	case a == "":
		return FromString(b)
	case b == "":
		return FromString(a)
	}
	return Twine{
		kind:    kindBinary,
		lhsKind: childString,
		rhsKind: childString,
		lhs:     strChild(a),
		rhs:     strChild(b),
	}
}

func unary(k childKind, c child) Twine {
	return Twine{kind: kindUnary, lhsKind: k, lhs: c}
}

// flatten collapses exactly one level of Unary(nested-twine) indirection.
// It is deliberately not recursive: a twine wrapped twice is collapsed
// once per Concat, the rest is deferred to a later Concat or to render
// time.
func (t *Twine) flatten() *Twine {
	if t.kind == kindUnary && t.lhsKind == childTwine {
		return t.lhs.twine()
	}
	return t
}

// Concat combines two twines into a new one without rendering either.
// Both operands are borrowed and must stay valid while the result is in
// use; neither is mutated. The result must not be assigned over either
// operand's variable: when a side is itself a tree, the result keeps a
// pointer to it, and overwriting it would make the tree self-referential.
//
// Null absorbs from either side and is checked before Empty, left side
// first. Empty sides vanish. Two Unary sides collapse into a single
// Binary node so the common "two simple fragments" case stays flat. Any
// other combination becomes a Binary of two nested-twine leaves, the only
// case that grows tree depth.
func Concat(lhs, rhs *Twine) Twine {
	lf := lhs.flatten()
	rf := rhs.flatten()
	switch {
	case lf.kind == kindNull:
		return Null()
	case rf.kind == kindNull:
		return Null()
	case lf.kind == kindEmpty:
		return *rhs
	case rf.kind == kindEmpty:
		return *lhs
	}
	if lf.kind == kindUnary && rf.kind == kindUnary {
		return Twine{
			kind:    kindBinary,
			lhsKind: lf.lhsKind,
			rhsKind: rf.lhsKind,
			lhs:     lf.lhs,
			rhs:     rf.lhs,
		}
	}
	// Keep the pre-flatten operands; re-flattening is deferred.
	return Twine{
		kind:    kindBinary,
		lhsKind: childTwine,
		rhsKind: childTwine,
		lhs:     ptrChild(unsafe.Pointer(lhs)),
		rhs:     ptrChild(unsafe.Pointer(rhs)),
	}
}

// Concat returns the concatenation of t and other. It is equivalent to
// the package-level Concat and exists as the infix spelling.
func (t *Twine) Concat(other *Twine) Twine {
	return Concat(t, other)
}

// IsNull reports whether t is the absorbing Null shape.
func (t *Twine) IsNull() bool {
	return t.kind == kindNull
}

// IsNullary reports whether t has no leaves (Null or Empty).
func (t *Twine) IsNullary() bool {
	return t.kind == kindNull || t.kind == kindEmpty
}

// IsUnary reports whether t holds exactly one leaf.
func (t *Twine) IsUnary() bool {
	return t.kind == kindUnary
}

// IsBinary reports whether t holds exactly two leaves.
func (t *Twine) IsBinary() bool {
	return t.kind == kindBinary
}

// IsTriviallyEmpty reports whether t is empty by shape alone, in O(1).
// This is weaker than IsEmpty: a Binary of two leaves that happen to
// render nothing is empty but not trivially empty.
func (t *Twine) IsTriviallyEmpty() bool {
	return t.IsNullary()
}

// AsSingleString returns the underlying string when t is Empty (yielding
// "") or a Unary node over a plain string leaf. It is a narrow accessor,
// not a render: every other shape reports false.
func (t *Twine) AsSingleString() (string, bool) {
	switch {
	case t.kind == kindEmpty:
		return "", true
	case t.kind == kindUnary && t.lhsKind == childString:
		return t.lhs.str(), true
	}
	return "", false
}

// IsSingleString reports whether AsSingleString would succeed.
func (t *Twine) IsSingleString() bool {
	_, ok := t.AsSingleString()
	return ok
}

// EstimatedCapacity returns a conservative lower bound on the rendered
// byte length. String and rune leaves count exactly; every numeric leaf
// counts as 1 regardless of its digit count, since computing the true
// length would do the formatting work this type exists to defer. Null and
// Empty contribute 0. The sum saturates instead of overflowing.
func (t *Twine) EstimatedCapacity() int {
	switch t.kind {
	case kindNull, kindEmpty:
		return 0
	case kindUnary:
		return t.lhs.estimate(t.lhsKind)
	default:
		return buf.AddSat(t.lhs.estimate(t.lhsKind), t.rhs.estimate(t.rhsKind))
	}
}
