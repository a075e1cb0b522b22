package twine

import (
	"io"
	"strings"

	"github.com/XOSplicer/twine/internal/buf"
)

// WriteTo renders t into w and reports the number of bytes written. Null
// and Empty write nothing; a Binary node writes its left leaf then its
// right leaf with no separator, so render order is always construction
// order. The only failure source is w itself; its error is returned
// unchanged and rendering stops at the failing leaf.
//
// WriteTo does not consume t: a Twine may be rendered any number of
// times.
func (t *Twine) WriteTo(w io.Writer) (int64, error) {
	switch t.kind {
	case kindNull, kindEmpty:
		return 0, nil
	case kindUnary:
		return t.lhs.writeTo(t.lhsKind, w)
	default:
		n, err := t.lhs.writeTo(t.lhsKind, w)
		if err != nil {
			return n, err
		}
		m, err := t.rhs.writeTo(t.rhsKind, w)
		return n + m, err
	}
}

// String renders t into a fresh string with no pre-sizing hint. It also
// serves as the fmt.Stringer integration, so a *Twine prints as its
// rendered text.
func (t *Twine) String() string {
	var b strings.Builder
	_, _ = t.WriteTo(&b)
	return b.String()
}

// StringPrealloc renders t into a string whose buffer is pre-grown to
// EstimatedCapacity rounded up to the next power of two. The estimate is
// a lower bound, so numeric leaves may still force the buffer to grow;
// growth appends normally and never disturbs already-written bytes.
func (t *Twine) StringPrealloc() string {
	var b strings.Builder
	b.Grow(buf.NextPow2(t.EstimatedCapacity()))
	_, _ = t.WriteTo(&b)
	return b.String()
}

// IsEmpty reports whether t renders to the empty string. Unlike
// IsTriviallyEmpty this is exact: it renders the tree through a counting
// sink that accumulates only a byte count and never materializes output.
func (t *Twine) IsEmpty() bool {
	var cw countingWriter
	_, _ = t.WriteTo(&cw)
	return cw.n == 0
}

// countingWriter discards everything it is given and counts bytes.
// Implementing io.StringWriter keeps io.WriteString from copying string
// leaves into throwaway byte slices.
type countingWriter struct {
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

func (c *countingWriter) WriteString(s string) (int, error) {
	c.n += int64(len(s))
	return len(s), nil
}
