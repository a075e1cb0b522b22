package twine

import (
	"fmt"
	"io"
)

// FormatArg is a pre-built formatted argument usable as a Twine leaf.
// It either carries already-rendered text with a known length, or a
// deferred format call that runs only when the twine is rendered.
type FormatArg struct {
	text  string
	write func(io.Writer) error
}

// Formatf builds a deferred format argument. The fmt.Fprintf call runs
// each time the argument is rendered, never at construction. Its rendered
// length is unknown, so capacity estimation counts it as 1.
func Formatf(format string, args ...any) *FormatArg {
	return &FormatArg{
		write: func(w io.Writer) error {
			_, err := fmt.Fprintf(w, format, args...)
			return err
		},
	}
}

// Prerendered wraps already-formatted text. Its length is known and used
// by capacity estimation.
func Prerendered(s string) *FormatArg {
	return &FormatArg{text: s}
}

// Len returns the rendered length when it is already known.
func (a *FormatArg) Len() (int, bool) {
	if a.write != nil {
		return 0, false
	}
	return len(a.text), true
}

// WriteTo renders the argument into w. Only w's own error can surface,
// and it is passed through unchanged.
func (a *FormatArg) WriteTo(w io.Writer) (int64, error) {
	if a.write == nil {
		n, err := io.WriteString(w, a.text)
		return int64(n), err
	}
	mw := &meteredWriter{w: w}
	err := a.write(mw)
	return mw.n, err
}

// meteredWriter forwards writes and tracks the byte count, since a
// deferred format call does not report how much it wrote.
type meteredWriter struct {
	w io.Writer
	n int64
}

func (m *meteredWriter) Write(p []byte) (int, error) {
	n, err := m.w.Write(p)
	m.n += int64(n)
	return n, err
}
