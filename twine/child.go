package twine

import (
	"io"
	"strconv"
	"unicode/utf8"
	"unsafe"

	"github.com/XOSplicer/twine/internal/utf16text"
)

// childKind tags the payload of a child slot. The tag lives in the parent
// Twine header, not in the child itself, so the payload stays two words.
type childKind uint8

const (
	childTwine childKind = iota
	childString
	childRune
	childDecU16
	childDecU32
	childDecU64
	childDecUint
	childDecI16
	childDecI32
	childDecI64
	childDecInt
	childHexU64
	childHexUint
	childFormat
	childUTF16LE
	childLatin1
)

// child is the two-word payload of a Unary or Binary slot. ptr points at
// borrowed caller data (string bytes, a numeric variable, a nested Twine);
// n carries the byte length for string and slice payloads and is unused
// otherwise. Keeping ptr an unsafe.Pointer keeps the referent visible to
// the garbage collector.
type child struct {
	ptr unsafe.Pointer
	n   uintptr
}

func ptrChild(p unsafe.Pointer) child {
	return child{ptr: p}
}

func strChild(s string) child {
	return child{ptr: unsafe.Pointer(unsafe.StringData(s)), n: uintptr(len(s))}
}

func bytesChild(b []byte) child {
	return child{ptr: unsafe.Pointer(unsafe.SliceData(b)), n: uintptr(len(b))}
}

func (c child) str() string {
	if c.n == 0 {
		return ""
	}
	return unsafe.String((*byte)(c.ptr), c.n)
}

func (c child) bytes() []byte {
	if c.n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(c.ptr), c.n)
}

func (c child) twine() *Twine {
	return (*Twine)(c.ptr)
}

func (c child) format() *FormatArg {
	return (*FormatArg)(c.ptr)
}

// estimate returns a lower bound on the rendered byte length of the leaf.
// Exact for strings and runes, constant 1 for every numeric variant, one
// byte per code unit for UTF-16LE, one byte per input byte for
// Windows-1252.
func (c child) estimate(k childKind) int {
	switch k {
	case childTwine:
		return c.twine().EstimatedCapacity()
	case childString:
		return int(c.n)
	case childRune:
		if l := utf8.RuneLen(*(*rune)(c.ptr)); l > 0 {
			return l
		}
		return utf8.RuneLen(utf8.RuneError)
	case childFormat:
		if l, ok := c.format().Len(); ok {
			return l
		}
		return 1
	case childUTF16LE:
		return int(c.n) / 2
	case childLatin1:
		return int(c.n)
	default:
		// All decimal and hex numeric leaves: at least one digit.
		return 1
	}
}

// writeTo renders the leaf into w. The only possible failure is the
// sink's own write error, which is returned unchanged.
func (c child) writeTo(k childKind, w io.Writer) (int64, error) {
	switch k {
	case childTwine:
		return c.twine().WriteTo(w)
	case childString:
		n, err := io.WriteString(w, c.str())
		return int64(n), err
	case childRune:
		var scratch [utf8.UTFMax]byte
		n := utf8.EncodeRune(scratch[:], *(*rune)(c.ptr))
		m, err := w.Write(scratch[:n])
		return int64(m), err
	case childDecU16:
		return writeUint(w, uint64(*(*uint16)(c.ptr)), 10)
	case childDecU32:
		return writeUint(w, uint64(*(*uint32)(c.ptr)), 10)
	case childDecU64:
		return writeUint(w, *(*uint64)(c.ptr), 10)
	case childDecUint:
		return writeUint(w, uint64(*(*uint)(c.ptr)), 10)
	case childDecI16:
		return writeInt(w, int64(*(*int16)(c.ptr)))
	case childDecI32:
		return writeInt(w, int64(*(*int32)(c.ptr)))
	case childDecI64:
		return writeInt(w, *(*int64)(c.ptr))
	case childDecInt:
		return writeInt(w, int64(*(*int)(c.ptr)))
	case childHexU64:
		return writeUint(w, *(*uint64)(c.ptr), 16)
	case childHexUint:
		return writeUint(w, uint64(*(*uint)(c.ptr)), 16)
	case childFormat:
		return c.format().WriteTo(w)
	case childUTF16LE:
		n, err := utf16text.WriteUTF16LE(w, c.bytes())
		return int64(n), err
	default: // childLatin1
		n, err := utf16text.WriteLatin1(w, c.bytes())
		return int64(n), err
	}
}

// writeUint formats v in the given base into a stack scratch buffer and
// writes it out. Base 16 output is lower-case with no prefix or padding.
func writeUint(w io.Writer, v uint64, base int) (int64, error) {
	var scratch [20]byte
	b := strconv.AppendUint(scratch[:0], v, base)
	n, err := w.Write(b)
	return int64(n), err
}

func writeInt(w io.Writer, v int64) (int64, error) {
	var scratch [20]byte
	b := strconv.AppendInt(scratch[:0], v, 10)
	n, err := w.Write(b)
	return int64(n), err
}
