// Package utf16text transcodes UTF-16LE and Windows-1252 bytes into an
// io.Writer as UTF-8, without building intermediate strings on the common
// ASCII path.
package utf16text

import (
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	asciiThreshold     = 0x80
	highSurrogateStart = 0xD800
	highSurrogateEnd   = 0xDBFF
	lowSurrogateStart  = 0xDC00
	lowSurrogateEnd    = 0xDFFF
	surrogateBase      = 0x10000
)

// chunkSize is the stack scratch buffer used to batch writes.
const chunkSize = 128

// WriteUTF16LE decodes UTF-16LE bytes and writes them to w as UTF-8,
// returning the number of UTF-8 bytes written. Unpaired surrogates become
// U+FFFD and an odd trailing byte is ignored. The only error source is w.
func WriteUTF16LE(w io.Writer, data []byte) (int, error) {
	if len(data) < 2 {
		return 0, nil
	}

	// Fast path: all-ASCII input. In UTF-16LE every ASCII char is
	// [byte, 0x00], so the output is just the even-index bytes.
	if isASCII16(data) {
		return writeASCII16(w, data)
	}

	var chunk [chunkSize]byte
	fill, total := 0, 0
	for i := 0; i+1 < len(data); i += 2 {
		r := rune(data[i]) | rune(data[i+1])<<8
		if r >= highSurrogateStart && r <= highSurrogateEnd && i+3 < len(data) {
			r2 := rune(data[i+2]) | rune(data[i+3])<<8
			if r2 >= lowSurrogateStart && r2 <= lowSurrogateEnd {
				r = surrogateBase + ((r-highSurrogateStart)<<10 | (r2 - lowSurrogateStart))
				i += 2
			}
		}
		if fill+utf8.UTFMax > chunkSize {
			n, err := w.Write(chunk[:fill])
			total += n
			if err != nil {
				return total, err
			}
			fill = 0
		}
		// EncodeRune writes U+FFFD for lone surrogates.
		fill += utf8.EncodeRune(chunk[fill:], r)
	}
	if fill > 0 {
		n, err := w.Write(chunk[:fill])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteLatin1 decodes Windows-1252 bytes and writes them to w as UTF-8.
// ASCII input is passed through unchanged; anything else goes through the
// x/text decoder.
func WriteLatin1(w io.Writer, data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	if isASCII(data) {
		return w.Write(data)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return 0, fmt.Errorf("decode windows-1252: %w", err)
	}
	return w.Write(decoded)
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= asciiThreshold {
			return false
		}
	}
	return true
}

func isASCII16(data []byte) bool {
	if len(data)%2 != 0 {
		return false
	}
	for i := 0; i < len(data); i += 2 {
		if data[i+1] != 0 || data[i] >= asciiThreshold {
			return false
		}
	}
	return true
}

func writeASCII16(w io.Writer, data []byte) (int, error) {
	var chunk [chunkSize]byte
	fill, total := 0, 0
	for i := 0; i < len(data); i += 2 {
		if fill == chunkSize {
			n, err := w.Write(chunk[:fill])
			total += n
			if err != nil {
				return total, err
			}
			fill = 0
		}
		chunk[fill] = data[i]
		fill++
	}
	if fill > 0 {
		n, err := w.Write(chunk[:fill])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
