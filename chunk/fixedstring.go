package chunk

import (
	"encoding/json"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
)

// A FixedString is a text field stored in a fixed capacity buffer. Its padded
// form always holds Cap bytes: the Len content bytes followed by zero bytes.
type FixedString struct {
	// Capacity sized buffer; bytes past n are zero.
	buf []byte
	// Logical length.
	n int
}

// MakeFixedString returns a FixedString of the given capacity holding s. The
// content ends at the first NUL byte of s and is truncated to capacity.
func MakeFixedString(capacity int, s string) FixedString {
	buf := make([]byte, capacity)
	n := 0
	for n < capacity && n < len(s) && s[n] != 0 {
		buf[n] = s[n]
		n++
	}
	return FixedString{buf: buf, n: n}
}

// ReadFixedString reads a NUL terminated string of at most capacity bytes from
// r.
//
// Bytes are consumed one at a time until capacity bytes have been read or the
// next byte is NUL. Exactly one more byte is then consumed as the terminator.
// This also happens when the content filled the whole capacity without a NUL,
// in which case the consumed byte belongs to whatever follows the field.
func ReadFixedString(r Reader, capacity int) (FixedString, error) {
	buf := make([]byte, capacity)
	n := 0
	for n < capacity {
		b, err := r.PeekByte()
		if err != nil {
			return FixedString{}, errors.WithStack(err)
		}
		if b == 0 {
			break
		}
		if _, err := r.ReadByte(); err != nil {
			return FixedString{}, errors.WithStack(err)
		}
		buf[n] = b
		n++
	}
	// Terminator.
	if _, err := r.ReadByte(); err != nil {
		return FixedString{}, errors.WithStack(err)
	}
	return FixedString{buf: buf, n: n}, nil
}

// Cap returns the capacity of the field.
func (s FixedString) Cap() int {
	return len(s.buf)
}

// Len returns the number of content bytes.
func (s FixedString) Len() int {
	return s.n
}

// Bytes returns a copy of the content bytes.
func (s FixedString) Bytes() []byte {
	return append([]byte(nil), s.buf[:s.n]...)
}

// String returns the content without padding.
func (s FixedString) String() string {
	return string(s.buf[:s.n])
}

// Padded returns the content followed by zero bytes up to the capacity of the
// field.
func (s FixedString) Padded() string {
	return string(s.buf)
}

// Decode returns the content converted to UTF-8 from the given character
// encoding.
func (s FixedString) Decode(enc encoding.Encoding) (string, error) {
	buf, err := enc.NewDecoder().Bytes(s.buf[:s.n])
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(buf), nil
}

// MarshalJSON encodes the content without padding as a JSON string.
func (s FixedString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
