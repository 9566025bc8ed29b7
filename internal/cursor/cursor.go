// Package cursor implements a forward-only byte reader with single byte
// lookahead, which keeps track of the number of bytes consumed.
package cursor

import (
	"io"

	"github.com/icza/bitio"
)

// Reader reads sequentially from an underlying io.Reader. It never seeks or
// rewinds; a byte obtained through PeekByte is not consumed until the next
// call to Read or ReadByte.
//
// Errors of the underlying reader are returned unchanged, so that io.ReadFull
// and friends may detect io.EOF.
type Reader struct {
	// bit reader wrapping the source; buffered unless the source is already an
	// io.ByteReader.
	br bitio.Reader
	// Number of bytes consumed.
	off int64
	// Lookahead byte, valid if peeked is set.
	next   byte
	peeked bool
}

// New returns a new Reader reading from r.
func New(r io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(r)}
}

// Offset returns the number of bytes consumed so far. A peeked byte is not
// counted.
func (r *Reader) Offset() int64 {
	return r.off
}

// Read reads up to len(p) bytes into p.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.peeked {
		p[0] = r.next
		r.peeked = false
		r.off++
		n = 1
		if len(p) == 1 {
			return n, nil
		}
	}
	m, err := r.br.Read(p[n:])
	r.off += int64(m)
	n += m
	if n > 0 && err == io.EOF {
		// Report EOF on the next call, once nothing was read.
		err = nil
	}
	return n, err
}

// ReadByte reads and returns the next byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.peeked {
		r.peeked = false
		r.off++
		return r.next, nil
	}
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, err
	}
	r.off++
	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (r *Reader) PeekByte() (byte, error) {
	if !r.peeked {
		b, err := r.br.ReadByte()
		if err != nil {
			return 0, err
		}
		r.next = b
		r.peeked = true
	}
	return r.next, nil
}
