package cursor_test

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/icza/mighty"
	"github.com/mewkiz/psy/internal/cursor"
)

func TestPeekDoesNotConsume(t *testing.T) {
	eq := mighty.Eq(t)
	r := cursor.New(bytes.NewReader([]byte("ab")))

	b, err := r.PeekByte()
	eq(byte('a'), b, err)
	b, err = r.PeekByte()
	eq(byte('a'), b, err)
	eq(int64(0), r.Offset())

	b, err = r.ReadByte()
	eq(byte('a'), b, err)
	eq(int64(1), r.Offset())

	b, err = r.ReadByte()
	eq(byte('b'), b, err)
	eq(int64(2), r.Offset())

	_, err = r.PeekByte()
	eq(io.EOF, err)
	_, err = r.ReadByte()
	eq(io.EOF, err)
	eq(int64(2), r.Offset())
}

func TestReadAfterPeek(t *testing.T) {
	eq := mighty.Eq(t)
	r := cursor.New(bytes.NewReader([]byte("INFOrest")))

	b, err := r.PeekByte()
	eq(byte('I'), b, err)

	buf := make([]byte, 4)
	_, err = io.ReadFull(r, buf)
	eq("INFO", string(buf), err)
	eq(int64(4), r.Offset())

	buf = make([]byte, 1)
	n, err := r.Read(buf)
	eq(1, n, err)
	eq("r", string(buf))
	eq(int64(5), r.Offset())
}

func TestReadFullShort(t *testing.T) {
	eq := mighty.Eq(t)
	r := cursor.New(bytes.NewReader([]byte("PSY")))

	buf := make([]byte, 8)
	n, err := io.ReadFull(r, buf)
	eq(3, n)
	eq(io.ErrUnexpectedEOF, err)
	eq(int64(3), r.Offset())

	r = cursor.New(bytes.NewReader(nil))
	_, err = io.ReadFull(r, buf)
	eq(io.EOF, err)
}

func TestOneByteReader(t *testing.T) {
	eq := mighty.Eq(t)
	r := cursor.New(iotest.OneByteReader(bytes.NewReader([]byte("PSY3SONG"))))

	if _, err := r.PeekByte(); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 8)
	_, err := io.ReadFull(r, buf)
	eq("PSY3SONG", string(buf), err)
	eq(int64(8), r.Offset())
}

func TestReadError(t *testing.T) {
	eq := mighty.Eq(t)
	r := cursor.New(iotest.ErrReader(iotest.ErrTimeout))

	_, err := r.ReadByte()
	eq(iotest.ErrTimeout, err)
	_, err = r.PeekByte()
	eq(iotest.ErrTimeout, err)
	eq(int64(0), r.Offset())
}
