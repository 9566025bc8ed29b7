// Package chunk contains functions for parsing PsyFile headers and chunks.
//
// The basic structure of a PsyFile is:
//    - The file header (20 bytes).
//    - One or more chunks, each introduced by a four byte tag, a version and
//      a size.
//
// Chunks are decoded through a Table, which maps a tag to the function
// decoding the chunk body. DefaultTable knows the INFO chunk only.
package chunk

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Reader is the byte source of the chunk decoders. Bytes are consumed
// sequentially; PeekByte returns the next byte without consuming it.
type Reader interface {
	io.Reader
	io.ByteReader
	PeekByte() (byte, error)
}

// A Tag is a 4 byte identifier of a chunk type.
type Tag string

// Chunk tags.
const (
	TagInfo Tag = "INFO"
)

// tagNames maps from chunk tags written by the tracker to a description.
var tagNames = map[Tag]string{
	"INFO": "song information",
	"SNGI": "song properties",
	"SEQD": "sequence data",
	"PATD": "pattern data",
	"MACD": "machine data",
	"INSD": "instrument data",
	"EINS": "extended instruments",
}

func (tag Tag) String() string {
	s, ok := tagNames[tag]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown tag: %q>", string(tag))
}

// A Block is a chunk, consisting of a chunk header and a chunk body.
type Block struct {
	// Chunk header.
	Header *BlockHeader
	// Chunk body: *Info, or the value returned by a DecodeFunc.
	Body interface{}
}

// A BlockHeader holds the tag, version and size of a chunk.
type BlockHeader struct {
	// Chunk type.
	Tag Tag
	// Chunk version; the high byte of the low word is the major version.
	Version uint32
	// Size in bytes of the chunk body, as written. It is not verified.
	Size uint32
}

// Major returns the major version of the chunk.
func (h *BlockHeader) Major() uint8 {
	return uint8(h.Version >> 8)
}

// Minor returns the minor version of the chunk.
func (h *BlockHeader) Minor() uint8 {
	return uint8(h.Version)
}

// A DecodeFunc decodes the body of a chunk. The chunk header has already been
// read from r when it is called.
type DecodeFunc func(r Reader, h *BlockHeader) (body interface{}, err error)

// A Table maps chunk tags to decoders.
type Table map[Tag]DecodeFunc

// DefaultTable decodes the chunks understood by this package.
var DefaultTable = Table{
	TagInfo: decodeInfo,
}

// Decode reads a chunk using DefaultTable.
func Decode(r Reader) (*Block, error) {
	return DefaultTable.Decode(r)
}

// Decode reads a chunk tag from r and decodes the chunk with the decoder
// registered for it. An *UnexpectedChunkError is returned for tags without a
// decoder, in which case nothing past the tag has been read.
//
// Chunk format (pseudo code):
//
//    type CHUNK struct {
//       tag     [4]byte
//       version uint32
//       size    uint32
//       body    [size]byte
//    }
func (t Table) Decode(r Reader) (*Block, error) {
	// Tag (size: 4 bytes).
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.WithStack(err)
	}
	tag := Tag(buf)
	decode, ok := t[tag]
	if !ok {
		return nil, &UnexpectedChunkError{Tag: tag}
	}

	// Version and size (size: 4 bytes each).
	h := &BlockHeader{Tag: tag}
	if err := binary.Read(r, binary.LittleEndian, &h.Version); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := binary.Read(r, binary.LittleEndian, &h.Size); err != nil {
		return nil, errors.WithStack(err)
	}

	body, err := decode(r, h)
	if err != nil {
		return nil, err
	}
	return &Block{Header: h, Body: body}, nil
}

// UnexpectedChunkError is returned when a chunk tag has no decoder.
type UnexpectedChunkError struct {
	// The tag found in the stream.
	Tag Tag
}

func (e *UnexpectedChunkError) Error() string {
	return fmt.Sprintf("chunk.Table.Decode: unexpected chunk %q", string(e.Tag))
}
