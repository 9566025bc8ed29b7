package chunk

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// HeaderSize is the size in bytes of the file header.
const HeaderSize = 20

// SignaturePsy3 is the format version written by the tracker since version
// 1.66 of the file format.
const SignaturePsy3 = "PSY3SONG"

// A Header is the file header present at the beginning of each PsyFile.
type Header struct {
	// Format version; eight raw characters, not necessarily NUL terminated.
	Version [8]byte
	// Chunk format version.
	ChunkVersion uint32
	// Size in bytes of the remaining header data, as declared by the file. It
	// is not verified.
	Size uint32
	// Number of chunks in the file.
	ChunkCount int32
}

// NewHeader parses and returns a new file header.
//
// Header format (pseudo code):
//
//    type HEADER struct {
//       version       [8]byte
//       chunk_version uint32
//       size          uint32
//       chunk_count   int32
//    }
//
// All integers are little-endian.
func NewHeader(r io.Reader) (*Header, error) {
	h := new(Header)
	if err := binary.Read(r, binary.LittleEndian, h); err != nil {
		return nil, errors.WithStack(err)
	}
	return h, nil
}

// VersionString returns the format version as an 8 character string, exactly
// as stored.
func (h *Header) VersionString() string {
	return string(h.Version[:])
}

// IsPsy3 reports whether the format version is "PSY3SONG".
func (h *Header) IsPsy3() bool {
	return h.VersionString() == SignaturePsy3
}
