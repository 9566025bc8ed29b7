// Package psy provides access to PsyFile song files, as written by the Psycle
// tracker.
//
// The basic structure of a PsyFile is:
//    - The 20 byte file header: format version, chunk version, size and chunk
//      count.
//    - The INFO chunk, holding the song title, artist and comments.
//    - Further chunks, which are not read by this package.
package psy

import (
	"io"
	"os"

	"github.com/mewkiz/psy/chunk"
	"github.com/mewkiz/psy/internal/cursor"
	"github.com/pkg/errors"
)

// A Stream is a PsyFile being read.
type Stream struct {
	// The underlying reader of the stream.
	r *cursor.Reader
	// Underlying file, if opened by Open.
	c io.Closer
	// Path of the underlying file; empty for streams.
	path string
}

// Parse reads the provided file and returns its song metadata. The file is
// closed before Parse returns. Use Open instead for more granularity.
func Parse(path string) (f *File, err error) {
	s, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.Parse()
}

// ParseStream reads from the provided io.Reader and returns the song metadata
// of the PsyFile. Use NewStream instead for more granularity.
func ParseStream(r io.Reader) (f *File, err error) {
	return NewStream(r).Parse()
}

// Open opens the provided file for reading and returns a handle to the PsyFile.
// Callers should close the stream when done reading from it.
//
// ErrNotFound is returned if path does not name an existing regular file, and
// an *IOError if the file could not be opened for any other reason.
func Open(path string) (s *Stream, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithMessagef(ErrNotFound, "psy.Open: %q", path)
		}
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &IOError{Op: "stat", Path: path, Err: err}
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, errors.WithMessagef(ErrNotFound, "psy.Open: %q is not a regular file", path)
	}

	s = NewStream(f)
	s.c = f
	s.path = path
	return s, nil
}

// NewStream returns a handle to the PsyFile read from r. Call Stream.Parse to
// read the song metadata.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: cursor.New(r)}
}

// Close closes the underlying file of the stream, if any.
func (s *Stream) Close() error {
	if s.c != nil {
		return s.c.Close()
	}
	return nil
}

// Offset returns the number of bytes consumed from the stream.
func (s *Stream) Offset() int64 {
	return s.r.Offset()
}

// Parse reads the file header and the INFO chunk of the stream and returns the
// song metadata. It should be called once per stream.
//
// The returned error is ErrUnexpectedEOF, an *UnexpectedChunkError or an
// *IOError; no metadata is returned on failure.
func (s *Stream) Parse() (*File, error) {
	// File header.
	hdr, err := chunk.NewHeader(s.r)
	if err != nil {
		return nil, classify("read", s.path, err)
	}

	// INFO chunk.
	block, err := chunk.DefaultTable.Decode(s.r)
	if err != nil {
		return nil, classify("read", s.path, err)
	}
	info, ok := block.Body.(*chunk.Info)
	if !ok {
		return nil, &UnexpectedChunkError{Tag: block.Header.Tag}
	}

	f := &File{
		PsyVersion:   hdr.VersionString(),
		ChunkVersion: hdr.ChunkVersion,
		Size:         hdr.Size,
		ChunkCount:   hdr.ChunkCount,
		Title:        info.Title,
		Artist:       info.Artist,
		Comments:     info.Comments,
	}
	return f, nil
}
