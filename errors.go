package psy

import (
	"fmt"
	"io"

	"github.com/mewkiz/psy/chunk"
	"github.com/pkg/errors"
)

// Errors returned by Open and Stream.Parse.
var (
	// ErrNotFound is returned when the path does not name an existing file.
	ErrNotFound = errors.New("file not found")
	// ErrUnexpectedEOF is returned when the input ends before a field has been
	// read in full.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// UnexpectedChunkError is returned when the chunk following the file header is
// not an INFO chunk. It holds the tag found.
type UnexpectedChunkError = chunk.UnexpectedChunkError

// An IOError records a failure of the underlying file or stream, other than a
// missing file or a premature end of input.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// classify maps an error of the chunk decoders to one of the errors of this
// package.
func classify(op, path string, err error) error {
	var ce *chunk.UnexpectedChunkError
	if errors.As(err, &ce) {
		return ce
	}
	switch cause := errors.Cause(err); cause {
	case io.EOF, io.ErrUnexpectedEOF:
		return errors.WithStack(ErrUnexpectedEOF)
	default:
		return &IOError{Op: op, Path: path, Err: cause}
	}
}
