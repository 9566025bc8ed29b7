package psy

import (
	"fmt"
	"io"
	"strings"

	"github.com/mewkiz/psy/chunk"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
)

// A File holds the song metadata of a PsyFile: the fields of the file header
// and of the INFO chunk.
type File struct {
	// Format version; 8 characters exactly as stored, e.g. "PSY3SONG".
	PsyVersion string `json:"psy_version"`
	// Chunk format version of the file header.
	ChunkVersion uint32 `json:"chunk_version"`
	// Size declared by the file header.
	Size uint32 `json:"size"`
	// Number of chunks declared by the file header.
	ChunkCount int32 `json:"chunk_count"`

	// Song title; capacity 128.
	Title chunk.FixedString `json:"title"`
	// Song author; capacity 64.
	Artist chunk.FixedString `json:"artist"`
	// Comments; capacity 65536.
	Comments chunk.FixedString `json:"comments"`
}

func (f *File) String() string {
	return fmt.Sprintf("[psy.File: PsyVersion=%q, ChunkVersion=%d, Size=%d, ChunkCount=%d, Title=%s, Artist=%s, Comments=%s]", f.PsyVersion, f.ChunkVersion, f.Size, f.ChunkCount, f.Title, f.Artist, f.Comments)
}

// Summary returns a listing of the format version, title, artist and comments
// of the song, with text decoded from chunk.DefaultCharset. Decoding from
// DefaultCharset cannot fail, hence no error is returned; use WriteSummary for
// other encodings.
func (f *File) Summary() string {
	sb := new(strings.Builder)
	_ = f.WriteSummary(sb, chunk.DefaultCharset)
	return sb.String()
}

// WriteSummary writes the listing of Summary to w, with text decoded from enc.
func (f *File) WriteSummary(w io.Writer, enc encoding.Encoding) error {
	title, err := f.Title.Decode(enc)
	if err != nil {
		return err
	}
	artist, err := f.Artist.Decode(enc)
	if err != nil {
		return err
	}
	comments, err := f.Comments.Decode(enc)
	if err != nil {
		return err
	}
	const format = `PsyVersion: %s
Song Name: %s
Artist: %s
Comments: %s
`
	version := strings.TrimRight(f.PsyVersion, "\x00")
	if _, err := fmt.Fprintf(w, format, version, title, artist, comments); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
