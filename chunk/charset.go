package chunk

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultCharset is the code page of text fields written by the tracker.
var DefaultCharset encoding.Encoding = charmap.Windows1252

// Charset returns the character encoding with the given WHATWG name or label,
// e.g. "windows-1252", "shift_jis" or "utf-8". The empty name returns
// DefaultCharset.
func Charset(name string) (encoding.Encoding, error) {
	if name == "" {
		return DefaultCharset, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "chunk.Charset: unknown character encoding %q", name)
	}
	return enc, nil
}
