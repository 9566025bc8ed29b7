// Package psytest builds PsyFile images for tests.
package psytest

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/icza/bitio"
)

// An Image describes the bytes of a PsyFile holding a single chunk.
type Image struct {
	// Format version; written as exactly 8 bytes, zero padded or truncated.
	Version      string
	ChunkVersion uint32
	Size         uint32
	ChunkCount   int32
	// Chunk tag; written as exactly 4 bytes.
	Tag          string
	BlockVersion uint32
	BlockSize    uint32
	// Raw chunk body, e.g. the NUL terminated INFO text fields.
	Body []byte
}

// Example returns the image of a small song: "Test Song" by "Me", without
// comments.
func Example() *Image {
	return &Image{
		Version:      "PSY16ALP",
		ChunkVersion: 3,
		Size:         1000,
		ChunkCount:   1,
		Tag:          "INFO",
		BlockVersion: 1,
		BlockSize:    500,
		Body:         Fields("Test Song", "Me", ""),
	}
}

// Fields returns the given strings, each followed by a NUL byte.
func Fields(ss ...string) []byte {
	var buf []byte
	for _, s := range ss {
		buf = append(buf, s...)
		buf = append(buf, 0)
	}
	return buf
}

// Bytes returns the encoded image.
func (img *Image) Bytes() []byte {
	buf := new(bytes.Buffer)
	bw := bitio.NewWriter(buf)
	write := func(p []byte) {
		if _, err := bw.Write(p); err != nil {
			panic(err)
		}
	}
	u32 := func(x uint32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], x)
		write(b[:])
	}
	write(fixed(img.Version, 8))
	u32(img.ChunkVersion)
	u32(img.Size)
	u32(uint32(img.ChunkCount))
	write(fixed(img.Tag, 4))
	u32(img.BlockVersion)
	u32(img.BlockSize)
	write(img.Body)
	if err := bw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// fixed returns s as exactly n bytes.
func fixed(s string, n int) []byte {
	buf := make([]byte, n)
	copy(buf, s)
	return buf
}

// WriteFile writes data to a file in a temporary directory of the test and
// returns its path.
func WriteFile(tb testing.TB, data []byte) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "song.psy")
	if err := os.WriteFile(path, data, 0644); err != nil {
		tb.Fatal(err)
	}
	return path
}
