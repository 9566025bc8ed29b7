package chunk

// Capacities of the INFO text fields.
const (
	TitleCap    = 128
	ArtistCap   = 64
	CommentsCap = 65536
)

// Info holds the basic song information of an INFO chunk.
type Info struct {
	// Song title.
	Title FixedString
	// Song author.
	Artist FixedString
	// Free form comments.
	Comments FixedString
}

// NewInfo parses and returns the body of an INFO chunk.
//
// INFO format (pseudo code):
//
//    type INFO struct {
//       title    cstring // at most 128 bytes + NUL
//       artist   cstring // at most 64 bytes + NUL
//       comments cstring // at most 65536 bytes + NUL
//    }
func NewInfo(r Reader) (info *Info, err error) {
	info = new(Info)
	info.Title, err = ReadFixedString(r, TitleCap)
	if err != nil {
		return nil, err
	}
	info.Artist, err = ReadFixedString(r, ArtistCap)
	if err != nil {
		return nil, err
	}
	info.Comments, err = ReadFixedString(r, CommentsCap)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// decodeInfo is the DecodeFunc of INFO chunks. The chunk version and size are
// not used.
func decodeInfo(r Reader, h *BlockHeader) (interface{}, error) {
	return NewInfo(r)
}
