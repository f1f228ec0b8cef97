package sprite

import (
	"errors"
	"io"

	"github.com/bodgit/snesprite/tile"
)

// ErrShortRead is returned when a stream ends part way through a sprite
var ErrShortRead = errors.New("sprite: not enough sprite data")

// Decode reads one sprite from r and returns its palette indices in
// row-major order. io.EOF is returned if r is already exhausted.
func Decode(r io.Reader) ([]byte, error) {
	var b [Size]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, ErrShortRead
		}
		return nil, err
	}

	indices := make([]byte, Pixels)
	for n := 0; n < Tiles; n++ {
		var t [tile.Size]byte
		copy(t[:], b[n*tile.Size:])

		x, y := tile.Offset(n)
		for i, v := range tile.Decode(t) {
			indices[(y+i/tile.Width)*Width+x+i%tile.Width] = v
		}
	}

	return indices, nil
}
