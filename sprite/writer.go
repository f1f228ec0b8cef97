package sprite

import (
	"errors"
	"io"

	"github.com/bodgit/snesprite/tile"
)

var (
	// ErrShape is returned when the number of indices doesn't match the
	// stride
	ErrShape = errors.New("sprite: index buffer does not match stride")
	// ErrSize is returned for anything other than a 16 by 16 sprite
	ErrSize = errors.New("sprite: only 16x16 sprites are supported")
	// ErrDepth is returned when an index doesn't fit in four bits
	ErrDepth = errors.New("sprite: index does not fit in 4bpp")
)

func validate(indices []byte, stride int) error {
	if stride < 0 || len(indices) != stride*stride {
		return ErrShape
	}
	if stride != Width {
		return ErrSize
	}
	for _, v := range indices {
		if v > maxIndex {
			return ErrDepth
		}
	}
	return nil
}

// Encode writes the sprite made from indices, stride pixels wide and high,
// to w. Each tile is written with a single call to w, if any write fails
// the stream is left truncated and should be discarded.
func Encode(w io.Writer, indices []byte, stride int) error {
	if err := validate(indices, stride); err != nil {
		return err
	}

	for n := 0; n < Tiles; n++ {
		x, y := tile.Offset(n)
		b := tile.Encode(indices, stride, x, y)
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}

	return nil
}
