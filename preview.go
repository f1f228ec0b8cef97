package snesprite

import (
	"errors"
	"image"
	"io"
	"io/ioutil"
	"os"

	"github.com/bodgit/snesprite/palette"
	"github.com/bodgit/snesprite/sprite"
)

var (
	errBadIndex    = errors.New("snesprite: sprite uses index outside palette")
	errBadPosition = errors.New("snesprite: invalid sprite position")
)

// ReadPalette reads a palette file
func ReadPalette(file string) (*palette.Palette, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}

	p := palette.New()
	if err := p.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return p, nil
}

// Preview decodes the nth sprite in spriteFile using the palette in
// palFile. Index 0 is rendered as transparent.
func Preview(spriteFile, palFile string, n int) (*image.Paletted, error) {
	if n < 0 {
		return nil, errBadPosition
	}

	p, err := ReadPalette(palFile)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(spriteFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := f.Seek(int64(n)*sprite.Size, io.SeekStart); err != nil {
		return nil, err
	}

	indices, err := sprite.Decode(f)
	if err != nil {
		if err == io.EOF {
			return nil, errBadPosition
		}
		return nil, err
	}

	for _, v := range indices {
		if int(v) > p.Len() {
			return nil, errBadIndex
		}
	}

	m := image.NewPaletted(image.Rect(0, 0, sprite.Width, sprite.Height), p.ColorPalette())
	copy(m.Pix, indices)

	return m, nil
}
