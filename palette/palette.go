/*
Package palette implements the SNES color palette used by sprite data.

Colors are stored as 15-bit BGR555 values packed into 16 bits. A palette file
starts with a fixed transparency slot of 0xffff followed by each color as a
little-endian 16-bit value, in the order the colors were first seen. Pixel
indices into the palette are 1-based as index 0 is the transparency slot.
*/
package palette

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
)

const (
	// MaxColors is the largest number of colors a palette can hold as
	// 1-based indices must fit in a byte
	MaxColors = 255

	// Alpha is the value written to the transparency slot
	Alpha Color = 0xffff
)

var (
	// ErrTooManyColors is returned when a palette would need more than
	// MaxColors entries
	ErrTooManyColors = errors.New("palette: too many colors")
	// ErrEmpty is returned when a palette has no colors
	ErrEmpty = errors.New("palette: no colors")
	// ErrBadPalette is returned when decoding a malformed palette
	ErrBadPalette = errors.New("palette: invalid palette data")
)

// Palette is an insertion-ordered set of unique colors. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
type Palette struct {
	colors  []Color
	indices map[Color]int
}

// New returns an empty palette
func New() *Palette {
	return &Palette{
		indices: make(map[Color]int),
	}
}

// Len returns the number of colors in the palette, not counting the
// transparency slot
func (p *Palette) Len() int {
	return len(p.colors)
}

// Colors returns a copy of the colors in the order they were added
func (p *Palette) Colors() []Color {
	return append([]Color(nil), p.colors...)
}

// Index returns the 1-based index of c
func (p *Palette) Index(c Color) (int, bool) {
	i, ok := p.indices[c]
	return i, ok
}

// Add returns the 1-based index of c, appending it to the palette if it
// hasn't been seen before
func (p *Palette) Add(c Color) (int, error) {
	if i, ok := p.indices[c]; ok {
		return i, nil
	}
	if len(p.colors) >= MaxColors {
		return 0, ErrTooManyColors
	}
	p.colors = append(p.colors, c)
	p.indices[c] = len(p.colors)
	return len(p.colors), nil
}

// ColorPalette returns the palette as a color.Palette with index 0 set to
// transparent so it lines up with the pixel indices
func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, 0, len(p.colors)+1)
	cp = append(cp, color.Transparent)
	for _, c := range p.colors {
		cp = append(cp, c)
	}
	return cp
}

// Build scans m in row-major order and returns the palette of quantized
// colors along with one 1-based palette index per pixel, offset by
// y*width + x
func Build(m image.Image) (*Palette, []byte, error) {
	b := m.Bounds()
	p := New()
	indices := make([]byte, 0, b.Dx()*b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i, err := p.Add(Model.Convert(m.At(x, y)).(Color))
			if err != nil {
				return nil, nil, err
			}
			indices = append(indices, byte(i))
		}
	}

	return p, indices, nil
}

// MarshalBinary encodes the palette into binary form and returns the result
func (p *Palette) MarshalBinary() ([]byte, error) {
	if len(p.colors) == 0 {
		return nil, ErrEmpty
	}

	b := new(bytes.Buffer)

	if err := binary.Write(b, binary.LittleEndian, Alpha); err != nil {
		return nil, err
	}
	if err := binary.Write(b, binary.LittleEndian, p.colors); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// UnmarshalBinary decodes the palette from binary form
func (p *Palette) UnmarshalBinary(b []byte) error {
	if len(b) < 2 || len(b)%2 != 0 {
		return ErrBadPalette
	}
	if Color(binary.LittleEndian.Uint16(b)) != Alpha {
		return ErrBadPalette
	}

	n := New()
	for i := 2; i < len(b); i += 2 {
		c := Color(binary.LittleEndian.Uint16(b[i:]))
		if _, ok := n.indices[c]; ok || c&^mask15 != 0 {
			return ErrBadPalette
		}
		if _, err := n.Add(c); err != nil {
			return err
		}
	}

	*p = *n

	return nil
}
