package palette

import "image/color"

const (
	mask5  = 0x1f
	mask15 = 0x7fff
)

// Color is a 15-bit color packed as 0BBBBBGGGGGRRRRR
type Color uint16

// Quantize drops the lower three bits of each channel and packs the result
// as a Color
func Quantize(r, g, b uint8) Color {
	return Color(r&0xf8)>>3 | Color(g&0xf8)<<2 | Color(b&0xf8)<<7
}

// RGB returns the 8-bit channels of c with the lower three bits clear
func (c Color) RGB() (r, g, b uint8) {
	r = uint8(c&mask5) << 3
	g = uint8(c>>5&mask5) << 3
	b = uint8(c>>10&mask5) << 3
	return
}

// RGBA implements the color.Color interface. Each 5-bit channel is scaled
// to the full 16-bit range.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = expand(uint32(c & mask5))
	g = expand(uint32(c >> 5 & mask5))
	b = expand(uint32(c >> 10 & mask5))
	a = 0xffff
	return
}

func expand(v uint32) uint32 {
	v = v<<3 | v>>2
	return v | v<<8
}

// Model converts any color.Color to a Color using the high byte of each
// channel
var Model = color.ModelFunc(
	func(c color.Color) color.Color {
		if _, ok := c.(Color); ok {
			return c
		}

		r, g, b, _ := c.RGBA()
		return Quantize(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	})
