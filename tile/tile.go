/*
Package tile implements the SNES 4bpp planar tile encoder and decoder.

A tile is 8 by 8 pixels where each pixel is a 4-bit palette index. Rather than
storing the index for each pixel together, each bit of the index is stored in
a separate bitplane with one byte per row, most significant bit being the
leftmost pixel. The 32 bytes of a tile are written as the eight rows of
bitplanes 0 and 1 interleaved, followed by the eight rows of bitplanes 2 and
3 interleaved.
*/
package tile

const (
	// Width is the width of a tile in pixels
	Width = 8
	// Height is the height of a tile in pixels
	Height = Width
	// Pixels is the number of pixels in a tile
	Pixels = Width * Height
	// Bitplanes is the number of bits per pixel
	Bitplanes = 4
	// Size is the number of bytes of an encoded tile
	Size = Height * Bitplanes

	// The bitplanes are arranged in the scratch buffer as a 2 by 2 grid
	scratchStride = Width * 2
	scratchSize   = scratchStride * Height * 2
)

// Offset returns the position of the given quadrant within a 2 by 2 grid of
// tiles. The same arrangement is used for the tiles of a sprite and for the
// bitplanes within the scratch buffer.
func Offset(n int) (x, y int) {
	return n & 0x01 * Width, n >> 1 & 0x01 * Height
}
