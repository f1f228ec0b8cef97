/*
Package sprite implements the SNES 16 by 16 sprite encoder and decoder.

A sprite is made up of four 8 by 8 tiles arranged as a 2 by 2 block, written
in the order top-left, top-right, bottom-left, bottom-right. Each tile is 32
bytes of 4bpp planar data so a sprite is always 128 bytes. Sprites can be
appended one after another in the same stream.
*/
package sprite

import "github.com/bodgit/snesprite/tile"

const (
	// Width is the width of a sprite in pixels
	Width = tile.Width * 2
	// Height is the height of a sprite in pixels
	Height = Width
	// Pixels is the number of pixels in a sprite
	Pixels = Width * Height
	// Tiles is the number of tiles in a sprite
	Tiles = 4
	// Size is the number of bytes of an encoded sprite
	Size = tile.Size * Tiles

	maxIndex = 1<<tile.Bitplanes - 1
)
