package tile

// scratch holds one bit per pixel for each bitplane of a single tile, with
// each bitplane occupying one quadrant
type scratch [scratchSize]byte

func planeOffset(bp, row, col int) int {
	x, y := Offset(bp)
	return (y+row)*scratchStride + x + col
}

// setup extracts each bit of every index within the tile at (tx, ty) into
// the matching bitplane
func (s *scratch) setup(indices []byte, stride, tx, ty int) {
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			v := indices[(ty+row)*stride+tx+col]
			for bp := 0; bp < Bitplanes; bp++ {
				s[planeOffset(bp, row, col)] = v >> uint(bp) & 0x01
			}
		}
	}
}

// pack folds each row of each bitplane into a byte stored at the first
// column of that row
func (s *scratch) pack() {
	for bp := 0; bp < Bitplanes; bp++ {
		for row := 0; row < Height; row++ {
			i := planeOffset(bp, row, 0)
			s[i] = Pack(s[i : i+Width])
		}
	}
}

func (s *scratch) row(bp, row int) byte {
	return s[planeOffset(bp, row, 0)]
}

// emit returns the packed bitplanes as bitplanes 0 and 1 for each row,
// followed by bitplanes 2 and 3 for each row
func (s *scratch) emit() (b [Size]byte) {
	for row := 0; row < Height; row++ {
		b[row<<1+0] = s.row(0, row)
		b[row<<1+1] = s.row(1, row)
		b[Size>>1+row<<1+0] = s.row(2, row)
		b[Size>>1+row<<1+1] = s.row(3, row)
	}
	return
}

// Pack returns the bits in the low bit of each element of bits as a byte,
// the first element becoming the most significant bit
func Pack(bits []byte) byte {
	var b byte
	for _, bit := range bits {
		b = b<<1 ^ bit&0x01
	}
	return b
}

// Encode returns the 4bpp planar encoding of the 8 by 8 tile with its
// top-left corner at (x, y) within indices, which is stride pixels wide.
// Only the lower four bits of each index are used.
func Encode(indices []byte, stride, x, y int) [Size]byte {
	// Fresh scratch per tile so nothing carries over from a previous tile
	var s scratch
	s.setup(indices, stride, x, y)
	s.pack()
	return s.emit()
}
