package tile

// Unpack is the inverse of Pack, returning one bit per pixel
func Unpack(b byte) (bits [Width]byte) {
	for i := range bits {
		bits[i] = b >> uint(Width-1-i) & 0x01
	}
	return
}

// Decode returns the palette index of each pixel of an encoded tile, in
// row-major order
func Decode(b [Size]byte) (indices [Pixels]byte) {
	for row := 0; row < Height; row++ {
		planes := [Bitplanes]byte{
			b[row<<1+0],
			b[row<<1+1],
			b[Size>>1+row<<1+0],
			b[Size>>1+row<<1+1],
		}
		for bp, p := range planes {
			for col, bit := range Unpack(p) {
				indices[row*Width+col] |= bit << uint(bp)
			}
		}
	}
	return
}
