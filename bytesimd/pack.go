package bytesimd

// Unpack splits a tight pixel into two widened pairs under the 0213
// grouping. Lossless; Pack inverts it exactly.
func (p Pixel) Unpack() Split {
	return Split{
		Even: Pair(uint32(p) & 0x00FF00FF),
		Odd:  Pair((uint32(p) >> 8) & 0x00FF00FF),
	}
}

// UnpackEven extracts channels 0 and 2 only.
func (p Pixel) UnpackEven() Pair {
	return Pair(uint32(p) & 0x00FF00FF)
}

// UnpackOdd extracts channels 1 and 3 only.
func (p Pixel) UnpackOdd() Pair {
	return Pair((uint32(p) >> 8) & 0x00FF00FF)
}

// Pack reassembles the tight pixel from its two halves. Headroom bits
// must be zero; Pack does not scrub them.
func (s Split) Pack() Pixel {
	return Pixel(uint32(s.Even) | uint32(s.Odd)<<8)
}

// UnpackQuad widens all four channels into one 64-bit word. The shift
// by 24 interleaves the even and odd bytes so a single mask leaves each
// channel in its own lane, in 0213 order.
func (p Pixel) UnpackQuad() Quad {
	x := uint64(p)
	return Quad((x | x<<24) & 0x00FF00FF00FF00FF)
}

// Pack reassembles the tight pixel from a widened quad. Headroom bits
// must be zero.
func (a Quad) Pack() Pixel {
	x := uint64(a)
	return Pixel(uint32(x | x>>24))
}

// Lo returns the low lane's channel value.
func (a Pair) Lo() uint32 {
	return uint32(a) & 0xFF
}

// Hi returns the high lane's channel value.
func (a Pair) Hi() uint32 {
	return uint32(a) >> 16
}

// WithLo overwrites the low lane with u.
func (a Pair) WithLo(u uint32) Pair {
	return Pair(uint32(a)&0x00FF0000 | u)
}

// WithHi overwrites the high lane with u.
func (a Pair) WithHi(u uint32) Pair {
	return Pair(uint32(a)&0x000000FF | u<<16)
}

// ZeroLo forces the low lane to 0x00.
func (a Pair) ZeroLo() Pair {
	return a & 0x00FF0000
}

// ZeroHi forces the high lane to 0x00.
func (a Pair) ZeroHi() Pair {
	return a & 0x000000FF
}

// FillLo forces the low lane to 0xFF.
func (a Pair) FillLo() Pair {
	return a | 0x000000FF
}

// FillHi forces the high lane to 0xFF.
func (a Pair) FillHi() Pair {
	return a | 0x00FF0000
}

// ExpandLo broadcasts the low lane into both lanes.
func (a Pair) ExpandLo() Pair {
	return Pair((uint32(a) & 0xFF) * 0x00010001)
}

// ExpandHi broadcasts the high lane into both lanes.
func (a Pair) ExpandHi() Pair {
	u := uint32(a) >> 16
	return Pair(u * 0x00010001)
}
