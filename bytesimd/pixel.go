package bytesimd

// Pixel is a tight ARGB32 pixel: blue in byte 0, green in byte 1, red
// in byte 2, alpha in byte 3. This is the at-rest framebuffer layout;
// Pair and Quad exist only between an unpack and the matching pack.
type Pixel uint32

// hostBits is the width of the host's uint type.
const hostBits = 32 << (^uint(0) >> 63)

// useQuad selects the single-quad implementations of the tight-pixel
// operators on 64-bit hosts. Both implementations always compile and
// produce identical results; the constant only picks the one whose word
// width matches the machine.
const useQuad = hostBits == 64

// NewPixel packs four channel values into a tight pixel.
func NewPixel(a, r, g, b uint32) Pixel {
	return Pixel(a<<24 | r<<16 | g<<8 | b)
}

// Alpha returns the alpha channel.
func (p Pixel) Alpha() uint32 { return uint32(p) >> 24 }

// Red returns the red channel.
func (p Pixel) Red() uint32 { return uint32(p) >> 16 & 0xFF }

// Green returns the green channel.
func (p Pixel) Green() uint32 { return uint32(p) >> 8 & 0xFF }

// Blue returns the blue channel.
func (p Pixel) Blue() uint32 { return uint32(p) & 0xFF }

// AddSat returns min(x+y, 255) per channel.
func (x Pixel) AddSat(y Pixel) Pixel {
	if useQuad {
		return addSatQuad(x, y)
	}
	return addSatPairs(x, y)
}

func addSatQuad(x, y Pixel) Pixel {
	return x.UnpackQuad().AddSat(y.UnpackQuad()).Pack()
}

func addSatPairs(x, y Pixel) Pixel {
	return x.Unpack().AddSat(y.Unpack()).Pack()
}

// SubSat returns max(x-y, 0) per channel.
func (x Pixel) SubSat(y Pixel) Pixel {
	if useQuad {
		return subSatQuad(x, y)
	}
	return subSatPairs(x, y)
}

func subSatQuad(x, y Pixel) Pixel {
	return x.UnpackQuad().SubSat(y.UnpackQuad()).Pack()
}

func subSatPairs(x, y Pixel) Pixel {
	return x.Unpack().SubSat(y.Unpack()).Pack()
}

// MulDiv255 returns (x * a) / 255 per channel, rounded, including the
// alpha channel.
func (x Pixel) MulDiv255(a uint32) Pixel {
	if useQuad {
		return mulDiv255Quad(x, a)
	}
	return mulDiv255Pairs(x, a)
}

func mulDiv255Quad(x Pixel, a uint32) Pixel {
	return x.UnpackQuad().MulDiv255(a).Pack()
}

func mulDiv255Pairs(x Pixel, a uint32) Pixel {
	return x.Unpack().MulDiv255(a).Pack()
}

// MulDiv255ZeroAlpha returns (x * a) / 255 on the color channels and
// forces the result's alpha to 0x00, for destinations whose alpha byte
// carries no meaning.
func (x Pixel) MulDiv255ZeroAlpha(a uint32) Pixel {
	if useQuad {
		q := x.UnpackQuad() & 0x0000FFFFFFFFFFFF
		return q.MulDiv255(a).Pack()
	}
	s := x.Unpack()
	s.Odd = s.Odd.ZeroHi()
	return s.MulDiv255(a).Pack()
}

// MulDiv255FillAlpha returns (x * a) / 255 on the color channels and
// forces the result's alpha to 0xFF.
func (x Pixel) MulDiv255FillAlpha(a uint32) Pixel {
	if useQuad {
		q := x.UnpackQuad() & 0x0000FFFFFFFFFFFF
		return (q.MulDiv255(a) | 0xFF<<48).Pack()
	}
	s := x.Unpack()
	s.Odd = s.Odd.ZeroHi()
	r := s.MulDiv255(a)
	r.Odd = r.Odd.FillHi()
	return r.Pack()
}

// MulDiv255AddSat returns min((x*a)/255 + y, 255) per channel, the
// single-call form of scale-then-composite.
func (x Pixel) MulDiv255AddSat(a uint32, y Pixel) Pixel {
	if useQuad {
		return mulDiv255AddSatQuad(x, a, y)
	}
	return mulDiv255AddSatPairs(x, a, y)
}

func mulDiv255AddSatQuad(x Pixel, a uint32, y Pixel) Pixel {
	return x.UnpackQuad().MulDiv255AddSat(a, y.UnpackQuad()).Pack()
}

func mulDiv255AddSatPairs(x Pixel, a uint32, y Pixel) Pixel {
	return x.Unpack().MulDiv255AddSat(a, y.Unpack()).Pack()
}

// MulPixel255 returns (x * y) / 255 per channel, rounded, with an
// independent weight per channel (the modulate operator).
func (x Pixel) MulPixel255(y Pixel) Pixel {
	return x.Unpack().MulPacked255(y.Unpack()).Pack()
}

// Interp255 returns (x*a + y*b) / 255 per channel, rounded: the linear
// interpolation of two pixels by two independent weights.
// Precondition: a+b <= 255.
func (x Pixel) Interp255(a uint32, y Pixel, b uint32) Pixel {
	if useQuad {
		return interp255Quad(x, a, y, b)
	}
	return interp255Pairs(x, a, y, b)
}

func interp255Quad(x Pixel, a uint32, y Pixel, b uint32) Pixel {
	return x.UnpackQuad().Interp255(a, y.UnpackQuad(), b).Pack()
}

func interp255Pairs(x Pixel, a uint32, y Pixel, b uint32) Pixel {
	return x.Unpack().InterpPack255(a, y.Unpack(), b)
}

// Interp256 returns (x*a + y*b) / 256 per channel, truncated.
// Precondition: a+b <= 256.
func (x Pixel) Interp256(a uint32, y Pixel, b uint32) Pixel {
	if useQuad {
		return interp256Quad(x, a, y, b)
	}
	return interp256Pairs(x, a, y, b)
}

func interp256Quad(x Pixel, a uint32, y Pixel, b uint32) Pixel {
	return x.UnpackQuad().Interp256(a, y.UnpackQuad(), b).Pack()
}

func interp256Pairs(x Pixel, a uint32, y Pixel, b uint32) Pixel {
	return x.Unpack().InterpPack256(a, y.Unpack(), b)
}

// Premultiply scales the color channels by the pixel's own alpha,
// rounded, leaving alpha unchanged.
func (x Pixel) Premultiply() Pixel {
	if useQuad {
		return x.UnpackQuad().Premultiply().Pack()
	}
	return x.Unpack().Premultiply().Pack()
}
