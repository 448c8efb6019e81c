package bytesimd

// Split is a full pixel unpacked into two pairs under the 0213
// grouping: Even holds channels 0 and 2 (blue lo, red hi), Odd holds
// channels 1 and 3 (green lo, alpha hi). Every Pair operation has a
// Split form that applies it to both halves, covering all four channels
// in two word operations.
type Split struct {
	Even, Odd Pair
}

// SplatSplit broadcasts the channel value u into all four lanes.
func SplatSplit(u uint32) Split {
	p := SplatPair(u)
	return Split{p, p}
}

// Alpha returns the alpha channel (the Odd pair's hi lane).
func (s Split) Alpha() uint32 {
	return s.Odd.Hi()
}

// Add returns s + b per lane, without saturation.
func (s Split) Add(b Split) Split {
	return Split{s.Even.Add(b.Even), s.Odd.Add(b.Odd)}
}

// AddSat returns min(s+b, 255) per lane.
func (s Split) AddSat(b Split) Split {
	return Split{s.Even.AddSat(b.Even), s.Odd.AddSat(b.Odd)}
}

// Sub returns s - b per lane, without saturation.
func (s Split) Sub(b Split) Split {
	return Split{s.Even.Sub(b.Even), s.Odd.Sub(b.Odd)}
}

// SubSat returns max(s-b, 0) per lane.
func (s Split) SubSat(b Split) Split {
	return Split{s.Even.SubSat(b.Even), s.Odd.SubSat(b.Odd)}
}

// AddSub returns s + b - c per lane, without saturation.
func (s Split) AddSub(b, c Split) Split {
	return Split{s.Even.AddSub(b.Even, c.Even), s.Odd.AddSub(b.Odd, c.Odd)}
}

// AddSubSat returns clamp(s + b - c, 0, 255) per lane.
func (s Split) AddSubSat(b, c Split) Split {
	return Split{s.Even.AddSubSat(b.Even, c.Even), s.Odd.AddSubSat(b.Odd, c.Odd)}
}

// Mul multiplies all lanes by the scalar u without dividing.
func (s Split) Mul(u uint32) Split {
	return Split{s.Even.Mul(u), s.Odd.Mul(u)}
}

// MulDiv255 returns (s * u) / 255 per lane, rounded.
func (s Split) MulDiv255(u uint32) Split {
	return Split{s.Even.MulDiv255(u), s.Odd.MulDiv255(u)}
}

// MulDiv256 returns (s * u) / 256 per lane, truncated.
func (s Split) MulDiv256(u uint32) Split {
	return Split{s.Even.MulDiv256(u), s.Odd.MulDiv256(u)}
}

// MulPacked255 multiplies lane-wise by b and divides by 255, rounded.
func (s Split) MulPacked255(b Split) Split {
	return Split{s.Even.MulPacked255(b.Even), s.Odd.MulPacked255(b.Odd)}
}

// MulDiv255AddSat returns min((s*u)/255 + c, 255) per lane.
func (s Split) MulDiv255AddSat(u uint32, c Split) Split {
	return Split{s.Even.MulDiv255AddSat(u, c.Even), s.Odd.MulDiv255AddSat(u, c.Odd)}
}

// Interp255 returns (s*b + c*d) / 255 per lane, rounded.
// Precondition: b+d <= 255.
func (s Split) Interp255(b uint32, c Split, d uint32) Split {
	return Split{s.Even.Interp255(b, c.Even, d), s.Odd.Interp255(b, c.Odd, d)}
}

// Interp256 returns (s*b + c*d) / 256 per lane, truncated.
// Precondition: b+d <= 256.
func (s Split) Interp256(b uint32, c Split, d uint32) Split {
	return Split{s.Even.Interp256(b, c.Even, d), s.Odd.Interp256(b, c.Odd, d)}
}

// InterpPack255 computes (s*b + c*d) / 255 per lane, rounded, and
// reassembles the result directly into tight pixel order. The odd half
// skips its final shift: after the rounding add, each lane's result
// already sits in bits 8..15, which is where the odd channels live in
// the packed pixel. Precondition: b+d <= 255.
func (s Split) InterpPack255(b uint32, c Split, d uint32) Pixel {
	a0 := uint32(s.Even)*b + uint32(c.Even)*d
	a1 := uint32(s.Odd)*b + uint32(c.Odd)*d

	a0 = ((a0 + ((a0 >> 8) & 0x00FF00FF) + 0x00800080) >> 8) & 0x00FF00FF
	a1 = (a1 + ((a1 >> 8) & 0x00FF00FF) + 0x00800080) & 0xFF00FF00

	return Pixel(a0 | a1)
}

// InterpPack256 is InterpPack255 with denominator 256 and no rounding
// term. Precondition: b+d <= 256.
func (s Split) InterpPack256(b uint32, c Split, d uint32) Pixel {
	a0 := uint32(s.Even)*b + uint32(c.Even)*d
	a1 := uint32(s.Odd)*b + uint32(c.Odd)*d

	a0 = (a0 >> 8) & 0x00FF00FF
	a1 &= 0xFF00FF00

	return Pixel(a0 | a1)
}

// Min returns the smaller value per lane.
func (s Split) Min(b Split) Split {
	return Split{s.Even.Min(b.Even), s.Odd.Min(b.Odd)}
}

// Max returns the larger value per lane.
func (s Split) Max(b Split) Split {
	return Split{s.Even.Max(b.Even), s.Odd.Max(b.Odd)}
}

// Negate returns 255 - s in every lane.
func (s Split) Negate() Split {
	return Split{s.Even.Negate(), s.Odd.Negate()}
}

// Premultiply scales the color channels by the pixel's own alpha and
// divides by 255, rounded. The alpha channel itself is unchanged.
func (s Split) Premultiply() Split {
	return s.PremultiplyBy(s.Alpha())
}

// PremultiplyBy scales the color channels by u/255, rounded, and forces
// the alpha lane to u. The green lane is alone in its word, so it takes
// the scalar rounding form; for a lone low lane the dual-lane form
// reduces to the same value, both paths agree for every input.
func (s Split) PremultiplyBy(u uint32) Split {
	d0 := uint32(s.Even) * u
	d1 := (uint32(s.Odd) & 0xFF) * u

	d0 = ((d0 + ((d0 >> 8) & 0x00FF00FF) + 0x00800080) >> 8) & 0x00FF00FF
	d1 = (d1 + (d1 >> 8) + 0x80) >> 8
	d1 |= u << 16

	return Split{Pair(d0), Pair(d1)}
}
