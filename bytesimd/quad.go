package bytesimd

// Quad holds four channels in the 16-bit lanes of a uint64, in 0213
// order: blue at bit 0, red at bit 16, green at bit 32, alpha at bit
// 48. One Quad covers a whole pixel, so a single word operation
// replaces the two Pair operations of a Split.
type Quad uint64

// SplatQuad broadcasts the channel value u into all four lanes.
func SplatQuad(u uint32) Quad {
	return splat[Quad](u)
}

// Alpha returns the alpha channel (the top lane).
func (a Quad) Alpha() uint32 {
	return uint32(a >> 48)
}

// Add returns a + b per lane, without saturation.
func (a Quad) Add(b Quad) Quad {
	return lanesAdd(a, b)
}

// AddSat returns min(a+b, 255) per lane.
func (a Quad) AddSat(b Quad) Quad {
	return lanesAddSat(a, b)
}

// Sub returns a - b per lane, without saturation.
func (a Quad) Sub(b Quad) Quad {
	return lanesSub(a, b)
}

// SubSat returns max(a-b, 0) per lane.
func (a Quad) SubSat(b Quad) Quad {
	return lanesSubSat(a, b)
}

// AddSub returns a + b - c per lane, without saturation.
func (a Quad) AddSub(b, c Quad) Quad {
	return lanesAddSub(a, b, c)
}

// Mul multiplies all lanes by the scalar u without dividing.
func (a Quad) Mul(u uint32) Quad {
	return lanesMul(a, u)
}

// MulDiv255 returns (a * u) / 255 per lane, rounded.
func (a Quad) MulDiv255(u uint32) Quad {
	return lanesMulDiv255(a, u)
}

// MulDiv256 returns (a * u) / 256 per lane, truncated.
func (a Quad) MulDiv256(u uint32) Quad {
	return lanesMulDiv256(a, u)
}

// MulDiv255AddSat returns min((a*u)/255 + c, 255) per lane.
func (a Quad) MulDiv255AddSat(u uint32, c Quad) Quad {
	return lanesMulDiv255AddSat(a, u, c)
}

// Interp255 returns (a*b + c*d) / 255 per lane, rounded.
// Precondition: b+d <= 255.
func (a Quad) Interp255(b uint32, c Quad, d uint32) Quad {
	return lanesInterp255(a, b, c, d)
}

// Interp256 returns (a*b + c*d) / 256 per lane, truncated.
// Precondition: b+d <= 256.
func (a Quad) Interp256(b uint32, c Quad, d uint32) Quad {
	return lanesInterp256(a, b, c, d)
}

// Min returns the smaller value per lane.
func (a Quad) Min(b Quad) Quad {
	return lanesMin(a, b)
}

// Max returns the larger value per lane.
func (a Quad) Max(b Quad) Quad {
	return lanesMax(a, b)
}

// ShiftLeft shifts all lanes left by u. The caller guarantees the
// shifted values still fit their lanes.
func (a Quad) ShiftLeft(u uint) Quad {
	return a << u
}

// ShiftRight shifts all lanes right by u.
func (a Quad) ShiftRight(u uint) Quad {
	return a >> u
}

// Negate returns 255 - a in every lane.
func (a Quad) Negate() Quad {
	return lanesNegate(a)
}

// PremultiplyBy scales the three color lanes by u/255, rounded, and
// forces the alpha lane to u.
func (a Quad) PremultiplyBy(u uint32) Quad {
	t := (a & 0x0000FFFFFFFFFFFF) * Quad(u)
	t = ((t + ((t >> 8) & 0x000000FF00FF00FF) + 0x0000008000800080) >> 8) & 0x000000FF00FF00FF
	return t | Quad(u)<<48
}

// Premultiply scales the color lanes by the pixel's own alpha.
func (a Quad) Premultiply() Quad {
	return a.PremultiplyBy(a.Alpha())
}
