package bytesimd

// Pair holds two channels in the 16-bit lanes of a uint32, at bit
// offsets 0 (lo) and 16 (hi). Outside of a multiply the upper 8 bits of
// each lane are zero.
type Pair uint32

// SplatPair broadcasts the channel value u into both lanes.
func SplatPair(u uint32) Pair {
	return splat[Pair](u)
}

func (a Pair) saturate() Pair {
	return lanesSaturate(a)
}

// Add returns a + b per lane, without saturation.
func (a Pair) Add(b Pair) Pair {
	return lanesAdd(a, b)
}

// AddSat returns min(a+b, 255) per lane.
func (a Pair) AddSat(b Pair) Pair {
	return lanesAddSat(a, b)
}

// Sub returns a - b per lane, without saturation.
func (a Pair) Sub(b Pair) Pair {
	return lanesSub(a, b)
}

// SubSat returns max(a-b, 0) per lane.
func (a Pair) SubSat(b Pair) Pair {
	return lanesSubSat(a, b)
}

// AddSub returns a + b - c per lane, without saturation.
func (a Pair) AddSub(b, c Pair) Pair {
	return lanesAddSub(a, b, c)
}

// AddSubSat returns clamp(a + b - c, 0, 255) per lane. The sum is
// carried at 9 bits per lane, the subtraction underflow is cleared by
// masking with the complement's sign bits, then the high side saturates.
func (a Pair) AddSubSat(b, c Pair) Pair {
	t := uint32(a) + uint32(b)

	lo := t & 0x000001FF
	hi := (t & 0x01FF0000) >> 16

	lo -= uint32(c) & 0x0000FFFF
	hi -= (uint32(c) & 0xFFFF0000) >> 16

	lo &= (^lo & 0xFFFF0000) >> 16
	hi &= (^hi & 0xFFFF0000) >> 16

	return Pair(lo | hi<<16).saturate()
}

// Mul multiplies both lanes by the scalar u without dividing. The
// caller divides separately; lane products must fit 16 bits.
func (a Pair) Mul(u uint32) Pair {
	return lanesMul(a, u)
}

// MulDiv255 returns (a * u) / 255 per lane, rounded.
func (a Pair) MulDiv255(u uint32) Pair {
	return lanesMulDiv255(a, u)
}

// MulDiv256 returns (a * u) / 256 per lane, truncated.
func (a Pair) MulDiv256(u uint32) Pair {
	return lanesMulDiv256(a, u)
}

// MulPacked255 multiplies each lane of a by the corresponding lane of b
// and divides by 255, rounded. Used when each channel carries its own
// weight, such as per-channel masks.
func (a Pair) MulPacked255(b Pair) Pair {
	t := (uint32(a)&0x000000FF)*(uint32(b)&0x000000FF) |
		(uint32(a)&0x00FF0000)*(uint32(b)>>16)
	return Pair(((t + ((t >> 8) & 0x00FF00FF) + 0x00800080) >> 8) & 0x00FF00FF)
}

// MulDiv255AddSat returns min((a*u)/255 + c, 255) per lane, the fused
// scale-then-composite step.
func (a Pair) MulDiv255AddSat(u uint32, c Pair) Pair {
	return lanesMulDiv255AddSat(a, u, c)
}

// MulPacked255Add returns (a*b)/255 + c per lane, without saturation.
func (a Pair) MulPacked255Add(b, c Pair) Pair {
	return a.MulPacked255(b).Add(c)
}

// MulPacked255AddSat returns min((a*b)/255 + c, 255) per lane.
func (a Pair) MulPacked255AddSat(b, c Pair) Pair {
	return a.MulPacked255(b).AddSat(c)
}

// Interp255 returns (a*b + c*d) / 255 per lane, rounded.
// Precondition: b+d <= 255.
func (a Pair) Interp255(b uint32, c Pair, d uint32) Pair {
	return lanesInterp255(a, b, c, d)
}

// Interp256 returns (a*b + c*d) / 256 per lane, truncated.
// Precondition: b+d <= 256.
func (a Pair) Interp256(b uint32, c Pair, d uint32) Pair {
	return lanesInterp256(a, b, c, d)
}

// Min returns the smaller value per lane.
func (a Pair) Min(b Pair) Pair {
	return lanesMin(a, b)
}

// Max returns the larger value per lane.
func (a Pair) Max(b Pair) Pair {
	return lanesMax(a, b)
}

// ShiftLeft shifts both lanes left by u. The caller guarantees the
// shifted values still fit their lanes.
func (a Pair) ShiftLeft(u uint) Pair {
	return a << u
}

// ShiftRight shifts both lanes right by u. Bits shifted out of the hi
// lane land in the lo lane's headroom; the caller masks if needed.
func (a Pair) ShiftRight(u uint) Pair {
	return a >> u
}

// DoubleLo doubles the lo lane only.
func (a Pair) DoubleLo() Pair {
	return a + (a & 0x000000FF)
}

// DoubleHi doubles the hi lane only.
func (a Pair) DoubleHi() Pair {
	return a + (a & 0x00FF0000)
}

// Negate returns 255 - a in both lanes.
func (a Pair) Negate() Pair {
	return lanesNegate(a)
}

// NegateLo returns 255 - a in the lo lane, leaving hi untouched.
func (a Pair) NegateLo() Pair {
	return a ^ 0x000000FF
}

// NegateHi returns 255 - a in the hi lane, leaving lo untouched.
func (a Pair) NegateHi() Pair {
	return a ^ 0x00FF0000
}
