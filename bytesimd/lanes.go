package bytesimd

// word constrains the machine words that carry 16-bit lanes: a uint32
// holds two lanes, a uint64 holds four. Each packed operation is written
// once against this constraint; Pair and Quad wrap it.
type word interface {
	~uint32 | ~uint64
}

// repl replicates a 32-bit lane pattern across the full width of T.
// For uint32 the double shift drops off the end and the pattern is
// returned unchanged; for uint64 it lands in the upper half.
func repl[T word](p uint32) T {
	v := T(p)
	return v | v<<16<<16
}

func laneMask[T word]() T  { return repl[T](0x00FF00FF) }
func laneHalf[T word]() T  { return repl[T](0x00800080) }
func laneCarry[T word]() T { return repl[T](0x01000100) }

// splat broadcasts a channel value into every lane of T.
func splat[T word](u uint32) T {
	m := T(0x00010001)
	m |= m << 16 << 16
	return T(u) * m
}

// lanesSaturate clamps every lane of t to 255. Each lane may hold up to
// 9 significant bits on entry; the borrow of carry-(overflow bit) turns
// into an all-ones lane that the final mask trims to 0xFF.
func lanesSaturate[T word](t T) T {
	m := laneMask[T]()
	t |= laneCarry[T]() - ((t >> 8) & m)
	return t & m
}

func lanesAdd[T word](a, b T) T {
	return a + b
}

func lanesAddSat[T word](a, b T) T {
	return lanesSaturate(a + b)
}

func lanesSub[T word](a, b T) T {
	return a - b
}

// lanesSubSat computes max(a-b, 0) per lane by complementing, adding,
// saturating and complementing back, which reuses the single saturation
// formula instead of needing a second one for underflow.
func lanesSubSat[T word](a, b T) T {
	m := laneMask[T]()
	return lanesSaturate((a^m)+b) ^ m
}

func lanesAddSub[T word](a, b, c T) T {
	return a + b - c
}

// lanesMul multiplies every lane by the broadcast scalar u. A whole-word
// multiply is per-lane safe here: each product of two 8-bit values stays
// inside its 16-bit lane.
func lanesMul[T word](a T, u uint32) T {
	return a * T(u)
}

// lanesMulDiv255 returns (a * u) / 255 per lane, rounded to nearest.
func lanesMulDiv255[T word](a T, u uint32) T {
	m := laneMask[T]()
	t := a * T(u)
	return ((t + ((t >> 8) & m) + laneHalf[T]()) >> 8) & m
}

// lanesMulDiv256 returns (a * u) / 256 per lane, truncated.
func lanesMulDiv256[T word](a T, u uint32) T {
	return ((a * T(u)) >> 8) & laneMask[T]()
}

// lanesMulDiv255AddSat fuses scale-then-composite: min((a*u)/255 + c, 255)
// per lane, without materializing the intermediate in the caller.
func lanesMulDiv255AddSat[T word](a T, u uint32, c T) T {
	return lanesAddSat(lanesMulDiv255(a, u), c)
}

// lanesInterp255 returns (a*b + c*d) / 255 per lane, rounded.
// Precondition: b+d <= 255, otherwise a lane sum can spill into its
// neighbor.
func lanesInterp255[T word](a T, b uint32, c T, d uint32) T {
	m := laneMask[T]()
	t := a*T(b) + c*T(d)
	return ((t + ((t >> 8) & m) + laneHalf[T]()) >> 8) & m
}

// lanesInterp256 returns (a*b + c*d) / 256 per lane, truncated.
// Precondition: b+d <= 256.
func lanesInterp256[T word](a T, b uint32, c T, d uint32) T {
	return ((a*T(b) + c*T(d)) >> 8) & laneMask[T]()
}

// lanesMin and lanesMax stay branch-free by riding on the saturating
// subtract: subsat(a,b) is a-b where a>b and 0 elsewhere.
func lanesMin[T word](a, b T) T {
	return a - lanesSubSat(a, b)
}

func lanesMax[T word](a, b T) T {
	return b + lanesSubSat(a, b)
}

// lanesNegate returns 255 - x per lane. Pure XOR, no per-lane subtract.
func lanesNegate[T word](a T) T {
	return a ^ laneMask[T]()
}
