package bytesimd

// branchlessSaturation selects the mask-based saturation path in the
// scalar layer. The conditional path compiles to a cmov on most targets
// and can be faster there; results are identical either way.
const branchlessSaturation = true

// Add returns x + y without saturation. The caller must know the domain
// excludes overflow, or apply saturation at a higher layer.
func Add(x, y uint32) uint32 {
	return x + y
}

// AddSat returns min(x+y, 255).
func AddSat(x, y uint32) uint32 {
	x += y
	if branchlessSaturation {
		x |= 0x100 - ((x >> 8) & 0xFF)
		return x & 0xFF
	}
	if x > 255 {
		x = 255
	}
	return x
}

// Sub returns x - y without saturation.
func Sub(x, y uint32) uint32 {
	return x - y
}

// SubSat returns max(x-y, 0).
func SubSat(x, y uint32) uint32 {
	x -= y
	if branchlessSaturation {
		// Underflow sign-extends into the top byte; mask kills the result.
		return x & ((x >> 24) ^ 0xFF)
	}
	if int32(x) < 0 {
		x = 0
	}
	return x
}

// Div255 divides a 16-bit intermediate by 255 without a divide
// instruction. Exact for v in [0, 65534], which covers every product of
// two channel values; callers that want round-to-nearest fold the half
// unit into v first, as MulDiv255 does.
func Div255(v uint32) uint32 {
	return ((v << 8) + (v + 256)) >> 16
}

// Div256 divides by 256. Cheaper and less accurate than Div255; used
// where 256 is an acceptable denominator, such as fixed-point coverage.
func Div256(v uint32) uint32 {
	return v >> 8
}

// MulDiv255 returns (x * a) / 255 with rounding to nearest.
func MulDiv255(x, a uint32) uint32 {
	x *= a
	return (x + (x >> 8) + 0x80) >> 8
}

// MulDiv256 returns (x * a) / 256, truncated.
func MulDiv256(x, a uint32) uint32 {
	return (x * a) >> 8
}

// Lerp255 blends x toward y with weight a/255:
// ((x * a) + (y * (255 - a))) / 255, rounded.
func Lerp255(x, y, a uint32) uint32 {
	x *= a
	y *= a ^ 0xFF
	x += y
	return (x + (x >> 8) + 0x80) >> 8
}

// Lerp256 blends with denominator 256, truncated:
// ((x * a) + (y * (256 - a))) / 256.
func Lerp256(x, y, a uint32) uint32 {
	x *= a
	y *= 256 - a
	return (x + y) >> 8
}

// Neg255 returns 255 - x for x in [0, 255].
func Neg255(x uint32) uint32 {
	return x ^ 0xFF
}

// Neg256 returns 256 - x.
func Neg256(x uint32) uint32 {
	return 256 - x
}

// Extend replicates the low byte of x into all four byte positions:
// x | x<<8 | x<<16 | x<<24.
func Extend(x uint32) uint32 {
	return x * 0x01010101
}
