package fog

import (
	"fmt"

	"github.com/ciiqr/fog/bytesimd"
)

// Op is a compositing operator over premultiplied ARGB32 pixels.
type Op uint8

const (
	// OpSrc replaces the destination with the source.
	OpSrc Op = iota
	// OpOver composites source over destination: S + D*(1-Sa).
	OpOver
	// OpPlus adds source to destination with saturation.
	OpPlus
	// OpMultiply multiplies per channel: S*D/255.
	OpMultiply
	// OpScreen computes S + D - S*D/255 per channel.
	OpScreen
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case OpSrc:
		return "src"
	case OpOver:
		return "over"
	case OpPlus:
		return "plus"
	case OpMultiply:
		return "multiply"
	case OpScreen:
		return "screen"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// ParseOp maps an operator name to its Op value.
func ParseOp(name string) (Op, error) {
	switch name {
	case "src":
		return OpSrc, nil
	case "over":
		return OpOver, nil
	case "plus":
		return OpPlus, nil
	case "multiply":
		return OpMultiply, nil
	case "screen":
		return OpScreen, nil
	default:
		return 0, fmt.Errorf("unknown compositing operator %q", name)
	}
}

// blendFunc composites one source pixel onto one destination pixel.
type blendFunc func(d, s bytesimd.Pixel) bytesimd.Pixel

// blend returns the per-pixel function for the operator. Unknown
// operators fall back to source-over.
func (op Op) blend() blendFunc {
	switch op {
	case OpSrc:
		return blendSrc
	case OpOver:
		return blendOver
	case OpPlus:
		return blendPlus
	case OpMultiply:
		return blendMultiply
	case OpScreen:
		return blendScreen
	default:
		return blendOver
	}
}

func blendSrc(d, s bytesimd.Pixel) bytesimd.Pixel {
	return s
}

func blendOver(d, s bytesimd.Pixel) bytesimd.Pixel {
	return d.MulDiv255AddSat(bytesimd.Neg255(s.Alpha()), s)
}

func blendPlus(d, s bytesimd.Pixel) bytesimd.Pixel {
	return d.AddSat(s)
}

func blendMultiply(d, s bytesimd.Pixel) bytesimd.Pixel {
	return d.MulPixel255(s)
}

func blendScreen(d, s bytesimd.Pixel) bytesimd.Pixel {
	ds, ss := d.Unpack(), s.Unpack()
	return ds.AddSubSat(ss, ds.MulPacked255(ss)).Pack()
}

// CompositeSpan composites src onto dst pixel by pixel. The slices
// must not overlap and dst must be at least as long as src.
func CompositeSpan(dst, src []bytesimd.Pixel, op Op) {
	if op == OpOver {
		// The common operator skips fully transparent sources and
		// copies fully opaque ones.
		for i, s := range src {
			sa := s.Alpha()
			switch sa {
			case 0:
			case 255:
				dst[i] = s
			default:
				dst[i] = dst[i].MulDiv255AddSat(bytesimd.Neg255(sa), s)
			}
		}
		return
	}

	f := op.blend()
	for i, s := range src {
		dst[i] = f(dst[i], s)
	}
}

// FillSpan composites a single source pixel onto every pixel of dst.
func FillSpan(dst []bytesimd.Pixel, src bytesimd.Pixel, op Op) {
	if op == OpSrc || (op == OpOver && src.Alpha() == 255) {
		for i := range dst {
			dst[i] = src
		}
		return
	}
	f := op.blend()
	for i := range dst {
		dst[i] = f(dst[i], src)
	}
}

// CompositeSpanMask applies src over dst under an 8-bit coverage mask,
// the anti-aliasing path: each premultiplied source pixel is scaled by
// its coverage before the source-over composite. cov must be at least
// as long as src.
func CompositeSpanMask(dst, src []bytesimd.Pixel, cov []uint8) {
	for i, s := range src {
		c := uint32(cov[i])
		if c == 0 {
			continue
		}
		if c < 255 {
			s = s.MulDiv255(c)
		}
		sa := s.Alpha()
		if sa == 255 {
			dst[i] = s
			continue
		}
		dst[i] = dst[i].MulDiv255AddSat(bytesimd.Neg255(sa), s)
	}
}

// LerpSpan blends dst toward src with weight t/255: t=0 leaves dst
// unchanged, t=255 replaces it.
func LerpSpan(dst, src []bytesimd.Pixel, t uint32) {
	inv := bytesimd.Neg255(t)
	for i := range src {
		dst[i] = dst[i].Interp255(inv, src[i], t)
	}
}

// Composite composites src onto dst over the whole surface. The
// pixmaps must have identical dimensions.
func Composite(dst, src *Pixmap, op Op) error {
	if dst.width != src.width || dst.height != src.height {
		return fmt.Errorf("composite: size mismatch %dx%d vs %dx%d",
			dst.width, dst.height, src.width, src.height)
	}
	CompositeSpan(dst.pix, src.pix, op)
	return nil
}
