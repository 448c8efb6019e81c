package bytesimd

import "testing"

// refMulDiv255 is round-to-nearest (x*a)/255 with ties upward, used as
// the accuracy reference for the fast formula.
func refMulDiv255(x, a uint32) uint32 {
	return (2*x*a + 255) / 510
}

func TestAddSat(t *testing.T) {
	for x := uint32(0); x <= 255; x++ {
		for y := uint32(0); y <= 255; y++ {
			want := x + y
			if want > 255 {
				want = 255
			}
			if got := AddSat(x, y); got != want {
				t.Fatalf("AddSat(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestSubSat(t *testing.T) {
	for x := uint32(0); x <= 255; x++ {
		for y := uint32(0); y <= 255; y++ {
			want := uint32(0)
			if x > y {
				want = x - y
			}
			if got := SubSat(x, y); got != want {
				t.Fatalf("SubSat(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDiv255Exact(t *testing.T) {
	// The shift identity is exact integer division over the whole
	// documented domain, which includes every intermediate a channel
	// multiply can produce (at most 255*255 = 65025).
	for v := uint32(0); v <= 65534; v++ {
		if got := Div255(v); got != v/255 {
			t.Fatalf("Div255(%d) = %d, want %d", v, got, v/255)
		}
	}
}

func TestDiv256(t *testing.T) {
	for v := uint32(0); v <= 0xFFFF; v++ {
		if got := Div256(v); got != v/256 {
			t.Fatalf("Div256(%d) = %d, want %d", v, got, v/256)
		}
	}
}

func TestMulDiv255Boundaries(t *testing.T) {
	for x := uint32(0); x <= 255; x++ {
		if got := MulDiv255(x, 255); got != x {
			t.Errorf("MulDiv255(%d, 255) = %d, want %d", x, got, x)
		}
		if got := MulDiv255(x, 0); got != 0 {
			t.Errorf("MulDiv255(%d, 0) = %d, want 0", x, got)
		}
	}
}

func TestMulDiv255Accuracy(t *testing.T) {
	// The two-step rounding form stays within 1 of true rounded division
	// for every input pair.
	for x := uint32(0); x <= 255; x++ {
		for a := uint32(0); a <= 255; a++ {
			got := int(MulDiv255(x, a))
			want := int(refMulDiv255(x, a))
			if diff := got - want; diff < -1 || diff > 1 {
				t.Fatalf("MulDiv255(%d, %d) = %d, reference %d", x, a, got, want)
			}
		}
	}
}

func TestMulDiv256(t *testing.T) {
	for x := uint32(0); x <= 255; x++ {
		for a := uint32(0); a <= 256; a++ {
			if got, want := MulDiv256(x, a), (x*a)>>8; got != want {
				t.Fatalf("MulDiv256(%d, %d) = %d, want %d", x, a, got, want)
			}
		}
	}
}

func TestLerp255SelfBlend(t *testing.T) {
	// Blending a value with itself returns itself regardless of weight.
	for x := uint32(0); x <= 255; x++ {
		for a := uint32(0); a <= 255; a++ {
			if got := Lerp255(x, x, a); got != x {
				t.Fatalf("Lerp255(%d, %d, %d) = %d, want %d", x, x, a, got, x)
			}
		}
	}
}

func TestLerp255Endpoints(t *testing.T) {
	for x := uint32(0); x <= 255; x++ {
		for y := uint32(0); y <= 255; y++ {
			if got := Lerp255(x, y, 255); got != x {
				t.Fatalf("Lerp255(%d, %d, 255) = %d, want %d", x, y, got, x)
			}
			if got := Lerp255(x, y, 0); got != y {
				t.Fatalf("Lerp255(%d, %d, 0) = %d, want %d", x, y, got, y)
			}
		}
	}
}

func TestLerp256Endpoints(t *testing.T) {
	for x := uint32(0); x <= 255; x++ {
		for y := uint32(0); y <= 255; y++ {
			if got := Lerp256(x, y, 256); got != x {
				t.Fatalf("Lerp256(%d, %d, 256) = %d, want %d", x, y, got, x)
			}
			if got := Lerp256(x, y, 0); got != y {
				t.Fatalf("Lerp256(%d, %d, 0) = %d, want %d", x, y, got, y)
			}
		}
	}
}

func TestNegate(t *testing.T) {
	for x := uint32(0); x <= 255; x++ {
		if got := Neg255(x); got != 255-x {
			t.Errorf("Neg255(%d) = %d, want %d", x, got, 255-x)
		}
		if got := Neg255(Neg255(x)); got != x {
			t.Errorf("Neg255(Neg255(%d)) = %d, want %d", x, got, x)
		}
	}
	for x := uint32(0); x <= 256; x++ {
		if got := Neg256(x); got != 256-x {
			t.Errorf("Neg256(%d) = %d, want %d", x, got, 256-x)
		}
	}
}

func TestExtend(t *testing.T) {
	for x := uint32(0); x <= 255; x++ {
		want := x | x<<8 | x<<16 | x<<24
		if got := Extend(x); got != want {
			t.Fatalf("Extend(%#02x) = %#08x, want %#08x", x, got, want)
		}
	}
}
