package bytesimd

import "testing"

// TestQuadAgreesWithSplit drives every shared operation through both
// widened representations and requires identical packed results.
func TestQuadAgreesWithSplit(t *testing.T) {
	px := testPixels()
	for _, p := range px {
		for _, q := range px[:32] {
			qa, qb := p.UnpackQuad(), q.UnpackQuad()
			sa, sb := p.Unpack(), q.Unpack()

			if g, w := qa.AddSat(qb).Pack(), sa.AddSat(sb).Pack(); g != w {
				t.Fatalf("AddSat: quad %#08x, split %#08x", uint32(g), uint32(w))
			}
			if g, w := qa.SubSat(qb).Pack(), sa.SubSat(sb).Pack(); g != w {
				t.Fatalf("SubSat: quad %#08x, split %#08x", uint32(g), uint32(w))
			}
			if g, w := qa.Min(qb).Pack(), sa.Min(sb).Pack(); g != w {
				t.Fatalf("Min: quad %#08x, split %#08x", uint32(g), uint32(w))
			}
			if g, w := qa.Max(qb).Pack(), sa.Max(sb).Pack(); g != w {
				t.Fatalf("Max: quad %#08x, split %#08x", uint32(g), uint32(w))
			}

			for _, u := range []uint32{0, 1, 127, 128, 255} {
				if g, w := qa.MulDiv255(u).Pack(), sa.MulDiv255(u).Pack(); g != w {
					t.Fatalf("MulDiv255(%d): quad %#08x, split %#08x", u, uint32(g), uint32(w))
				}
				if g, w := qa.MulDiv256(u).Pack(), sa.MulDiv256(u).Pack(); g != w {
					t.Fatalf("MulDiv256(%d): quad %#08x, split %#08x", u, uint32(g), uint32(w))
				}
				if g, w := qa.MulDiv255AddSat(u, qb).Pack(), sa.MulDiv255AddSat(u, sb).Pack(); g != w {
					t.Fatalf("MulDiv255AddSat(%d): quad %#08x, split %#08x", u, uint32(g), uint32(w))
				}
				if g, w := qa.Interp255(u, qb, 255-u).Pack(), sa.Interp255(u, sb, 255-u).Pack(); g != w {
					t.Fatalf("Interp255(%d): quad %#08x, split %#08x", u, uint32(g), uint32(w))
				}
				if g, w := qa.Interp256(u, qb, 256-u).Pack(), sa.Interp256(u, sb, 256-u).Pack(); g != w {
					t.Fatalf("Interp256(%d): quad %#08x, split %#08x", u, uint32(g), uint32(w))
				}
			}
		}
	}
}

func TestQuadPremultiply(t *testing.T) {
	for _, p := range testPixels() {
		if g, w := p.UnpackQuad().Premultiply().Pack(), p.Unpack().Premultiply().Pack(); g != w {
			t.Fatalf("Premultiply(%#08x): quad %#08x, split %#08x",
				uint32(p), uint32(g), uint32(w))
		}
	}
}

func TestQuadNegate(t *testing.T) {
	for _, p := range testPixels() {
		want := Pixel(^uint32(p))
		if got := p.UnpackQuad().Negate().Pack(); got != want {
			t.Fatalf("Negate(%#08x) = %#08x, want %#08x", uint32(p), uint32(got), uint32(want))
		}
	}
}

func TestQuadShifts(t *testing.T) {
	q := NewPixel(0x10, 0x20, 0x30, 0x40).UnpackQuad()
	if got := q.ShiftLeft(1).Pack(); got != NewPixel(0x20, 0x40, 0x60, 0x80) {
		t.Errorf("ShiftLeft(1) = %#08x", uint32(got))
	}
	if got := q.ShiftRight(4).Pack(); got != NewPixel(0x01, 0x02, 0x03, 0x04) {
		t.Errorf("ShiftRight(4) = %#08x", uint32(got))
	}
}

func TestSplatQuad(t *testing.T) {
	for _, u := range laneVals {
		q := SplatQuad(u)
		for lane := 0; lane < 4; lane++ {
			if got := uint32(q>>(16*lane)) & 0xFFFF; got != u {
				t.Fatalf("SplatQuad(%d) lane %d = %d", u, lane, got)
			}
		}
	}
}

func TestQuadRawArithmetic(t *testing.T) {
	a := NewPixel(1, 2, 3, 4).UnpackQuad()
	b := NewPixel(5, 6, 7, 8).UnpackQuad()
	if got := a.Add(b).Pack(); got != NewPixel(6, 8, 10, 12) {
		t.Errorf("Add = %#08x", uint32(got))
	}
	if got := b.Sub(a).Pack(); got != NewPixel(4, 4, 4, 4) {
		t.Errorf("Sub = %#08x", uint32(got))
	}
	if got := a.AddSub(b, a).Pack(); got != NewPixel(5, 6, 7, 8) {
		t.Errorf("AddSub = %#08x", uint32(got))
	}
	if got := a.Mul(3).Pack(); got != NewPixel(3, 6, 9, 12) {
		t.Errorf("Mul = %#08x", uint32(got))
	}
}
