package bytesimd

import "testing"

var (
	sinkPixel Pixel
	sinkPair  Pair
)

func BenchmarkScalarMulDiv255(b *testing.B) {
	var acc uint32
	for i := 0; i < b.N; i++ {
		acc += MulDiv255(uint32(i)&0xFF, 0x80)
	}
	sinkPixel = Pixel(acc)
}

func BenchmarkPairMulDiv255(b *testing.B) {
	p := pairOf(0x40, 0xC0)
	for i := 0; i < b.N; i++ {
		sinkPair = p.MulDiv255(0x80)
	}
}

func BenchmarkPixelAddSat(b *testing.B) {
	x, y := Pixel(0x80402010), Pixel(0x40302010)
	for i := 0; i < b.N; i++ {
		sinkPixel = x.AddSat(y)
	}
}

func BenchmarkPixelAddSatPairs(b *testing.B) {
	x, y := Pixel(0x80402010), Pixel(0x40302010)
	for i := 0; i < b.N; i++ {
		sinkPixel = addSatPairs(x, y)
	}
}

func BenchmarkPixelMulDiv255AddSat(b *testing.B) {
	x, y := Pixel(0x80402010), Pixel(0x40302010)
	for i := 0; i < b.N; i++ {
		sinkPixel = x.MulDiv255AddSat(0xC0, y)
	}
}

func BenchmarkPixelInterp255(b *testing.B) {
	x, y := Pixel(0x80402010), Pixel(0x40302010)
	for i := 0; i < b.N; i++ {
		sinkPixel = x.Interp255(0x80, y, 0x7F)
	}
}

func BenchmarkPremultiply(b *testing.B) {
	p := Pixel(0x80402010)
	for i := 0; i < b.N; i++ {
		sinkPixel = p.Premultiply()
	}
}
