package fog

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/ciiqr/fog/bytesimd"
)

// Pixmap is a rectangular buffer of premultiplied ARGB32 pixels, the
// at-rest representation every compositing operator works on. Rows are
// stored contiguously, top to bottom.
type Pixmap struct {
	width  int
	height int
	pix    []bytesimd.Pixel
}

// NewPixmap creates a transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]bytesimd.Pixel, width*height),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Pix returns the raw pixel words.
func (p *Pixmap) Pix() []bytesimd.Pixel { return p.pix }

// Row returns the pixels of scanline y. Concurrent callers working on
// disjoint rows need no locking.
func (p *Pixmap) Row(y int) []bytesimd.Pixel {
	return p.pix[y*p.width : (y+1)*p.width]
}

// SetPixel sets a single pixel. Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c bytesimd.Pixel) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = c
}

// PixelAt returns a single pixel. Out-of-bounds coordinates return
// transparent black.
func (p *Pixmap) PixelAt(x, y int) bytesimd.Pixel {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.pix[y*p.width+x]
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c bytesimd.Pixel) {
	for i := range p.pix {
		p.pix[i] = c
	}
}

// ScaleAlpha multiplies every pixel, alpha included, by a/255. With
// premultiplied pixels this applies a global opacity.
func (p *Pixmap) ScaleAlpha(a uint32) {
	if a == 255 {
		return
	}
	for i := range p.pix {
		p.pix[i] = p.pix[i].MulDiv255(a)
	}
}

// FromImage converts any image into a premultiplied pixmap. NRGBA
// sources take a fast path that premultiplies through the arithmetic
// core; everything else goes through the color.Color interface, which
// already yields premultiplied values.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < pm.height; y++ {
			row := pm.Row(y)
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < pm.width; x++ {
				s := src.Pix[i : i+4 : i+4]
				straight := bytesimd.NewPixel(
					uint32(s[3]), uint32(s[0]), uint32(s[1]), uint32(s[2]))
				row[x] = straight.Premultiply()
				i += 4
			}
		}
		return pm
	}

	for y := 0; y < pm.height; y++ {
		row := pm.Row(y)
		for x := 0; x < pm.width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			row[x] = bytesimd.NewPixel(a>>8, r>>8, g>>8, b>>8)
		}
	}
	return pm
}

// ToRGBA converts the pixmap to an image.RGBA. Both representations
// are premultiplied, so this is a pure byte reorder.
func (p *Pixmap) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		row := p.Row(y)
		i := img.PixOffset(0, y)
		for x := 0; x < p.width; x++ {
			c := row[x]
			d := img.Pix[i : i+4 : i+4]
			d[0] = uint8(c.Red())
			d[1] = uint8(c.Green())
			d[2] = uint8(c.Blue())
			d[3] = uint8(c.Alpha())
			i += 4
		}
	}
	return img
}

// ToNRGBA converts the pixmap to a straight-alpha image.NRGBA,
// unpremultiplying each channel with rounding.
func (p *Pixmap) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		row := p.Row(y)
		i := img.PixOffset(0, y)
		for x := 0; x < p.width; x++ {
			c := row[x]
			a := c.Alpha()
			d := img.Pix[i : i+4 : i+4]
			if a == 0 {
				d[0], d[1], d[2], d[3] = 0, 0, 0, 0
			} else {
				d[0] = uint8((c.Red()*255 + a/2) / a)
				d[1] = uint8((c.Green()*255 + a/2) / a)
				d[2] = uint8((c.Blue()*255 + a/2) / a)
				d[3] = uint8(a)
			}
			i += 4
		}
	}
	return img
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, p.ToRGBA()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.PixelAt(x, y)
	return color.RGBA{
		R: uint8(c.Red()),
		G: uint8(c.Green()),
		B: uint8(c.Blue()),
		A: uint8(c.Alpha()),
	}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
