package fog

import (
	"fmt"

	"github.com/ciiqr/fog/internal/parallel"
)

// CompositeParallel composites src onto dst like Composite, splitting
// the surface into horizontal bands processed by a pool of workers.
// workers <= 0 means one worker per CPU. Bands are disjoint scanline
// ranges, so no synchronization of the pixel data is needed.
func CompositeParallel(dst, src *Pixmap, op Op, workers int) error {
	if dst.width != src.width || dst.height != src.height {
		return fmt.Errorf("composite: size mismatch %dx%d vs %dx%d",
			dst.width, dst.height, src.width, src.height)
	}

	pool := parallel.NewPool(workers)
	bands := parallel.Bands(dst.height, pool.Workers())
	if len(bands) <= 1 {
		CompositeSpan(dst.pix, src.pix, op)
		return nil
	}

	logger().Debug("parallel composite",
		"op", op.String(),
		"width", dst.width,
		"height", dst.height,
		"bands", len(bands),
		"workers", pool.Workers())

	jobs := make([]func(), len(bands))
	for i, band := range bands {
		lo := band.Y0 * dst.width
		hi := band.Y1 * dst.width
		d := dst.pix[lo:hi]
		s := src.pix[lo:hi]
		jobs[i] = func() {
			CompositeSpan(d, s, op)
		}
	}
	pool.Run(jobs)
	return nil
}
