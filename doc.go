// Package fog is the pixel-arithmetic layer of a software 2D
// rasterizer: premultiplied ARGB32 pixel buffers and the span
// compositing operators a blitter runs per scanline.
//
// The numeric heavy lifting lives in the bytesimd subpackage, which
// does all channel math on lane-packed integer words. This package
// wraps it with a Pixmap buffer type, compositing operators (Src,
// Over, Plus, Multiply, Screen), coverage-mask application for
// anti-aliasing, and band-parallel whole-surface composition.
//
// All compositing works on premultiplied alpha. Images imported
// through FromImage are premultiplied on the way in.
package fog
