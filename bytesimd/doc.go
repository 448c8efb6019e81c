// Package bytesimd implements lane-packed fixed-point arithmetic over
// 8-bit color channels stored in ordinary integer registers.
//
// The package works with three value representations:
//
//   - Pixel: a tight ARGB32 pixel, one byte per channel (0xAARRGGBB).
//     This is the at-rest framebuffer layout.
//   - Pair: two channels widened into 16-bit lanes of a uint32, at bit
//     offsets 0 and 16. The 8 bits of headroom above each channel let a
//     multiply of two 8-bit values complete inside its own lane.
//   - Quad: four channels widened into 16-bit lanes of a uint64.
//
// A Pixel unpacks into either one Quad or two Pairs under the "0213"
// grouping: the Even pair holds channels 0 and 2 (blue, red), the Odd
// pair holds channels 1 and 3 (green, alpha). Splitting even and odd
// bytes is cheaper than splitting low and high halves, and the lane
// arithmetic is identical either way.
//
// Every operation acts on all lanes of a word at once using plain
// integer instructions, so a single call processes two or four channels
// without a per-channel loop. Divisions by 255 round to nearest with
// ties upward; the same rounding form is used everywhere so that chained
// composites do not accumulate mismatched rounding error.
//
// All functions are pure and total over their documented domain:
// channel values in [0,255] and weights in [0,255] or [0,256]. Inputs
// outside that domain are a contract violation and produce unspecified
// numeric results; the package never validates, never allocates, and
// never logs, which makes it safe to call from any number of goroutines
// working on disjoint pixel spans.
package bytesimd
