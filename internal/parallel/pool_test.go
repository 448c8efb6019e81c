package parallel

import (
	"sync/atomic"
	"testing"
)

func TestBandsCoverHeight(t *testing.T) {
	cases := []struct {
		height, n int
	}{
		{1, 1}, {10, 1}, {10, 3}, {10, 10}, {10, 16}, {1080, 8}, {7, 4},
	}
	for _, tc := range cases {
		bands := Bands(tc.height, tc.n)
		y := 0
		for _, b := range bands {
			if b.Y0 != y {
				t.Fatalf("Bands(%d,%d): band starts at %d, want %d", tc.height, tc.n, b.Y0, y)
			}
			if b.Height() <= 0 {
				t.Fatalf("Bands(%d,%d): empty band %+v", tc.height, tc.n, b)
			}
			y = b.Y1
		}
		if y != tc.height {
			t.Fatalf("Bands(%d,%d): covered %d scanlines, want %d", tc.height, tc.n, y, tc.height)
		}
		if len(bands) > tc.n {
			t.Fatalf("Bands(%d,%d): %d bands, want at most %d", tc.height, tc.n, len(bands), tc.n)
		}
	}
}

func TestBandsBalanced(t *testing.T) {
	bands := Bands(10, 3)
	if len(bands) != 3 {
		t.Fatalf("got %d bands, want 3", len(bands))
	}
	// 10 = 4 + 3 + 3; no band may exceed the smallest by more than one.
	minH, maxH := bands[0].Height(), bands[0].Height()
	for _, b := range bands[1:] {
		if h := b.Height(); h < minH {
			minH = h
		} else if h > maxH {
			maxH = h
		}
	}
	if maxH-minH > 1 {
		t.Fatalf("band heights differ by %d, want at most 1", maxH-minH)
	}
}

func TestBandsDegenerate(t *testing.T) {
	if got := Bands(0, 4); got != nil {
		t.Fatalf("Bands(0,4) = %v, want nil", got)
	}
	if got := Bands(5, 0); got != nil {
		t.Fatalf("Bands(5,0) = %v, want nil", got)
	}
}

func TestPoolRunsAllJobs(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 16} {
		p := NewPool(workers)
		var count atomic.Int64
		jobs := make([]func(), 100)
		for i := range jobs {
			jobs[i] = func() { count.Add(1) }
		}
		p.Run(jobs)
		if count.Load() != 100 {
			t.Fatalf("workers=%d: ran %d jobs, want 100", workers, count.Load())
		}
	}
}

func TestPoolEmpty(t *testing.T) {
	NewPool(4).Run(nil)
}

func TestPoolDefaultWorkers(t *testing.T) {
	if NewPool(0).Workers() < 1 {
		t.Fatal("NewPool(0) must pick at least one worker")
	}
}
