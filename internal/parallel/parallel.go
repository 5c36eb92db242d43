// Package parallel runs element-wise array kernels over tiles.
//
// Sample kernels have no shared mutable state between elements, so the flat
// index range is cut into contiguous tiles and each tile runs on its own
// goroutine. Small arrays run inline on the calling goroutine.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MinTile is the smallest number of elements handed to a single goroutine.
const MinTile = 32 << 10

// Tile is the half-open flat index range [Lo, Hi).
type Tile struct {
	Lo, Hi int
}

// Len returns the number of elements in t.
func (t Tile) Len() int { return t.Hi - t.Lo }

// Workers resolves a worker count; values <= 0 mean GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Split cuts [0, n) into at most workers tiles of at least MinTile
// elements. It returns nil for n <= 0.
func Split(n, workers int) []Tile {
	if n <= 0 {
		return nil
	}
	count := (n + MinTile - 1) / MinTile
	if w := Workers(workers); count > w {
		count = w
	}
	size := (n + count - 1) / count

	tiles := make([]Tile, 0, count)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		tiles = append(tiles, Tile{Lo: lo, Hi: hi})
	}
	return tiles
}

// For calls fn once per tile of [0, n).
func For(n, workers int, fn func(Tile)) {
	Map(n, workers, func(t Tile) struct{} {
		fn(t)
		return struct{}{}
	})
}

// Map calls fn once per tile of [0, n) and returns the per-tile results in
// tile order, which lets callers merge reductions deterministically.
func Map[R any](n, workers int, fn func(Tile) R) []R {
	tiles := Split(n, workers)
	out := make([]R, len(tiles))
	if len(tiles) <= 1 {
		for i, t := range tiles {
			out[i] = fn(t)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(Workers(workers))
	for i, t := range tiles {
		g.Go(func() error {
			out[i] = fn(t)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
