package hexgrid

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/hexgrid/cache"
)

// RenderOption configures RenderColors.
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for RenderColors.
type renderOptions struct {
	level            uint32
	visible          Predicate
	fallbackCapacity int
}

// WithLevel sets the recursion level to render. Every visible block at
// that level becomes one filled square. The default is level 0,
// one pixel per byte.
func WithLevel(level uint32) RenderOption {
	return func(o *renderOptions) {
		o.level = level
	}
}

// WithVisible sets the visibility predicate. Blocks rejected by the
// predicate are skipped, along with everything inside them. See
// ViewportPredicate for the common case.
func WithVisible(p Predicate) RenderOption {
	return func(o *renderOptions) {
		o.visible = p
	}
}

// WithFallbackCapacity sets the size of the LRU used to memoize block
// colors that miss the precomputed cache (blocks below its minimum
// cached level).
func WithFallbackCapacity(n int) RenderOption {
	return func(o *renderOptions) {
		o.fallbackCapacity = n
	}
}

// ViewportPredicate returns a Predicate accepting the blocks whose cell
// rectangle overlaps view. Cell coordinates outside view are pruned at
// the coarsest possible level, so panning over a huge buffer touches only
// the blocks on screen.
func ViewportPredicate(branch uint64, view image.Rectangle) Predicate {
	if view.Empty() {
		return func(uint64, uint64) bool { return false }
	}
	minX := uint64(max(view.Min.X, 0))
	minY := uint64(max(view.Min.Y, 0))
	maxX := uint64(max(view.Max.X, 0))
	maxY := uint64(max(view.Max.Y, 0))

	return func(offset, length uint64) bool {
		tl, br := BlockCorners(offset, length, branch)
		return tl.X < maxX && br.X > minX && tl.Y < maxY && br.Y > minY
	}
}

// RenderColors rasterizes a color-mapped view of data into an image, one
// pixel per cell: each visible range block at the configured level is
// filled with its average cell color under fn. Block colors come from the
// precomputed cache when present; misses fall back to direct computation
// through a small LRU.
//
// RenderColors is a reference consumer for the traversal and cache
// contracts rather than a drawing layer: interactive viewers typically
// drive Blocks themselves with a screen-space predicate and paint with
// their own toolkit. Use ScaleTo to map the cell-resolution image onto an
// output surface.
func RenderColors(data []byte, colors *Cache[RGBSum], fn ColorFunc, branch uint64, opts ...RenderOption) (*image.NRGBA, error) {
	o := renderOptions{level: 0, fallbackCapacity: cache.DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	dataLen := uint64(len(data))
	if dataLen == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0)), nil
	}

	maxLevel := MaxLevel(dataLen, branch)
	side := uint64(1)
	for range maxLevel {
		side *= branch
	}
	if side > math.MaxInt32 {
		return nil, fmt.Errorf("hexgrid: render target %d cells per side exceeds image limits", side)
	}

	img := image.NewNRGBA(image.Rect(0, 0, int(side), int(side)))
	agg := NewColorSum(data, fn)
	fallback := cache.New[BlockKey, RGBSum](o.fallbackCapacity)

	for offset, length := range Blocks(0, dataLen, o.level, maxLevel, branch, o.visible) {
		sum, ok := colors.Get(offset, length)
		if !ok {
			sum = fallback.GetOrCreate(BlockKey{Offset: offset, Length: length}, func() RGBSum {
				return agg.Value(offset, length)
			})
		}

		// The final block may extend past the data; average over the
		// bytes it actually covers.
		covered := min(length, dataLen-offset)
		avg := sum.Average(covered)
		fill := color.NRGBA{R: avg.R, G: avg.G, B: avg.B, A: 255}

		tl, br := BlockCorners(offset, length, branch)
		for y := tl.Y; y < br.Y && y < side; y++ {
			for x := tl.X; x < br.X && x < side; x++ {
				img.SetNRGBA(int(x), int(y), fill)
			}
		}
	}

	return img, nil
}

// ScaleTo resamples src onto a width x height image with nearest-neighbor
// filtering, preserving the hard cell edges of a block rendering.
func ScaleTo(src image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
