package hexgrid

import (
	"image"
	"image/color"
	"testing"
)

func TestRenderColorsCellResolution(t *testing.T) {
	// 16 bytes at branch 2: a 4x4 image, one pixel per byte, placed by
	// the digit-interleaved cell mapping.
	data := rampData(16)
	img, err := RenderColors(data, NewCache[RGBSum](), ByteColor, 2)
	if err != nil {
		t.Fatal(err)
	}

	if got := img.Bounds(); got != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds = %v, want (0,0)-(4,4)", got)
	}

	// Byte 5 lands at cell (3,0), byte 0 at the origin.
	checkPixel(t, img, 3, 0, ByteColor(data[5]).Average(1))
	checkPixel(t, img, 0, 0, ByteColor(data[0]).Average(1))

	// Every byte must land somewhere: no pixel may keep the zero alpha of
	// a fresh image.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if img.NRGBAAt(x, y).A != 255 {
				t.Errorf("pixel (%d,%d) was never painted", x, y)
			}
		}
	}
}

func checkPixel(t *testing.T, img *image.NRGBA, x, y int, want RGB) {
	t.Helper()
	got := img.NRGBAAt(x, y)
	if got.R != want.R || got.G != want.G || got.B != want.B || got.A != 255 {
		t.Errorf("pixel (%d,%d) = %v, want {%d %d %d 255}", x, y, got, want.R, want.G, want.B)
	}
}

func TestRenderColorsCoarseLevel(t *testing.T) {
	// A uniform buffer rendered at the top level is one solid square.
	data := make([]byte, 256)
	for i := range data {
		data[i] = 0xFF
	}
	agg := NewColorSum(data, ByteColor)
	colors := Generate(agg, 256, 4)

	img, err := RenderColors(data, colors, ByteColor, 4, WithLevel(2))
	if err != nil {
		t.Fatal(err)
	}

	if got := img.Bounds(); got != image.Rect(0, 0, 16, 16) {
		t.Fatalf("bounds = %v, want (0,0)-(16,16)", got)
	}
	want := ByteColor(0xFF).Average(1) // uniform data: average equals the cell color
	checkPixel(t, img, 0, 0, want)
	checkPixel(t, img, 7, 9, want)
	checkPixel(t, img, 15, 15, want)
}

func TestRenderColorsFallbackMatchesDirect(t *testing.T) {
	// Rendering below the cache's minimum level goes through the LRU
	// fallback; the result must match direct aggregation regardless.
	data := rampData(256)
	colors := Generate(NewColorSum(data, ByteColor), 256, 4)
	agg := NewColorSum(data, ByteColor)

	img, err := RenderColors(data, colors, ByteColor, 4, WithLevel(1), WithFallbackCapacity(4))
	if err != nil {
		t.Fatal(err)
	}

	for offset, length := range Blocks(0, 256, 1, 2, 4, nil) {
		tl, _ := BlockCorners(offset, length, 4)
		want := agg.Value(offset, length).Average(length)
		checkPixel(t, img, int(tl.X), int(tl.Y), want)
	}
}

func TestRenderColorsViewport(t *testing.T) {
	data := rampData(256)
	view := ViewportPredicate(4, image.Rect(0, 0, 4, 4))

	img, err := RenderColors(data, NewCache[RGBSum](), ByteColor, 4, WithVisible(view))
	if err != nil {
		t.Fatal(err)
	}

	// Only the first level-1 block overlaps the view; everything else
	// stays unpainted.
	if img.NRGBAAt(0, 0).A != 255 {
		t.Error("pixel (0,0) inside the viewport was not painted")
	}
	if img.NRGBAAt(3, 3).A != 255 {
		t.Error("pixel (3,3) inside the viewport was not painted")
	}
	if got := img.NRGBAAt(5, 0); got.A != 0 {
		t.Errorf("pixel (5,0) outside the viewport = %v, want untouched", got)
	}
}

func TestRenderColorsEmptyData(t *testing.T) {
	img, err := RenderColors(nil, NewCache[RGBSum](), ByteColor, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !img.Bounds().Empty() {
		t.Errorf("bounds = %v, want empty", img.Bounds())
	}
}

func TestViewportPredicate(t *testing.T) {
	const branch = 4
	view := ViewportPredicate(branch, image.Rect(0, 0, 4, 4))

	tests := []struct {
		offset, length uint64
		want           bool
	}{
		{0, 16, true},    // cell rect (0,0)-(4,4): covers the view
		{16, 16, false},  // cell rect (4,0)-(8,4): touches only the edge
		{0, 256, true},   // whole buffer contains the view
		{255, 1, false},  // bottom-right corner cell
		{5, 1, true},     // cell (1,1)
	}
	for _, tt := range tests {
		if got := view(tt.offset, tt.length); got != tt.want {
			t.Errorf("view(%d, %d) = %v, want %v", tt.offset, tt.length, got, tt.want)
		}
	}
}

func TestViewportPredicateEmptyView(t *testing.T) {
	view := ViewportPredicate(4, image.Rectangle{})
	if view(0, 256) {
		t.Error("empty viewport accepted a block")
	}
}

func TestViewportPredicateNegativeCoords(t *testing.T) {
	// A view partially off the top-left still accepts the origin block.
	view := ViewportPredicate(4, image.Rect(-10, -10, 2, 2))
	if !view(0, 16) {
		t.Error("view overlapping the origin rejected the first block")
	}
	if view(16, 16) {
		t.Error("view clamped at zero accepted a block to its right")
	}
}

func TestScaleTo(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, A: 255})

	dst := ScaleTo(src, 4, 4)
	if got := dst.Bounds(); got != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds = %v, want (0,0)-(4,4)", got)
	}

	// Nearest neighbor: each source pixel becomes a hard-edged 2x2 block.
	if got := dst.NRGBAAt(0, 0); got.R != 255 || got.G != 0 {
		t.Errorf("dst(0,0) = %v, want red", got)
	}
	if got := dst.NRGBAAt(3, 0); got.G != 255 || got.R != 0 {
		t.Errorf("dst(3,0) = %v, want green", got)
	}
	if got := dst.NRGBAAt(0, 3); got.B != 255 {
		t.Errorf("dst(0,3) = %v, want blue", got)
	}
	if got := dst.NRGBAAt(3, 3); got.R != 255 || got.G != 255 {
		t.Errorf("dst(3,3) = %v, want yellow", got)
	}
}
