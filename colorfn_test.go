package hexgrid

import "testing"

func TestByteColor(t *testing.T) {
	tests := []struct {
		b    byte
		want RGBSum
	}{
		{0x00, RGBSum{}},
		{0xFF, RGBSum{R: 192, G: 224, B: 224}},
		{85, RGBSum{R: 64, G: 80, B: 160}}, // 0b01010101
		{0b11000000, RGBSum{R: 192}},
		{0b00111000, RGBSum{G: 224}},
		{0b00000111, RGBSum{B: 224}},
	}
	for _, tt := range tests {
		if got := ByteColor(tt.b); got != tt.want {
			t.Errorf("ByteColor(%#02x) = %+v, want %+v", tt.b, got, tt.want)
		}
	}
}

func TestByteColorNearbyValues(t *testing.T) {
	// Adjacent byte values must never differ by more than one step per
	// channel, so gradients in the data read as gradients on screen.
	for b := 0; b < 255; b++ {
		c0 := ByteColor(byte(b))
		c1 := ByteColor(byte(b + 1))
		for _, d := range []uint64{
			absDiff(c0.R, c1.R), absDiff(c0.G, c1.G), absDiff(c0.B, c1.B),
		} {
			if d > 224 {
				t.Fatalf("ByteColor(%d) and ByteColor(%d) differ by %d in one channel", b, b+1, d)
			}
		}
	}
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestSemanticColor(t *testing.T) {
	if got := SemanticColor(0x7F); got != (RGBSum{R: 127, G: 127, B: 127}) {
		t.Errorf("SemanticColor(0x7F) = %+v, want gray 127", got)
	}
}

func TestContrastWraps(t *testing.T) {
	tests := []struct {
		in, want RGB
	}{
		{RGB{0, 0, 0}, RGB{128, 128, 128}},
		{RGB{255, 255, 255}, RGB{127, 127, 127}},
		{RGB{200, 100, 50}, RGB{72, 228, 178}},
	}
	for _, tt := range tests {
		if got := Contrast(tt.in); got != tt.want {
			t.Errorf("Contrast(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestAverage(t *testing.T) {
	sum := RGBSum{R: 300, G: 150, B: 0}
	if got := sum.Average(3); got != (RGB{R: 100, G: 50, B: 0}) {
		t.Errorf("Average(3) = %+v, want {100 50 0}", got)
	}

	// A channel sum larger than length*255 clamps instead of wrapping.
	if got := (RGBSum{R: 1000}).Average(1); got.R != 255 {
		t.Errorf("oversized channel averaged to %d, want clamp at 255", got.R)
	}

	if got := sum.Average(0); got != (RGB{}) {
		t.Errorf("Average(0) = %+v, want black", got)
	}
}

func TestDiffColor(t *testing.T) {
	if got := DiffColor(DiffCount{}, 16); got != (RGB{}) {
		t.Errorf("absent diff colored %+v, want black", got)
	}
	if got := DiffColor(DiffCount{Count: 0, Valid: true}, 16); got != (RGB{R: 127, G: 127, B: 127}) {
		t.Errorf("identical block colored %+v, want gray", got)
	}
	if got := DiffColor(DiffCount{Count: 16, Valid: true}, 16); got != (RGB{R: 255}) {
		t.Errorf("fully differing block colored %+v, want pure red", got)
	}

	// Half differing: halfway along the white-to-red ramp.
	got := DiffColor(DiffCount{Count: 8, Valid: true}, 16)
	if got.R != 255 || got.G != 127 || got.G != got.B {
		t.Errorf("half-differing block colored %+v, want {255 127 127}", got)
	}
}

func TestDiffAt(t *testing.T) {
	data0 := []byte{1, 2, 3, 4}
	data1 := []byte{1, 9, 3}

	tests := []struct {
		index uint64
		want  DiffCount
	}{
		{0, DiffCount{Count: 0, Valid: true}},
		{1, DiffCount{Count: 1, Valid: true}},
		{2, DiffCount{Count: 0, Valid: true}},
		{3, DiffCount{}}, // past the shorter buffer
		{9, DiffCount{}},
	}
	for _, tt := range tests {
		if got := DiffAt(data0, data1, tt.index); got != tt.want {
			t.Errorf("DiffAt(%d) = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}
