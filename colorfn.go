package hexgrid

// RGB is an 8-bit display color. RGBSum aggregates these per-cell
// contributions; Average recovers a display color from a block sum.
type RGB struct {
	R, G, B uint8
}

// Average divides a block's color sum by its byte length, giving the
// block's average cell color. A zero length returns black.
func (c RGBSum) Average(length uint64) RGB {
	if length == 0 {
		return RGB{}
	}
	return RGB{
		R: uint8(min(c.R/length, 255)),
		G: uint8(min(c.G/length, 255)),
		B: uint8(min(c.B/length, 255)),
	}
}

// ByteColor maps a byte to a color by spreading its bits across the RGB
// channels: the top two bits become red, the middle three green, and the
// low three blue. Nearby byte values therefore land on nearby colors.
func ByteColor(b byte) RGBSum {
	r := b & 0b11000000
	g := (b & 0b00111000) << 2
	bl := (b & 0b00000111) << 5
	return RGBSum{R: uint64(r), G: uint64(g), B: uint64(bl)}
}

// SemanticColor maps a byte to the grayscale of its value.
func SemanticColor(b byte) RGBSum {
	v := uint64(b)
	return RGBSum{R: v, G: v, B: v}
}

// Contrast returns a color that contrasts with c by wrapping each channel
// halfway around its range. Useful for drawing text over colored cells.
func Contrast(c RGB) RGB {
	return RGB{R: c.R + 128, G: c.G + 128, B: c.B + 128}
}

// DiffColor maps a block's difference count to a display color: black for
// absent data, neutral gray for identical blocks, and a white-to-red ramp
// as the differing fraction of the block's length bytes grows.
func DiffColor(diff DiffCount, length uint64) RGB {
	if !diff.Valid {
		return RGB{}
	}
	if diff.Count == 0 {
		return RGB{R: 127, G: 127, B: 127}
	}
	v := 255.0 * (1.0 - float32(diff.Count)/float32(length))
	return RGB{R: 255, G: uint8(v), B: uint8(v)}
}

// DiffAt compares the byte at index in two buffers. The count is 1 when
// they differ and 0 when they match; the result is absent when index lies
// outside either buffer.
func DiffAt(data0, data1 []byte, index uint64) DiffCount {
	if index >= uint64(len(data0)) || index >= uint64(len(data1)) {
		return DiffCount{}
	}
	if data0[index] != data1[index] {
		return DiffCount{Count: 1, Valid: true}
	}
	return DiffCount{Count: 0, Valid: true}
}
