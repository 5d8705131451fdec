package hexgrid

// CellCoords is the integer grid position of a single-byte cell in a
// two-dimensional rendering scheme. A cell has a nominal size of 1x1,
// so CellCoords double as integer drawing units for whole range blocks.
type CellCoords struct {
	X, Y uint64
}

// Cell is a convenience function to create a CellCoords.
func Cell(x, y uint64) CellCoords {
	return CellCoords{X: x, Y: y}
}

// CellOffset returns the top-left corner of the cell holding byte index.
//
// The mapping is the inverse of a row-major digit-interleaved addressing
// scheme: each base-branch² digit of index selects a position within a
// sub-block at successively coarser recursion levels. Within one buffer
// the mapping is injective, so no two byte offsets share a cell.
func CellOffset(index, branch uint64) CellCoords {
	subBlocks := branch * branch

	var c CellCoords
	scale := uint64(1)
	for index > 0 {
		sub := index % subBlocks

		c.X += (sub % branch) * scale
		c.Y += (sub / branch) * scale

		index /= subBlocks
		scale *= branch
	}
	return c
}

// BlockCorners returns the top-left (inclusive) and bottom-right
// (exclusive) corners of the range block starting at offset and covering
// length bytes.
//
// The caller must supply a real aligned range block: offset must be a
// multiple of length and length a power of branch². BlockCorners does not
// validate this; for other ranges the result is geometrically meaningless.
func BlockCorners(offset, length, branch uint64) (topLeft, bottomRight CellCoords) {
	topLeft = CellOffset(offset, branch)

	bottomRight = CellOffset(offset+length-1, branch)
	bottomRight.X++
	bottomRight.Y++

	return topLeft, bottomRight
}
