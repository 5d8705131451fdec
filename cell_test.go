package hexgrid

import "testing"

func TestCellOffsetFirstBlock(t *testing.T) {
	// Within the first level-1 block the mapping is plain row-major.
	for i := uint64(0); i < 16; i++ {
		got := CellOffset(i, 4)
		want := Cell(i%4, i/4)
		if got != want {
			t.Errorf("CellOffset(%d, 4) = %v, want %v", i, got, want)
		}
	}
}

func TestCellOffsetCoarserLevels(t *testing.T) {
	tests := []struct {
		index  uint64
		branch uint64
		want   CellCoords
	}{
		{16, 4, Cell(4, 0)},   // second level-1 block starts one block right
		{21, 4, Cell(5, 1)},   // cell (1,1) within that block
		{255, 4, Cell(15, 15)},
		{5, 2, Cell(3, 0)},
		{0, 4, Cell(0, 0)},
	}
	for _, tt := range tests {
		got := CellOffset(tt.index, tt.branch)
		if got != tt.want {
			t.Errorf("CellOffset(%d, %d) = %v, want %v", tt.index, tt.branch, got, tt.want)
		}
	}
}

func TestCellOffsetInjective(t *testing.T) {
	// No two offsets within a buffer may share a cell.
	for _, branch := range []uint64{2, 3, 4} {
		n := BlockSize(3, branch)
		seen := make(map[CellCoords]uint64, n)
		for i := uint64(0); i < n; i++ {
			c := CellOffset(i, branch)
			if prev, ok := seen[c]; ok {
				t.Fatalf("branch %d: offsets %d and %d both map to %v", branch, prev, i, c)
			}
			seen[c] = i
		}
	}
}

func TestCellOffsetStaysInSquare(t *testing.T) {
	// Every offset below branch^(2L) maps inside the level-L square.
	const branch = 4
	n := BlockSize(3, branch)
	side := uint64(64) // 4^3
	for i := uint64(0); i < n; i++ {
		c := CellOffset(i, branch)
		if c.X >= side || c.Y >= side {
			t.Fatalf("CellOffset(%d, %d) = %v escapes the %dx%d square", i, branch, c, side, side)
		}
	}
}

func TestBlockCorners(t *testing.T) {
	tests := []struct {
		offset, length, branch  uint64
		wantTL, wantBR          CellCoords
	}{
		{0, 256, 4, Cell(0, 0), Cell(16, 16)}, // whole level-2 block
		{16, 16, 4, Cell(4, 0), Cell(8, 4)},   // second level-1 block
		{5, 1, 4, Cell(1, 1), Cell(2, 2)},     // single cell
		{0, 1, 4, Cell(0, 0), Cell(1, 1)},
	}
	for _, tt := range tests {
		tl, br := BlockCorners(tt.offset, tt.length, tt.branch)
		if tl != tt.wantTL || br != tt.wantBR {
			t.Errorf("BlockCorners(%d, %d, %d) = %v, %v, want %v, %v",
				tt.offset, tt.length, tt.branch, tl, br, tt.wantTL, tt.wantBR)
		}
	}
}

func TestBlockCornersAreSquare(t *testing.T) {
	// Aligned blocks always map to squares with side branch^level.
	const branch = 4
	for level := uint32(0); level <= 3; level++ {
		size := BlockSize(level, branch)
		for _, offset := range []uint64{0, size, 3 * size} {
			tl, br := BlockCorners(offset, size, branch)
			w := br.X - tl.X
			h := br.Y - tl.Y
			if w != h {
				t.Errorf("block (%d, %d): corners %v, %v not square", offset, size, tl, br)
			}
			if w*h != size {
				t.Errorf("block (%d, %d): area %d, want %d", offset, size, w*h, size)
			}
		}
	}
}
