// Package hexgrid provides hierarchical spatial indexing and aggregation
// for visualizing large byte buffers as recursively subdivided square grids.
//
// # Overview
//
// hexgrid maps a linear byte buffer onto a two-dimensional grid of cells,
// where each cell holds one byte. Cells group into square range blocks:
// a block at recursion level L covers branch^(2L) bytes, so every level
// of recursion groups branch² blocks from the level below into one larger
// square. The mapping is self-similar, which makes pan-and-zoom views of
// multi-gigabyte buffers practical: a viewer works at whatever recursion
// level matches its zoom, and a single visibility test on a coarse block
// can skip thousands of cells at once.
//
// # Quick Start
//
//	import "github.com/gogpu/hexgrid"
//
//	data := loadFile()
//	branch := uint64(4) // 16-way subdivision per level
//
//	// Precompute byte sums for every block, bottom-up.
//	sums := hexgrid.Generate(hexgrid.NewSum(data), uint64(len(data)), branch)
//
//	// Iterate the level-1 blocks visible in some viewport.
//	maxLevel := hexgrid.MaxLevel(uint64(len(data)), branch)
//	for offset, length := range hexgrid.Blocks(0, uint64(len(data)), 1, maxLevel, branch, visible) {
//		sum, ok := sums.Get(offset, length)
//		if !ok {
//			sum = hexgrid.NewSum(data).Value(offset, length)
//		}
//		// draw the block...
//	}
//
// # Architecture
//
// The library is organized into:
//   - Coordinate mapping: CellOffset, BlockCorners (cell.go)
//   - Recursion math: BlockSize, MaxLevel (level.go)
//   - Traversal: Blocks, Tiling and their step functions (blocks.go)
//   - Aggregation: Aggregator, Sum, ColorSum, Diff and the generic
//     multi-level Cache (aggregate.go, cache.go)
//   - Outline extraction: the outline subpackage reduces a union of
//     axis-aligned rectangles to minimal closed boundary loops
//
// # Coordinate System
//
// Cell coordinates use standard computer graphics conventions:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Byte offsets are uint64 throughout so buffers up to the addressable
// limit keep exact coordinates.
//
// # Concurrency
//
// All traversal and mapping functions are pure and safe for concurrent
// use. A Cache is immutable after Generate returns; Generate itself can
// fan aggregation out across workers with WithWorkers.
package hexgrid
