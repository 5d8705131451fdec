package hexgrid

import "iter"

// Predicate tests a range block identified by its byte offset and length.
// Traversal uses it to prune blocks: returning false skips the block and
// everything inside it. A nil Predicate accepts every block.
//
// Viewers typically supply a predicate that tests the block's pixel
// rectangle against the visible window; hexgrid itself has no notion of
// screen space.
type Predicate func(offset, length uint64) bool

// alignUp rounds n up to the next multiple of align.
func alignUp(n, align uint64) uint64 {
	rem := n % align
	if rem == 0 {
		return n
	}
	return n + align - rem
}

// NextBlock finds the next range block at exactly target recursion level
// whose offset is at or after start and whose extent begins within
// dataLen. Blocks at or above the target level encountered during the
// search are tested with visible: when it rejects a block the entire
// block is skipped, so one test on a coarse block can prune thousands of
// cells at once.
//
// maxLevel is the traversal ceiling, normally MaxLevel(dataLen, branch).
// NextBlock panics if branch ≤ 1 or target exceeds maxLevel; both are
// caller contract breaches, not data conditions.
func NextBlock(start, dataLen uint64, target, maxLevel uint32, branch uint64, visible Predicate) (offset, length uint64, ok bool) {
	if branch <= 1 {
		panic("hexgrid: branch factor must be greater than 1")
	}
	targetAlign := BlockSize(target, branch)

	// "Recursion level" is the number of times sub-blocks have been
	// grouped into blocks. Level zero means no grouping: single bytes.

	for {
		if target > maxLevel {
			panic("hexgrid: target level above traversal ceiling")
		}

		// Find the next offset aligned with blocks at the target level.
		aligned := alignUp(start, targetAlign)
		if aligned >= dataLen {
			return 0, 0, false
		}

		// Find the highest recursion level whose block size also divides
		// the aligned offset. The aligned offset is always the start of
		// at least one block at the target level, so the search cannot
		// miss.
		level := maxLevel
		for aligned%BlockSize(level, branch) != 0 {
			level--
		}
		size := BlockSize(level, branch)

		// The largest co-aligned block either gets returned (it is the
		// target level), descended into (coarser than the target), or
		// skipped entirely (rejected by the predicate).
		if visible == nil || visible(aligned, size) {
			if level == target {
				return aligned, size, true
			}
			maxLevel--
		} else {
			start = aligned + size
		}
	}
}

// Blocks returns an iterator over the range blocks at exactly target
// recursion level, in increasing offset order, filtered by visible.
// See NextBlock for the search semantics.
//
// The sequence is lazy and finite. It can be ranged over multiple times;
// each range restarts from start.
func Blocks(start, dataLen uint64, target, maxLevel uint32, branch uint64, visible Predicate) iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		cursor := start
		for {
			offset, length, ok := NextBlock(cursor, dataLen, target, maxLevel, branch, visible)
			if !ok {
				return
			}
			if !yield(offset, length) {
				return
			}
			cursor = offset + length
		}
	}
}

// NextLargestBlock finds the largest complete range block that starts
// exactly at start and ends at or before limit, scanning recursion levels
// from maxLevel down to 0 and picking the first whose size both divides
// start and fits before limit. It reports ok=false when no block fits,
// which happens exactly when start ≥ limit.
//
// NextLargestBlock panics if branch ≤ 1.
func NextLargestBlock(start, limit uint64, maxLevel uint32, branch uint64) (offset, length uint64, ok bool) {
	if branch <= 1 {
		panic("hexgrid: branch factor must be greater than 1")
	}

	for level := int64(maxLevel); level >= 0; level-- {
		size := BlockSize(uint32(level), branch)
		if start%size != 0 {
			continue
		}
		if start+size > limit || start+size < start {
			continue
		}
		return start, size, true
	}
	return 0, 0, false
}

// Tiling returns an iterator that decomposes the byte range [start, limit)
// into the fewest aligned range blocks, greedily emitting the largest
// complete block at each step. The emitted blocks are contiguous,
// non-overlapping, and cover the range exactly.
//
// This keeps downstream work proportional to the tile count rather than
// the byte count: outline extraction inserts four edges per tile and
// aggregate lookups hit one cache entry per tile.
func Tiling(start, limit uint64, maxLevel uint32, branch uint64) iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		cursor := start
		for {
			offset, length, ok := NextLargestBlock(cursor, limit, maxLevel, branch)
			if !ok {
				return
			}
			if !yield(offset, length) {
				return
			}
			cursor = offset + length
		}
	}
}
