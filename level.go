package hexgrid

import "math"

// BlockSize returns the byte size of a range block at the given recursion
// level: branch^(2·level). Level 0 is a single cell.
func BlockSize(level uint32, branch uint64) uint64 {
	size := uint64(1)
	for range 2 * level {
		size *= branch
	}
	return size
}

// MaxLevel returns the maximum recursion level needed for a buffer of
// dataLen bytes: the lowest level whose block covers at least dataLen
// cells. Lengths 0 and 1 return level 0.
//
// MaxLevel panics if branch is not greater than 1; block sizes would
// never grow and the search could not terminate.
func MaxLevel(dataLen, branch uint64) uint32 {
	if branch <= 1 {
		panic("hexgrid: branch factor must be greater than 1")
	}
	if dataLen <= 1 {
		return 0
	}

	subBlocks := branch * branch
	var level uint32
	size := uint64(1)
	for size < dataLen {
		if size > math.MaxUint64/subBlocks {
			// The next multiplication would overflow, so the current
			// block already covers every addressable offset.
			return level + 1
		}
		size *= subBlocks
		level++
	}
	return level
}
