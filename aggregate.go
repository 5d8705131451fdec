package hexgrid

// Aggregator computes summary values over byte ranges that can also be
// combined from sub-block values. Implementations must keep the two
// operations consistent: combining the branch² child values of an aligned
// block must equal Value computed directly on the block's full range.
//
// Value must accept ranges that extend past the underlying data; the
// effective range is clamped to the data extent and a zero (or absent)
// value is returned for ranges wholly outside it.
type Aggregator[T any] interface {
	// Value computes the aggregate directly from raw data for a possibly
	// partial range.
	Value(offset, length uint64) T

	// Combine folds sibling sub-block values into their parent's value.
	Combine(children []T) T
}

// clampRange converts a byte range to slice bounds within data, clamping
// the end to the data extent. The returned bounds are always valid slice
// indices; an empty range means no overlap.
func clampRange(data []byte, offset, length uint64) (lo, hi int) {
	n := uint64(len(data))
	if offset >= n {
		return 0, 0
	}
	end := offset + length
	if end > n || end < offset {
		end = n
	}
	return int(offset), int(end)
}

// Sum aggregates the sum of byte values in a range block. It borrows the
// data slice for its lifetime and never mutates it.
type Sum struct {
	data []byte
}

// NewSum creates a Sum aggregator over data.
func NewSum(data []byte) *Sum {
	return &Sum{data: data}
}

// Value returns the sum of byte values in [offset, offset+length),
// clamped to the data extent.
func (s *Sum) Value(offset, length uint64) uint64 {
	lo, hi := clampRange(s.data, offset, length)
	var sum uint64
	for _, b := range s.data[lo:hi] {
		sum += uint64(b)
	}
	return sum
}

// Combine returns the sum of the child sums.
func (s *Sum) Combine(children []uint64) uint64 {
	var sum uint64
	for _, v := range children {
		sum += v
	}
	return sum
}

func (s *Sum) fingerprint() uint64 {
	return fingerprintBuffers(s.data)
}

// RGBSum is a component-wise sum of RGB color contributions.
type RGBSum struct {
	R, G, B uint64
}

// Add returns the component-wise sum of two RGBSums.
func (c RGBSum) Add(o RGBSum) RGBSum {
	return RGBSum{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// ColorFunc maps a byte value to its RGB color contribution. The mapping
// is opaque to hexgrid; see ByteColor and SemanticColor for examples.
type ColorFunc func(b byte) RGBSum

// ColorSum aggregates the component-wise sum of the RGB colors of every
// cell in a range block, according to an injected cell coloring scheme.
// Dividing the sums by the block length gives the block's average color.
type ColorSum struct {
	data  []byte
	color ColorFunc
}

// NewColorSum creates a ColorSum aggregator over data using color.
func NewColorSum(data []byte, color ColorFunc) *ColorSum {
	return &ColorSum{data: data, color: color}
}

// Value returns the component-wise color sum of [offset, offset+length),
// clamped to the data extent.
func (s *ColorSum) Value(offset, length uint64) RGBSum {
	lo, hi := clampRange(s.data, offset, length)
	var sum RGBSum
	for _, b := range s.data[lo:hi] {
		sum = sum.Add(s.color(b))
	}
	return sum
}

// Combine returns the component-wise sum of the child sums.
func (s *ColorSum) Combine(children []RGBSum) RGBSum {
	var sum RGBSum
	for _, v := range children {
		sum = sum.Add(v)
	}
	return sum
}

func (s *ColorSum) fingerprint() uint64 {
	return fingerprintBuffers(s.data)
}

// DiffCount is the number of byte positions at which two buffers differ
// within a range. Valid is false when the range lies entirely outside the
// buffers' common extent, which is distinct from a count of zero.
type DiffCount struct {
	Count uint64
	Valid bool
}

// Diff aggregates the count of byte positions within a range block that
// hold different values in two buffers. The buffers may have different
// lengths; only their common extent is compared.
type Diff struct {
	data0 []byte
	data1 []byte
}

// NewDiff creates a Diff aggregator comparing data0 and data1.
func NewDiff(data0, data1 []byte) *Diff {
	return &Diff{data0: data0, data1: data1}
}

// Value returns the number of differing positions in [offset,
// offset+length), clamped to both buffers' extents. The result is absent
// when offset lies past the end of the shorter buffer.
func (d *Diff) Value(offset, length uint64) DiffCount {
	common := uint64(min(len(d.data0), len(d.data1)))
	if offset >= common {
		return DiffCount{}
	}
	end := offset + length
	if end > common || end < offset {
		end = common
	}

	var count uint64
	for i := offset; i < end; i++ {
		if d.data0[i] != d.data1[i] {
			count++
		}
	}
	return DiffCount{Count: count, Valid: true}
}

// Combine sums the present child counts, treating absent children as
// contributing nothing. The result is always present, matching Value on
// any range that overlaps the common extent.
func (d *Diff) Combine(children []DiffCount) DiffCount {
	var count uint64
	for _, v := range children {
		if v.Valid {
			count += v.Count
		}
	}
	return DiffCount{Count: count, Valid: true}
}

func (d *Diff) fingerprint() uint64 {
	return fingerprintBuffers(d.data0, d.data1)
}
