package hexgrid

import "fmt"

// ByteString is a human-readable rendering of a byte quantity. When the
// quantity divides its unit evenly the rendering is exact; otherwise it
// carries an approximate fractional value.
type ByteString struct {
	Exact  bool
	Value  uint64  // exact quantity in units, when Exact
	Approx float64 // approximate quantity in units, when !Exact
	Label  string
}

// String formats the quantity, prefixing approximations with "~".
func (b ByteString) String() string {
	if b.Exact {
		return fmt.Sprintf("%d %s", b.Value, b.Label)
	}
	return fmt.Sprintf("~%.2f %s", b.Approx, b.Label)
}

// binaryUnit is a power-of-1024 byte unit.
type binaryUnit struct {
	bytes           uint64
	label           string
	verbose         string
	verboseSingular string
}

var binaryUnits = []binaryUnit{
	{1 << 40, "TB", "Terabytes", "Terabyte"},
	{1 << 30, "GB", "Gigabytes", "Gigabyte"},
	{1 << 20, "MB", "Megabytes", "Megabyte"},
	{1 << 10, "KB", "Kilobytes", "Kilobyte"},
	{1, "B", "Bytes", "Byte"},
}

// FormatBytesBinary renders value using power-of-1024 units. With verbose
// set the label is spelled out, singular when the quantity is exactly one
// unit.
func FormatBytesBinary(value uint64, verbose bool) ByteString {
	unit := binaryUnits[len(binaryUnits)-1]
	for _, u := range binaryUnits {
		if value >= u.bytes {
			unit = u
			break
		}
	}

	label := unit.label
	if verbose {
		if value == unit.bytes {
			label = unit.verboseSingular
		} else {
			label = unit.verbose
		}
	}

	if value%unit.bytes == 0 {
		return ByteString{Exact: true, Value: value / unit.bytes, Label: label}
	}
	return ByteString{Approx: float64(value) / float64(unit.bytes), Label: label}
}

// FormatBytesDecimal renders value in scientific byte notation ("e6B" for
// millions of bytes). Values below 10 are rendered as plain bytes.
func FormatBytesDecimal(value uint64) ByteString {
	if value < 10 {
		return ByteString{Exact: true, Value: value, Label: "B"}
	}

	exp := 0
	factor := uint64(1)
	for value/10 >= factor {
		factor *= 10
		exp++
	}

	label := fmt.Sprintf("e%dB", exp)
	if value%factor == 0 {
		return ByteString{Exact: true, Value: value / factor, Label: label}
	}
	return ByteString{Approx: float64(value) / float64(factor), Label: label}
}

// decimalUnit is a power-of-1000 byte unit.
type decimalUnit struct {
	bytes uint64
	label string
}

var decimalUnits = []decimalUnit{
	{1_000_000_000_000, "Trillion Bytes"},
	{1_000_000_000, "Billion Bytes"},
	{1_000_000, "Million Bytes"},
	{1_000, "Thousand Bytes"},
	{1, "Bytes"},
}

// FormatBytesDecimalVerbose renders value using spelled-out power-of-1000
// units.
func FormatBytesDecimalVerbose(value uint64) ByteString {
	unit := decimalUnits[len(decimalUnits)-1]
	for _, u := range decimalUnits {
		if value >= u.bytes {
			unit = u
			break
		}
	}

	label := unit.label
	if value == 1 {
		label = "Byte"
	}

	if value%unit.bytes == 0 {
		return ByteString{Exact: true, Value: value / unit.bytes, Label: label}
	}
	return ByteString{Approx: float64(value) / float64(unit.bytes), Label: label}
}
