package column

// LowCardinality wire constants and flags-word packing, modeled on the
// packed-bitfield technique used for mebo's NumericFlag header.
const (
	// lcKeyVersion is the well-known 64-bit key-version tag ClickHouse
	// emits for standard LowCardinality columns: shared dictionary across
	// granules = false, has additional keys = true, needs global
	// dictionary = false.
	lcKeyVersion uint64 = 1

	lcIndexWidthMask  = 0x0F // bits 0-3: index width selector
	lcHasAdditional   = 1 << 9
	lcNeedsUpdate     = 1 << 10
	lcIndexWidthUInt8  = 0
	lcIndexWidthUInt16 = 1
	lcIndexWidthUInt32 = 2
	lcIndexWidthUInt64 = 3
)

// lcFlags packs the index-width selector and the has-additional-keys bit
// into the 64-bit flags word written before the dictionary size.
func lcFlags(width int) uint64 {
	var w uint64
	switch width {
	case 1:
		w = lcIndexWidthUInt8
	case 2:
		w = lcIndexWidthUInt16
	case 4:
		w = lcIndexWidthUInt32
	case 8:
		w = lcIndexWidthUInt64
	}

	return (w & lcIndexWidthMask) | lcHasAdditional
}

// lcIndexWidth returns the byte width of dictionary indices implied by a
// decoded flags word.
func lcIndexWidth(flags uint64) int {
	switch flags & lcIndexWidthMask {
	case lcIndexWidthUInt8:
		return 1
	case lcIndexWidthUInt16:
		return 2
	case lcIndexWidthUInt32:
		return 4
	case lcIndexWidthUInt64:
		return 8
	default:
		return 1
	}
}

// lcWidthFor chooses the smallest index width holding dictSize-1, per
// spec.md's width-negotiation rule.
func lcWidthFor(dictSize int) int {
	maxIdx := dictSize - 1
	if maxIdx < 0 {
		maxIdx = 0
	}

	switch {
	case maxIdx <= 0xFF:
		return 1
	case maxIdx <= 0xFFFF:
		return 2
	case maxIdx <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}
