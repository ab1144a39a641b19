// Package section locates the eleven fixed-order data sections inside a
// save buffer.
//
// The section table starts at buffer offset 0x14. Each section contributes a
// 12-byte descriptor of three 16-bit little-endian fields (each padded to 4
// bytes); only the third field, the entry count, matters to this package.
// A section's data begins immediately after its descriptor and spans
// entry count × entry width bytes, where the width is a fixed per-index
// constant. Walking descriptor by descriptor and skipping each data span
// yields every section's data offset.
//
// Offsets are never cached: any operation that changes the size of the
// trailing bestiary section invalidates them, so callers recompute on
// demand. The walk is cheap (eleven descriptor reads).
package section

import (
	"github.com/rucen/isaacsave/errs"
	"github.com/rucen/isaacsave/field"
)

const (
	// TableOffset is the buffer offset of the first section descriptor.
	TableOffset = 0x14

	// DescriptorSize is the byte size of one section descriptor: three
	// 16-bit fields, each occupying a 4-byte slot.
	DescriptorSize = 12

	// Count is the fixed number of sections in a save buffer.
	Count = 11
)

// Named indices of the sections this codec interprets. The remaining
// indices (2, 4, 5, 7, 8, 9) are opaque but still walked so that the
// offsets of later sections come out right.
const (
	Secrets    = 0
	Stats      = 1
	Items      = 3
	Challenges = 6
	Bestiary   = 10
)

// entryWidths holds the per-section data stride. Its only purpose is to
// compute where the next descriptor starts; it says nothing about the
// internal shape of a section (the stats section, for instance, is a flat
// blob despite its declared width of 4).
var entryWidths = [Count]int{1, 4, 4, 1, 1, 1, 1, 4, 4, 1, 546}

// EntryWidth returns the fixed data stride of the given section index.
func EntryWidth(index int) int {
	return entryWidths[index]
}

// descriptor reads the three 16-bit fields at ofs and returns the entry
// count (the third field). The first two fields are opaque to this codec.
func descriptor(data []byte, ofs int) (count int, err error) {
	if ofs < 0 || ofs+DescriptorSize > len(data) {
		return 0, errs.ErrSectionTruncated
	}

	return int(field.ReadUint(data, ofs+8, 2)), nil
}

// Offsets walks the section table and returns the data offset of each of
// the eleven sections. It fails with errs.ErrSectionTruncated when a
// descriptor would extend past the end of the buffer.
func Offsets(data []byte) ([Count]int, error) {
	var offsets [Count]int

	ofs := TableOffset
	for i := 0; i < Count; i++ {
		count, err := descriptor(data, ofs)
		if err != nil {
			return offsets, err
		}
		ofs += DescriptorSize
		offsets[i] = ofs
		ofs += count * entryWidths[i]
	}

	return offsets, nil
}

// EntryCount replays the section walk and returns the entry count of the
// requested section. Needed because the secrets section's length is stored
// in its descriptor rather than being a format constant.
func EntryCount(data []byte, index int) (int, error) {
	if index < 0 || index >= Count {
		return 0, errs.ErrSectionIndexRange
	}

	ofs := TableOffset
	for i := 0; i < Count; i++ {
		count, err := descriptor(data, ofs)
		if err != nil {
			return 0, err
		}
		if i == index {
			return count, nil
		}
		ofs += DescriptorSize + count*entryWidths[i]
	}

	return 0, errs.ErrSectionIndexRange
}
