// Package field provides little-endian fixed-width integer access at
// arbitrary byte offsets. It is the primitive every other isaacsave package
// reads and writes through.
//
// All functions treat an out-of-range access (offset < 0, or offset+width
// past the end of the buffer, or an unsupported width) as a violated
// precondition and panic. The save-file layout is walked with validated
// offsets before any field access, so a panic here means a caller bug, not
// a malformed file.
package field

import "fmt"

// check panics unless the width bytes at offset lie inside data.
func check(data []byte, offset, width int) {
	switch width {
	case 1, 2, 4, 8:
	default:
		panic(fmt.Sprintf("field: unsupported width %d", width))
	}
	if offset < 0 || offset+width > len(data) {
		panic(fmt.Sprintf("field: access [%d:%d) outside buffer of %d bytes", offset, offset+width, len(data)))
	}
}

// ReadUint reads width bytes at offset as an unsigned little-endian integer.
// Width must be 1, 2, 4 or 8.
func ReadUint(data []byte, offset, width int) uint64 {
	check(data, offset, width)

	var v uint64
	for i := width - 1; i >= 0; i-- {
		v = v<<8 | uint64(data[offset+i])
	}

	return v
}

// ReadInt reads width bytes at offset as a signed little-endian integer,
// sign-extending the top bit of the field.
func ReadInt(data []byte, offset, width int) int64 {
	v := ReadUint(data, offset, width)
	shift := uint(64 - width*8)

	return int64(v<<shift) >> shift
}

// PutUint writes value as width little-endian bytes at offset, in place.
// Exactly width bytes change; the rest of the buffer is untouched. Value
// bits above the field width are discarded.
func PutUint(data []byte, offset, width int, value uint64) {
	check(data, offset, width)

	for i := 0; i < width; i++ {
		data[offset+i] = byte(value)
		value >>= 8
	}
}

// PutInt writes a signed value as width little-endian bytes at offset, in
// place, using two's complement truncation.
func PutInt(data []byte, offset, width int, value int64) {
	PutUint(data, offset, width, uint64(value))
}
