// Package save implements the codec operations over a whole save buffer:
// secrets, items, challenges, per-character completion checklists, named
// stat counters, the bestiary merge, and checksum stamping.
//
// The package performs no I/O. A caller loads file bytes, runs any number
// of read or update operations, stamps the checksum, and writes the bytes
// back out itself. Every update returns a new buffer and leaves its input
// untouched, so buffers can be treated as values; section offsets are
// recomputed on every call rather than cached, which keeps them correct
// after the one operation that can change the buffer's length (the
// bestiary merge).
package save

import (
	"github.com/rucen/isaacsave/checksum"
	"github.com/rucen/isaacsave/errs"
	"github.com/rucen/isaacsave/field"
	"github.com/rucen/isaacsave/section"
)

const (
	// checksumStart is the buffer offset where the checksummed region
	// begins. The 16 bytes before it are the opaque file header.
	checksumStart = 0x10

	// trailerSize is the size of the checksum trailer at the end of the
	// buffer.
	trailerSize = 4
)

// minBufferSize is the smallest structurally valid save buffer: file
// header, full section table with zero entries everywhere, and trailer.
const minBufferSize = section.TableOffset + section.Count*section.DescriptorSize + trailerSize

// Load validates the structural invariants of raw save-file bytes and
// returns a private copy the codec operations can be applied to. It checks
// only that the buffer can hold the header, a complete section table walk,
// and the checksum trailer; it does not verify the checksum value (callers
// that care can compare checksum.Sum against the trailer themselves).
func Load(data []byte) ([]byte, error) {
	if len(data) < minBufferSize {
		return nil, errs.ErrBufferTooSmall
	}
	if _, err := section.Offsets(data); err != nil {
		return nil, err
	}

	return clone(data), nil
}

// StampChecksum returns a copy of data with the checksum over
// [0x10, len(data)-4) written into the trailing 4 bytes, little-endian.
// Stamping is idempotent: the checksum range excludes the trailer itself.
func StampChecksum(data []byte) []byte {
	out := clone(data)
	sum := checksum.Sum(out, checksumStart, len(out)-checksumStart-trailerSize)
	field.PutUint(out, len(out)-trailerSize, trailerSize, uint64(sum))

	return out
}

// Checksum computes the checksum the trailer should carry for the current
// buffer contents, without writing it.
func Checksum(data []byte) uint32 {
	return checksum.Sum(data, checksumStart, len(data)-checksumStart-trailerSize)
}

// ReadInt reads a width-byte little-endian integer at offset. It exists for
// front ends that expose bespoke numeric fields directly by offset; the
// named operations in this package cover everything with known structure.
func ReadInt(data []byte, offset, width int, signed bool) int64 {
	if signed {
		return field.ReadInt(data, offset, width)
	}

	return int64(field.ReadUint(data, offset, width))
}

// WriteInt returns a copy of data with value written as a width-byte
// little-endian integer at offset. Exactly width bytes differ from the
// input.
func WriteInt(data []byte, offset int, value int64, width int, signed bool) []byte {
	out := clone(data)
	if signed {
		field.PutInt(out, offset, width, value)
	} else {
		field.PutUint(out, offset, width, uint64(value))
	}

	return out
}

func clone(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)

	return out
}
