package save

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rucen/isaacsave/errs"
	"github.com/rucen/isaacsave/section"
)

// testSecretCount is large enough to cover every id the override table
// knows about.
const testSecretCount = 650

// buildSave constructs a structurally valid save buffer: 0x10-byte file
// header plus 4 table-prefix bytes, the 11 section descriptors with data,
// the given raw bestiary bytes as section 10's content, and the 4-byte
// checksum trailer. All data bytes start zeroed.
func buildSave(t *testing.T, bestiary []byte) []byte {
	t.Helper()

	// Section 3's declared width is 1, so its entry count is a byte count:
	// 732 four-byte item records.
	counts := [section.Count]int{testSecretCount, 1024, 0, ItemCount * itemStride, 0, 0, 46, 0, 0, 0, 0}
	buf := make([]byte, section.TableOffset)
	for i, count := range counts {
		desc := make([]byte, section.DescriptorSize)
		binary.LittleEndian.PutUint16(desc[8:10], uint16(count))
		buf = append(buf, desc...)
		buf = append(buf, make([]byte, count*section.EntryWidth(i))...)
	}
	buf = append(buf, bestiary...)

	return append(buf, make([]byte, 4)...)
}

// emptyBestiary returns four groups with no entries.
func emptyBestiary() []byte {
	var out []byte
	for n := 0; n < BestiaryGroupCount; n++ {
		out = append(out, make([]byte, bestiaryHeaderSize)...)
	}

	return out
}

func TestLoad(t *testing.T) {
	buf := buildSave(t, emptyBestiary())

	loaded, err := Load(buf)
	require.NoError(t, err)
	require.Equal(t, buf, loaded)

	// Load returns a private copy.
	loaded[0] = 0xFF
	require.NotEqual(t, buf[0], loaded[0])
}

func TestLoad_TooSmall(t *testing.T) {
	_, err := Load(make([]byte, minBufferSize-1))
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
}

func TestLoad_TruncatedTable(t *testing.T) {
	buf := buildSave(t, emptyBestiary())

	// Claim a huge secrets section so the walk runs off the end.
	binary.LittleEndian.PutUint16(buf[section.TableOffset+8:], 0xFFFF)
	_, err := Load(buf)
	require.ErrorIs(t, err, errs.ErrSectionTruncated)
}

func TestStampChecksum_Idempotent(t *testing.T) {
	buf := buildSave(t, emptyBestiary())
	buf[0x40] = 0xAB // arbitrary content inside the checksummed range

	once := StampChecksum(buf)
	twice := StampChecksum(once)
	require.Equal(t, once, twice)

	// Only the trailer differs from the input.
	require.Equal(t, buf[:len(buf)-4], once[:len(once)-4])
}

func TestStampChecksum_MatchesChecksum(t *testing.T) {
	buf := buildSave(t, emptyBestiary())
	buf[0x40] = 0xAB

	stamped := StampChecksum(buf)
	trailer := binary.LittleEndian.Uint32(stamped[len(stamped)-4:])
	require.Equal(t, Checksum(buf), trailer)

	// The header bytes before 0x10 are outside the checksummed range.
	altered := clone(buf)
	altered[0x00] = 0x99
	require.Equal(t, Checksum(buf), Checksum(altered))
}

func TestReadWriteInt(t *testing.T) {
	buf := buildSave(t, emptyBestiary())

	out := WriteInt(buf, 0x40, -2, 2, true)
	require.Equal(t, int64(-2), ReadInt(out, 0x40, 2, true))
	require.Equal(t, int64(0xFFFE), ReadInt(out, 0x40, 2, false))

	// The input buffer is untouched.
	require.Equal(t, int64(0), ReadInt(buf, 0x40, 2, false))

	// Exactly width bytes differ.
	require.Equal(t, buf[:0x40], out[:0x40])
	require.Equal(t, buf[0x42:], out[0x42:])
}
