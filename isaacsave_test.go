package isaacsave

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rucen/isaacsave/checksum"
	"github.com/rucen/isaacsave/compress"
	"github.com/rucen/isaacsave/save"
	"github.com/rucen/isaacsave/section"
	"github.com/rucen/isaacsave/snapshot"
)

// testSave builds a structurally valid save: header and table prefix,
// 11 section descriptors with zeroed data, an empty four-group bestiary,
// and the checksum trailer.
func testSave(t *testing.T) []byte {
	t.Helper()

	// Section 3's width-1 entry count is a byte count: 732 item records
	// of 4 bytes each.
	counts := [section.Count]int{650, 1024, 0, 732 * 4, 0, 0, 46, 0, 0, 0, 0}
	buf := make([]byte, section.TableOffset)
	for i, count := range counts {
		desc := make([]byte, section.DescriptorSize)
		binary.LittleEndian.PutUint16(desc[8:10], uint16(count))
		buf = append(buf, desc...)
		buf = append(buf, make([]byte, count*section.EntryWidth(i))...)
	}
	buf = append(buf, make([]byte, 4*8)...) // four empty bestiary groups

	return append(buf, make([]byte, 4)...)
}

func TestFullUnlockFlow(t *testing.T) {
	buf, err := Load(testSave(t))
	require.NoError(t, err)

	buf, err = UpdateSecrets(buf, []int{1, 2, 3})
	require.NoError(t, err)
	buf, err = UpdateItems(buf, []int{1, 2})
	require.NoError(t, err)
	buf, err = UpdateChallenges(buf, []int{1})
	require.NoError(t, err)
	buf, err = UnlockAllMarks(buf)
	require.NoError(t, err)
	buf, err = EnsureBestiaryEncounterMinimum(buf, 1)
	require.NoError(t, err)
	buf = StampChecksum(buf)

	// The stamped trailer matches a fresh checksum of the final bytes.
	want := checksum.Sum(buf, 0x10, len(buf)-0x10-4)
	require.Equal(t, want, uint32(binary.LittleEndian.Uint32(buf[len(buf)-4:])))

	secrets, err := save.Secrets(buf)
	require.NoError(t, err)
	require.Equal(t, byte(1), secrets[0])

	marks, err := save.ChecklistUnlocks(buf, save.CharacterIndex("Tainted Jacob"))
	require.NoError(t, err)
	for i, v := range marks {
		require.Equal(t, save.MarkUnlockMask(i), v, "mark %d", i)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	original := testSave(t)

	backup, err := PackSnapshot(original, snapshot.WithCompression(compress.TypeLZ4))
	require.NoError(t, err)
	require.Less(t, len(backup), len(original))

	restored, err := UnpackSnapshot(backup)
	require.NoError(t, err)
	require.Equal(t, original, restored)
}
