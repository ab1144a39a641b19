package save

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rucen/isaacsave/errs"
)

type testBestiaryEntry struct {
	key     uint32
	payload uint32
}

// bestiaryBlob builds a bare bestiary section: four groups with distinct
// header magic bytes and the given entries.
func bestiaryBlob(groups [BestiaryGroupCount][]testBestiaryEntry) []byte {
	var out []byte
	for gi, entries := range groups {
		header := make([]byte, bestiaryHeaderSize)
		header[0] = byte(gi + 1)
		binary.LittleEndian.PutUint32(header[4:], uint32(len(entries)*4))
		out = append(out, header...)
		for _, e := range entries {
			entry := make([]byte, bestiaryEntrySize)
			binary.LittleEndian.PutUint32(entry[:4], e.key)
			binary.LittleEndian.PutUint32(entry[4:], e.payload)
			out = append(out, entry...)
		}
	}

	return out
}

func parseSaveBestiary(t *testing.T, data []byte) [BestiaryGroupCount]bestiaryGroup {
	t.Helper()
	offsets, err := BestiaryOffsets(data)
	require.NoError(t, err)
	groups, err := readBestiaryGroups(data, offsets)
	require.NoError(t, err)

	return groups
}

func TestReferenceBestiarySection(t *testing.T) {
	ref := referenceBestiarySection()
	require.Len(t, ref, 12408)

	groups, ok := parseBestiarySection(ref)
	require.True(t, ok)
	require.Len(t, groups[0].order, 227)
	require.Len(t, groups[1].order, 466)
	require.Len(t, groups[2].order, 375)
	require.Len(t, groups[3].order, 479)
	require.Equal(t, byte(4), groups[0].header[0])
	require.Equal(t, byte(2), groups[1].header[0])
	require.Equal(t, byte(3), groups[2].header[0])
	require.Equal(t, byte(1), groups[3].header[0])
}

func TestParseBestiarySection_RejectsGarbage(t *testing.T) {
	t.Run("absurd count", func(t *testing.T) {
		// A corrupt count near 2^32 must be rejected up front, before
		// anything is sized by it.
		blob := make([]byte, 16)
		binary.LittleEndian.PutUint32(blob[4:8], 0xFFFFFFF0)
		_, ok := parseBestiarySection(blob)
		require.False(t, ok)

		_, _, err := readBestiaryGroup(blob, 0)
		require.ErrorIs(t, err, errs.ErrBestiaryTruncated)
	})

	t.Run("trailing nonzero bytes", func(t *testing.T) {
		blob := bestiaryBlob([BestiaryGroupCount][]testBestiaryEntry{})
		blob = append(blob, 0, 0, 0x7F)
		_, ok := parseBestiarySection(blob)
		require.False(t, ok)
	})

	t.Run("trailing zero padding accepted", func(t *testing.T) {
		blob := bestiaryBlob([BestiaryGroupCount][]testBestiaryEntry{})
		blob = append(blob, 0, 0, 0, 0)
		_, ok := parseBestiarySection(blob)
		require.True(t, ok)
	})
}

func TestEnsureBestiary_ClampsExistingCounters(t *testing.T) {
	live := [BestiaryGroupCount][]testBestiaryEntry{
		encounterGroup: {{key: 0x10, payload: 5}, {key: 0x20, payload: 1}},
	}
	ref := bestiaryBlob([BestiaryGroupCount][]testBestiaryEntry{
		encounterGroup: {{key: 0x10}, {key: 0x20}},
	})
	buf := buildSave(t, bestiaryBlob(live))

	out, err := EnsureBestiaryEncounterMinimum(buf, 3, WithBestiaryReference(ref))
	require.NoError(t, err)

	groups := parseSaveBestiary(t, out)
	require.Equal(t, []uint32{0x10, 0x20}, groups[encounterGroup].order)
	require.Equal(t, uint32(5), binary.LittleEndian.Uint32(entryOf(t, groups[encounterGroup], 0x10)[4:]))
	require.Equal(t, uint32(3), binary.LittleEndian.Uint32(entryOf(t, groups[encounterGroup], 0x20)[4:]))
}

func entryOf(t *testing.T, g bestiaryGroup, key uint32) []byte {
	t.Helper()
	entry, ok := g.entries[key]
	require.True(t, ok, "key %#x", key)

	return entry[:]
}

func TestEnsureBestiary_AdoptsReferenceEntries(t *testing.T) {
	live := [BestiaryGroupCount][]testBestiaryEntry{
		encounterGroup: {{key: 0x10, payload: 5}, {key: 0x30, payload: 2}},
	}
	ref := bestiaryBlob([BestiaryGroupCount][]testBestiaryEntry{
		0:              {{key: 0x40, payload: 0xDEAD}},
		encounterGroup: {{key: 0x40, payload: 99}, {key: 0x10, payload: 7}},
	})
	buf := buildSave(t, bestiaryBlob(live))

	out, err := EnsureBestiaryEncounterMinimum(buf, 0, WithBestiaryReference(ref))
	require.NoError(t, err)
	require.Greater(t, len(out), len(buf))

	groups := parseSaveBestiary(t, out)

	// Reference order first, then live-only keys.
	require.Equal(t, []uint32{0x40, 0x10, 0x30}, groups[encounterGroup].order)

	// Adopted encounter counters start at max(minimum, 1), never at the
	// reference's own counter; live entries are untouched.
	require.Equal(t, uint32(1), binary.LittleEndian.Uint32(entryOf(t, groups[encounterGroup], 0x40)[4:]))
	require.Equal(t, uint32(5), binary.LittleEndian.Uint32(entryOf(t, groups[encounterGroup], 0x10)[4:]))
	require.Equal(t, uint32(2), binary.LittleEndian.Uint32(entryOf(t, groups[encounterGroup], 0x30)[4:]))

	// Adopted entries outside the encounter group get a zeroed payload.
	require.Equal(t, []uint32{0x40}, groups[0].order)
	require.Equal(t, uint32(0), binary.LittleEndian.Uint32(entryOf(t, groups[0], 0x40)[4:]))

	// Rebuilt headers keep the live magic and carry count x 4.
	require.Equal(t, byte(encounterGroup+1), groups[encounterGroup].header[0])
	require.Equal(t, uint32(3*4), binary.LittleEndian.Uint32(groups[encounterGroup].header[4:]))
}

func TestEnsureBestiary_NoChangeReturnsInput(t *testing.T) {
	live := [BestiaryGroupCount][]testBestiaryEntry{
		encounterGroup: {{key: 0x10, payload: 5}},
	}
	ref := bestiaryBlob([BestiaryGroupCount][]testBestiaryEntry{
		encounterGroup: {{key: 0x10, payload: 1}},
	})
	buf := buildSave(t, bestiaryBlob(live))

	out, err := EnsureBestiaryEncounterMinimum(buf, 3, WithBestiaryReference(ref))
	require.NoError(t, err)
	require.Equal(t, buf, out)
	require.Len(t, out, len(buf))
}

func TestEnsureBestiary_EmptyReferenceAndLive(t *testing.T) {
	empty := bestiaryBlob([BestiaryGroupCount][]testBestiaryEntry{})
	buf := buildSave(t, empty)

	out, err := EnsureBestiaryEncounterMinimum(buf, 5, WithBestiaryReference(empty))
	require.NoError(t, err)
	require.Equal(t, buf, out)
}

func TestEnsureBestiary_BundledReference(t *testing.T) {
	buf := buildSave(t, emptyBestiary())
	trailer := clone(buf[len(buf)-4:])

	out, err := EnsureBestiaryEncounterMinimum(buf, 1)
	require.NoError(t, err)
	require.Greater(t, len(out), len(buf))

	groups := parseSaveBestiary(t, out)
	require.Len(t, groups[encounterGroup].order, 479)
	for key, entry := range groups[encounterGroup].entries {
		require.Equal(t, uint32(1), binary.LittleEndian.Uint32(entry[4:]), "key %#x", key)
	}

	// Zeroed live headers adopt the reference magic.
	require.Equal(t, byte(4), groups[0].header[0])
	require.Equal(t, byte(2), groups[1].header[0])
	require.Equal(t, byte(3), groups[2].header[0])
	require.Equal(t, byte(1), groups[3].header[0])

	// Splicing preserves everything after the bestiary, trailer included;
	// restamping the checksum stays the caller's job.
	require.Equal(t, trailer, out[len(out)-4:])
}

func TestEnsureBestiary_NegativeMinimum(t *testing.T) {
	live := [BestiaryGroupCount][]testBestiaryEntry{
		encounterGroup: {{key: 0x10, payload: 5}},
	}
	ref := bestiaryBlob([BestiaryGroupCount][]testBestiaryEntry{
		encounterGroup: {{key: 0x10}, {key: 0x20}},
	})
	buf := buildSave(t, bestiaryBlob(live))

	out, err := EnsureBestiaryEncounterMinimum(buf, -7, WithBestiaryReference(ref))
	require.NoError(t, err)

	groups := parseSaveBestiary(t, out)
	require.Equal(t, uint32(5), binary.LittleEndian.Uint32(entryOf(t, groups[encounterGroup], 0x10)[4:]))
	require.Equal(t, uint32(1), binary.LittleEndian.Uint32(entryOf(t, groups[encounterGroup], 0x20)[4:]))
}
