package save

import (
	"fmt"

	"github.com/rucen/isaacsave/errs"
	"github.com/rucen/isaacsave/field"
	"github.com/rucen/isaacsave/section"
)

// Characters is the playable roster in save-file order. The checklist
// addressing scheme below is selected by position in this list.
var Characters = []string{
	"Isaac", "Magdalene", "Cain", "Judas", "???", "Eve", "Samson",
	"Azazel", "Lazarus", "Eden", "The Lost", "Lilith", "Keeper",
	"Apollyon", "The Forgotten", "Bethany", "Jacob & Esau",
	"Tainted Isaac", "Tainted Magdalene", "Tainted Cain", "Tainted Judas",
	"Tainted ???", "Tainted Eve", "Tainted Samson", "Tainted Azazel",
	"Tainted Lazarus", "Tainted Eden", "Tainted Lost", "Tainted Lilith",
	"Tainted Keeper", "Tainted Apollyon", "Tainted Forgotten",
	"Tainted Bethany", "Tainted Jacob",
}

// ChecklistMarks names the 12 completion marks tracked per character, in
// mark-index order.
var ChecklistMarks = []string{
	"Isaac's Heart", "Isaac", "Satan", "Boss Rush", "Chest", "Dark Room",
	"Mega Satan", "Hush", "Greed", "Delirium", "Mother", "Beast",
}

// ChecklistMarkCount is the number of completion marks per character.
const ChecklistMarkCount = 12

// Bits within a checklist mark value.
const (
	ChecklistFlagNormal   = 0x01
	ChecklistFlagHard     = 0x02
	ChecklistFlagGreed    = 0x04
	ChecklistFlagGreedier = 0x08
)

// greedMarkIndex is the one mark whose unlock state is carried by the
// greed-mode bits instead of the normal/hard pair.
const greedMarkIndex = 8

// MarkUnlockMask returns the bit set that means "unlocked" for the given
// mark index.
func MarkUnlockMask(markIndex int) uint32 {
	if markIndex == greedMarkIndex {
		return ChecklistFlagGreed | ChecklistFlagGreedier
	}

	return ChecklistFlagNormal | ChecklistFlagHard
}

// CharacterIndex returns the roster position of the named character, or -1
// if unknown.
func CharacterIndex(name string) int {
	for i, c := range Characters {
		if c == name {
			return i
		}
	}

	return -1
}

// checklistGap is one entry of a bucket's gap schedule: after the mark at
// index after is processed, the running base moves forward by gap bytes.
// Equivalently, the gap is included in the address of every mark with a
// strictly larger index.
type checklistGap struct {
	after int
	gap   int
}

// checklistBucket holds the addressing parameters of one character
// grouping. Three incompatible schemes coexist in the stats section, left
// behind by successive game expansions; none of the offsets follow a
// pattern beyond what is tabulated here, and all of them are bit-exact
// format facts.
type checklistBucket struct {
	base       int
	charStride int
	markStride int
	gaps       []checklistGap
}

var (
	// Characters 0..13, the original roster.
	normalBucket = checklistBucket{
		base:       0x6C,
		charStride: 4,
		markStride: 14 * 4,
		gaps:       []checklistGap{{5, 0x14}, {8, 0x3C}, {9, 0x3B0}, {10, 0x50}},
	}

	// Character 14 (The Forgotten) has a single record of its own.
	uniqueBucket = checklistBucket{
		base:       0x32C,
		charStride: 0,
		markStride: 4,
		gaps:       []checklistGap{{8, 0x4}, {9, 0x37C}, {10, 0x84}},
	}

	// Characters 15 and up, added with the last expansion.
	taintedBucket = checklistBucket{
		base:       0x31C,
		charStride: 4,
		markStride: 19 * 4,
		gaps:       []checklistGap{{8, 0x4C}, {9, 0x3C}, {10, 0x3C}},
	}
)

func bucketFor(charIndex int) checklistBucket {
	switch {
	case charIndex == 14:
		return uniqueBucket
	case charIndex > 14:
		return taintedBucket
	default:
		return normalBucket
	}
}

// checklistAddress resolves the byte offset of one (character, mark) value
// relative to statsBase, the stats section's data offset. Gaps from the
// bucket's schedule accumulate for marks strictly after their trigger
// index, reproducing the running-base walk of the original layout.
func checklistAddress(statsBase, charIndex, markIndex int) int {
	b := bucketFor(charIndex)

	addr := statsBase + b.base + charIndex*b.charStride + markIndex*b.markStride
	for _, g := range b.gaps {
		if g.after < markIndex {
			addr += g.gap
		}
	}

	return addr
}

// ChecklistUnlocks reads the 12 completion mark values of one character as
// 4-byte little-endian bitmasks, in mark-index order.
func ChecklistUnlocks(data []byte, charIndex int) ([]uint32, error) {
	statsBase, err := checklistStatsBase(data, charIndex)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, ChecklistMarkCount)
	for i := range out {
		addr := checklistAddress(statsBase, charIndex, i)
		if addr+4 > len(data) {
			return nil, errs.ErrSectionTruncated
		}
		out[i] = uint32(field.ReadUint(data, addr, 4))
	}

	return out, nil
}

// UpdateChecklistUnlocks returns a copy of data with the character's 12
// completion mark values replaced by the given bitmasks.
func UpdateChecklistUnlocks(data []byte, charIndex int, values []uint32) ([]byte, error) {
	if len(values) != ChecklistMarkCount {
		return nil, errs.ErrChecklistLength
	}
	statsBase, err := checklistStatsBase(data, charIndex)
	if err != nil {
		return nil, err
	}

	out := clone(data)
	for i, v := range values {
		addr := checklistAddress(statsBase, charIndex, i)
		if addr+4 > len(out) {
			return nil, errs.ErrSectionTruncated
		}
		field.PutUint(out, addr, 4, uint64(v))
	}

	return out, nil
}

func checklistStatsBase(data []byte, charIndex int) (int, error) {
	if charIndex < 0 || charIndex >= len(Characters) {
		return 0, errs.ErrCharacterIndexRange
	}
	offsets, err := section.Offsets(data)
	if err != nil {
		return 0, fmt.Errorf("locating stats section: %w", err)
	}

	return offsets[section.Stats], nil
}
