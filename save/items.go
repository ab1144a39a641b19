package save

import (
	"fmt"

	"github.com/rucen/isaacsave/errs"
	"github.com/rucen/isaacsave/section"
)

// Item collection flags. Each item's 4-byte record carries the same 3-bit
// flag set in its bytes 0 and 1; both must be kept in agreement. Bytes 2
// and 3 of a record are opaque to this codec and never touched.
const (
	ItemFlagSeen      = 0x01
	ItemFlagTouched   = 0x02
	ItemFlagCollected = 0x04

	itemFlagMask = ItemFlagSeen | ItemFlagTouched | ItemFlagCollected
)

// ItemCount is the highest item id tracked by the save format.
const ItemCount = 732

const itemStride = 4

// skippedItemIDs are ids with no corresponding game item. Their records
// exist in the section but must never be written; every item operation
// ignores them.
var skippedItemIDs = map[int]bool{
	43: true, 59: true, 61: true, 235: true, 587: true, 613: true,
	620: true, 630: true, 648: true, 656: true, 662: true, 666: true,
	718: true,
}

// ItemSkipped reports whether an item id is on the skip list.
func ItemSkipped(id int) bool {
	return skippedItemIDs[id]
}

// Items returns one flag byte per item id 1..732 (the byte at relative
// offset 1 of each record). Entries for skip-listed ids are returned as
// stored; callers are expected to ignore them.
func Items(data []byte) ([]byte, error) {
	base, err := itemsRegion(data)
	if err != nil {
		return nil, err
	}

	out := make([]byte, ItemCount)
	for id := 1; id <= ItemCount; id++ {
		out[id-1] = data[base+(id-1)*itemStride+1]
	}

	return out, nil
}

// UpdateItems returns a copy of data in which exactly the given item ids
// carry the full SEEN|TOUCHED|COLLECTED flag set, and every other id has
// those three bits cleared. Both flag bytes of each record are updated
// together; bits outside the flag mask are preserved. Ids outside 1..732
// and skip-listed ids are ignored.
func UpdateItems(data []byte, ids []int) ([]byte, error) {
	base, err := itemsRegion(data)
	if err != nil {
		return nil, err
	}

	selected := normalizeItemIDs(ids)
	out := clone(data)
	for id := 1; id <= ItemCount; id++ {
		if skippedItemIDs[id] {
			continue
		}
		entry := base + (id-1)*itemStride
		for _, ofs := range [2]int{entry, entry + 1} {
			if selected[id] {
				out[ofs] |= itemFlagMask
			} else {
				out[ofs] &^= itemFlagMask
			}
		}
	}

	return out, nil
}

// MarkItemsSeen returns a copy of data with only the SEEN bit set on the
// given ids, in both flag bytes of each record. Unlike UpdateItems this is
// incremental: every other id and every other bit is left untouched. An
// empty (or fully filtered) id set returns the input buffer unchanged.
func MarkItemsSeen(data []byte, ids []int) ([]byte, error) {
	selected := normalizeItemIDs(ids)
	if len(selected) == 0 {
		return data, nil
	}

	base, err := itemsRegion(data)
	if err != nil {
		return nil, err
	}

	out := clone(data)
	for id := range selected {
		entry := base + (id-1)*itemStride
		out[entry] |= ItemFlagSeen
		out[entry+1] |= ItemFlagSeen
	}

	return out, nil
}

// normalizeItemIDs filters an id list down to valid, non-skipped item ids.
func normalizeItemIDs(ids []int) map[int]bool {
	selected := make(map[int]bool, len(ids))
	for _, id := range ids {
		if id >= 1 && id <= ItemCount && !skippedItemIDs[id] {
			selected[id] = true
		}
	}

	return selected
}

func itemsRegion(data []byte) (int, error) {
	offsets, err := section.Offsets(data)
	if err != nil {
		return 0, fmt.Errorf("locating items section: %w", err)
	}
	base := offsets[section.Items]
	if base+ItemCount*itemStride > len(data) {
		return 0, errs.ErrSectionTruncated
	}

	return base, nil
}
