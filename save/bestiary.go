package save

import (
	"encoding/binary"
	"fmt"

	"github.com/rucen/isaacsave/errs"
	"github.com/rucen/isaacsave/internal/options"
	"github.com/rucen/isaacsave/section"
)

// The bestiary section holds four groups in fixed order. Each group is an
// 8-byte header (4 opaque bytes, then a 4-byte little-endian encoded count)
// followed by 8-byte entries. The live entry count is encoded count / 4 —
// an empirical constant of the format, not derivable from anything else
// and not assumed to hold for other sections. An entry's first 4 bytes are
// its identity key; the last 4 are payload, interpreted only in group 3
// where they hold the encounter counter.
const (
	BestiaryGroupCount = 4

	bestiaryHeaderSize = 8
	bestiaryEntrySize  = 8

	// encounterGroup is the group whose entry payloads are per-enemy
	// encounter counters.
	encounterGroup = 3
)

// bestiaryGroup is one parsed group: its header bytes, its entries keyed by
// the 4-byte identity prefix, and the key order they appeared in.
type bestiaryGroup struct {
	header  [bestiaryHeaderSize]byte
	entries map[uint32][bestiaryEntrySize]byte
	order   []uint32
}

// BestiaryOffsets locates the four group headers inside the bestiary
// section by walking header to header: each group spans 8 + count×8 bytes.
func BestiaryOffsets(data []byte) ([BestiaryGroupCount]int, error) {
	var offsets [BestiaryGroupCount]int

	sectionOffsets, err := section.Offsets(data)
	if err != nil {
		return offsets, fmt.Errorf("locating bestiary section: %w", err)
	}

	current := sectionOffsets[section.Bestiary]
	for i := 0; i < BestiaryGroupCount; i++ {
		if current+bestiaryHeaderSize > len(data) {
			return offsets, errs.ErrBestiaryTruncated
		}
		offsets[i] = current
		encoded := int(binary.LittleEndian.Uint32(data[current+4 : current+8]))
		current += bestiaryHeaderSize + (encoded/4)*bestiaryEntrySize
	}

	return offsets, nil
}

// readBestiaryGroups parses the four groups at the given header offsets.
func readBestiaryGroups(data []byte, offsets [BestiaryGroupCount]int) ([BestiaryGroupCount]bestiaryGroup, error) {
	var groups [BestiaryGroupCount]bestiaryGroup

	for i, ofs := range offsets {
		g, _, err := readBestiaryGroup(data, ofs)
		if err != nil {
			return groups, err
		}
		groups[i] = g
	}

	return groups, nil
}

// readBestiaryGroup parses a single group starting at ofs and returns it
// along with the offset just past its last entry.
func readBestiaryGroup(data []byte, ofs int) (bestiaryGroup, int, error) {
	var g bestiaryGroup

	if ofs < 0 || ofs+bestiaryHeaderSize > len(data) {
		return g, 0, errs.ErrBestiaryTruncated
	}
	copy(g.header[:], data[ofs:ofs+bestiaryHeaderSize])
	count := int(binary.LittleEndian.Uint32(g.header[4:8])) / 4

	// The count is untrusted input; reject it against the remaining bytes
	// before sizing any allocation by it.
	if count > (len(data)-ofs-bestiaryHeaderSize)/bestiaryEntrySize {
		return g, 0, errs.ErrBestiaryTruncated
	}

	g.entries = make(map[uint32][bestiaryEntrySize]byte, count)
	g.order = make([]uint32, 0, count)
	pos := ofs + bestiaryHeaderSize
	for n := 0; n < count; n++ {
		var entry [bestiaryEntrySize]byte
		copy(entry[:], data[pos:pos+bestiaryEntrySize])
		key := binary.LittleEndian.Uint32(entry[:4])
		g.entries[key] = entry
		g.order = append(g.order, key)
		pos += bestiaryEntrySize
	}

	return g, pos, nil
}

// parseBestiarySection parses a bare bestiary section (four groups starting
// at byte 0, as in the bundled reference snapshot). Trailing zero padding
// is tolerated; any trailing nonzero byte means the blob is not a bestiary
// section and parsing fails.
func parseBestiarySection(data []byte) ([BestiaryGroupCount]bestiaryGroup, bool) {
	var groups [BestiaryGroupCount]bestiaryGroup

	pos := 0
	for i := 0; i < BestiaryGroupCount; i++ {
		g, next, err := readBestiaryGroup(data, pos)
		if err != nil {
			return groups, false
		}
		groups[i] = g
		pos = next
	}
	for _, b := range data[pos:] {
		if b != 0 {
			return groups, false
		}
	}

	return groups, true
}

// loadReferenceBestiary resolves the "fully discovered" reference groups.
// A caller-provided blob is tried first — as a whole save file, then as a
// bare section — and the bundled snapshot serves as the fallback. Failure
// to resolve any reference is not an error; the merge then degrades to the
// live save's own entries.
func loadReferenceBestiary(provided []byte) ([BestiaryGroupCount]bestiaryGroup, bool) {
	candidates := make([][]byte, 0, 2)
	if len(provided) > 0 {
		candidates = append(candidates, provided)
	}
	if ref := referenceBestiarySection(); len(ref) > 0 {
		candidates = append(candidates, ref)
	}

	for _, candidate := range candidates {
		if offsets, err := BestiaryOffsets(candidate); err == nil {
			if groups, err := readBestiaryGroups(candidate, offsets); err == nil {
				return groups, true
			}
		}
		if groups, ok := parseBestiarySection(candidate); ok {
			return groups, true
		}
	}

	return [BestiaryGroupCount]bestiaryGroup{}, false
}

// BestiaryOption configures the bestiary merge.
type BestiaryOption = options.Option[*bestiaryConfig]

type bestiaryConfig struct {
	reference []byte
}

// WithBestiaryReference supplies a reference snapshot (a whole save file or
// a bare bestiary section) to merge against, instead of the bundled one.
func WithBestiaryReference(reference []byte) BestiaryOption {
	return options.NoError(func(cfg *bestiaryConfig) {
		cfg.reference = reference
	})
}

// EnsureBestiaryEncounterMinimum merges the live save's bestiary against
// the reference snapshot and returns the (possibly longer) result buffer:
//
//   - The merged key set is the union of the reference's and the live
//     save's group-3 keys, reference order first, and is shared by all four
//     rebuilt groups; a key absent from both sides of a group is skipped
//     for that group.
//   - Live entries win over reference entries. Adopted reference entries in
//     groups 0..2 get their payload zeroed; in group 3 they start at
//     max(minimum, 1).
//   - An entry whose bytes 2..3 are zero while the reference's are not gets
//     those two bytes copied from the reference.
//   - Group-3 counters are clamped up to minimum.
//   - Each rebuilt header's count field is set to entry count × 4, and the
//     rebuilt groups are spliced over the original group span.
//
// If nothing changed, the input buffer is returned as is, byte for byte.
// The bestiary section is the last content section before the checksum
// trailer, so growing it never shifts another section's stored data; all
// section offsets are recomputed on demand anyway.
func EnsureBestiaryEncounterMinimum(data []byte, minimum int, opts ...BestiaryOption) ([]byte, error) {
	var cfg bestiaryConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if minimum < 0 {
		minimum = 0
	}

	offsets, err := BestiaryOffsets(data)
	if err != nil {
		return nil, err
	}
	live, err := readBestiaryGroups(data, offsets)
	if err != nil {
		return nil, err
	}

	ref, haveRef := loadReferenceBestiary(cfg.reference)

	var refOrder []uint32
	if haveRef {
		refOrder = ref[encounterGroup].order
	}
	finalOrder := make([]uint32, 0, len(refOrder)+len(live[encounterGroup].order))
	seen := make(map[uint32]bool, len(refOrder))
	for _, key := range refOrder {
		if !seen[key] {
			finalOrder = append(finalOrder, key)
			seen[key] = true
		}
	}
	for _, key := range live[encounterGroup].order {
		if !seen[key] {
			finalOrder = append(finalOrder, key)
			seen[key] = true
		}
	}
	if len(finalOrder) == 0 {
		return data, nil
	}

	changed := false
	rebuilt := make([][]byte, 0, BestiaryGroupCount)
	for gi := 0; gi < BestiaryGroupCount; gi++ {
		header := live[gi].header

		headerMagicZero := header[0] == 0 && header[1] == 0 && header[2] == 0 && header[3] == 0
		if headerMagicZero && haveRef {
			copy(header[:4], ref[gi].header[:4])
		}

		group := make([]byte, 0, bestiaryHeaderSize+len(finalOrder)*bestiaryEntrySize)
		group = append(group, header[:]...)
		entryCount := 0
		for _, key := range finalOrder {
			liveEntry, haveLive := live[gi].entries[key]
			refEntry, haveRefEntry := ref[gi].entries[key]

			var chunk [bestiaryEntrySize]byte
			switch {
			case haveLive:
				chunk = liveEntry
			case haveRefEntry:
				chunk = refEntry
				changed = true
			default:
				continue
			}

			if haveRefEntry && (!haveLive || (chunk[2] == 0 && chunk[3] == 0)) {
				if chunk[2] != refEntry[2] || chunk[3] != refEntry[3] {
					chunk[2], chunk[3] = refEntry[2], refEntry[3]
					changed = true
				}
			}

			if gi == encounterGroup {
				current := binary.LittleEndian.Uint32(chunk[4:8])
				next := current
				switch {
				case !haveLive:
					next = uint32(max(minimum, 1))
				case current < uint32(minimum):
					next = uint32(minimum)
				}
				if next != current {
					binary.LittleEndian.PutUint32(chunk[4:8], next)
					changed = true
				}
			} else if !haveLive {
				if chunk[4] != 0 || chunk[5] != 0 || chunk[6] != 0 || chunk[7] != 0 {
					chunk[4], chunk[5], chunk[6], chunk[7] = 0, 0, 0, 0
					changed = true
				}
			}

			group = append(group, chunk[:]...)
			entryCount++
		}

		binary.LittleEndian.PutUint32(group[4:8], uint32(entryCount*4))
		rebuilt = append(rebuilt, group)
	}

	if !changed {
		return data, nil
	}

	// Splice the rebuilt groups over the original group span.
	start := offsets[0]
	end := offsets[0]
	for gi, ofs := range offsets {
		end = ofs + bestiaryHeaderSize + len(live[gi].order)*bestiaryEntrySize
	}

	total := 0
	for _, group := range rebuilt {
		total += len(group)
	}
	out := make([]byte, 0, start+total+len(data)-end)
	out = append(out, data[:start]...)
	for _, group := range rebuilt {
		out = append(out, group...)
	}
	out = append(out, data[end:]...)

	return out, nil
}
