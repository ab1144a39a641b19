package save

import (
	"fmt"

	"github.com/rucen/isaacsave/errs"
	"github.com/rucen/isaacsave/field"
	"github.com/rucen/isaacsave/section"
)

// secretOverride describes extra fields that must track a secret's unlock
// state. A few secrets are not decided by the secret array alone; the game
// re-derives them from stat counters elsewhere in the stats section, so
// those counters have to be forced along with the array byte.
type secretOverride struct {
	// offsets are relative to the stats section's data offset.
	offsets []int
	width   int
	unlock  int64
	lock    int64
}

// secretOverrides is keyed by secret id. Secret 641 additionally requires
// five 4-byte stat fields to read 1 when unlocked and 0 when locked.
var secretOverrides = map[int]secretOverride{
	641: {
		offsets: []int{0x0526, 0x0B0A, 0x0E65, 0x0F24, 0x0FD0},
		width:   4,
		unlock:  1,
		lock:    0,
	},
}

// Secrets returns one byte per secret id, in id order starting at id 1.
// Nonzero means unlocked. The array length comes from the secrets section's
// own entry count, which grows with game updates.
func Secrets(data []byte) ([]byte, error) {
	base, count, err := secretsRegion(data)
	if err != nil {
		return nil, err
	}

	out := make([]byte, count)
	copy(out, data[base+1:base+1+count])

	return out, nil
}

// UpdateSecrets returns a copy of data in which exactly the given secret
// ids are unlocked: every secret byte is cleared first, then the requested
// ids are set to 1. Ids outside 1..count, duplicates, and non-positive
// values are ignored. Afterwards the override table is applied so that
// derived stat fields agree with the requested unlock set.
//
// Deriving the new state purely from the id set makes the operation
// idempotent regardless of the buffer's prior contents.
func UpdateSecrets(data []byte, ids []int) ([]byte, error) {
	base, count, err := secretsRegion(data)
	if err != nil {
		return nil, err
	}

	requested := make(map[int]bool, len(ids))
	for _, id := range ids {
		if id > 0 {
			requested[id] = true
		}
	}

	out := clone(data)
	for i := 1; i <= count; i++ {
		out[base+i] = 0
	}
	for id := range requested {
		if id <= count {
			out[base+id] = 1
		}
	}

	applySecretOverrides(out, requested)

	return out, nil
}

// applySecretOverrides writes each override field's unlock or lock value in
// place, depending on membership in the requested set. Targets that fall
// outside the buffer are skipped rather than treated as errors, matching
// the tolerance the update operations extend to stray ids.
func applySecretOverrides(out []byte, requested map[int]bool) {
	offsets, err := section.Offsets(out)
	if err != nil {
		return
	}
	statsBase := offsets[section.Stats]

	for id, ov := range secretOverrides {
		value := ov.lock
		if requested[id] {
			value = ov.unlock
		}
		for _, rel := range ov.offsets {
			target := statsBase + rel
			if target < 0 || target+ov.width > len(out) {
				continue
			}
			field.PutInt(out, target, ov.width, value)
		}
	}
}

// secretsRegion resolves the secrets section's data offset and entry count
// and verifies the array fits in the buffer.
func secretsRegion(data []byte) (base, count int, err error) {
	offsets, err := section.Offsets(data)
	if err != nil {
		return 0, 0, fmt.Errorf("locating secrets section: %w", err)
	}
	count, err = section.EntryCount(data, section.Secrets)
	if err != nil {
		return 0, 0, err
	}
	base = offsets[section.Secrets]
	if base+1+count > len(data) {
		return 0, 0, errs.ErrSectionTruncated
	}

	return base, count, nil
}
