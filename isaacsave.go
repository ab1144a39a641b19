// Package isaacsave reads and edits the binary save files of The Binding
// of Isaac: Repentance.
//
// A save file is an opaque 16-byte header, a table of 11 section
// descriptors with their data regions, and a 4-byte checksum trailer
// covering everything after the header. The library decodes that layout
// and edits unlock state in place: secrets, collection items, challenges,
// per-character completion marks, named stat counters, and the bestiary.
//
// # Basic Usage
//
// Loading, editing, and restamping a save:
//
//	import "github.com/rucen/isaacsave"
//
//	data, _ := os.ReadFile("persistentgamedata1.dat")
//
//	buf, err := isaacsave.Load(data)
//	if err != nil {
//	    return err
//	}
//
//	// Unlock secrets 1..3 and mark two items collected.
//	buf, _ = isaacsave.UpdateSecrets(buf, []int{1, 2, 3})
//	buf, _ = isaacsave.UpdateItems(buf, []int{1, 2})
//
//	// Every edit invalidates the trailer; stamp it last.
//	buf = isaacsave.StampChecksum(buf)
//	os.WriteFile("persistentgamedata1.dat", buf, 0o644)
//
// Taking a compressed, fingerprinted backup before editing:
//
//	backup, _ := isaacsave.PackSnapshot(data)
//	os.WriteFile("persistentgamedata1.bak", backup, 0o644)
//
// # Package Structure
//
// This package provides top-level wrappers around the save and snapshot
// packages, covering the common cases. For section-level access, the raw
// checksum, or the compression codecs, use the section, checksum, field,
// compress and snapshot packages directly.
//
// All editing functions are clone-on-write: they never modify the input
// buffer and return a new one. File I/O stays with the caller.
package isaacsave

import (
	"github.com/rucen/isaacsave/save"
	"github.com/rucen/isaacsave/snapshot"
)

// Load validates the save file layout and returns a private copy of it.
func Load(data []byte) ([]byte, error) {
	return save.Load(data)
}

// StampChecksum returns a copy of data with the checksum trailer
// recomputed. Call it after the last edit, before writing the file back.
func StampChecksum(data []byte) []byte {
	return save.StampChecksum(data)
}

// UpdateSecrets returns a copy of data with exactly the given secret ids
// unlocked, applying any linked stat-field overrides.
func UpdateSecrets(data []byte, ids []int) ([]byte, error) {
	return save.UpdateSecrets(data, ids)
}

// UpdateItems returns a copy of data with exactly the given item ids
// marked seen, touched and collected.
func UpdateItems(data []byte, ids []int) ([]byte, error) {
	return save.UpdateItems(data, ids)
}

// UpdateChallenges returns a copy of data with exactly the given
// challenge ids marked completed.
func UpdateChallenges(data []byte, ids []int) ([]byte, error) {
	return save.UpdateChallenges(data, ids)
}

// UnlockAllMarks returns a copy of data with every completion mark of
// every character raised to its full unlock mask.
func UnlockAllMarks(data []byte) ([]byte, error) {
	values := make([]uint32, save.ChecklistMarkCount)
	for i := range values {
		values[i] = save.MarkUnlockMask(i)
	}

	out := data
	var err error
	for charIndex := range save.Characters {
		out, err = save.UpdateChecklistUnlocks(out, charIndex, values)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// EnsureBestiaryEncounterMinimum raises every bestiary encounter counter
// to at least minimum, adopting missing enemies from the reference
// snapshot. See save.EnsureBestiaryEncounterMinimum for the options.
func EnsureBestiaryEncounterMinimum(data []byte, minimum int, opts ...save.BestiaryOption) ([]byte, error) {
	return save.EnsureBestiaryEncounterMinimum(data, minimum, opts...)
}

// PackSnapshot frames the save as a compressed, fingerprinted backup.
func PackSnapshot(data []byte, opts ...snapshot.Option) ([]byte, error) {
	return snapshot.Pack(data, opts...)
}

// UnpackSnapshot restores a save from a backup made with PackSnapshot.
func UnpackSnapshot(blob []byte) ([]byte, error) {
	return snapshot.Unpack(blob)
}
