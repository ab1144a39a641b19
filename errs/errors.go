// Package errs defines the sentinel errors shared across the isaacsave
// packages. Callers can match them with errors.Is after any amount of
// wrapping at the call sites.
package errs

import "errors"

var (
	// ErrBufferTooSmall indicates the buffer cannot hold the fixed file
	// header, the section table, and the checksum trailer.
	ErrBufferTooSmall = errors.New("buffer too small for save file layout")

	// ErrSectionTruncated indicates the section table walk ran past the end
	// of the buffer before all section descriptors were visited.
	ErrSectionTruncated = errors.New("section table truncated")

	// ErrSectionIndexRange indicates a section index outside 0..10.
	ErrSectionIndexRange = errors.New("section index out of range")

	// ErrCharacterIndexRange indicates a character index outside the roster.
	ErrCharacterIndexRange = errors.New("character index out of range")

	// ErrChecklistLength indicates an update with the wrong number of
	// checklist mark values.
	ErrChecklistLength = errors.New("checklist update requires one value per mark")

	// ErrBestiaryTruncated indicates a bestiary group header or entry array
	// extends past the end of its buffer.
	ErrBestiaryTruncated = errors.New("bestiary data truncated")

	// ErrUnknownStat indicates a stat name with no known offset.
	ErrUnknownStat = errors.New("unknown stat counter")

	// ErrInvalidSnapshot indicates a snapshot container with a bad magic
	// number, version, or header.
	ErrInvalidSnapshot = errors.New("invalid snapshot container")

	// ErrSnapshotFingerprint indicates the unpacked payload does not match
	// the fingerprint recorded when the snapshot was packed.
	ErrSnapshotFingerprint = errors.New("snapshot fingerprint mismatch")

	// ErrInvalidCompression indicates an unsupported compression type byte.
	ErrInvalidCompression = errors.New("invalid compression type")
)
