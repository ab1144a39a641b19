// Package snapshot packs save images into self-describing compressed
// backups. A snapshot is a small fixed header followed by the compressed
// save bytes; the header records the codec, the original length and an
// xxHash64 fingerprint of the uncompressed image, so unpacking can detect
// truncation and corruption before handing the save back.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/rucen/isaacsave/compress"
	"github.com/rucen/isaacsave/errs"
	"github.com/rucen/isaacsave/internal/hash"
	"github.com/rucen/isaacsave/internal/options"
)

// Snapshot header layout, all multi-byte fields little-endian:
//
//	+0   4  magic "ISSB"
//	+4   1  format version, currently 1
//	+5   1  compress.Type of the payload
//	+6   2  reserved, zero
//	+8   4  uncompressed save length
//	+12  8  xxHash64 fingerprint of the uncompressed save
//	+20  -  compressed payload
const (
	headerSize = 20

	formatVersion = 1
)

var magic = []byte("ISSB")

type config struct {
	compression compress.Type
}

// Option configures packing.
type Option = options.Option[*config]

// WithCompression selects the payload codec. The default is Zstd.
func WithCompression(t compress.Type) Option {
	return options.NoError(func(cfg *config) {
		cfg.compression = t
	})
}

// Pack frames the save image as a snapshot. The input is not modified.
func Pack(save []byte, opts ...Option) ([]byte, error) {
	cfg := config{compression: compress.TypeZstd}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.NewCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(save)
	if err != nil {
		return nil, fmt.Errorf("compressing snapshot payload: %w", err)
	}

	out := make([]byte, headerSize, headerSize+len(payload))
	copy(out[0:4], magic)
	out[4] = formatVersion
	out[5] = byte(cfg.compression)
	binary.LittleEndian.PutUint32(out[8:12], uint32(len(save)))
	binary.LittleEndian.PutUint64(out[12:20], hash.Fingerprint(save))

	return append(out, payload...), nil
}

// Unpack restores the save image from a snapshot. It fails with
// ErrInvalidSnapshot on bad framing and ErrSnapshotFingerprint when the
// restored bytes do not hash to the recorded fingerprint.
func Unpack(blob []byte) ([]byte, error) {
	if len(blob) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", errs.ErrInvalidSnapshot, len(blob))
	}
	if !bytes.Equal(blob[0:4], magic) {
		return nil, fmt.Errorf("%w: bad magic", errs.ErrInvalidSnapshot)
	}
	if blob[4] != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidSnapshot, blob[4])
	}

	codec, err := compress.NewCodec(compress.Type(blob[5]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSnapshot, err)
	}

	save, err := codec.Decompress(blob[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSnapshot, err)
	}

	wantLen := int(binary.LittleEndian.Uint32(blob[8:12]))
	if len(save) != wantLen {
		return nil, fmt.Errorf("%w: payload restores to %d bytes, header says %d",
			errs.ErrInvalidSnapshot, len(save), wantLen)
	}
	if hash.Fingerprint(save) != binary.LittleEndian.Uint64(blob[12:20]) {
		return nil, errs.ErrSnapshotFingerprint
	}

	return save, nil
}

// Compression reports the codec a snapshot was packed with.
func Compression(blob []byte) (compress.Type, error) {
	if len(blob) < headerSize || !bytes.Equal(blob[0:4], magic) {
		return compress.TypeNone, errs.ErrInvalidSnapshot
	}

	return compress.Type(blob[5]), nil
}
