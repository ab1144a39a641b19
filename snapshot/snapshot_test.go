package snapshot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rucen/isaacsave/compress"
	"github.com/rucen/isaacsave/errs"
)

func testSave() []byte {
	data := make([]byte, 4096)
	for i := 0; i < len(data); i += 64 {
		data[i] = byte(i)
	}

	return data
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	save := testSave()

	for _, typ := range []compress.Type{
		compress.TypeNone, compress.TypeZstd, compress.TypeS2, compress.TypeLZ4,
	} {
		t.Run(typ.String(), func(t *testing.T) {
			blob, err := Pack(save, WithCompression(typ))
			require.NoError(t, err)

			got, err := Compression(blob)
			require.NoError(t, err)
			require.Equal(t, typ, got)

			restored, err := Unpack(blob)
			require.NoError(t, err)
			require.Equal(t, save, restored)
		})
	}
}

func TestPack_DefaultsToZstd(t *testing.T) {
	blob, err := Pack(testSave())
	require.NoError(t, err)

	typ, err := Compression(blob)
	require.NoError(t, err)
	require.Equal(t, compress.TypeZstd, typ)
}

func TestPack_UnknownCompression(t *testing.T) {
	_, err := Pack(testSave(), WithCompression(compress.Type(99)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestUnpack_RejectsBadFraming(t *testing.T) {
	blob, err := Pack(testSave())
	require.NoError(t, err)

	t.Run("too short", func(t *testing.T) {
		_, err := Unpack(blob[:headerSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), blob...)
		bad[0] ^= 0xFF
		_, err := Unpack(bad)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("unsupported version", func(t *testing.T) {
		bad := append([]byte(nil), blob...)
		bad[4] = 99
		_, err := Unpack(bad)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("unknown codec byte", func(t *testing.T) {
		bad := append([]byte(nil), blob...)
		bad[5] = 99
		_, err := Unpack(bad)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("length mismatch", func(t *testing.T) {
		bad := append([]byte(nil), blob...)
		bad[8]++
		_, err := Unpack(bad)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})
}

func TestUnpack_DetectsCorruptPayload(t *testing.T) {
	// Uncompressed payload so a bit flip survives decoding and must be
	// caught by the fingerprint instead.
	blob, err := Pack(testSave(), WithCompression(compress.TypeNone))
	require.NoError(t, err)

	bad := append([]byte(nil), blob...)
	bad[headerSize+10] ^= 0x01
	_, err = Unpack(bad)
	require.ErrorIs(t, err, errs.ErrSnapshotFingerprint)
}

func TestPackUnpack_EmptySave(t *testing.T) {
	blob, err := Pack(nil)
	require.NoError(t, err)

	restored, err := Unpack(blob)
	require.NoError(t, err)
	require.Empty(t, restored)
}

func TestCompression_RejectsGarbage(t *testing.T) {
	_, err := Compression([]byte("nope"))
	require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
}
