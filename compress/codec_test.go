package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rucen/isaacsave/errs"
)

// savePayload mimics a save image: long zero runs with scattered
// counters, which every real codec should shrink.
func savePayload() []byte {
	data := make([]byte, 8192)
	for i := 0; i < len(data); i += 96 {
		data[i] = byte(i / 96)
		data[i+1] = 0x01
	}

	return data
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := savePayload()

	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := NewCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			if typ != TypeNone {
				require.Less(t, len(compressed), len(payload))
			}

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, restored))
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := NewCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			restored, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestNoOpCodec_SharesInput(t *testing.T) {
	codec := NewNoOpCodec()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestNewCodec_UnknownType(t *testing.T) {
	_, err := NewCodec(Type(200))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestParseType(t *testing.T) {
	for name, want := range map[string]Type{
		"":     TypeNone,
		"none": TypeNone,
		"zstd": TypeZstd,
		"s2":   TypeS2,
		"lz4":  TypeLZ4,
	} {
		got, err := ParseType(name)
		require.NoError(t, err, "name %q", name)
		require.Equal(t, want, got, "name %q", name)
	}

	_, err := ParseType("brotli")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestType_String(t *testing.T) {
	require.Equal(t, "zstd", TypeZstd.String())
	require.Equal(t, "compress.Type(200)", Type(200).String())
}

func TestZstdCodec_RejectsGarbage(t *testing.T) {
	codec := NewZstdCodec()
	_, err := codec.Decompress([]byte("definitely not a zstd frame"))
	require.Error(t, err)
}
