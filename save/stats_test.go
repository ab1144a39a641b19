package save

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rucen/isaacsave/errs"
	"github.com/rucen/isaacsave/field"
	"github.com/rucen/isaacsave/section"
)

func TestStatValue_RoundTrip(t *testing.T) {
	buf := buildSave(t, emptyBestiary())

	out, err := SetStatValue(buf, StatDonationMachine, 999)
	require.NoError(t, err)
	out, err = SetStatValue(out, StatWinStreak, 7)
	require.NoError(t, err)

	v, err := StatValue(out, StatDonationMachine)
	require.NoError(t, err)
	require.Equal(t, uint32(999), v)

	v, err = StatValue(out, StatWinStreak)
	require.NoError(t, err)
	require.Equal(t, uint32(7), v)

	// Neighbors are untouched.
	v, err = StatValue(out, StatEdenTokens)
	require.NoError(t, err)
	require.Equal(t, uint32(0), v)
}

func TestSetStatValue_WritesFixedOffset(t *testing.T) {
	buf := buildSave(t, emptyBestiary())

	out, err := SetStatValue(buf, StatGreedMachine, 0x01020304)
	require.NoError(t, err)

	offsets, err := section.Offsets(out)
	require.NoError(t, err)
	addr := offsets[section.Stats] + 0x4 + 0x1B0
	require.Equal(t, uint64(0x01020304), field.ReadUint(out, addr, 4))
}

func TestStatValue_UnknownStat(t *testing.T) {
	buf := buildSave(t, emptyBestiary())

	_, err := StatValue(buf, Stat(9999))
	require.ErrorIs(t, err, errs.ErrUnknownStat)
	_, err = SetStatValue(buf, Stat(-1), 1)
	require.ErrorIs(t, err, errs.ErrUnknownStat)
}

func TestStat_String(t *testing.T) {
	require.Equal(t, "eden tokens", StatEdenTokens.String())
	require.Equal(t, "stat(9999)", Stat(9999).String())
}

func TestSetStatValue_DoesNotMutateInput(t *testing.T) {
	buf := buildSave(t, emptyBestiary())
	before := clone(buf)

	_, err := SetStatValue(buf, StatDeaths, 123)
	require.NoError(t, err)
	require.Equal(t, before, buf)
}
