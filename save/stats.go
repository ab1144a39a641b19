package save

import (
	"fmt"

	"github.com/rucen/isaacsave/errs"
	"github.com/rucen/isaacsave/field"
	"github.com/rucen/isaacsave/section"
)

// Stat identifies a named numeric counter inside the stats section. The
// stats section is a flat blob, not a record array; each counter is a
// 4-byte little-endian value at a fixed offset past the section's leading
// 4 bytes.
type Stat int

const (
	StatMomKills Stat = iota
	StatRocksBroken
	StatTintedRocksBroken
	StatPoopDestroyed
	StatDeathCardsUsed
	StatArcadesVisited
	StatDeaths
	StatShopkeepersDestroyed
	StatShellGamePlays
	StatBloodDonations
	StatSlotsDestroyed
	StatDonationMachine
	StatEdenTokens
	StatWinStreak
	StatBestStreak
	StatLossStreak
	StatGreedMachine
	StatGreedPenniesDonated
	StatCavesCleared
	StatBasementsCleared
	StatDepthsCleared
)

// statFieldBase is the distance from the stats section's data offset to
// the first counter slot.
const statFieldBase = 0x4

var statOffsets = map[Stat]int{
	StatMomKills:             0x4,
	StatRocksBroken:          0x8,
	StatTintedRocksBroken:    0xC,
	StatPoopDestroyed:        0x10,
	StatDeathCardsUsed:       0x18,
	StatArcadesVisited:       0x20,
	StatDeaths:               0x24,
	StatShopkeepersDestroyed: 0x2C,
	StatShellGamePlays:       0x34,
	StatBloodDonations:       0x40,
	StatSlotsDestroyed:       0x44,
	StatDonationMachine:      0x4C,
	StatEdenTokens:           0x50,
	StatWinStreak:            0x54,
	StatBestStreak:           0x58,
	StatLossStreak:           0x1A8,
	StatGreedMachine:         0x1B0,
	StatGreedPenniesDonated:  0x1B8,
	StatCavesCleared:         0x298,
	StatBasementsCleared:     0x29C,
	StatDepthsCleared:        0x2A4,
}

var statNames = map[Stat]string{
	StatMomKills:             "mom kills",
	StatRocksBroken:          "rocks broken",
	StatTintedRocksBroken:    "tinted rocks broken",
	StatPoopDestroyed:        "poop destroyed",
	StatDeathCardsUsed:       "death cards used",
	StatArcadesVisited:       "arcades visited",
	StatDeaths:               "deaths",
	StatShopkeepersDestroyed: "shopkeepers destroyed",
	StatShellGamePlays:       "shell game plays",
	StatBloodDonations:       "blood donations",
	StatSlotsDestroyed:       "slots destroyed",
	StatDonationMachine:      "donation machine",
	StatEdenTokens:           "eden tokens",
	StatWinStreak:            "win streak",
	StatBestStreak:           "best streak",
	StatLossStreak:           "loss streak",
	StatGreedMachine:         "greed machine",
	StatGreedPenniesDonated:  "pennies donated (greed)",
	StatCavesCleared:         "caves cleared",
	StatBasementsCleared:     "basements cleared",
	StatDepthsCleared:        "depths cleared",
}

func (s Stat) String() string {
	if name, ok := statNames[s]; ok {
		return name
	}

	return fmt.Sprintf("stat(%d)", int(s))
}

// StatValue reads the named counter's current value.
func StatValue(data []byte, s Stat) (uint32, error) {
	addr, err := statAddress(data, s)
	if err != nil {
		return 0, err
	}

	return uint32(field.ReadUint(data, addr, 4)), nil
}

// SetStatValue returns a copy of data with the named counter replaced.
func SetStatValue(data []byte, s Stat, value uint32) ([]byte, error) {
	addr, err := statAddress(data, s)
	if err != nil {
		return nil, err
	}

	out := clone(data)
	field.PutUint(out, addr, 4, uint64(value))

	return out, nil
}

func statAddress(data []byte, s Stat) (int, error) {
	rel, ok := statOffsets[s]
	if !ok {
		return 0, errs.ErrUnknownStat
	}
	offsets, err := section.Offsets(data)
	if err != nil {
		return 0, fmt.Errorf("locating stats section: %w", err)
	}
	addr := offsets[section.Stats] + statFieldBase + rel
	if addr+4 > len(data) {
		return 0, errs.ErrSectionTruncated
	}

	return addr, nil
}
