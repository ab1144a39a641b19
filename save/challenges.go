package save

import (
	"fmt"

	"github.com/rucen/isaacsave/errs"
	"github.com/rucen/isaacsave/section"
)

// ChallengeCount is the number of challenges tracked by the save format.
const ChallengeCount = 45

// Challenges returns one byte per challenge id 1..45. Nonzero means
// completed.
func Challenges(data []byte) ([]byte, error) {
	base, err := challengesRegion(data)
	if err != nil {
		return nil, err
	}

	out := make([]byte, ChallengeCount)
	copy(out, data[base+1:base+1+ChallengeCount])

	return out, nil
}

// UpdateChallenges returns a copy of data in which exactly the given
// challenge ids are marked completed. Every challenge byte is cleared
// first, then the requested ids are set to 1; ids outside 1..45 are
// ignored.
func UpdateChallenges(data []byte, ids []int) ([]byte, error) {
	base, err := challengesRegion(data)
	if err != nil {
		return nil, err
	}

	out := clone(data)
	for i := 1; i <= ChallengeCount; i++ {
		out[base+i] = 0
	}
	for _, id := range ids {
		if id >= 1 && id <= ChallengeCount {
			out[base+id] = 1
		}
	}

	return out, nil
}

func challengesRegion(data []byte) (int, error) {
	offsets, err := section.Offsets(data)
	if err != nil {
		return 0, fmt.Errorf("locating challenges section: %w", err)
	}
	base := offsets[section.Challenges]
	if base+1+ChallengeCount > len(data) {
		return 0, errs.ErrSectionTruncated
	}

	return base, nil
}
