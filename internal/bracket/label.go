package bracket

import "fmt"

const (
	ChampionLabel   = "Champion"
	FinalLabel      = "Final"
	ThirdPlaceLabel = "Third Place"
)

// RoundLabel names a round column for display. levelIndex counts from the
// leaf round; the last level is the champion slot.
func RoundLabel(matchCount, levelIndex, totalRounds int) string {
	if levelIndex == totalRounds-1 {
		return ChampionLabel
	}
	if levelIndex == totalRounds-2 {
		return FinalLabel
	}

	remaining := matchCount * 2
	switch {
	case remaining == 2:
		return FinalLabel
	case remaining == 4:
		return "Semifinal"
	case remaining == 8:
		return "Quarterfinal"
	case remaining == 16:
		return "Round of 16"
	case remaining > 16 && remaining%2 == 0:
		return fmt.Sprintf("1/%d-final", remaining/2)
	}
	return fmt.Sprintf("Round of %d", remaining)
}
