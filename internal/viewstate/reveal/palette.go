package reveal

import "github.com/jeondoksi/jeondoksi-cli/internal/entities"

// NeutralColor is used for rarities without a palette
const NeutralColor = "#ffffff"

var palettes = map[entities.Rarity][]string{
	entities.RarityCommon: {"#b0b0b0", "#ffffff"},
	entities.RarityRare:   {"#4287f5", "#42e3f5"},
	entities.RarityEpic:   {"#9b42f5", "#d442f5"},
	entities.RarityUnique: {"#ffd700", "#ffaa00", "#ffffff"},
}

// Palette returns the burst colors for a rarity
func Palette(r entities.Rarity) []string {
	colors, ok := palettes[r]
	if !ok {
		return []string{NeutralColor}
	}
	out := make([]string, len(colors))
	copy(out, colors)
	return out
}
