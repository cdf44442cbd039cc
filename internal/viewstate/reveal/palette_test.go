package reveal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/reveal"
)

func TestPalette(t *testing.T) {
	testCases := []struct {
		rarity   entities.Rarity
		expected []string
	}{
		{entities.RarityCommon, []string{"#b0b0b0", "#ffffff"}},
		{entities.RarityRare, []string{"#4287f5", "#42e3f5"}},
		{entities.RarityEpic, []string{"#9b42f5", "#d442f5"}},
		{entities.RarityUnique, []string{"#ffd700", "#ffaa00", "#ffffff"}},
		{"LEGENDARY", []string{"#ffffff"}},
		{"", []string{"#ffffff"}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.rarity), func(t *testing.T) {
			assert.Equal(t, tc.expected, reveal.Palette(tc.rarity))
		})
	}
}

func TestPaletteReturnsCopy(t *testing.T) {
	colors := reveal.Palette(entities.RarityRare)
	colors[0] = "#000000"
	assert.Equal(t, "#4287f5", reveal.Palette(entities.RarityRare)[0])
}

func TestPhaseCaption(t *testing.T) {
	assert.Equal(t, "소환 중...", reveal.Chest.Caption())
	assert.Equal(t, "두근두근!", reveal.Opening.Caption())
	assert.Empty(t, reveal.Revealed.Caption())
	assert.Equal(t, "opening", reveal.Opening.String())
}
