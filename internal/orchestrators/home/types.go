package home

import (
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/personality"
)

// StatBar is one personality stat with its bar fill
type StatBar struct {
	Label   string
	Value   int
	Percent float64
}

// LoadOutput defines the response for the home screen
type LoadOutput struct {
	User            *entities.User
	Recommendations []*entities.Book
	MainCharacter   *entities.Character
	// MainImage falls back to the default character art
	MainImage   string
	Personality personality.Type
	Stats       []StatBar
}

// RefreshRecommendationsOutput defines the response for refreshing recommendations
type RefreshRecommendationsOutput struct {
	Recommendations []*entities.Book
}
