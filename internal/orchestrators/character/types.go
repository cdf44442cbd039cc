package character

import "github.com/jeondoksi/jeondoksi-cli/internal/entities"

// ListOutput defines the response for the character collection screen
type ListOutput struct {
	User *entities.User
	// Featured is the equipped character, or the first one when none is
	Featured *entities.Character
	// FeaturedXP is the experience bar of Featured
	FeaturedXP float64
	Others     []*entities.Character
	Total      int
}

// EquipInput defines the request for choosing the main character
type EquipInput struct {
	CharacterID int64
}

// EquipOutput defines the response for choosing the main character
type EquipOutput struct {
	Message string
	// List is the refreshed collection
	List *ListOutput
}
