package shop

import (
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/reveal"
)

// BalanceOutput defines the response for loading the point balance
type BalanceOutput struct {
	Points int
}

// DrawInput defines the request for a draw. KnownPoints is the balance the
// screen is showing; draws it cannot afford never reach the server.
type DrawInput struct {
	KnownPoints int
}

// DrawOutput defines the response for a character draw
type DrawOutput struct {
	Character *entities.Character
	Reward    reveal.Reward
	// Points is the refreshed balance; PointsKnown is false when the
	// refresh failed
	Points      int
	PointsKnown bool
}

// ItemGachaOutput defines the response for an item draw
type ItemGachaOutput struct {
	Item        *entities.Item
	Reward      reveal.Reward
	Points      int
	PointsKnown bool
}

// EquipItemInput defines the request for equipping an item
type EquipItemInput struct {
	InventoryID int64
}
