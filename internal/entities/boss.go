package entities

// Boss is the shared raid target of a guild
type Boss struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	MaxHP       int64  `json:"maxHp"`
	CurrentHP   int64  `json:"currentHp"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `json:"isActive"`
	StartAt     string `json:"startAt,omitempty"`
	EndAt       string `json:"endAt,omitempty"`
}

// Defeated reports whether the raid for this boss is over
func (b *Boss) Defeated() bool {
	return !b.IsActive
}
