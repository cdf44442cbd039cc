package entities

// Rarity is the tier of a drawn character or item
type Rarity string

// Rarities
const (
	RarityCommon Rarity = "COMMON"
	RarityRare   Rarity = "RARE"
	RarityEpic   Rarity = "EPIC"
	RarityUnique Rarity = "UNIQUE"
)

// DefaultCharacterImage is shown when the reader owns no character
const DefaultCharacterImage = "https://jeondoksi-files-20251127.s3.ap-southeast-2.amazonaws.com/basic_character.png"

// Character is a collectible owned by the reader
type Character struct {
	CharacterID int64  `json:"characterId"`
	Name        string `json:"name"`
	Rarity      Rarity `json:"rarity"`
	Level       int    `json:"level"`
	CurrentXP   int    `json:"currentXp"`
	RequiredXP  int    `json:"requiredXp"`
	ImageURL    string `json:"imageUrl"`
	IsEquipped  bool   `json:"isEquipped"`
}

// Item is a reward from the gamification gacha
type Item struct {
	ItemID      int64  `json:"itemId"`
	InventoryID int64  `json:"inventoryId,omitempty"`
	Name        string `json:"name"`
	Rarity      Rarity `json:"rarity"`
	ImageURL    string `json:"imageUrl"`
	Level       int    `json:"level"`
	IsEquipped  bool   `json:"isEquipped"`
}

// Featured splits a collection into the main character, the equipped one or
// else the first, and the rest in their original order. It returns nil for
// an empty collection.
func Featured(chars []*Character) (*Character, []*Character) {
	if len(chars) == 0 {
		return nil, nil
	}

	idx := 0
	for i, c := range chars {
		if c.IsEquipped {
			idx = i
			break
		}
	}

	rest := make([]*Character, 0, len(chars)-1)
	rest = append(rest, chars[:idx]...)
	rest = append(rest, chars[idx+1:]...)
	return chars[idx], rest
}
