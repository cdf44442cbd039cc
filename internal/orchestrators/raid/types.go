package raid

import (
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/hpdelta"
)

// LoadOutput defines the response for the raid landing screen. Boss is nil
// when the guild has no raid in progress.
type LoadOutput struct {
	Guild       *entities.Guild
	Boss        *entities.Boss
	IsLeader    bool
	Observation *hpdelta.Observation
}

// BossInput defines the request for loading a boss
type BossInput struct {
	BossID int64
}

// BossOutput defines the response for loading a boss
type BossOutput struct {
	Boss        *entities.Boss
	Observation *hpdelta.Observation
}

// AttackInput defines the request for attacking a boss
type AttackInput struct {
	BossID int64
}

// AttackOutput defines the response for attacking a boss. Damage is zero when
// there was no baseline to compare against.
type AttackOutput struct {
	Boss        *entities.Boss
	Observation *hpdelta.Observation
	Damage      int64
}

// StartRaidInput defines the request for starting a raid
type StartRaidInput struct {
	GuildID int64
}

// StartRaidOutput defines the response for starting a raid
type StartRaidOutput struct {
	Guild *entities.Guild
	Boss  *entities.Boss
}
