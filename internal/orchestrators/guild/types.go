package guild

import "github.com/jeondoksi/jeondoksi-cli/internal/entities"

// BrowseOutput defines the response for the guild landing screen. MyGuild
// is set when the reader already belongs to a guild; otherwise Guilds lists
// the guilds open for joining.
type BrowseOutput struct {
	MyGuild *entities.Guild
	Guilds  []*entities.Guild
}

// GetInput defines the request for loading a guild
type GetInput struct {
	GuildID int64
}

// GetOutput defines the response for the guild detail screen
type GetOutput struct {
	Guild    *entities.Guild
	Members  []*entities.GuildMember
	Me       *entities.User
	IsLeader bool
}

// MembersOutput defines the response for listing members
type MembersOutput struct {
	Members []*entities.GuildMember
}

// CreateInput defines the request for founding a guild
type CreateInput struct {
	Name        string
	Description string
	IsPrivate   bool
}

// CreateOutput defines the response for founding a guild
type CreateOutput struct {
	Guild *entities.Guild
}

// JoinInput defines the request for joining a listed guild
type JoinInput struct {
	GuildID   int64
	IsPrivate bool
	// JoinCode is required for private guilds and ignored otherwise
	JoinCode string
}

// JoinByCodeInput defines the request for joining with an invite code
type JoinByCodeInput struct {
	JoinCode string
}

// JoinByCodeOutput defines the response for joining with an invite code
type JoinByCodeOutput struct {
	Guild *entities.Guild
}

// LeaveInput defines the request for leaving a guild
type LeaveInput struct {
	GuildID int64
}

// StartRaidInput defines the request for starting a raid
type StartRaidInput struct {
	GuildID int64
}
