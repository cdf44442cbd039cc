package entities

// GuildRole is a member's rank
type GuildRole string

// Guild roles
const (
	GuildRoleLeader  GuildRole = "LEADER"
	GuildRoleOfficer GuildRole = "OFFICER"
	GuildRoleMember  GuildRole = "MEMBER"
)

// DefaultGuildCapacity is used for every new guild
const DefaultGuildCapacity = 30

// Guild is a reading group that can run raids
type Guild struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	MaxMembers         int    `json:"maxMembers"`
	CurrentMemberCount int    `json:"currentMemberCount"`
	IsPrivate          bool   `json:"isPrivate"`
	HasPassword        bool   `json:"hasPassword"`
	LeaderName         string `json:"leaderName"`
	JoinCode           string `json:"joinCode,omitempty"`
	CurrentBossID      *int64 `json:"currentBossId,omitempty"`
}

// GuildMember is one member of a guild
type GuildMember struct {
	UserID   int64     `json:"userId"`
	Nickname string    `json:"nickname"`
	Role     GuildRole `json:"role"`
	JoinedAt string    `json:"joinedAt"`
}

// CreateGuildRequest is the body of POST /guilds
type CreateGuildRequest struct {
	Name             string  `json:"name" validate:"required,max=30"`
	Description      string  `json:"description" validate:"max=200"`
	MaxMembers       int     `json:"maxMembers" validate:"min=2,max=30"`
	IsPrivate        bool    `json:"isPrivate"`
	Password         *string `json:"password"`
	GenerateJoinCode bool    `json:"generateJoinCode"`
}

// JoinGuildRequest is the body of the join endpoints. JoinCode is null for
// public guilds.
type JoinGuildRequest struct {
	JoinCode *string `json:"joinCode"`
}

// Label is the Korean display name of the role
func (r GuildRole) Label() string {
	switch r {
	case GuildRoleLeader:
		return "길드장"
	case GuildRoleOfficer:
		return "운영진"
	default:
		return "길드원"
	}
}
