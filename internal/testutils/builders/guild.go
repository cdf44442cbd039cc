package builders

import (
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
)

// GuildBuilder provides a fluent interface for building test Guild instances
type GuildBuilder struct {
	guild *entities.Guild
}

// NewGuildBuilder creates a new builder with minimal defaults
func NewGuildBuilder() *GuildBuilder {
	return &GuildBuilder{
		guild: &entities.Guild{
			ID:                 1,
			Name:               "Test Guild",
			MaxMembers:         entities.DefaultGuildCapacity,
			CurrentMemberCount: 1,
			LeaderName:         "leader",
		},
	}
}

// WithID sets the guild ID
func (b *GuildBuilder) WithID(id int64) *GuildBuilder {
	b.guild.ID = id
	return b
}

// WithLeader sets the leader's nickname
func (b *GuildBuilder) WithLeader(nickname string) *GuildBuilder {
	b.guild.LeaderName = nickname
	return b
}

// Private makes the guild invite-only with the given join code
func (b *GuildBuilder) Private(joinCode string) *GuildBuilder {
	b.guild.IsPrivate = true
	b.guild.JoinCode = joinCode
	return b
}

// WithRaid points the guild at a running boss
func (b *GuildBuilder) WithRaid(bossID int64) *GuildBuilder {
	b.guild.CurrentBossID = &bossID
	return b
}

// Build returns the built guild
func (b *GuildBuilder) Build() *entities.Guild {
	return b.guild
}
