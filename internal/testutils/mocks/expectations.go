// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	apimock "github.com/jeondoksi/jeondoksi-cli/internal/clients/api/mock"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
)

// ExpectMyGuild sets up the lookup of the reader's guild. A guild with a
// running raid also expects the boss fetch.
func ExpectMyGuild(ctx context.Context, client *apimock.MockClient, guild *entities.Guild, boss *entities.Boss) {
	client.EXPECT().
		GetMyGuild(ctx).
		Return(guild, nil)

	if guild != nil && guild.CurrentBossID != nil {
		client.EXPECT().
			GetBoss(ctx, *guild.CurrentBossID).
			Return(boss, nil)
	}
}

// ExpectMe sets up the profile fetch used for leader checks
func ExpectMe(ctx context.Context, client *apimock.MockClient, user *entities.User, err error) {
	client.EXPECT().
		GetMe(ctx).
		Return(user, err).
		AnyTimes()
}

// ExpectRaidStart sets up a raid start followed by the guild reload and the
// fetch of the new boss
func ExpectRaidStart(ctx context.Context, client *apimock.MockClient, guild *entities.Guild, boss *entities.Boss) {
	client.EXPECT().
		StartRaid(ctx, guild.ID).
		Return(nil)
	client.EXPECT().
		GetGuild(ctx, guild.ID).
		Return(guild, nil)

	if guild.CurrentBossID != nil {
		client.EXPECT().
			GetBoss(ctx, *guild.CurrentBossID).
			Return(boss, nil)
	}
}
