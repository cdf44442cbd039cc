package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
)

// guildList accepts both a page object ({"content": [...]}) and a bare array
type guildList []*entities.Guild

func (l *guildList) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var items []*entities.Guild
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var page struct {
		Content []*entities.Guild `json:"content"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return err
	}
	*l = page.Content
	return nil
}

func (c *client) ListGuilds(ctx context.Context) ([]*entities.Guild, error) {
	var out guildList
	if _, err := c.call(ctx, &request{method: http.MethodGet, path: "/guilds"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetMyGuild(ctx context.Context) (*entities.Guild, error) {
	var out entities.Guild
	ok, err := c.call(ctx, &request{method: http.MethodGet, path: "/guilds/me"}, &out)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if !ok || out.ID == 0 {
		return nil, nil
	}
	return &out, nil
}

func (c *client) GetGuild(ctx context.Context, guildID int64) (*entities.Guild, error) {
	var out entities.Guild
	ok, err := c.call(ctx, &request{method: http.MethodGet, path: fmt.Sprintf("/guilds/%d", guildID)}, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NotFoundf("guild %d not found", guildID)
	}
	return &out, nil
}

func (c *client) ListGuildMembers(ctx context.Context, guildID int64) ([]*entities.GuildMember, error) {
	var out []*entities.GuildMember
	if _, err := c.call(ctx, &request{method: http.MethodGet, path: fmt.Sprintf("/guilds/%d/members", guildID)}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) CreateGuild(ctx context.Context, input *entities.CreateGuildRequest) (*entities.Guild, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	var out entities.Guild
	ok, err := c.call(ctx, &request{method: http.MethodPost, path: "/guilds", body: input}, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &out, nil
}

func (c *client) JoinGuild(ctx context.Context, guildID int64, input *entities.JoinGuildRequest) error {
	if input == nil {
		input = &entities.JoinGuildRequest{}
	}

	_, err := c.call(ctx, &request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/guilds/%d/join", guildID),
		body:   input,
	}, nil)
	return err
}

func (c *client) JoinGuildByCode(ctx context.Context, joinCode string) (*entities.Guild, error) {
	joinCode = strings.TrimSpace(joinCode)
	if joinCode == "" {
		return nil, errors.InvalidArgument("join code cannot be empty")
	}

	var out entities.Guild
	ok, err := c.call(ctx, &request{
		method: http.MethodPost,
		path:   "/guilds/join-by-code",
		body:   &entities.JoinGuildRequest{JoinCode: &joinCode},
	}, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &out, nil
}

func (c *client) LeaveGuild(ctx context.Context, guildID int64) error {
	_, err := c.call(ctx, &request{method: http.MethodPost, path: fmt.Sprintf("/guilds/%d/leave", guildID)}, nil)
	return err
}

func (c *client) StartRaid(ctx context.Context, guildID int64) error {
	_, err := c.call(ctx, &request{method: http.MethodPost, path: fmt.Sprintf("/guilds/%d/raid/start", guildID)}, nil)
	return err
}
