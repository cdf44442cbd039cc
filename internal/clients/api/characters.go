package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
)

func (c *client) ListCharacters(ctx context.Context) ([]*entities.Character, error) {
	var out []*entities.Character
	if _, err := c.call(ctx, &request{method: http.MethodGet, path: "/characters"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) DrawCharacter(ctx context.Context) (*entities.Character, error) {
	var out entities.Character
	ok, err := c.call(ctx, &request{method: http.MethodPost, path: "/characters/draw"}, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Internal("draw returned no character")
	}
	return &out, nil
}

func (c *client) EquipCharacter(ctx context.Context, characterID int64) error {
	_, err := c.call(ctx, &request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/characters/%d/equip", characterID),
	}, nil)
	return err
}

func (c *client) DrawItem(ctx context.Context) (*entities.Item, error) {
	var out entities.Item
	ok, err := c.call(ctx, &request{method: http.MethodPost, path: "/gamification/gacha"}, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Internal("gacha returned no item")
	}
	return &out, nil
}

func (c *client) EquipItem(ctx context.Context, inventoryID int64) error {
	_, err := c.call(ctx, &request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/gamification/inventory/%d/equip", inventoryID),
	}, nil)
	return err
}
