// Package shop implements the summoning shop: character draws, item draws
// and the point balance
package shop

//go:generate mockgen -destination=mock/mock_service.go -package=shopmock github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/shop Service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/clients/api"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/reveal"
)

// DrawCost is the price of one draw in points
const DrawCost = 100

// Messages shown to the reader
var (
	MsgInsufficientPoints = fmt.Sprintf("소환을 위한 포인트가 부족합니다. (필요: %d P)", DrawCost)
	MsgConfirmDraw        = fmt.Sprintf("%d 포인트를 사용하여 새로운 동료를 소환하시겠습니까?", DrawCost)
	MsgConfirmItemDraw    = fmt.Sprintf("%d 포인트를 사용하여 아이템을 뽑으시겠습니까?", DrawCost)
	MsgDrawFailed         = "소환 중 오류가 발생했습니다."
	MsgEquipFailed        = "아이템 장착에 실패했습니다."
)

// Service defines the interface for the shop screen
type Service interface {
	Balance(ctx context.Context) (*BalanceOutput, error)
	Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error)
	ItemGacha(ctx context.Context, input *DrawInput) (*ItemGachaOutput, error)
	EquipItem(ctx context.Context, input *EquipItemInput) error
}

// Config holds the dependencies for the shop orchestrator
type Config struct {
	Client api.Client
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

type orchestrator struct {
	client api.Client
	logger *zap.Logger
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new shop orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client: cfg.Client,
		logger: logging.OrNop(cfg.Logger),
	}, nil
}

// Balance loads the reader's points
func (o *orchestrator) Balance(ctx context.Context) (*BalanceOutput, error) {
	user, err := o.client.GetMe(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load points")
	}
	if user == nil {
		return nil, errors.Internal("profile response was empty")
	}
	return &BalanceOutput{Points: user.Point}, nil
}

// Draw summons a character
func (o *orchestrator) Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error) {
	if err := affordable(input); err != nil {
		return nil, err
	}

	character, err := o.client.DrawCharacter(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw character")
	}
	if character == nil {
		return nil, errors.Internal("draw response was empty")
	}

	o.logger.Info("character drawn",
		zap.Int64("character_id", character.CharacterID),
		zap.String("rarity", string(character.Rarity)))

	out := &DrawOutput{Character: character, Reward: reveal.RewardFromCharacter(character)}
	out.Points, out.PointsKnown = o.refresh(ctx)
	return out, nil
}

// ItemGacha draws an item from the gamification gacha
func (o *orchestrator) ItemGacha(ctx context.Context, input *DrawInput) (*ItemGachaOutput, error) {
	if err := affordable(input); err != nil {
		return nil, err
	}

	item, err := o.client.DrawItem(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw item")
	}
	if item == nil {
		return nil, errors.Internal("gacha response was empty")
	}

	o.logger.Info("item drawn",
		zap.Int64("item_id", item.ItemID),
		zap.String("rarity", string(item.Rarity)))

	out := &ItemGachaOutput{Item: item, Reward: reveal.RewardFromItem(item)}
	out.Points, out.PointsKnown = o.refresh(ctx)
	return out, nil
}

// EquipItem equips an owned item
func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) error {
	if input == nil || input.InventoryID <= 0 {
		return errors.Client(errors.CodeInvalidArgument, MsgEquipFailed)
	}

	if err := o.client.EquipItem(ctx, input.InventoryID); err != nil {
		return errors.Wrapf(err, "failed to equip inventory item %d", input.InventoryID)
	}
	return nil
}

func (o *orchestrator) refresh(ctx context.Context) (int, bool) {
	user, err := o.client.GetMe(ctx)
	if err != nil || user == nil {
		o.logger.Warn("refreshing points after draw", zap.Error(err))
		return 0, false
	}
	return user.Point, true
}

func affordable(input *DrawInput) error {
	if input == nil || input.KnownPoints < DrawCost {
		return errors.Client(errors.CodeFailedPrecondition, MsgInsufficientPoints)
	}
	return nil
}
