// Package character implements the character collection screen
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/character Service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jeondoksi/jeondoksi-cli/internal/clients/api"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/progress"
)

// Messages shown to the reader
const (
	MsgEquipped    = "대표 캐릭터가 변경되었습니다."
	MsgEquipFailed = "대표 캐릭터 설정에 실패했습니다."
)

// Service defines the interface for the character screen
type Service interface {
	List(ctx context.Context) (*ListOutput, error)
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)
}

// Config holds the dependencies for the character orchestrator
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

// NewOrchestrator creates a new character orchestrator with the provided dependencies
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

// List loads the profile and the collection in parallel
func (o *orchestrator) List(ctx context.Context) (*ListOutput, error) {
	var (
		user  *entities.User
		chars []*entities.Character
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if user, err = o.client.GetMe(gctx); err != nil {
			return errors.Wrap(err, "failed to load profile")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if chars, err = o.client.ListCharacters(gctx); err != nil {
			return errors.Wrap(err, "failed to load characters")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	featured, others := entities.Featured(chars)
	return &ListOutput{
		User:       user,
		Featured:   featured,
		FeaturedXP: progress.XP(featured),
		Others:     others,
		Total:      len(chars),
	}, nil
}

// Equip makes a character the main one and reloads the collection
func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil || input.CharacterID <= 0 {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgEquipFailed)
	}

	if err := o.client.EquipCharacter(ctx, input.CharacterID); err != nil {
		return nil, errors.Wrapf(err, "failed to equip character %d", input.CharacterID)
	}
	o.logger.Info("character equipped", zap.Int64("character_id", input.CharacterID))

	out := &EquipOutput{Message: MsgEquipped}
	list, err := o.List(ctx)
	if err != nil {
		// the equip itself succeeded
		o.logger.Warn("reloading characters after equip", zap.Error(err))
		return out, nil
	}
	out.List = list
	return out, nil
}
