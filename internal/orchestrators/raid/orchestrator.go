// Package raid implements the guild boss raid screens
package raid

//go:generate mockgen -destination=mock/mock_service.go -package=raidmock github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/raid Service
//go:generate mockgen -destination=mock/mock_observer.go -package=raidmock github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/raid Observer

import (
	"context"

	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/clients/api"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/guild"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/hpdelta"
)

// Messages shown to the reader
const (
	MsgNoGuild      = "길드에 가입해야 보스 레이드에 참여할 수 있습니다."
	MsgNoRaid       = "진행 중인 레이드가 없습니다."
	MsgDefeated     = "보스를 처치했습니다!"
	MsgLoadFailed   = "보스 정보를 불러오는데 실패했습니다."
	MsgAttackFailed = "공격에 실패했습니다."
	MsgRaidFailed   = "레이드 시작 실패"
)

// Observer is fed every boss the orchestrator fetches
type Observer interface {
	Observe(ctx context.Context, boss *entities.Boss) (*hpdelta.Observation, error)
}

// Service defines the interface for the raid screens
type Service interface {
	Load(ctx context.Context) (*LoadOutput, error)
	Boss(ctx context.Context, input *BossInput) (*BossOutput, error)
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
	StartRaid(ctx context.Context, input *StartRaidInput) (*StartRaidOutput, error)
}

// Config holds the dependencies for the raid orchestrator
type Config struct {
	Client api.Client
	// Observer is optional; without it no HP deltas are computed
	Observer Observer
	Logger   *zap.Logger
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
	client   api.Client
	observer Observer
	logger   *zap.Logger
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new raid orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:   cfg.Client,
		observer: cfg.Observer,
		logger:   logging.OrNop(cfg.Logger),
	}, nil
}

// Load resolves the reader's guild and its current boss
func (o *orchestrator) Load(ctx context.Context) (*LoadOutput, error) {
	mine, err := o.client.GetMyGuild(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load my guild")
	}
	if mine == nil {
		return nil, errors.Client(errors.CodeFailedPrecondition, MsgNoGuild)
	}

	out := &LoadOutput{Guild: mine}
	if me, err := o.client.GetMe(ctx); err != nil {
		o.logger.Warn("loading profile for raid view", zap.Error(err))
	} else {
		out.IsLeader = guild.IsLeader(mine, me)
	}

	if mine.CurrentBossID == nil {
		return out, nil
	}

	boss, err := o.client.GetBoss(ctx, *mine.CurrentBossID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get boss %d", *mine.CurrentBossID)
	}
	out.Boss = boss
	out.Observation = o.observe(ctx, boss)
	return out, nil
}

// Boss fetches a boss by id
func (o *orchestrator) Boss(ctx context.Context, input *BossInput) (*BossOutput, error) {
	if input == nil || input.BossID <= 0 {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgLoadFailed)
	}

	boss, err := o.client.GetBoss(ctx, input.BossID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get boss %d", input.BossID)
	}
	return &BossOutput{Boss: boss, Observation: o.observe(ctx, boss)}, nil
}

// Attack hits a boss with the reader's accumulated reading power
func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil || input.BossID <= 0 {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgAttackFailed)
	}

	boss, err := o.client.AttackBoss(ctx, input.BossID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to attack boss %d", input.BossID)
	}

	out := &AttackOutput{Boss: boss, Observation: o.observe(ctx, boss)}
	if obs := out.Observation; obs != nil && obs.HasPrevious && obs.Previous > boss.CurrentHP {
		out.Damage = obs.Previous - boss.CurrentHP
	}
	o.logger.Info("boss attacked",
		zap.Int64("boss_id", boss.ID),
		zap.Int64("hp", boss.CurrentHP),
		zap.Int64("damage", out.Damage))
	return out, nil
}

// StartRaid summons a new boss and returns it
func (o *orchestrator) StartRaid(ctx context.Context, input *StartRaidInput) (*StartRaidOutput, error) {
	if input == nil || input.GuildID <= 0 {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgRaidFailed)
	}

	if err := o.client.StartRaid(ctx, input.GuildID); err != nil {
		return nil, errors.Wrapf(err, "failed to start raid for guild %d", input.GuildID)
	}

	g, err := o.client.GetGuild(ctx, input.GuildID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reload guild %d", input.GuildID)
	}
	out := &StartRaidOutput{Guild: g}
	if g == nil || g.CurrentBossID == nil {
		return out, nil
	}

	if out.Boss, err = o.client.GetBoss(ctx, *g.CurrentBossID); err != nil {
		return nil, errors.Wrapf(err, "failed to get boss %d", *g.CurrentBossID)
	}
	o.observe(ctx, out.Boss)
	return out, nil
}

// observe never fails the request; a tracker error only costs an effect
func (o *orchestrator) observe(ctx context.Context, boss *entities.Boss) *hpdelta.Observation {
	if o.observer == nil || boss == nil {
		return nil
	}

	obs, err := o.observer.Observe(ctx, boss)
	if err != nil {
		o.logger.Warn("recording boss hp", zap.Int64("boss_id", boss.ID), zap.Error(err))
	}
	return obs
}
