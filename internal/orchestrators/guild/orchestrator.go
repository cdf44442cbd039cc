// Package guild implements the guild browsing, detail and membership screens
package guild

//go:generate mockgen -destination=mock/mock_service.go -package=guildmock github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/guild Service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jeondoksi/jeondoksi-cli/internal/clients/api"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
)

// Messages shown to the reader
const (
	MsgCreated          = "길드가 생성되었습니다!"
	MsgJoined           = "길드에 가입되었습니다!"
	MsgLeft             = "길드를 탈퇴했습니다."
	MsgRaidStarted      = "레이드가 시작되었습니다!"
	MsgConfirmLeave     = "정말 길드를 탈퇴하시겠습니까?"
	MsgConfirmRaid      = "새로운 보스 레이드를 시작하시겠습니까?\n이전 보스 기록은 초기화됩니다."
	MsgNoDescription    = "소개글이 없습니다."
	MsgNoJoinCode       = "초대 코드가 없는 길드입니다."
	MsgJoinCodeRequired = "비공개 길드는 초대 코드가 필요합니다."
	MsgInvalidName      = "길드 이름은 1자 이상 30자 이하로 입력해주세요."
	MsgInvalidDesc      = "길드 소개는 200자 이하로 입력해주세요."
	MsgLoadFailed       = "길드 정보를 불러오는데 실패했습니다."
	MsgCreateFailed     = "길드 생성 실패"
	MsgJoinFailed       = "가입 실패"
	MsgLeaveFailed      = "탈퇴 실패"
	MsgRaidFailed       = "레이드 시작 실패"
)

// InviteMessage is shown when a member asks for the invite code
func InviteMessage(g *entities.Guild) string {
	if g == nil || g.JoinCode == "" {
		return MsgNoJoinCode
	}
	return fmt.Sprintf("친구에게 이 코드를 공유하세요:\n\n%s", g.JoinCode)
}

// IsLeader reports whether me leads g. Guilds identify their leader by
// nickname only.
func IsLeader(g *entities.Guild, me *entities.User) bool {
	if g == nil || me == nil || me.Nickname == "" {
		return false
	}
	return g.LeaderName == me.Nickname
}

// Service defines the interface for the guild screens
type Service interface {
	Browse(ctx context.Context) (*BrowseOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	Members(ctx context.Context, input *GetInput) (*MembersOutput, error)
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
	Join(ctx context.Context, input *JoinInput) error
	JoinByCode(ctx context.Context, input *JoinByCodeInput) (*JoinByCodeOutput, error)
	Leave(ctx context.Context, input *LeaveInput) error
	StartRaid(ctx context.Context, input *StartRaidInput) error
}

// Config holds the dependencies for the guild orchestrator
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
	client   api.Client
	validate *validator.Validate
	logger   *zap.Logger
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new guild orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:   cfg.Client,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logging.OrNop(cfg.Logger),
	}, nil
}

// Browse returns the reader's guild, or the list of guilds when there is
// none. A failure looking up the reader's guild falls through to the list.
func (o *orchestrator) Browse(ctx context.Context) (*BrowseOutput, error) {
	mine, err := o.client.GetMyGuild(ctx)
	if err != nil {
		if errors.IsAuthFailure(err) {
			return nil, errors.Wrap(err, "failed to load my guild")
		}
		o.logger.Warn("looking up my guild", zap.Error(err))
	}
	if mine != nil {
		return &BrowseOutput{MyGuild: mine}, nil
	}

	guilds, err := o.client.ListGuilds(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guilds")
	}
	return &BrowseOutput{Guilds: guilds}, nil
}

// Get loads a guild, its members and the reader in parallel
func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if err := validID(input); err != nil {
		return nil, err
	}

	out := &GetOutput{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if out.Guild, err = o.client.GetGuild(gctx, input.GuildID); err != nil {
			return errors.Wrapf(err, "failed to get guild %d", input.GuildID)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if out.Members, err = o.client.ListGuildMembers(gctx, input.GuildID); err != nil {
			return errors.Wrapf(err, "failed to list members of guild %d", input.GuildID)
		}
		return nil
	})
	g.Go(func() error {
		me, err := o.client.GetMe(gctx)
		if err != nil {
			// only the leader controls depend on it
			o.logger.Warn("loading profile for guild view", zap.Error(err))
			return nil
		}
		out.Me = me
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if out.Guild == nil {
		return nil, errors.NotFoundf("guild %d not found", input.GuildID)
	}

	out.IsLeader = IsLeader(out.Guild, out.Me)
	return out, nil
}

// Members lists the members of a guild
func (o *orchestrator) Members(ctx context.Context, input *GetInput) (*MembersOutput, error) {
	if err := validID(input); err != nil {
		return nil, err
	}

	members, err := o.client.ListGuildMembers(ctx, input.GuildID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list members of guild %d", input.GuildID)
	}
	return &MembersOutput{Members: members}, nil
}

// Create founds a guild with the default capacity and an invite code
func (o *orchestrator) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgInvalidName)
	}

	req := &entities.CreateGuildRequest{
		Name:             strings.TrimSpace(input.Name),
		Description:      strings.TrimSpace(input.Description),
		MaxMembers:       entities.DefaultGuildCapacity,
		IsPrivate:        input.IsPrivate,
		GenerateJoinCode: true,
	}
	if err := o.validate.Struct(req); err != nil {
		return nil, errors.Client(errors.CodeInvalidArgument, createMessage(err))
	}

	created, err := o.client.CreateGuild(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create guild")
	}
	if created == nil {
		// some deployments answer with an empty body
		if created, err = o.client.GetMyGuild(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to load created guild")
		}
	}

	o.logger.Info("guild created", zap.String("name", req.Name), zap.Bool("private", req.IsPrivate))
	return &CreateOutput{Guild: created}, nil
}

// Join joins a listed guild. Private guilds need a join code, checked before
// any request is made.
func (o *orchestrator) Join(ctx context.Context, input *JoinInput) error {
	if input == nil || input.GuildID <= 0 {
		return errors.Client(errors.CodeInvalidArgument, MsgJoinFailed)
	}

	req := &entities.JoinGuildRequest{}
	if input.IsPrivate {
		code := strings.TrimSpace(input.JoinCode)
		if code == "" {
			return errors.Client(errors.CodeInvalidArgument, MsgJoinCodeRequired)
		}
		req.JoinCode = &code
	}

	if err := o.client.JoinGuild(ctx, input.GuildID, req); err != nil {
		return errors.Wrapf(err, "failed to join guild %d", input.GuildID)
	}
	o.logger.Info("joined guild", zap.Int64("guild_id", input.GuildID))
	return nil
}

// JoinByCode joins whichever guild the invite code belongs to
func (o *orchestrator) JoinByCode(ctx context.Context, input *JoinByCodeInput) (*JoinByCodeOutput, error) {
	if input == nil || strings.TrimSpace(input.JoinCode) == "" {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgJoinCodeRequired)
	}

	joined, err := o.client.JoinGuildByCode(ctx, strings.TrimSpace(input.JoinCode))
	if err != nil {
		return nil, errors.Wrap(err, "failed to join guild by code")
	}
	return &JoinByCodeOutput{Guild: joined}, nil
}

// Leave leaves a guild
func (o *orchestrator) Leave(ctx context.Context, input *LeaveInput) error {
	if input == nil || input.GuildID <= 0 {
		return errors.Client(errors.CodeInvalidArgument, MsgLeaveFailed)
	}

	if err := o.client.LeaveGuild(ctx, input.GuildID); err != nil {
		return errors.Wrapf(err, "failed to leave guild %d", input.GuildID)
	}
	o.logger.Info("left guild", zap.Int64("guild_id", input.GuildID))
	return nil
}

// StartRaid summons a new boss for the guild
func (o *orchestrator) StartRaid(ctx context.Context, input *StartRaidInput) error {
	if input == nil || input.GuildID <= 0 {
		return errors.Client(errors.CodeInvalidArgument, MsgRaidFailed)
	}

	if err := o.client.StartRaid(ctx, input.GuildID); err != nil {
		return errors.Wrapf(err, "failed to start raid for guild %d", input.GuildID)
	}
	o.logger.Info("raid started", zap.Int64("guild_id", input.GuildID))
	return nil
}

func validID(input *GetInput) error {
	if input == nil || input.GuildID <= 0 {
		return errors.Client(errors.CodeInvalidArgument, MsgLoadFailed)
	}
	return nil
}

func createMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if ok && len(verrs) > 0 && verrs[0].Field() == "Description" {
		return MsgInvalidDesc
	}
	return MsgInvalidName
}
