// Package home implements the dashboard screen
package home

//go:generate mockgen -destination=mock/mock_service.go -package=homemock github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/home Service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jeondoksi/jeondoksi-cli/internal/clients/api"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
	"github.com/jeondoksi/jeondoksi-cli/internal/repositories/session"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/personality"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/progress"
)

// MsgLoginRequired is shown instead of the dashboard when no one is signed in
const MsgLoginRequired = "로그인이 필요합니다."

// Service defines the interface for the home screen
type Service interface {
	Load(ctx context.Context) (*LoadOutput, error)
	RefreshRecommendations(ctx context.Context) (*RefreshRecommendationsOutput, error)
}

// Config holds the dependencies for the home orchestrator
type Config struct {
	Client  api.Client
	Session session.Repository
	Logger  *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Session == nil {
		vb.RequiredField("Session")
	}

	return vb.Build()
}

type orchestrator struct {
	client  api.Client
	session session.Repository
	logger  *zap.Logger
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new home orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:  cfg.Client,
		session: cfg.Session,
		logger:  logging.OrNop(cfg.Logger),
	}, nil
}

// Load fetches the profile, recommendations and characters in parallel. A
// missing token short-circuits to an unauthenticated error without any
// request.
func (o *orchestrator) Load(ctx context.Context) (*LoadOutput, error) {
	if _, err := o.session.Get(ctx); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Client(errors.CodeUnauthenticated, MsgLoginRequired)
		}
		return nil, errors.Wrap(err, "failed to read session")
	}

	var (
		user  *entities.User
		recs  []*entities.Book
		chars []*entities.Character
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = o.client.GetMe(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to load profile")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recs, err = o.client.GetRecommendations(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to load recommendations")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		chars, err = o.client.ListCharacters(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to load characters")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &LoadOutput{
		User:            user,
		Recommendations: recs,
		MainImage:       entities.DefaultCharacterImage,
		Personality:     personality.ForUser(user),
	}
	if main, _ := entities.Featured(chars); main != nil {
		out.MainCharacter = main
		if main.ImageURL != "" {
			out.MainImage = main.ImageURL
		}
	}
	if user != nil {
		out.Stats = []StatBar{
			{Label: "논리", Value: user.Stats.Logic, Percent: progress.Stat(user.Stats.Logic)},
			{Label: "감성", Value: user.Stats.Emotion, Percent: progress.Stat(user.Stats.Emotion)},
			{Label: "실천", Value: user.Stats.Action, Percent: progress.Stat(user.Stats.Action)},
		}
	}

	o.logger.Debug("home loaded",
		zap.Int("recommendations", len(recs)),
		zap.Int("characters", len(chars)))

	return out, nil
}

// RefreshRecommendations asks for a new set of recommended books
func (o *orchestrator) RefreshRecommendations(ctx context.Context) (*RefreshRecommendationsOutput, error) {
	recs, err := o.client.GetRecommendations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh recommendations")
	}
	return &RefreshRecommendationsOutput{Recommendations: recs}, nil
}
