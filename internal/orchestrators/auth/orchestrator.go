// Package auth implements the login, signup and session screens
package auth

//go:generate mockgen -destination=mock/mock_service.go -package=authmock github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/auth Service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/clients/api"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/clock"
	"github.com/jeondoksi/jeondoksi-cli/internal/repositories/session"
)

// Messages shown for client-side rejections
const (
	MsgPasswordMismatch = "비밀번호가 일치하지 않습니다."
	MsgPasswordTooShort = "비밀번호는 최소 8자 이상이어야 합니다."
	MsgInvalidEmail     = "올바른 이메일 형식이 아닙니다."
	MsgNicknameTooLong  = "닉네임은 20자 이하로 입력해주세요."
	MsgMissingFields    = "모든 항목을 입력해주세요."
	MsgSignupComplete   = "회원가입이 완료되었습니다! 로그인해주세요."
	MsgLoginFailed      = "로그인에 실패했습니다."
	MsgSignupFailed     = "회원가입 중 오류가 발생했습니다."
)

// Service defines the interface for the auth screens
type Service interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*MeOutput, error)
	Status(ctx context.Context) (*StatusOutput, error)
}

// Config holds the dependencies for the auth orchestrator
type Config struct {
	Client  api.Client
	Session session.Repository
	Clock   clock.Clock
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
	client   api.Client
	session  session.Repository
	clock    clock.Clock
	validate *validator.Validate
	logger   *zap.Logger
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new auth orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		client:   cfg.Client,
		session:  cfg.Session,
		clock:    clk,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logging.OrNop(cfg.Logger),
	}, nil
}

// Login authenticates and stores the access token
func (o *orchestrator) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgMissingFields)
	}

	req := &entities.LoginRequest{
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
	}
	if err := o.validate.Struct(req); err != nil {
		return nil, errors.Client(errors.CodeInvalidArgument, messageFor(err))
	}

	token, err := o.client.Login(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to log in")
	}
	if token == nil || token.AccessToken == "" {
		return nil, errors.Internal("login response carried no access token")
	}

	if err := o.session.Save(ctx, token.AccessToken); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}
	o.logger.Info("logged in", zap.String("email", req.Email))

	return &LoginOutput{Status: o.inspect(token.AccessToken)}, nil
}

// Signup creates an account. Mismatched or malformed fields are rejected
// before any request is made.
func (o *orchestrator) Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error) {
	if input == nil {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgMissingFields)
	}
	if input.Password != input.PasswordConfirm {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgPasswordMismatch)
	}

	req := &entities.SignupRequest{
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
		Nickname: strings.TrimSpace(input.Nickname),
	}
	if err := o.validate.Struct(req); err != nil {
		return nil, errors.Client(errors.CodeInvalidArgument, messageFor(err))
	}

	if err := o.client.Signup(ctx, req); err != nil {
		return nil, errors.Wrap(err, "failed to sign up")
	}
	o.logger.Info("signed up", zap.String("email", req.Email))

	return &SignupOutput{Message: MsgSignupComplete}, nil
}

// Logout forgets the stored token
func (o *orchestrator) Logout(ctx context.Context) error {
	if err := o.session.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}
	return nil
}

// Me loads the signed-in reader
func (o *orchestrator) Me(ctx context.Context) (*MeOutput, error) {
	user, err := o.client.GetMe(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}
	return &MeOutput{User: user}, nil
}

// Status reports the stored session without calling the API
func (o *orchestrator) Status(ctx context.Context) (*StatusOutput, error) {
	token, err := o.session.Get(ctx)
	if err != nil {
		if errors.IsNotFound(err) {
			return &StatusOutput{Status: &Status{}}, nil
		}
		return nil, errors.Wrap(err, "failed to read session")
	}

	st := o.inspect(token.AccessToken)
	st.SavedAt = token.SavedAt
	return &StatusOutput{Status: st}, nil
}

func (o *orchestrator) inspect(accessToken string) *Status {
	st := &Status{LoggedIn: accessToken != ""}
	if accessToken == "" {
		return st
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		// opaque tokens are valid too
		o.logger.Debug("access token is not a JWT", zap.Error(err))
		return st
	}

	if sub, err := claims.GetSubject(); err == nil {
		st.Subject = sub
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		st.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		st.ExpiresAt = exp.Time
		st.Expired = !o.clock.Now().Before(exp.Time)
	}
	return st
}

func messageFor(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return MsgMissingFields
	}

	fe := verrs[0]
	switch {
	case fe.Tag() == "required":
		return MsgMissingFields
	case fe.Field() == "Email":
		return MsgInvalidEmail
	case fe.Field() == "Password":
		return MsgPasswordTooShort
	case fe.Field() == "Nickname":
		return MsgNicknameTooLong
	default:
		return MsgMissingFields
	}
}
