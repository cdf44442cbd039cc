// Package api is the HTTP client for the reading-log REST API
package api

//go:generate mockgen -destination=mock/mock_client.go -package=apimock github.com/jeondoksi/jeondoksi-cli/internal/clients/api Client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/idgen"
	"github.com/jeondoksi/jeondoksi-cli/internal/repositories/session"
)

const (
	apiPrefix       = "/api/v1"
	requestIDHeader = "X-Request-ID"
	maxBodyBytes    = 4 << 20
)

// Client defines every call the terminal client makes against the API
type Client interface {
	// Auth and profile
	Login(ctx context.Context, input *entities.LoginRequest) (*entities.AuthToken, error)
	Signup(ctx context.Context, input *entities.SignupRequest) error
	GetMe(ctx context.Context) (*entities.User, error)

	// Books
	SearchBooks(ctx context.Context, query string) ([]*entities.Book, error)
	ListBestsellers(ctx context.Context, input *ListBestsellersInput) ([]*entities.Bestseller, error)
	GetRecommendations(ctx context.Context) ([]*entities.Book, error)

	// Reports
	SubmitReport(ctx context.Context, input *entities.ReportSubmission) (*entities.ReportDetail, error)
	ListMyReports(ctx context.Context) ([]*entities.ReportSummary, error)
	GetReport(ctx context.Context, reportID int64) (*entities.ReportDetail, error)

	// Quizzes
	GetQuiz(ctx context.Context, isbn string) (*entities.Quiz, error)
	SubmitQuiz(ctx context.Context, input *entities.QuizSubmission) (*entities.QuizResult, error)

	// Characters and items
	ListCharacters(ctx context.Context) ([]*entities.Character, error)
	DrawCharacter(ctx context.Context) (*entities.Character, error)
	EquipCharacter(ctx context.Context, characterID int64) error
	DrawItem(ctx context.Context) (*entities.Item, error)
	EquipItem(ctx context.Context, inventoryID int64) error

	// Guilds
	ListGuilds(ctx context.Context) ([]*entities.Guild, error)
	// GetMyGuild returns nil without error when the reader has no guild
	GetMyGuild(ctx context.Context) (*entities.Guild, error)
	GetGuild(ctx context.Context, guildID int64) (*entities.Guild, error)
	ListGuildMembers(ctx context.Context, guildID int64) ([]*entities.GuildMember, error)
	CreateGuild(ctx context.Context, input *entities.CreateGuildRequest) (*entities.Guild, error)
	JoinGuild(ctx context.Context, guildID int64, input *entities.JoinGuildRequest) error
	JoinGuildByCode(ctx context.Context, joinCode string) (*entities.Guild, error)
	LeaveGuild(ctx context.Context, guildID int64) error

	// Raids
	StartRaid(ctx context.Context, guildID int64) error
	GetBoss(ctx context.Context, bossID int64) (*entities.Boss, error)
	AttackBoss(ctx context.Context, bossID int64) (*entities.Boss, error)

	// PrefetchImage downloads an image so a view can open its load gate
	PrefetchImage(ctx context.Context, imageURL string) error
}

// Config contains configuration for the API client
type Config struct {
	BaseURL string
	// Timeout is the blanket per-request timeout (default 60s)
	Timeout time.Duration
	// Session supplies the bearer token and is cleared on 401/403
	Session    session.Repository
	RequestIDs idgen.Generator
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("base_url", cfg.BaseURL, vb)
	if cfg.BaseURL != "" {
		if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			vb.InvalidField("base_url", "must be an absolute URL")
		}
	}
	if cfg.Session == nil {
		vb.RequiredField("session")
	}
	if cfg.Timeout < 0 {
		vb.Field("timeout", "cannot be negative")
	}
	return vb.Build()
}

type client struct {
	baseURL    string
	httpClient *http.Client
	session    session.Repository
	requestIDs idgen.Generator
	logger     *zap.Logger
}

var _ Client = (*client)(nil)

// New creates a new API client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	ids := cfg.RequestIDs
	if ids == nil {
		ids = idgen.NewUUID("")
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		session:    cfg.Session,
		requestIDs: ids,
		logger:     logging.OrNop(cfg.Logger),
	}, nil
}

type request struct {
	method string
	path   string
	query  url.Values
	body   interface{}
}

// call performs req and decodes the payload into out. It reports whether a
// non-null payload was present.
func (c *client) call(ctx context.Context, req *request, out interface{}) (bool, error) {
	status, body, err := c.send(ctx, req)
	if err != nil {
		return false, err
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		c.clearSession(ctx, status)
	}

	payload, err := unwrap(status, body)
	if err != nil {
		return false, err
	}
	if isNull(payload) {
		return false, nil
	}
	if out == nil {
		return true, nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		c.logger.Warn("undecodable response",
			zap.String("method", req.method),
			zap.String("path", req.path),
			zap.Error(err))
		return false, errors.Wrapf(err, "failed to decode response of %s %s", req.method, req.path)
	}
	return true, nil
}

func (c *client) send(ctx context.Context, req *request) (int, []byte, error) {
	target := c.baseURL + apiPrefix + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var reader io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return 0, nil, errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, reader)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "failed to build request %s %s", req.method, req.path)
	}

	requestID := c.requestIDs.Generate()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)
	if token := c.token(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("api request failed",
			zap.String("method", req.method),
			zap.String("path", req.path),
			zap.String("request_id", requestID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return 0, nil, errors.Transport(err, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, errors.Transport(err, "failed to read response")
	}

	c.logger.Debug("api request",
		zap.String("method", req.method),
		zap.String("path", req.path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	return resp.StatusCode, body, nil
}

func (c *client) token(ctx context.Context) string {
	tok, err := c.session.Get(ctx)
	if err != nil {
		if !errors.IsNotFound(err) {
			c.logger.Warn("failed to read session", zap.Error(err))
		}
		return ""
	}
	return tok.AccessToken
}

func (c *client) clearSession(ctx context.Context, status int) {
	if err := c.session.Clear(ctx); err != nil {
		c.logger.Warn("failed to clear session", zap.Int("status", status), zap.Error(err))
		return
	}
	c.logger.Info("session cleared", zap.Int("status", status))
}

// unwrap turns a response into its payload. Envelopes are opened and their
// failure flag honoured; bare payloads pass through.
func unwrap(status int, body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)

	env, isEnvelope := parseEnvelope(trimmed)

	if status < 200 || status > 299 {
		var message, code string
		if isEnvelope {
			message, code = deref(env.Message), deref(env.ErrorCode)
		} else if msg := parseMessage(trimmed); msg != "" {
			message = msg
		}
		return nil, errors.FromResponse(status, message, code)
	}

	if !isEnvelope {
		return trimmed, nil
	}
	if !env.Success {
		return nil, errors.FromResponse(status, deref(env.Message), deref(env.ErrorCode))
	}
	return env.Data, nil
}

func parseEnvelope(body []byte) (*entities.Envelope, bool) {
	if len(body) == 0 || body[0] != '{' {
		return nil, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, false
	}
	if _, ok := fields["success"]; !ok {
		return nil, false
	}

	var env entities.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false
	}
	return &env, true
}

// parseMessage reads {"message": "..."} from non-envelope error bodies
func parseMessage(body []byte) string {
	var v struct {
		Message string `json:"message"`
	}
	if len(body) == 0 || body[0] != '{' {
		return ""
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return ""
	}
	return v.Message
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
