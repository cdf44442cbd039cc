// Package client provides the view commands of the jeondoksi terminal client
package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/clients/api"
	"github.com/jeondoksi/jeondoksi-cli/internal/config"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/idgen"
	redisclient "github.com/jeondoksi/jeondoksi-cli/internal/redis"
	"github.com/jeondoksi/jeondoksi-cli/internal/repositories/bosshp"
	"github.com/jeondoksi/jeondoksi-cli/internal/repositories/session"
	"github.com/jeondoksi/jeondoksi-cli/internal/sqlite"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/notice"
)

var (
	// Global flags
	configPath  string
	envFile     string
	apiURL      string
	timeout     time.Duration
	backend     string
	stateDir    string
	logLevel    string
	logOutput   string
	noAnimation bool
	assumeYes   bool
)

// AddCommands registers the global flags and every view command on root
func AddCommands(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&envFile, "env-file", "", "dotenv file (default .env)")
	flags.StringVar(&apiURL, "api-url", "", "API base URL")
	flags.DurationVar(&timeout, "timeout", 0, "Request timeout")
	flags.StringVar(&backend, "backend", "", "Local state backend: sqlite or redis")
	flags.StringVar(&stateDir, "state-dir", "", "Directory for local state and logs")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&logOutput, "log-output", "", "Log file path, stdout or stderr")
	flags.BoolVar(&noAnimation, "no-animation", false, "Render animated screens statically")
	flags.BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to confirmations")

	root.AddCommand(authCmd)
	root.AddCommand(meCmd)
	root.AddCommand(homeCmd)
	root.AddCommand(searchCmd)
	root.AddCommand(exploreCmd)
	root.AddCommand(reportCmd)
	root.AddCommand(quizCmd)
	root.AddCommand(personalityCmd)
	root.AddCommand(charactersCmd)
	root.AddCommand(shopCmd)
	root.AddCommand(inventoryCmd)
	root.AddCommand(guildsCmd)
	root.AddCommand(raidCmd)
	root.AddCommand(bossCmd)
	root.AddCommand(stateCmd)
}

// app holds the collaborators shared by every command
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	session session.Repository
	bossHP  bosshp.Repository
	api     api.Client
	notices *notice.Center
	in      *bufio.Reader
	out     io.Writer
	closers []func() error
}

// newApp loads the configuration and builds the store, the API client and
// the notice center
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.StateDir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "failed to create state directory %s", cfg.StateDir)
	}

	logger, err := logging.New(cfg.Logging())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		in:     bufio.NewReader(cmd.InOrStdin()),
		out:    cmd.OutOrStdout(),
	}
	a.closers = append(a.closers, func() error {
		_ = logger.Sync() // nolint:errcheck // stderr sync fails on some terminals
		return nil
	})

	if err := a.openStore(cmd.Context()); err != nil {
		a.close()
		return nil, err
	}

	a.api, err = api.New(&api.Config{
		BaseURL:    cfg.APIBaseURL,
		Timeout:    cfg.RequestTimeout,
		Session:    a.session,
		RequestIDs: idgen.NewUUID("cli"),
		Logger:     logger,
	})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create API client")
	}

	a.notices = notice.New(&notice.Config{
		Presenter: &terminalPresenter{out: a.out},
		Logger:    logger,
	})

	logger.Debug("client ready",
		zap.String("api", cfg.APIBaseURL),
		zap.String("backend", cfg.StoreBackend),
		zap.String("command", cmd.CommandPath()))
	return a, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(&config.LoadInput{ConfigPath: configPath, EnvFile: envFile})
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIBaseURL = apiURL
	}
	if flags.Changed("timeout") {
		cfg.RequestTimeout = timeout
	}
	if flags.Changed("backend") {
		cfg.StoreBackend = backend
	}
	if flags.Changed("state-dir") {
		cfg.StateDir = stateDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-output") {
		cfg.Log.Output = logOutput
	}
	if flags.Changed("no-animation") {
		cfg.NoAnimation = noAnimation
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func (a *app) openStore(ctx context.Context) error {
	switch a.cfg.StoreBackend {
	case config.BackendRedis:
		client, err := redisclient.NewClient(a.cfg.Redis.Addr, &redisclient.Options{
			Password:    a.cfg.Redis.Password,
			DB:          a.cfg.Redis.DB,
			DialTimeout: 5 * time.Second,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create redis client")
		}
		a.closers = append(a.closers, client.Close)
		if err := redisclient.Ping(ctx, client); err != nil {
			return errors.Transport(err, "redis is unreachable at "+a.cfg.Redis.Addr)
		}

		if a.session, err = session.NewRedis(&session.RedisConfig{Client: client, Prefix: a.cfg.Redis.Prefix}); err != nil {
			return err
		}
		if a.bossHP, err = bosshp.NewRedis(&bosshp.RedisConfig{Client: client, Prefix: a.cfg.Redis.Prefix}); err != nil {
			return err
		}
	default:
		db, err := sqlite.Open(ctx, a.cfg.DatabasePath())
		if err != nil {
			return err
		}
		a.closers = append(a.closers, db.Close)

		if a.session, err = session.NewSQLite(&session.SQLiteConfig{DB: db}); err != nil {
			return err
		}
		if a.bossHP, err = bosshp.NewSQLite(&bosshp.SQLiteConfig{DB: db}); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && a.logger != nil {
			a.logger.Warn("closing resource", zap.Error(err))
		}
	}
	a.closers = nil
}

// run builds the app, calls fn and tears everything down
func run(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := fn(ctx, a); err != nil {
		a.logger.Debug("command failed", zap.String("command", cmd.CommandPath()), zap.Error(err))
		return err
	}
	return nil
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}
