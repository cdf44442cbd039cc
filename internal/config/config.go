// Package config loads client settings from defaults, a YAML file, a .env
// file and JEONDOKSI_* environment variables, in that order of precedence
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "JEONDOKSI"

// Store backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds everything the commands need to build their collaborators
type Config struct {
	APIBaseURL     string        `yaml:"api_base_url" envconfig:"API_BASE_URL"`
	RequestTimeout time.Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT"`
	StoreBackend   string        `yaml:"store_backend" envconfig:"STORE_BACKEND"`
	StateDir       string        `yaml:"state_dir" envconfig:"STATE_DIR"`
	NoAnimation    bool          `yaml:"no_animation" envconfig:"NO_ANIMATION"`
	Redis          RedisConfig   `yaml:"redis"`
	Log            LogConfig     `yaml:"log"`
}

// RedisConfig configures the redis store backend
type RedisConfig struct {
	Addr     string `yaml:"addr" envconfig:"ADDR"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
	DB       int    `yaml:"db" envconfig:"DB"`
	Prefix   string `yaml:"prefix" envconfig:"PREFIX"`
}

// LogConfig configures the logger
type LogConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Encoding string `yaml:"encoding" envconfig:"ENCODING"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
}

// LoadInput names the optional files read by Load
type LoadInput struct {
	// ConfigPath is an explicit YAML file. It must exist when set.
	ConfigPath string
	// EnvFile is a dotenv file. A missing file is ignored.
	EnvFile string
}

// Default returns the built-in settings
func Default() *Config {
	stateDir := ".jeondoksi"
	if home, err := os.UserHomeDir(); err == nil {
		stateDir = filepath.Join(home, ".jeondoksi")
	}

	return &Config{
		APIBaseURL:     "http://localhost:8080",
		RequestTimeout: 60 * time.Second,
		StoreBackend:   BackendSQLite,
		StateDir:       stateDir,
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "jeondoksi",
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Load layers defaults, YAML, dotenv and environment. Flags are applied by
// the caller afterwards, followed by Validate.
func Load(input *LoadInput) (*Config, error) {
	if input == nil {
		input = &LoadInput{}
	}

	envFile := input.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// godotenv never overrides variables already set in the process
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to read %s", envFile)
	}

	cfg := Default()

	path, required := input.ConfigPath, true
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path == "" {
		stateDir := cfg.StateDir
		if dir := os.Getenv(EnvPrefix + "_STATE_DIR"); dir != "" {
			stateDir = dir
		}
		path, required = filepath.Join(expandHome(stateDir), "config.yaml"), false
	}
	if err := cfg.mergeFile(path, required); err != nil {
		return nil, err
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read environment")
	}

	cfg.StateDir = expandHome(cfg.StateDir)
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) && !required {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(raw, c); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid config file "+path)
	}
	return nil
}

// Validate checks the final settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("api_base_url", c.APIBaseURL, vb)
	if c.APIBaseURL != "" && !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		vb.InvalidField("api_base_url", "must start with http:// or https://")
	}
	if c.RequestTimeout <= 0 {
		vb.Field("request_timeout", "must be positive")
	}
	errors.ValidateEnum("store_backend", c.StoreBackend, []string{BackendSQLite, BackendRedis}, vb)
	errors.ValidateRequired("state_dir", c.StateDir, vb)
	if c.StoreBackend == BackendRedis {
		errors.ValidateRequired("redis.addr", c.Redis.Addr, vb)
	}

	return vb.Build()
}

// DatabasePath is the sqlite store file
func (c *Config) DatabasePath() string {
	return filepath.Join(c.StateDir, "state.db")
}

// Logging returns the logger settings. Output defaults to a file in the state
// directory so log lines stay out of the terminal views.
func (c *Config) Logging() logging.Config {
	output := c.Log.Output
	if output == "" {
		output = filepath.Join(c.StateDir, "jeondoksi.log")
	}
	return logging.Config{
		Level:      c.Log.Level,
		Encoding:   c.Log.Encoding,
		OutputPath: output,
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
