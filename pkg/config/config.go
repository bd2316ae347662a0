package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Listeners
	APIHost string `mapstructure:"api_host"`
	APIPort int    `mapstructure:"api_port"`
	WSPort  int    `mapstructure:"ws_port"`

	// Storage
	DBPath string `mapstructure:"db_path"`

	// Session tokens. An empty secret means a fresh random key per process,
	// so a restart invalidates every token issued before it.
	JWTSecretKey string        `mapstructure:"jwt_secret_key"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`

	// Optional CORS settings
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Optional logging settings
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	DevMode bool `mapstructure:"dev_mode"`

	ConfigPath string
}

const (
	DefaultAPIHost   = "0.0.0.0"
	DefaultAPIPort   = 9000
	DefaultWSPort    = 9001
	DefaultDBPath    = "societies.sqlite3"
	DefaultTokenTTL  = 15 * 24 * time.Hour
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	envPrefix = "SOCIETIES"
)

// Load reads the optional YAML file at configPath and applies SOCIETIES_*
// environment overrides on top of the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api_host", DefaultAPIHost)
	v.SetDefault("api_port", DefaultAPIPort)
	v.SetDefault("ws_port", DefaultWSPort)
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("jwt_secret_key", "")
	v.SetDefault("token_ttl", DefaultTokenTTL)
	v.SetDefault("cors_origins", []string{})
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("dev_mode", false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.APIPort < 1 || c.APIPort > 65535 {
		return fmt.Errorf("api_port must be between 1 and 65535, got %d", c.APIPort)
	}

	if c.WSPort < 1 || c.WSPort > 65535 {
		return fmt.Errorf("ws_port must be between 1 and 65535, got %d", c.WSPort)
	}

	if c.APIPort == c.WSPort {
		return fmt.Errorf("api_port and ws_port must differ")
	}

	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error")
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be 'text' or 'json'")
	}

	return nil
}

// APIAddr is the listen address of the HTTP API.
func (c *Config) APIAddr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

// WSAddr is the listen address of the WebSocket echo listener.
func (c *Config) WSAddr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.WSPort)
}
