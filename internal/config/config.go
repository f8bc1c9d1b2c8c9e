package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Committee CommitteeConfig
	JWT       JWTConfig
	Auth      AuthConfig
	LogLevel  string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Mode string // gin mode: debug, release or test
}

// CommitteeConfig holds committee-specific configuration
type CommitteeConfig struct {
	Name      string
	UnitPrice int
	Seed      int64 // 0 seeds from the clock
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// AuthConfig holds the admin credentials for the HTTP API
type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string // bcrypt
}

// Load loads configuration from .env, an optional config file and environment
// variables. Extra paths are searched for config.yaml before the defaults.
func Load(paths ...string) (*Config, error) {
	// A missing .env is fine, plain environment variables still apply
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "4000")
	v.SetDefault("Server.Mode", "release")
	v.SetDefault("Committee.Name", "Monthly Savings Committee")
	v.SetDefault("Committee.UnitPrice", 1000)
	v.SetDefault("Committee.Seed", 0)
	v.SetDefault("JWT.Secret", "")
	v.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	v.SetDefault("Auth.AdminUsername", "admin")
	v.SetDefault("Auth.AdminPasswordHash", "")
	v.SetDefault("LogLevel", "info")
}

// ValidateAPI checks the settings the HTTP API cannot run without
func (c *Config) ValidateAPI() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is not configured")
	}
	if c.Auth.AdminPasswordHash == "" {
		return errors.New("AUTH_ADMINPASSWORDHASH is not configured")
	}
	if c.JWT.ExpiresIn <= 0 {
		return errors.New("JWT_EXPIRESIN must be positive")
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
