package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "ticketdesk/internal/shared/config"
)

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Backend    sharedConfig.BackendConfig    `mapstructure:"backend"`
	LocalStore sharedConfig.LocalStoreConfig `mapstructure:"local_store"`
	Session    sharedConfig.SessionConfig    `mapstructure:"session"`
	Flash      sharedConfig.FlashConfig      `mapstructure:"flash"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	Metrics    sharedConfig.MetricsConfig    `mapstructure:"metrics"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// A missing config file is not an error: defaults and TICKETDESK_* variables apply.
func Load(env string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("TICKETDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Backend.Mode {
	case sharedConfig.BackendModeLocal:
	case sharedConfig.BackendModeRemote:
		if c.Backend.APIBaseURL == "" {
			return fmt.Errorf("backend.api_base_url is required when backend.mode is %q", sharedConfig.BackendModeRemote)
		}
	default:
		return fmt.Errorf("unknown backend.mode %q", c.Backend.Mode)
	}

	switch c.Flash.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown flash.backend %q", c.Flash.Backend)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Backend defaults
	v.SetDefault("backend.mode", sharedConfig.BackendModeLocal)
	v.SetDefault("backend.api_base_url", "")
	v.SetDefault("backend.timeout_seconds", 0)
	v.SetDefault("backend.user_agent", "ticketdesk/1.0")
	v.SetDefault("backend.debug", false)

	// Local store defaults
	v.SetDefault("local_store.id_strategy", "monotonic")
	v.SetDefault("local_store.fixtures_path", "")

	// Session defaults (no authentication, see SessionConfig)
	v.SetDefault("session.current_user_id", "user-001")
	v.SetDefault("session.header", "X-Ticketdesk-User")

	// Flash defaults
	v.SetDefault("flash.backend", "memory")
	v.SetDefault("flash.ttl_seconds", 300)
	v.SetDefault("flash.cookie_name", "ticketdesk_flash")

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
