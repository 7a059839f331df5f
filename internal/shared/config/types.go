package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// Backend modes. Exactly one ticket source is live per process.
const (
	BackendModeLocal  = "local"
	BackendModeRemote = "remote"
)

type BackendConfig struct {
	Mode       string `mapstructure:"mode"`
	APIBaseURL string `mapstructure:"api_base_url"`
	// TimeoutSeconds of 0 leaves the transport default in place.
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
	Debug          bool   `mapstructure:"debug"`
}

func (b *BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

func (b *BackendConfig) IsRemote() bool {
	return b.Mode == BackendModeRemote
}

type LocalStoreConfig struct {
	IDStrategy   string `mapstructure:"id_strategy"`
	FixturesPath string `mapstructure:"fixtures_path"`
}

// SessionConfig names the acting user. There is no authentication: the
// configured id is the identity every request acts as unless the optional
// header overrides it.
type SessionConfig struct {
	CurrentUserID string `mapstructure:"current_user_id"`
	Header        string `mapstructure:"header"`
}

type FlashConfig struct {
	Backend    string `mapstructure:"backend"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
	CookieName string `mapstructure:"cookie_name"`
}

func (f *FlashConfig) TTL() time.Duration {
	return time.Duration(f.TTLSeconds) * time.Second
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
