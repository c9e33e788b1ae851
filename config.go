package folio

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tfkr-ae/folio/domain"
)

// EnvPrefix is prepended to every environment variable that overrides a setting,
// e.g. FOLIO_MAIL_FROM for mail.from.
const EnvPrefix = "FOLIO"

type ServerConfig struct {
	Addr     string `mapstructure:"addr"`      // Listen address
	BasePath string `mapstructure:"base_path"` // Prefix every API route is mounted under
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"` // SQLite database file
}

type StoreConfig struct {
	ListLimit int `mapstructure:"list_limit"` // Maximum records per listing, 0 for no limit
}

type MailConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	From         string        `mapstructure:"from"`          // Sender of every notification
	ContactEmail string        `mapstructure:"contact_email"` // Owner inbox for contact and hire alerts
	TLS          string        `mapstructure:"tls"`           // none, opportunistic or mandatory
	Timeout      time.Duration `mapstructure:"timeout"`
}

type GitHubConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Token   string        `mapstructure:"token"` // Optional, raises the API rate limit
}

type CacheConfig struct {
	RedisAddr string        `mapstructure:"redis_addr"` // Empty disables the cache
	TTL       time.Duration `mapstructure:"ttl"`
}

// Config is the process-wide configuration. It is loaded once at startup and not modified afterwards.
type Config struct {
	ConfigDir string         `mapstructure:"-"`
	Server    ServerConfig   `mapstructure:"server"`
	Database  DatabaseConfig `mapstructure:"database"`
	Store     StoreConfig    `mapstructure:"store"`
	Mail      MailConfig     `mapstructure:"mail"`
	GitHub    GitHubConfig   `mapstructure:"github"`
	Cache     CacheConfig    `mapstructure:"cache"`
	Profile   domain.Profile `mapstructure:"profile"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "127.0.0.1:8000")
	v.SetDefault("server.base_path", "/api")
	v.SetDefault("database.path", "folio.db")
	v.SetDefault("store.list_limit", 0)
	v.SetDefault("mail.host", "localhost")
	v.SetDefault("mail.port", 25)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "")
	v.SetDefault("mail.contact_email", "")
	v.SetDefault("mail.tls", "opportunistic")
	v.SetDefault("mail.timeout", 10*time.Second)
	v.SetDefault("github.timeout", 10*time.Second)
	v.SetDefault("github.token", "")
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("profile.name", "")
	v.SetDefault("profile.email", "")
	v.SetDefault("profile.phone", "")
	v.SetDefault("profile.github_url", "")
	v.SetDefault("profile.linkedin_url", "")
	v.SetDefault("profile.certifications_url", "")
	v.SetDefault("profile.cv_url", "")
	v.SetDefault("profile.picture_url", "")
}

// LoadConfig reads config.yaml from configDir, writing one with the defaults if it does not exist,
// and applies FOLIO_ environment overrides. An empty configDir reads defaults and environment only.
// The returned Config is not validated.
func LoadConfig(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configDir != "" {
		if err := os.MkdirAll(configDir, 0700); err != nil {
			return nil, fmt.Errorf("creating config dir %s: %w", configDir, err)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file : %w", err)
			}
			if err := v.SafeWriteConfig(); err != nil {
				return nil, fmt.Errorf("writing config file : %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config to struct : %w", err)
	}
	cfg.ConfigDir = configDir
	return cfg, nil
}

// Validate reports the first missing or invalid setting as a *ConfigurationError.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Server.Addr == "":
		return &ConfigurationError{Key: "server.addr", Reason: "must be set"}
	case !strings.HasPrefix(cfg.Server.BasePath, "/"):
		return &ConfigurationError{Key: "server.base_path", Reason: "must start with /"}
	case cfg.Database.Path == "":
		return &ConfigurationError{Key: "database.path", Reason: "must be set"}
	case cfg.Store.ListLimit < 0:
		return &ConfigurationError{Key: "store.list_limit", Reason: "must not be negative"}
	case cfg.Mail.Host == "":
		return &ConfigurationError{Key: "mail.host", Reason: "must be set"}
	case cfg.Mail.From == "":
		return &ConfigurationError{Key: "mail.from", Reason: "must be set"}
	case cfg.Mail.ContactEmail == "":
		return &ConfigurationError{Key: "mail.contact_email", Reason: "must be set"}
	case cfg.Mail.Timeout <= 0:
		return &ConfigurationError{Key: "mail.timeout", Reason: "must be positive"}
	case cfg.GitHub.Timeout <= 0:
		return &ConfigurationError{Key: "github.timeout", Reason: "must be positive"}
	case cfg.Cache.RedisAddr != "" && cfg.Cache.TTL <= 0:
		return &ConfigurationError{Key: "cache.ttl", Reason: "must be positive when the cache is enabled"}
	}

	switch strings.ToLower(cfg.Mail.TLS) {
	case "", "none", "opportunistic", "mandatory":
	default:
		return &ConfigurationError{Key: "mail.tls", Reason: fmt.Sprintf("unknown policy %q", cfg.Mail.TLS)}
	}
	return nil
}
