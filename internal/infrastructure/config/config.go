package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App  AppConfig
	API  APIConfig
	Path PathConfig
	HTTP HTTPConfig
	Log  LogConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// APIConfig holds credentials and connection settings for the upstream
// catalog API. The API authenticates with a client certificate plus a
// username/password pair.
type APIConfig struct {
	BaseURL             string
	Username            string
	Password            string
	CertificatePath     string
	CertificatePassword string
	Timeout             time.Duration
}

// PathConfig holds filesystem locations for local state
type PathConfig struct {
	DataDir      string // Root for all local state
	TokenCache   string // Cached auth token
	DatabasePath string // SQLite subscription ledger
	DownloadDir  string // Images, CAD files, datasheets
}

// HTTPConfig holds HTTP server configuration for serve mode
type HTTPConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
	TrustedProxies []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with PARTKIT_ prefix (e.g., PARTKIT_API_PASSWORD)
// 2. config.toml (current directory or the data directory)
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".partkit"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("PARTKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		API: APIConfig{
			BaseURL:             v.GetString("api.base_url"),
			Username:            v.GetString("api.username"),
			Password:            v.GetString("api.password"),
			CertificatePath:     v.GetString("api.certificate_path"),
			CertificatePassword: v.GetString("api.certificate_password"),
			Timeout:             v.GetDuration("api.timeout"),
		},
		Path: PathConfig{
			DataDir:      v.GetString("path.data_dir"),
			TokenCache:   v.GetString("path.token_cache"),
			DatabasePath: v.GetString("path.database_path"),
			DownloadDir:  v.GetString("path.download_dir"),
		},
		HTTP: HTTPConfig{
			Port:           v.GetString("http.port"),
			ReadTimeout:    v.GetDuration("http.read_timeout"),
			WriteTimeout:   v.GetDuration("http.write_timeout"),
			IdleTimeout:    v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes: v.GetInt("http.max_header_bytes"),
			TrustedProxies: v.GetStringSlice("http.trusted_proxies"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "partkit"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "https://api.mcmaster.com/v1"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 30 * time.Second
	}
	if cfg.Path.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.Path.DataDir = filepath.Join(home, ".partkit")
	}
	if cfg.Path.TokenCache == "" {
		cfg.Path.TokenCache = filepath.Join(cfg.Path.DataDir, "token.json")
	}
	if cfg.Path.DatabasePath == "" {
		cfg.Path.DatabasePath = filepath.Join(cfg.Path.DataDir, "partkit.db")
	}
	if cfg.Path.DownloadDir == "" {
		cfg.Path.DownloadDir = filepath.Join(cfg.Path.DataDir, "downloads")
	}
	if cfg.HTTP.Port == "" {
		cfg.HTTP.Port = "8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout cannot be negative")
	}
	if c.App.Env == "production" {
		if c.Log.Format == "console" {
			return fmt.Errorf("log.format must be json in production")
		}
	}
	return nil
}

// EnsureDataDirs creates the data and download directories if missing.
func (c *Config) EnsureDataDirs() error {
	for _, dir := range []string{c.Path.DataDir, c.Path.DownloadDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}
