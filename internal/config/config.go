package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"folio.dev/internal/content"
	"folio.dev/internal/models"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_SERVER_ADDR.
// A double underscore descends into a section: PORTFOLIO_FORMS__CONTACT_DELAY.
const EnvPrefix = "PORTFOLIO_"

// ContentFile is the generated dataset inside DataPath
const ContentFile = "content.json"

// Config holds all application configuration
type Config struct {
	ServerAddr   string          `yaml:"server_addr" koanf:"server_addr"`
	DataPath     string          `yaml:"data_path" koanf:"data_path"`
	DatabasePath string          `yaml:"database_path" koanf:"database_path"`
	StaticDir    string          `yaml:"static_dir" koanf:"static_dir"`
	Log          LogConfig       `yaml:"log" koanf:"log"`
	Forms        FormsConfig     `yaml:"forms" koanf:"forms"`
	CORS         CORSConfig      `yaml:"cors" koanf:"cors"`
	Analytics    AnalyticsConfig `yaml:"analytics" koanf:"analytics"`
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"` // text or json
}

// FormsConfig holds the simulated submission delays
type FormsConfig struct {
	ContactDelay    time.Duration `yaml:"contact_delay" koanf:"contact_delay"`
	NewsletterDelay time.Duration `yaml:"newsletter_delay" koanf:"newsletter_delay"`
	ResumeDelay     time.Duration `yaml:"resume_delay" koanf:"resume_delay"`
}

// CORSConfig controls cross-origin access to /api
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// AnalyticsConfig controls page-view recording
type AnalyticsConfig struct {
	Enabled   bool          `yaml:"enabled" koanf:"enabled"`
	Retention time.Duration `yaml:"retention" koanf:"retention"`
	// Salt is mixed into visitor IP hashes. It must stay the same across
	// restarts or returning visitors are counted again.
	Salt      string        `yaml:"salt" koanf:"salt"`
}

// DefaultConfig returns a Config with the values used when nothing is set
func DefaultConfig() *Config {
	return &Config{
		ServerAddr:   ":8080",
		DataPath:     "data",
		DatabasePath: "data/portfolio.db",
		StaticDir:    "static",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Forms: FormsConfig{
			ContactDelay:    2 * time.Second,
			NewsletterDelay: 1 * time.Second,
			ResumeDelay:     3 * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
		Analytics: AnalyticsConfig{
			Enabled:   true,
			Retention: 365 * 24 * time.Hour,
		},
	}
}

// Load reads the YAML file at path (if it exists), then overlays
// PORTFOLIO_* environment variables on top of the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// PORT is what most hosts inject.
	if port := os.Getenv("PORT"); port != "" && os.Getenv(EnvPrefix+"SERVER_ADDR") == "" {
		cfg.ServerAddr = ":" + port
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return errors.New("server_addr is required")
	}
	if c.DataPath == "" {
		return errors.New("data_path is required")
	}
	if c.Forms.ContactDelay < 0 || c.Forms.NewsletterDelay < 0 || c.Forms.ResumeDelay < 0 {
		return errors.New("form delays must be non-negative")
	}
	if c.Analytics.Enabled && c.DatabasePath == "" {
		return errors.New("database_path is required when analytics is enabled")
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.Log.Format)
	}
	return nil
}

// Save writes the configuration to the given YAML file path
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// LoadContent reads DataPath/content.json, falling back to the built-in
// dataset when the file has not been generated.
func LoadContent(dataPath string) (*models.Content, error) {
	path := filepath.Join(dataPath, ContentFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return content.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var c models.Content
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &c, nil
}
