package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gomantics/folio/formats"
)

var (
	// DefaultAppName names the config directory and the environment prefix.
	DefaultAppName = "folio"
	// DefaultConfigPath is searched after the working directory.
	DefaultConfigPath = filepath.Join(homeDir(), ".config", DefaultAppName)
	// DefaultCoverColor tints shoot covers that do not set their own.
	DefaultCoverColor = "#1a1a2e"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config stores the portfolio configuration.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Camera   Camera   `mapstructure:"camera"`
	Shoots   []Shoot  `mapstructure:"shoots"`
	Settings Settings `mapstructure:"settings"`
	Fetch    Fetch    `mapstructure:"fetch"`
	Log      Log      `mapstructure:"log"`
}

// Camera is the fallback shown when an image carries no EXIF data.
type Camera struct {
	Make         string `mapstructure:"make"`
	Model        string `mapstructure:"model"`
	Lens         string `mapstructure:"lens"`
	Photographer string `mapstructure:"photographer"`
}

// Shoot is one photo series stored in its own folder.
type Shoot struct {
	ID         string   `mapstructure:"id"`
	Title      string   `mapstructure:"title"`
	Folder     string   `mapstructure:"folder"`
	CoverImage string   `mapstructure:"coverImage"`
	CoverColor string   `mapstructure:"coverColor"`
	Images     []string `mapstructure:"images"`
}

// Settings toggles portfolio features.
type Settings struct {
	EnableMetadataExtraction bool   `mapstructure:"enableMetadataExtraction"`
	Concurrency              int    `mapstructure:"concurrency"`
	RationalLayout           string `mapstructure:"rationalLayout"`
}

// Fetch says where image bytes come from. BaseURL takes precedence over Root.
type Fetch struct {
	Root    string        `mapstructure:"root"`
	BaseURL string        `mapstructure:"baseURL"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Log configures the zerolog logger.
type Log struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from configPath, or from config.{yaml,json,toml}
// in the working directory and DefaultConfigPath when configPath is empty.
// Environment variables prefixed FOLIO_ override file values, e.g.
// FOLIO_CAMERA_MAKE or FOLIO_SETTINGS_CONCURRENCY.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		// An explicit file must exist; only the searched locations are optional.
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultConfigPath)
		v.SetConfigName("config")
	}

	setDefaults(v)

	v.SetEnvPrefix(DefaultAppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	cfg.applyShootDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("camera.make", "Sony")
	v.SetDefault("camera.model", "A7R III")
	v.SetDefault("camera.lens", "Sony 20-70mm f/4 G")
	v.SetDefault("camera.photographer", "Simon Hajduk")

	v.SetDefault("settings.enableMetadataExtraction", true)
	v.SetDefault("settings.concurrency", 4)
	v.SetDefault("settings.rationalLayout", formats.RationalInline.String())

	v.SetDefault("fetch.root", ".")
	v.SetDefault("fetch.baseURL", "")
	v.SetDefault("fetch.timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
}

func (c *Config) applyShootDefaults() {
	for i := range c.Shoots {
		if c.Shoots[i].CoverColor == "" {
			c.Shoots[i].CoverColor = DefaultCoverColor
		}
	}
}

// Validate checks the parts of the configuration the gallery relies on.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Shoots))
	for i, s := range c.Shoots {
		if s.ID == "" {
			return fmt.Errorf("%w: shoot %d has no id", ErrInvalidConfig, i)
		}
		if s.Folder == "" {
			return fmt.Errorf("%w: shoot %q has no folder", ErrInvalidConfig, s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate shoot id %q", ErrInvalidConfig, s.ID)
		}
		seen[s.ID] = true
	}

	if c.Settings.Concurrency <= 0 {
		return fmt.Errorf("%w: concurrency must be positive, got %d", ErrInvalidConfig, c.Settings.Concurrency)
	}
	if _, err := formats.ParseRationalLayout(c.Settings.RationalLayout); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// RationalLayout returns the decoder layout named in the settings.
func (c *Config) RationalLayout() formats.RationalLayout {
	l, _ := formats.ParseRationalLayout(c.Settings.RationalLayout)
	return l
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			return cwd
		}
		return os.TempDir()
	}
	return home
}
