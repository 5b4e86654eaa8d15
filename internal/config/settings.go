package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/handiism/showcase/internal/model"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultBookURL is the published location of the book.
const DefaultBookURL = "http://taller-lectura-prod.s3-website-us-east-1.amazonaws.com/assets/libro-taller-lectura-UNAM-v2.0.pdf"

// Settings holds all configuration options.
type Settings struct {
	// Carousel settings
	SlidesDir        string        `mapstructure:"slides-dir" yaml:"slides-dir"`
	AutoPlayInterval time.Duration `mapstructure:"auto-play-interval" yaml:"auto-play-interval"`
	ThumbnailWidth   int           `mapstructure:"thumbnail-width" yaml:"thumbnail-width"`
	ThumbnailHeight  int           `mapstructure:"thumbnail-height" yaml:"thumbnail-height"`

	// Book settings
	BookTitle string `mapstructure:"book-title" yaml:"book-title"`
	BookURL   string `mapstructure:"book-url" yaml:"book-url"`
	DriveLink string `mapstructure:"drive-link" yaml:"drive-link"`

	// Download settings
	Opener                 string  `mapstructure:"opener" yaml:"opener"` // browser, fetch, log
	DownloadsPath          string  `mapstructure:"downloads-path" yaml:"downloads-path"`
	MaxConcurrentDownloads int     `mapstructure:"max-concurrent-downloads" yaml:"max-concurrent-downloads"`
	DownloadMaxRetries     int     `mapstructure:"download-max-retries" yaml:"download-max-retries"`
	DownloadRetryCooldown  float64 `mapstructure:"download-retry-cooldown" yaml:"download-retry-cooldown"`
	DownloadRetryExponent  float64 `mapstructure:"download-retry-exponent" yaml:"download-retry-exponent"`

	// Counter persistence
	StoreBackend string `mapstructure:"store-backend" yaml:"store-backend"` // memory, file, sqlite
	StorePath    string `mapstructure:"store-path" yaml:"store-path"`

	// LogFile receives structured logs when set. The TUI owns the terminal,
	// so it only logs there.
	LogFile string `mapstructure:"log-file" yaml:"log-file"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".local", "share", "showcase")

	return &Settings{
		SlidesDir:        "slides",
		AutoPlayInterval: 1500 * time.Millisecond,
		ThumbnailWidth:   48,
		ThumbnailHeight:  24,

		BookTitle: "Taller de lectura",
		BookURL:   DefaultBookURL,

		Opener:                 "browser",
		DownloadsPath:          filepath.Join(homeDir, "Downloads"),
		MaxConcurrentDownloads: 1,
		DownloadMaxRetries:     7,
		DownloadRetryCooldown:  0.2,
		DownloadRetryExponent:  4.0,

		StoreBackend: "file",
		StorePath:    filepath.Join(dataDir, "counter.json"),
	}
}

// DefaultPath returns the config file used when none is given.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "showcase", "config.yml")
}

// Load reads settings from a YAML file, overlaid with SHOWCASE_* environment
// variables. A missing file yields the defaults. An empty path means
// DefaultPath().
func Load(path string) (*Settings, error) {
	defaults := DefaultSettings()

	v := viper.New()
	v.SetEnvPrefix("SHOWCASE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("slides-dir", defaults.SlidesDir)
	v.SetDefault("auto-play-interval", defaults.AutoPlayInterval)
	v.SetDefault("thumbnail-width", defaults.ThumbnailWidth)
	v.SetDefault("thumbnail-height", defaults.ThumbnailHeight)
	v.SetDefault("book-title", defaults.BookTitle)
	v.SetDefault("book-url", defaults.BookURL)
	v.SetDefault("drive-link", defaults.DriveLink)
	v.SetDefault("opener", defaults.Opener)
	v.SetDefault("downloads-path", defaults.DownloadsPath)
	v.SetDefault("max-concurrent-downloads", defaults.MaxConcurrentDownloads)
	v.SetDefault("download-max-retries", defaults.DownloadMaxRetries)
	v.SetDefault("download-retry-cooldown", defaults.DownloadRetryCooldown)
	v.SetDefault("download-retry-exponent", defaults.DownloadRetryExponent)
	v.SetDefault("store-backend", defaults.StoreBackend)
	v.SetDefault("store-path", defaults.StorePath)
	v.SetDefault("log-file", defaults.LogFile)

	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a YAML file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToBook converts settings to the downloadable Book.
func (s *Settings) ToBook() *model.Book {
	return &model.Book{
		Title:     s.BookTitle,
		URL:       s.BookURL,
		DriveLink: s.DriveLink,
	}
}
