// Package config is responsible for finding, parsing and merging the Mosaic user
// configuration with the default. Configuration locations should be different
// depending on the host OS.
//
// Linux/BSD configurations should be in $HOME/.mosaic/config.json
// Windows configurations should be in %APPDATA%/mosaic/config.json
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ironsmile/mosaic/src/helpers"
)

// ConfigName is the name of the user configuration file within the user path.
const ConfigName = "config.json"

//go:embed config.default.json
var defaultConfig []byte

// Config contains representation for everything in config.json
type Config struct {
	Listen         string `json:"listen"`
	LogFile        string `json:"log_file"`
	SqliteDatabase string `json:"sqlite_database"`
	UserPath       string `json:"user_path"`

	// CanvasSize is the width and height in pixels of composed playlist art.
	CanvasSize int `json:"canvas_size"`

	// WatchdogTimeout is the number of milliseconds after which a playlist art
	// is delivered with whatever images have arrived by then.
	WatchdogTimeout int `json:"watchdog_timeout_ms"`

	// Debounce is the number of milliseconds for which re-rendering is delayed
	// while more images are expected.
	Debounce int `json:"debounce_ms"`

	AllowPlaceholder bool `json:"allow_placeholder"`
	FetchConcurrency int  `json:"fetch_concurrency"`

	// ArtMaxSize is the maximum width of a single fetched image after decoding.
	// Larger images are scaled down. Zero means no limit.
	ArtMaxSize int `json:"art_max_size"`

	OutputFormat string `json:"output_format"`
	JPEGQuality  int    `json:"jpeg_quality"`

	MusicBrainz MusicBrainz `json:"music_brainz"`
	LocalArt    LocalArt    `json:"local_art"`
}

// MusicBrainz configures looking for album art on the internet.
type MusicBrainz struct {
	Enabled           bool    `json:"enabled"`
	UserAgent         string  `json:"user_agent"`
	RequestsPerSecond float64 `json:"requests_per_second"`
	MinScore          int     `json:"min_score"`
}

// LocalArt configures which local sources of art are used.
type LocalArt struct {
	Embedded bool `json:"embedded"`
	Folder   bool `json:"folder"`
}

// WatchdogDuration returns the watchdog timeout as time.Duration.
func (cfg *Config) WatchdogDuration() time.Duration {
	return time.Duration(cfg.WatchdogTimeout) * time.Millisecond
}

// DebounceDuration returns the debounce delay as time.Duration.
func (cfg *Config) DebounceDuration() time.Duration {
	return time.Duration(cfg.Debounce) * time.Millisecond
}

// Default returns the configuration Mosaic ships with.
func Default() (*Config, error) {
	cfg := new(Config)
	if err := cfg.parse(bytes.NewReader(defaultConfig)); err != nil {
		return nil, fmt.Errorf("parsing default config: %w", err)
	}
	return cfg, nil
}

// FindAndParse actually finds the configuration file, parsing it and merging it on
// top the default configuration.
func (cfg *Config) FindAndParse() error {
	if err := cfg.parse(bytes.NewReader(defaultConfig)); err != nil {
		return fmt.Errorf("parsing default config: %w", err)
	}

	if !cfg.UserConfigExists() {
		if err := cfg.CopyDefaultOverUser(); err != nil {
			return err
		}
	}

	return cfg.MergeFile(cfg.UserConfigPath())
}

// MergeFile parses the JSON file at `filename` and merges it on top of cfg.
func (cfg *Config) MergeFile(filename string) error {
	fh, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fh.Close()

	usrCfg := new(Config)
	if err := usrCfg.parse(fh); err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}

	cfg.merge(usrCfg)
	return nil
}

func (cfg *Config) parse(r io.Reader) error {
	dec := json.NewDecoder(r)
	return dec.Decode(cfg)
}

// merge merges an other config on top of itself. Only non-zero values will be merged.
// Nested structs are merged field by field.
func (cfg *Config) merge(merged *Config) {
	mergeValues(reflect.ValueOf(cfg).Elem(), reflect.ValueOf(merged).Elem())
}

func mergeValues(dst, src reflect.Value) {
	for i := 0; i < src.NumField(); i++ {
		srcField := src.Field(i)
		dstField := dst.Field(i)
		if !srcField.IsValid() || !dstField.CanSet() {
			continue
		}

		if srcField.Kind() == reflect.Struct {
			mergeValues(dstField, srcField)
			continue
		}

		if srcField.IsZero() {
			continue
		}

		dstField.Set(srcField)
	}
}

// UserConfigPath returns the full path to the place where the user's configuration
// file should be.
func (cfg *Config) UserConfigPath() string {
	if len(cfg.UserPath) > 0 {
		if filepath.IsAbs(cfg.UserPath) {
			return filepath.Join(cfg.UserPath, ConfigName)
		}
		log.Warnf("User path %s was invalid as it was not rooted", cfg.UserPath)
	}

	path, err := helpers.ProjectUserPath()
	if err != nil {
		log.Errorf("Could not find user path: %s", err)
		return ""
	}
	return filepath.Join(path, ConfigName)
}

// UserConfigExists returns true if the user configuration is present and in order.
// Otherwise false.
func (cfg *Config) UserConfigExists() bool {
	path := cfg.UserConfigPath()
	st, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !st.IsDir()
}

// CopyDefaultOverUser will create (or replace if necessary) the user configuration
// using the default config embedded in the binary.
func (cfg *Config) CopyDefaultOverUser() error {
	userConfig := cfg.UserConfigPath()
	if userConfig == "" {
		return fmt.Errorf("could not determine user config path")
	}
	return helpers.CopyFrom(bytes.NewReader(defaultConfig), userConfig)
}
