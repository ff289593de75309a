// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML-based configuration via gopkg.in/yaml.v3; project values win

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/gridterm/internal/log"
)

// Settings holds the merged configuration.
type Settings struct {
	Wrap        *bool     `yaml:"wrap,omitempty"`
	ColorMode   string    `yaml:"color_mode,omitempty"`
	LogLevel    string    `yaml:"log_level,omitempty"`
	LogFile     string    `yaml:"log_file,omitempty"`
	TextStyle   StyleBlock `yaml:"text_style,omitempty"`
	StatusStyle StyleBlock `yaml:"status_style,omitempty"`
}

// Defaults returns the settings used when no file sets a value.
func Defaults() *Settings {
	wrap := true
	return &Settings{
		Wrap:        &wrap,
		ColorMode:   "auto",
		LogLevel:    "info",
		LogFile:     DefaultLogFile(),
		StatusStyle: StyleBlock{Reverse: true},
	}
}

// Load reads and merges defaults, global and project-local settings.
// Missing files are skipped.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(Defaults(), global), project)
	ResolveEnvVars(merged)
	return merged, merged.Validate()
}

// LoadFile reads a single settings file over the defaults, for an explicit
// -config path. Unlike Load, a missing file is an error.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	merged := merge(Defaults(), s)
	ResolveEnvVars(merged)
	return merged, merged.Validate()
}

// loadFile reads Settings from a YAML file. An empty file yields zero Settings.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Debug("config: loaded %s", path)
	return &s, nil
}

// merge overlays the set fields of top onto base.
func merge(base, top *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if top == nil {
		return base
	}

	result := *base

	if top.Wrap != nil {
		wrap := *top.Wrap
		result.Wrap = &wrap
	}
	if top.ColorMode != "" {
		result.ColorMode = top.ColorMode
	}
	if top.LogLevel != "" {
		result.LogLevel = top.LogLevel
	}
	if top.LogFile != "" {
		result.LogFile = top.LogFile
	}
	result.TextStyle = result.TextStyle.merge(top.TextStyle)
	result.StatusStyle = result.StatusStyle.merge(top.StatusStyle)

	return &result
}

// WrapEnabled reports whether text wraps at the right edge.
func (s *Settings) WrapEnabled() bool {
	return s.Wrap == nil || *s.Wrap
}

// Validate checks every field that is parsed later, so bad values are
// reported at load time with the offending key.
func (s *Settings) Validate() error {
	var errs []error
	if _, err := ParseColorMode(s.ColorMode); err != nil {
		errs = append(errs, fmt.Errorf("color_mode: %w", err))
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if _, err := s.TextStyle.Style(); err != nil {
		errs = append(errs, fmt.Errorf("text_style: %w", err))
	}
	if _, err := s.StatusStyle.Style(); err != nil {
		errs = append(errs, fmt.Errorf("status_style: %w", err))
	}
	return errors.Join(errs...)
}
