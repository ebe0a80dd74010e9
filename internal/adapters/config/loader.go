// Package config provides the settings loader for rehost.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/rehost/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SettingsLoader.
type Loader struct {
	// Getenv looks up environment overrides. Defaults to os.Getenv.
	Getenv func(string) string
}

// NewLoader creates a new Loader reading overrides from the process environment.
func NewLoader() *Loader {
	return &Loader{Getenv: os.Getenv}
}

// Load returns the built-in defaults overlaid with the settings file and the
// environment, in that order. An empty path selects the default location,
// where a missing file is silently skipped.
func (l *Loader) Load(path string) (domain.Settings, error) {
	explicit := path != ""
	if !explicit {
		path = domain.DefaultSettingsPath()
	}
	path = domain.ExpandHome(path)

	settings := domain.DefaultSettings()

	file, found, err := readSettingsFile(path, explicit)
	if err != nil {
		return domain.Settings{}, err
	}
	if found {
		settings = settings.Merge(file)
	}

	settings = settings.Merge(l.fromEnv())
	settings.SSHConfig = domain.ExpandHome(settings.SSHConfig)
	settings.MetricsFile = domain.ExpandHome(settings.MetricsFile)

	// Validated by the caller once flag overrides are merged.
	return settings, nil
}

func (l *Loader) fromEnv() domain.Settings {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	return domain.Settings{
		SSHConfig: getenv(domain.SSHConfigEnvVar),
		Shell:     getenv(domain.ShellEnvVar),
	}
}

// readSettingsFile reports found=false for a missing file unless required is set.
func readSettingsFile(path string, required bool) (settings domain.Settings, found bool, err error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return domain.Settings{}, false, nil
		}
		return domain.Settings{}, false, zerr.With(zerr.Wrap(domain.ErrSettingsReadFailed, err.Error()), "path", path)
	}

	var file SettingsFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		_, err = toml.Decode(string(data), &file)
	default:
		err := zerr.Wrap(domain.ErrUnsupportedSettingsFormat, "cannot load "+filepath.Base(path))
		return domain.Settings{}, false, zerr.With(err, "path", path)
	}
	if err != nil {
		return domain.Settings{}, false, zerr.With(zerr.Wrap(domain.ErrSettingsParseFailed, err.Error()), "path", path)
	}

	return domain.Settings{
		SSHConfig:   file.SSHConfig,
		Shell:       file.Shell,
		LogFormat:   file.LogFormat,
		MetricsFile: file.MetricsFile,
	}, true, nil
}
