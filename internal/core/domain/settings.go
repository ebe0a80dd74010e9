package domain

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppName is the name of the binary and of its settings directory.
	AppName = "rehost"

	// SettingsFileName is the default settings file inside the settings directory.
	SettingsFileName = "config.yaml"

	// SSHConfigEnvVar overrides the SSH config path.
	SSHConfigEnvVar = "REHOST_SSH_CONFIG"

	// ShellEnvVar overrides the shell used to run directive commands.
	ShellEnvVar = "REHOST_SHELL"

	// DefaultShell runs directive commands.
	DefaultShell = "/bin/sh"

	// LogFormatPretty renders colored human-readable logs.
	LogFormatPretty = "pretty"

	// LogFormatJSON renders one JSON object per log record.
	LogFormatJSON = "json"

	// FilePerm is the permission for files created from scratch (rw-r--r--).
	FilePerm = 0o644

	// DirPerm is the permission for directories created from scratch (rwxr-x---).
	DirPerm = 0o750
)

// Settings are the user-level options of rehost.
type Settings struct {
	SSHConfig   string
	Shell       string
	LogFormat   string
	MetricsFile string
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		SSHConfig: DefaultSSHConfigPath(),
		Shell:     DefaultShell,
		LogFormat: LogFormatPretty,
	}
}

// Merge returns s with every non-empty field of override applied.
func (s Settings) Merge(override Settings) Settings {
	if override.SSHConfig != "" {
		s.SSHConfig = override.SSHConfig
	}
	if override.Shell != "" {
		s.Shell = override.Shell
	}
	if override.LogFormat != "" {
		s.LogFormat = override.LogFormat
	}
	if override.MetricsFile != "" {
		s.MetricsFile = override.MetricsFile
	}
	return s
}

// Validate checks the settings for values rehost cannot work with.
func (s Settings) Validate() error {
	switch s.LogFormat {
	case LogFormatPretty, LogFormatJSON:
		return nil
	default:
		return ErrInvalidLogFormat
	}
}

// DefaultSSHConfigPath returns ~/.ssh/config.
func DefaultSSHConfigPath() string {
	return filepath.Join("~", ".ssh", "config")
}

// DefaultSettingsPath returns $XDG_CONFIG_HOME/rehost/config.yaml,
// falling back to ~/.config/rehost/config.yaml.
func DefaultSettingsPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, SettingsFileName)
	}
	return filepath.Join("~", ".config", AppName, SettingsFileName)
}

// ExpandHome replaces a leading "~" path element with the user's home directory.
// The path is returned unchanged when the home directory is unknown.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
