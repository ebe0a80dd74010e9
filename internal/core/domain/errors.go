package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when the SSH config file does not exist.
	ErrConfigNotFound = zerr.New("ssh config file not found")

	// ErrConfigReadFailed is returned when the SSH config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read ssh config file")

	// ErrConfigWriteFailed is returned when the rewritten SSH config cannot be written back.
	ErrConfigWriteFailed = zerr.New("failed to write ssh config file")

	// ErrNoDirectives is returned when the document contains no annotation/HostName pairs.
	ErrNoDirectives = zerr.New("no directives found")

	// ErrCommandFailed is returned when a directive command cannot be launched or exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrEmptyResult is returned when a directive command succeeds but prints nothing.
	ErrEmptyResult = zerr.New("command produced no output")

	// ErrSelectionCancelled is returned when the user aborts the directive prompt.
	ErrSelectionCancelled = zerr.New("selection cancelled")

	// ErrUnknownName is returned when a requested directive name does not exist in the document.
	ErrUnknownName = zerr.New("unknown directive name")

	// ErrNoSelection is returned when no terminal is available for the prompt and no policy flag was given.
	ErrNoSelection = zerr.New("no terminal available for selection, use --name or --all")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrUnsupportedSettingsFormat is returned when the settings file extension is not recognised.
	ErrUnsupportedSettingsFormat = zerr.New("unsupported settings file format, expected .yaml, .yml or .toml")

	// ErrInvalidLogFormat is returned when the log format is neither 'pretty' nor 'json'.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")
)
