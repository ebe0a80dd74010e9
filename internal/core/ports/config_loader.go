package ports

import "go.trai.ch/rehost/internal/core/domain"

// SettingsLoader defines the interface for loading user settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load returns the defaults overlaid with the settings file at path and the
	// environment. An empty path selects the default location, where a missing
	// file is not an error.
	Load(path string) (domain.Settings, error)
}
