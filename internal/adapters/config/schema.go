package config

// SettingsFile represents the structure of the rehost settings file.
// The same schema is read from YAML and TOML.
type SettingsFile struct {
	SSHConfig   string `yaml:"ssh_config"   toml:"ssh_config"`
	Shell       string `yaml:"shell"        toml:"shell"`
	LogFormat   string `yaml:"log_format"   toml:"log_format"`
	MetricsFile string `yaml:"metrics_file" toml:"metrics_file"`
}
