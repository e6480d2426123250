package domain

// Config mirrors ~/.dpc/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Preferences         Preferences     `yaml:"preferences"`
	History             HistorySettings `yaml:"history"`
}

// Preferences captures user level toggles.
type Preferences struct {
	Locale          string `yaml:"locale"`
	OutputFormat    string `yaml:"output_format"`
	CopyToClipboard bool   `yaml:"copy_to_clipboard"`
	Color           string `yaml:"color"`
}

// HistorySettings controls where classifications are recorded.
type HistorySettings struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}
