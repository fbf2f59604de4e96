package config

// DltConfig represents the complete dlt configuration file
type DltConfig struct {
	Version      string        `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty"`
	Defaults     Defaults      `yaml:"defaults,omitempty" toml:"defaults,omitempty" json:"defaults,omitempty"`
	SpeedPresets []SpeedPreset `yaml:"speed_presets,omitempty" toml:"speed_presets,omitempty" json:"speed_presets,omitempty"`
	UI           UIConfig      `yaml:"ui,omitempty" toml:"ui,omitempty" json:"ui,omitempty"`
}

// Defaults holds the units the form starts with and falls back to on reset
type Defaults struct {
	SizeUnit  string `yaml:"size_unit,omitempty" toml:"size_unit,omitempty" json:"size_unit,omitempty"`
	SpeedUnit string `yaml:"speed_unit,omitempty" toml:"speed_unit,omitempty" json:"speed_unit,omitempty"`
}

// SpeedPreset is a named connection speed, e.g. "Cable: 100 Mbps"
type SpeedPreset struct {
	Name  string  `yaml:"name" toml:"name" json:"name"`
	Speed float64 `yaml:"speed" toml:"speed" json:"speed"`
	Unit  string  `yaml:"unit" toml:"unit" json:"unit"`
}

// UIConfig represents presentation toggles
type UIConfig struct {
	// Emoji is a pointer so an absent key keeps the default (enabled)
	Emoji *bool `yaml:"emoji,omitempty" toml:"emoji,omitempty" json:"emoji,omitempty"`
}
