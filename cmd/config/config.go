package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dltime-cli/cmd/utils"
	"dltime-cli/internal/calc"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v2"
)

// Config file constants (searched in this order)
var (
	// SupportedConfigFiles lists all supported dlt config file names
	SupportedConfigFiles = []string{
		"dlt.yaml",
		"dlt.yml",
		"dlt.toml",
		"dlt.json",
	}
)

// Environment variables that override the config file.
const (
	EnvSizeUnit  = "DLT_SIZE_UNIT"
	EnvSpeedUnit = "DLT_SPEED_UNIT"
)

// Preset is a speed preset with its unit resolved.
type Preset struct {
	Name  string
	Speed float64
	Unit  calc.SpeedUnit
}

// SpeedText renders the speed the way a user would type it.
func (p Preset) SpeedText() string {
	return strconv.FormatFloat(p.Speed, 'f', -1, 64)
}

func (p Preset) String() string {
	return fmt.Sprintf("%s (%s %s)", p.Name, p.SpeedText(), p.Unit)
}

// BuiltinPresets are used when the config file defines none.
var BuiltinPresets = []SpeedPreset{
	{Name: "Dial-up", Speed: 56, Unit: string(calc.Kbps)},
	{Name: "ADSL", Speed: 8, Unit: string(calc.Mbps)},
	{Name: "Cable", Speed: 100, Unit: string(calc.Mbps)},
	{Name: "Fiber", Speed: 1, Unit: string(calc.Gbps)},
}

// Default returns the configuration used when no file is found.
func Default() *DltConfig {
	return &DltConfig{
		Defaults: Defaults{
			SizeUnit:  string(calc.MB),
			SpeedUnit: string(calc.Mbps),
		},
	}
}

// LoadConfigFile loads and parses a config file based on its extension
func LoadConfigFile(filePath string) (*DltConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	fileExt := strings.ToLower(filepath.Ext(filePath))

	var config DltConfig
	switch fileExt {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file %s: %w", filePath, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config file %s: %w", filePath, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file %s: %w", filePath, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension: %s", fileExt)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	return &config, nil
}

// FindConfigFile searches for dlt config files (yaml/toml/json) in the specified directory
func FindConfigFile(searchPath string) (string, error) {
	if searchPath == "" {
		return "", fmt.Errorf("search path is required")
	}

	for _, configFile := range SupportedConfigFiles {
		fullPath := filepath.Join(searchPath, configFile)
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath, nil
		}
	}
	return "", fmt.Errorf("no dlt config file (yaml/toml/json) found in %s", searchPath)
}

// IsConfigFile checks if the given file path is a dlt config file
func IsConfigFile(filePath string) bool {
	baseName := filepath.Base(filePath)

	for _, configFile := range SupportedConfigFiles {
		if baseName == configFile {
			return true
		}
	}
	return false
}

// Discover resolves the effective configuration. An explicit path wins;
// otherwise cwd is searched, then the dlt home dir. The returned path is empty when
// the built-in defaults are used. Environment overrides are applied last.
func Discover(explicitPath, cwd string) (*DltConfig, string, error) {
	var (
		cfg  *DltConfig
		path string
		err  error
	)

	if explicitPath != "" {
		path = explicitPath
		cfg, err = LoadConfigFile(explicitPath)
		if err != nil {
			return nil, "", err
		}
	} else {
		for _, dir := range searchDirs(cwd) {
			found, findErr := FindConfigFile(dir)
			if findErr != nil {
				continue
			}
			cfg, err = LoadConfigFile(found)
			if err != nil {
				return nil, "", err
			}
			path = found
			break
		}
	}

	if cfg == nil {
		cfg = Default()
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}

func searchDirs(cwd string) []string {
	var dirs []string
	if cwd != "" {
		dirs = append(dirs, cwd)
	}
	if homeDir, err := utils.GetDltHomeDir(); err == nil {
		dirs = append(dirs, homeDir)
	}
	return dirs
}

// ApplyEnv loads .env if present and applies DLT_* overrides.
func (c *DltConfig) ApplyEnv() error {
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return fmt.Errorf("error loading .env file: %w", err)
		}
	}

	c.Defaults.SizeUnit = getEnv(EnvSizeUnit, c.Defaults.SizeUnit)
	c.Defaults.SpeedUnit = getEnv(EnvSpeedUnit, c.Defaults.SpeedUnit)

	return c.Validate()
}

// Validate checks that every unit name in the config is known.
func (c *DltConfig) Validate() error {
	if _, err := c.DefaultSizeUnit(); err != nil {
		return fmt.Errorf("defaults.size_unit: %w", err)
	}
	if _, err := c.DefaultSpeedUnit(); err != nil {
		return fmt.Errorf("defaults.speed_unit: %w", err)
	}
	for i, p := range c.SpeedPresets {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("speed_presets[%d]: name is required", i)
		}
		if p.Speed <= 0 {
			return fmt.Errorf("speed_presets[%d] (%s): speed must be greater than zero", i, p.Name)
		}
		if _, err := calc.ParseSpeedUnit(p.Unit); err != nil {
			return fmt.Errorf("speed_presets[%d] (%s): %w", i, p.Name, err)
		}
	}
	return nil
}

// DefaultSizeUnit returns the configured starting size unit (MB if unset).
func (c *DltConfig) DefaultSizeUnit() (calc.FileSizeUnit, error) {
	if strings.TrimSpace(c.Defaults.SizeUnit) == "" {
		return calc.MB, nil
	}
	return calc.ParseFileSizeUnit(c.Defaults.SizeUnit)
}

// DefaultSpeedUnit returns the configured starting speed unit (Mbps if unset).
func (c *DltConfig) DefaultSpeedUnit() (calc.SpeedUnit, error) {
	if strings.TrimSpace(c.Defaults.SpeedUnit) == "" {
		return calc.Mbps, nil
	}
	return calc.ParseSpeedUnit(c.Defaults.SpeedUnit)
}

// Presets returns the configured speed presets, or BuiltinPresets when
// none are configured. Entries are assumed validated.
func (c *DltConfig) Presets() []Preset {
	source := c.SpeedPresets
	if len(source) == 0 {
		source = BuiltinPresets
	}

	presets := make([]Preset, 0, len(source))
	for _, p := range source {
		unit, err := calc.ParseSpeedUnit(p.Unit)
		if err != nil {
			continue
		}
		presets = append(presets, Preset{Name: p.Name, Speed: p.Speed, Unit: unit})
	}
	return presets
}

// EmojiEnabled reports whether output should carry emoji prefixes.
func (c *DltConfig) EmojiEnabled() bool {
	return c.UI.Emoji == nil || *c.UI.Emoji
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
