package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const appName = "boosterbox"

// Config represents the application configuration. Values come from the config
// file, then BOOSTERBOX_* environment variables override them.
type Config struct {
	Catalog        string   `toml:"catalog" env:"BOOSTERBOX_CATALOG"`
	ImageDir       string   `toml:"image_dir" env:"BOOSTERBOX_IMAGE_DIR"`
	Sets           []string `toml:"sets" env:"BOOSTERBOX_SETS" envSeparator:","`
	UpgradeChance  float64  `toml:"upgrade_chance" env:"BOOSTERBOX_UPGRADE_CHANCE"`
	Listen         string   `toml:"listen" env:"BOOSTERBOX_LISTEN"`
	AllowedOrigins []string `toml:"allowed_origins" env:"BOOSTERBOX_ALLOWED_ORIGINS" envSeparator:","`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetDataDir returns the directory holding the catalog and card images
func GetDataDir() string {
	return filepath.Join(GetXDGDataHome(), appName)
}

// GetCacheDir returns the directory for generated ANSI art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), appName)
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Catalog:        filepath.Join(GetDataDir(), "one_piece_cards.json"),
		ImageDir:       filepath.Join(GetDataDir(), "cards"),
		Sets:           []string{"OP14", "EB04"},
		UpgradeChance:  0.05,
		Listen:         ":8080",
		AllowedOrigins: []string{"http://localhost:5173"},
	}
}

// LoadConfig loads the config file, creating it with defaults on first use,
// and applies environment overrides
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig()
		if err != nil {
			return nil, err
		}
	} else {
		// Keys missing from the file keep their defaults
		config = Default()
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks values that would break pack generation
func (c *Config) Validate() error {
	if c.UpgradeChance < 0 || c.UpgradeChance > 1 {
		return fmt.Errorf("upgrade_chance must be between 0 and 1, got %v", c.UpgradeChance)
	}
	if len(c.Sets) == 0 {
		return fmt.Errorf("sets must list at least one set tag")
	}
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the config file, creating its directory if needed
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetCatalog stores the catalog path in the config file
func SetCatalog(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving catalog path: %w", err)
	}

	config, err := readFileConfig()
	if err != nil {
		return err
	}
	config.Catalog = abs

	return SaveConfig(config)
}

// readFileConfig reads the config file without environment overrides so they
// are not persisted.
func readFileConfig() (*Config, error) {
	config := Default()
	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// GetCatalogPath returns the catalog to load: the flag value when set,
// otherwise the configured path
func GetCatalogPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.Catalog, nil
}
