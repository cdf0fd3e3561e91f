/*
Package config manages TOML config for WordFind.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Dict  DictConfig  `toml:"dict"`
	Query QueryConfig `toml:"query"`
	Games GamesConfig `toml:"games"`
	Log   LogConfig   `toml:"log"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path      string `toml:"path"`
	CachePath string `toml:"cache_path"`
	UseCache  bool   `toml:"use_cache"`
}

// QueryConfig holds query engine options.
type QueryConfig struct {
	Wildcards       string `toml:"wildcards"`
	StrictCounts    bool   `toml:"strict_counts"`
	IncludeSelf     bool   `toml:"include_self"`
	CompletionLimit int    `toml:"completion_limit"`
}

// GamesConfig holds the rule parameters of the puzzle solvers.
type GamesConfig struct {
	SpellingBeeMinLen         int `toml:"spelling_bee_min_len"`
	PolygonMinLen             int `toml:"polygon_min_len"`
	PolygonMaxLen             int `toml:"polygon_max_len"`
	CountdownMinLen           int `toml:"countdown_min_len"`
	CountdownMaxLen           int `toml:"countdown_max_len"`
	CashSquareMaxCombinations int `toml:"cash_square_max_combinations"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level      string `toml:"level"`
	Timestamps bool   `toml:"timestamps"`
	Formatter  string `toml:"formatter"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordfind
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", utils.AppName)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordfind/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path:      "",
			CachePath: "",
			UseCache:  false,
		},
		Query: QueryConfig{
			Wildcards:       "?-_.",
			StrictCounts:    false,
			IncludeSelf:     false,
			CompletionLimit: 24,
		},
		Games: GamesConfig{
			SpellingBeeMinLen:         4,
			PolygonMinLen:             4,
			PolygonMaxLen:             9,
			CountdownMinLen:           3,
			CountdownMaxLen:           9,
			CashSquareMaxCombinations: 50_000_000,
		},
		Log: LogConfig{
			Level:      "warn",
			Timestamps: false,
			Formatter:  "text",
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every section that decodes and falls back to
// defaults for the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "query"); ok {
		extractQueryConfig(section, &config.Query)
	}
	if section, ok := utils.ExtractSection(tempConfig, "games"); ok {
		extractGamesConfig(section, &config.Games)
	}
	if section, ok := utils.ExtractSection(tempConfig, "log"); ok {
		extractLogConfig(section, &config.Log)
	}
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractString(data, "cache_path"); ok {
		dict.CachePath = val
	}
	if val, ok := utils.ExtractBool(data, "use_cache"); ok {
		dict.UseCache = val
	}
}

func extractQueryConfig(data map[string]any, query *QueryConfig) {
	if val, ok := utils.ExtractString(data, "wildcards"); ok && val != "" {
		query.Wildcards = val
	}
	if val, ok := utils.ExtractBool(data, "strict_counts"); ok {
		query.StrictCounts = val
	}
	if val, ok := utils.ExtractBool(data, "include_self"); ok {
		query.IncludeSelf = val
	}
	if val, ok := utils.ExtractInt64(data, "completion_limit"); ok {
		query.CompletionLimit = val
	}
}

func extractGamesConfig(data map[string]any, games *GamesConfig) {
	if val, ok := utils.ExtractInt64(data, "spelling_bee_min_len"); ok {
		games.SpellingBeeMinLen = val
	}
	if val, ok := utils.ExtractInt64(data, "polygon_min_len"); ok {
		games.PolygonMinLen = val
	}
	if val, ok := utils.ExtractInt64(data, "polygon_max_len"); ok {
		games.PolygonMaxLen = val
	}
	if val, ok := utils.ExtractInt64(data, "countdown_min_len"); ok {
		games.CountdownMinLen = val
	}
	if val, ok := utils.ExtractInt64(data, "countdown_max_len"); ok {
		games.CountdownMaxLen = val
	}
	if val, ok := utils.ExtractInt64(data, "cash_square_max_combinations"); ok {
		games.CashSquareMaxCombinations = val
	}
}

func extractLogConfig(data map[string]any, l *LogConfig) {
	if val, ok := utils.ExtractString(data, "level"); ok {
		l.Level = val
	}
	if val, ok := utils.ExtractBool(data, "timestamps"); ok {
		l.Timestamps = val
	}
	if val, ok := utils.ExtractString(data, "formatter"); ok {
		l.Formatter = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() (string, error) {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}
	return defaultPath, SaveConfig(DefaultConfig(), defaultPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
