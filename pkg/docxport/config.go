package docxport

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config contains all configuration options for the import engine
type Config struct {
	// MediaCacheMaxSize is the maximum number of media blobs the shared
	// cache holds. 0 disables media caching.
	MediaCacheMaxSize int `yaml:"media_cache_max_size"`
	// LogLevel controls the verbosity of logging (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
	// StrictMedia makes imports fail when an image part cannot be decoded
	// instead of registering it with sniffed-by-extension metadata.
	StrictMedia bool `yaml:"strict_media"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MediaCacheMaxSize: 256,
		LogLevel:          "info",
		StrictMedia:       false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// DOCXPORT_MEDIA_CACHE_MAX_SIZE
	if val := os.Getenv("DOCXPORT_MEDIA_CACHE_MAX_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			config.MediaCacheMaxSize = size
		}
	}

	// DOCXPORT_LOG_LEVEL
	if val := os.Getenv("DOCXPORT_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// DOCXPORT_STRICT_MEDIA
	if val := os.Getenv("DOCXPORT_STRICT_MEDIA"); val != "" {
		config.StrictMedia = parseBool(val)
	}

	return config
}

// LoadConfigFile reads a YAML configuration file and applies defaults to
// unset fields.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultConfig().LogLevel
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.MediaCacheMaxSize < 0 {
		return errors.New("media cache max size cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
