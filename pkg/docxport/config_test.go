package docxport

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.MediaCacheMaxSize != 256 {
		t.Errorf("MediaCacheMaxSize = %d, want 256", config.MediaCacheMaxSize)
	}
	if config.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", config.LogLevel)
	}
	if config.StrictMedia {
		t.Error("StrictMedia = true, want false")
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("DOCXPORT_MEDIA_CACHE_MAX_SIZE", "512")
	t.Setenv("DOCXPORT_LOG_LEVEL", "debug")
	t.Setenv("DOCXPORT_STRICT_MEDIA", "yes")

	config := ConfigFromEnvironment()
	if config.MediaCacheMaxSize != 512 {
		t.Errorf("MediaCacheMaxSize = %d, want 512", config.MediaCacheMaxSize)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}
	if !config.StrictMedia {
		t.Error("StrictMedia = false, want true")
	}
}

func TestConfigFromEnvironmentInvalidValues(t *testing.T) {
	t.Setenv("DOCXPORT_MEDIA_CACHE_MAX_SIZE", "not a number")

	config := ConfigFromEnvironment()
	if config.MediaCacheMaxSize != 256 {
		t.Errorf("invalid size should keep the default, got %d", config.MediaCacheMaxSize)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docxport.yaml")
	content := "media_cache_max_size: 64\nlog_level: warn\nstrict_media: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	config, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	if config.MediaCacheMaxSize != 64 {
		t.Errorf("MediaCacheMaxSize = %d, want 64", config.MediaCacheMaxSize)
	}
	if config.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", config.LogLevel)
	}
	if !config.StrictMedia {
		t.Error("StrictMedia = false, want true")
	}
}

func TestLoadConfigFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docxport.yaml")
	if err := os.WriteFile(path, []byte("strict_media: true\n"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	config, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	if config.MediaCacheMaxSize != 256 || config.LogLevel != "info" {
		t.Errorf("unset fields should keep defaults, got %+v", config)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("log_level: [broken"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	if _, err := LoadConfigFile(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{
			name:    "negative cache size",
			mutate:  func(c *Config) { c.MediaCacheMaxSize = -1 },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: true,
		},
		{
			name:   "zero cache size disables caching",
			mutate: func(c *Config) { c.MediaCacheMaxSize = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGlobalConfig(t *testing.T) {
	original := GetGlobalConfig()
	defer SetGlobalConfig(original)

	custom := DefaultConfig()
	custom.MediaCacheMaxSize = 32
	SetGlobalConfig(custom)

	got := GetGlobalConfig()
	if got.MediaCacheMaxSize != 32 {
		t.Errorf("MediaCacheMaxSize = %d, want 32", got.MediaCacheMaxSize)
	}

	// The returned value is a copy; mutating it must not leak back.
	got.MediaCacheMaxSize = 1
	if GetGlobalConfig().MediaCacheMaxSize != 32 {
		t.Error("GetGlobalConfig must return a copy")
	}
}
