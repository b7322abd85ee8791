package app

import (
	"testing"
	"time"

	"github.com/shelfctl/shelf/pkg/constants"
)

// TestLoadConfig verifies basic config loading and defaults.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	if config.LibraryPath == "" {
		t.Error("LibraryPath not set to default")
	}
	if config.HTTPTimeout == 0 {
		t.Error("HTTPTimeout not set to default")
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("SHELF_LIBRARY", "/tmp/books.csv")
	t.Setenv("SHELF_HTTP_TIMEOUT", "3s")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LibraryPath != "/tmp/books.csv" {
		t.Errorf("LibraryPath = %s, want /tmp/books.csv", config.LibraryPath)
	}
	if config.HTTPTimeout != 3*time.Second {
		t.Errorf("HTTPTimeout = %v, want 3s", config.HTTPTimeout)
	}
}

// TestConfig_DefaultTimeout verifies the timeout falls back to the shared default.
func TestConfig_DefaultTimeout(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.HTTPTimeout != constants.DefaultHTTPTimeout {
		t.Errorf("HTTPTimeout = %v, want %v", config.HTTPTimeout, constants.DefaultHTTPTimeout)
	}
}

// TestConfig_UpdateFromFlags verifies flag values win over everything else.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{
		Format:      "json",
		LibraryPath: "from-env.csv",
	}

	config.UpdateFromFlags(true, false, true, "yaml", "from-flag.csv", "debug")

	if !config.Verbose {
		t.Error("Verbose flag not applied")
	}
	if !config.NoColor {
		t.Error("NoColor flag not applied")
	}
	if config.Format != "yaml" {
		t.Errorf("Format = %s, want yaml", config.Format)
	}
	if config.LibraryPath != "from-flag.csv" {
		t.Errorf("LibraryPath = %s, want from-flag.csv", config.LibraryPath)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}
}

// TestConfig_UpdateFromFlagsKeepsUnsetValues verifies empty flag values do
// not clobber configured ones.
func TestConfig_UpdateFromFlagsKeepsUnsetValues(t *testing.T) {
	config := &Config{
		Format:      "json",
		LibraryPath: "configured.csv",
		LogLevel:    "warn",
	}

	config.UpdateFromFlags(false, false, false, "", "", "")

	if config.Format != "json" {
		t.Errorf("Format = %s, want json", config.Format)
	}
	if config.LibraryPath != "configured.csv" {
		t.Errorf("LibraryPath = %s, want configured.csv", config.LibraryPath)
	}
	if config.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", config.LogLevel)
	}
}
