package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
// This test ensures that defaults are documented through tests and that changes
// to defaults are intentional (tests will fail if defaults change unexpectedly).
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	// Verify each default value explicitly
	// This serves as living documentation of the defaults
	t.Run("default StorageHost is the public snapshot bucket", func(t *testing.T) {
		t.Parallel()
		if cfg.StorageHost != "https://storage.googleapis.com" {
			t.Errorf("expected StorageHost to be 'https://storage.googleapis.com', got '%s'", cfg.StorageHost)
		}
	})

	t.Run("default FeedURL is the omahaproxy endpoint", func(t *testing.T) {
		t.Parallel()
		if cfg.FeedURL != "https://omahaproxy.appspot.com/all.json" {
			t.Errorf("expected FeedURL to be 'https://omahaproxy.appspot.com/all.json', got '%s'", cfg.FeedURL)
		}
	})

	t.Run("default ProbeTimeout is zero", func(t *testing.T) {
		t.Parallel()
		if cfg.ProbeTimeout != 0 {
			t.Errorf("expected ProbeTimeout to be 0, got %v", cfg.ProbeTimeout)
		}
	})

	t.Run("default UserAgent identifies chromecheck", func(t *testing.T) {
		t.Parallel()
		if cfg.UserAgent != "chromecheck (+https://github.com/thobhanifreddy/puppeteer)" {
			t.Errorf("unexpected UserAgent: %q", cfg.UserAgent)
		}
	})

	t.Run("default Format is table", func(t *testing.T) {
		t.Parallel()
		if cfg.Format != FormatTable {
			t.Errorf("expected Format to be %q, got %q", FormatTable, cfg.Format)
		}
	})

	t.Run("default ProxyAddress is empty", func(t *testing.T) {
		t.Parallel()
		if cfg.ProxyAddress != "" {
			t.Errorf("expected empty ProxyAddress, got %q", cfg.ProxyAddress)
		}
	})

	t.Run("default NoColor is false", func(t *testing.T) {
		t.Parallel()
		if cfg.NoColor {
			t.Error("expected NoColor to be false")
		}
	})

	t.Run("default Verbose is false", func(t *testing.T) {
		t.Parallel()
		if cfg.Verbose {
			t.Error("expected Verbose to be false")
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()
		if err := NewConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("two revision endpoints is valid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Revisions = []string{"100000", "100005"}

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("one revision endpoint returns ErrInvalidRevisionCount", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Revisions = []string{"100000"}

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidRevisionCount) {
			t.Errorf("expected ErrInvalidRevisionCount, got %v", err)
		}
	})

	t.Run("three revision endpoints returns ErrInvalidRevisionCount", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Revisions = []string{"1", "2", "3"}

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidRevisionCount) {
			t.Errorf("expected ErrInvalidRevisionCount, got %v", err)
		}
	})

	t.Run("zero probe timeout is valid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ProbeTimeout = 0

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("negative probe timeout returns ErrInvalidTimeout", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ProbeTimeout = -1 * time.Second

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("expected ErrInvalidTimeout, got %v", err)
		}
	})

	t.Run("unknown format returns ErrInvalidFormat", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Format = "xml"

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("empty storage host returns ErrEmptyStorageHost", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.StorageHost = ""

		if err := cfg.Validate(); !errors.Is(err, ErrEmptyStorageHost) {
			t.Errorf("expected ErrEmptyStorageHost, got %v", err)
		}
	})

	t.Run("empty feed url returns ErrEmptyFeedURL", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.FeedURL = ""

		if err := cfg.Validate(); !errors.Is(err, ErrEmptyFeedURL) {
			t.Errorf("expected ErrEmptyFeedURL, got %v", err)
		}
	})

	t.Run("proxy without a port returns ErrInvalidProxyAddress", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ProxyAddress = "127.0.0.1"

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidProxyAddress) {
			t.Errorf("expected ErrInvalidProxyAddress, got %v", err)
		}
	})

	t.Run("proxy in host:port form is valid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ProxyAddress = "127.0.0.1:9050"

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// TestValidFormat tests the ValidFormat helper.
func TestValidFormat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		format string
		want   bool
	}{
		{format: "table", want: true},
		{format: "json", want: true},
		{format: "markdown", want: true},
		{format: "", want: false},
		{format: "xml", want: false},
		{format: "Table", want: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run("format "+tc.format, func(t *testing.T) {
			t.Parallel()
			if got := ValidFormat(tc.format); got != tc.want {
				t.Errorf("ValidFormat(%q) = %v, want %v", tc.format, got, tc.want)
			}
		})
	}
}

// TestFileApply tests overlaying file values onto a Config.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("empty file leaves defaults untouched", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := (&File{}).Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(cfg, NewConfig()) {
			t.Errorf("config changed by empty file: %+v", cfg)
		}
	})

	t.Run("set fields override defaults", func(t *testing.T) {
		t.Parallel()

		noColor := true
		file := &File{
			StorageHost:  "https://mirror.example.com",
			FeedURL:      "https://feed.example.com/all.json",
			Proxy:        "127.0.0.1:1080",
			ProbeTimeout: "45s",
			Format:       "json",
			NoColor:      &noColor,
		}

		cfg := NewConfig()
		if err := file.Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.StorageHost != "https://mirror.example.com" {
			t.Errorf("unexpected StorageHost: %q", cfg.StorageHost)
		}
		if cfg.FeedURL != "https://feed.example.com/all.json" {
			t.Errorf("unexpected FeedURL: %q", cfg.FeedURL)
		}
		if cfg.ProxyAddress != "127.0.0.1:1080" {
			t.Errorf("unexpected ProxyAddress: %q", cfg.ProxyAddress)
		}
		if cfg.ProbeTimeout != 45*time.Second {
			t.Errorf("unexpected ProbeTimeout: %v", cfg.ProbeTimeout)
		}
		if cfg.Format != FormatJSON {
			t.Errorf("unexpected Format: %q", cfg.Format)
		}
		if !cfg.NoColor {
			t.Error("expected NoColor to be true")
		}
	})

	t.Run("explicit noColor false overrides a true value", func(t *testing.T) {
		t.Parallel()

		noColor := false
		cfg := NewConfig()
		cfg.NoColor = true

		if err := (&File{NoColor: &noColor}).Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.NoColor {
			t.Error("expected NoColor to be false")
		}
	})

	t.Run("malformed probeTimeout returns error", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		err := (&File{ProbeTimeout: "soon"}).Apply(cfg)
		if err == nil {
			t.Error("expected error for malformed duration")
		}
	})
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cf, err := LoadConfigFile("/nonexistent/path/.chromecheck.yaml")
		if err == nil {
			t.Fatal("expected error for non-existent file")
		}
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cf != nil {
			t.Error("expected nil file when not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DefaultConfigFile)

		content := `storageHost: "https://mirror.example.com"
probeTimeout: "30s"
format: markdown
noColor: true
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cf.StorageHost != "https://mirror.example.com" {
			t.Errorf("unexpected storageHost: %q", cf.StorageHost)
		}
		if cf.ProbeTimeout != "30s" {
			t.Errorf("unexpected probeTimeout: %q", cf.ProbeTimeout)
		}
		if cf.Format != "markdown" {
			t.Errorf("unexpected format: %q", cf.Format)
		}
		if cf.NoColor == nil || !*cf.NoColor {
			t.Error("expected noColor to be set to true")
		}
	})

	t.Run("leaves absent fields unset", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DefaultConfigFile)

		content := `format: json
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.StorageHost != "" {
			t.Errorf("expected empty storageHost, got %q", cf.StorageHost)
		}
		if cf.NoColor != nil {
			t.Errorf("expected noColor to stay unset, got %v", *cf.NoColor)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DefaultConfigFile)

		content := `invalid: yaml: content: [}`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfigFile(configPath)
		if err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Run("returns explicit path if exists", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "custom.yaml")

		if err := os.WriteFile(configPath, []byte("format: json"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		result := FindConfigFile(configPath)
		if result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		result := FindConfigFile("/nonexistent/path/config.yaml")
		if result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})

	t.Run("returns without panicking when searching implicit locations", func(_ *testing.T) {
		result := FindConfigFile("")
		// This may or may not find a config depending on the system
		// Just ensure it doesn't panic
		_ = result
	})
}

// TestXDGConfigDir tests the XDG directory helper.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if dir == "" {
		t.Error("expected non-empty XDG config dir")
	}
	if filepath.Base(dir) != AppName {
		t.Errorf("expected dir to end in %q, got %q", AppName, dir)
	}
}
