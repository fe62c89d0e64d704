package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfigFile tests YAML config loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads a full config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".congestionscan")
		content := `
months: 24
api_base_url: http://localhost:8080/v1
networks:
  "7018": AT&T
  "209": CENTURYLINK
asns:
  "16509": AMAZON-02
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatal(err)
		}

		if cf.Months == nil || *cf.Months != 24 {
			t.Errorf("expected months 24, got %v", cf.Months)
		}
		if cf.APIBaseURL != "http://localhost:8080/v1" {
			t.Errorf("unexpected api_base_url %q", cf.APIBaseURL)
		}
		if cf.Networks["7018"] != "AT&T" {
			t.Errorf("unexpected network name %q", cf.Networks["7018"])
		}
		if cf.ASNs["16509"] != "AMAZON-02" {
			t.Errorf("unexpected ASN name %q", cf.ASNs["16509"])
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".congestionscan")
		if err := os.WriteFile(path, []byte("months: [not a number"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFileApply tests overlaying file settings onto a config.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("absent fields keep defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{}).Apply(cfg)

		if cfg.Months != DefaultMonths {
			t.Errorf("expected default months, got %d", cfg.Months)
		}
		if len(cfg.NearNetworks) != 13 {
			t.Errorf("expected built-in near table, got %d entries", len(cfg.NearNetworks))
		}
	})

	t.Run("explicit zero months is honored", func(t *testing.T) {
		t.Parallel()

		zero := 0
		cfg := NewConfig()
		(&File{Months: &zero}).Apply(cfg)

		if cfg.Months != 0 {
			t.Errorf("expected months 0, got %d", cfg.Months)
		}
	})

	t.Run("network tables replace the built-ins in ascending ASN order", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{
			Networks: map[string]string{
				"7922": "COMCAST",
				"209":  "CENTURYLINK",
				"7018": "AT&T",
			},
		}).Apply(cfg)

		if len(cfg.NearNetworks) != 3 {
			t.Fatalf("expected 3 near networks, got %d", len(cfg.NearNetworks))
		}

		wantOrder := []string{"209", "7018", "7922"}
		for i, want := range wantOrder {
			if cfg.NearNetworks[i].ASN != want {
				t.Errorf("position %d: expected ASN %s, got %s", i, want, cfg.NearNetworks[i].ASN)
			}
		}
	})
}

// TestFindConfigFile tests the configuration file search order.
func TestFindConfigFile(t *testing.T) {
	// Not parallel: changes working directory.

	t.Run("explicit path is returned as-is", func(t *testing.T) {
		if got := FindConfigFile("/some/explicit/path.yaml"); got != "/some/explicit/path.yaml" {
			t.Errorf("expected explicit path, got %q", got)
		}
	})

	t.Run("finds file in current directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		if err := os.WriteFile(DefaultConfigFile, []byte("months: 1\n"), 0600); err != nil {
			t.Fatal(err)
		}

		if got := FindConfigFile(""); got != DefaultConfigFile {
			t.Errorf("expected %q, got %q", DefaultConfigFile, got)
		}
	})
}
