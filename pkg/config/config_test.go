package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Advisory.Timeout != 5 {
		t.Errorf("expected default timeout 5, got %d", cfg.Advisory.Timeout)
	}
	if cfg.Advisory.URL != "" {
		t.Errorf("expected advisory disabled by default, got URL %q", cfg.Advisory.URL)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "non-existent file returns defaults",
			yaml: "", // signal: don't create a file
			check: func(t *testing.T, cfg *Config) {
				if cfg.Advisory.Timeout != 5 {
					t.Errorf("expected default timeout 5, got %d", cfg.Advisory.Timeout)
				}
			},
		},
		{
			name: "valid YAML overrides defaults",
			yaml: `
advisory:
  url: "http://localhost:8000"
  timeout: 10
archive:
  dir: "/var/lib/circulend"
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Advisory.URL != "http://localhost:8000" {
					t.Errorf("expected advisory URL, got %q", cfg.Advisory.URL)
				}
				if cfg.Advisory.Timeout != 10 {
					t.Errorf("expected timeout 10, got %d", cfg.Advisory.Timeout)
				}
				if cfg.Archive.Dir != "/var/lib/circulend" {
					t.Errorf("expected archive dir, got %q", cfg.Archive.Dir)
				}
			},
		},
		{
			name:    "invalid YAML returns error",
			yaml:    "{{invalid yaml",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")

			if tc.yaml == "" && tc.name == "non-existent file returns defaults" {
				cfg, err := Load(path)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				tc.check(t, cfg)
				return
			}

			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatalf("write test config: %v", err)
			}

			cfg, err := Load(path)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.check != nil {
				tc.check(t, cfg)
			}
		})
	}
}

func TestCacheDir(t *testing.T) {
	t.Run("archive dir override", func(t *testing.T) {
		cfg := &Config{Archive: ArchiveConfig{Dir: "/data/circulend"}}
		if got := CacheDir(cfg); got != "/data/circulend" {
			t.Errorf("CacheDir = %q, want /data/circulend", got)
		}
	})

	t.Run("default under home", func(t *testing.T) {
		got := CacheDir(DefaultConfig())
		if !strings.Contains(got, "circulend") {
			t.Errorf("CacheDir = %q, want path containing circulend", got)
		}
	})
}

func TestResultDir(t *testing.T) {
	cfg := &Config{Archive: ArchiveConfig{Dir: "/data/circulend"}}
	want := filepath.Join("/data/circulend", "results")
	if got := ResultDir(cfg); got != want {
		t.Errorf("ResultDir = %q, want %q", got, want)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Run("found in parent directory", func(t *testing.T) {
		root := t.TempDir()
		configDir := filepath.Join(root, ".circulend")
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			t.Fatalf("create config dir: %v", err)
		}
		configPath := filepath.Join(configDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("{}"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		sub := filepath.Join(root, "a", "b")
		if err := os.MkdirAll(sub, 0o755); err != nil {
			t.Fatalf("create sub: %v", err)
		}

		got := FindConfigFile(sub)
		if got != configPath {
			t.Errorf("FindConfigFile = %q, want %q", got, configPath)
		}
	})

	t.Run("not found", func(t *testing.T) {
		got := FindConfigFile(t.TempDir())
		if got != "" {
			t.Errorf("FindConfigFile = %q, want empty", got)
		}
	})
}
