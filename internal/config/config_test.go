package config

import (
	"CheckHash/internal/verify"
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"CONFIG", "LANG", "FORMAT", "COLOR", "CHUNK_SIZE", "STATS", "LOG_FORMAT", "LOG_LEVEL"} {
		t.Setenv(EnvPrefix+k, "")
	}
	return home
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, DefaultFile)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v want defaults %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if cfg.ChunkSize != verify.DefaultChunkSize {
		t.Fatalf("ChunkSize: got %d want %d", cfg.ChunkSize, verify.DefaultChunkSize)
	}
}

func TestLoad_TableDriven(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		where   string // "explicit", "home" or "" for no file
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name:  "explicit yaml overrides defaults",
			where: "explicit",
			file:  "lang: en\nformat: json\nchunk_size: 1024\nlog:\n  level: debug\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Lang != "en" || cfg.Format != "json" || cfg.ChunkSize != 1024 || cfg.Log.Level != "debug" {
					t.Fatalf("unexpected config: %+v", cfg)
				}
				if cfg.Color != "auto" || cfg.Log.Format != "text" {
					t.Fatalf("unset keys lost their defaults: %+v", cfg)
				}
			},
		},
		{
			name:  "home file picked up",
			file:  "stats: true\n",
			where: "home",
			check: func(t *testing.T, cfg Config) {
				if !cfg.Stats {
					t.Fatalf("expected stats from ~/%s", DefaultFile)
				}
			},
		},
		{
			name:  "env beats file",
			file:  "lang: en\n",
			where: "explicit",
			env:   map[string]string{"LANG": "sv", "CHUNK_SIZE": "4096", "STATS": "true"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Lang != "sv" || cfg.ChunkSize != 4096 || !cfg.Stats {
					t.Fatalf("env not applied: %+v", cfg)
				}
			},
		},
		{
			name:  "empty file keeps defaults",
			file:  "",
			where: "explicit",
			check: func(t *testing.T, cfg Config) {
				if cfg != Default() {
					t.Fatalf("got %+v want defaults", cfg)
				}
			},
		},
		{
			name:    "unknown key rejected",
			file:    "langauge: en\n",
			where:   "explicit",
			wantErr: true,
		},
		{
			name:    "bad chunk size env",
			env:     map[string]string{"CHUNK_SIZE": "lots"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			home := isolate(t)
			for k, v := range tt.env {
				t.Setenv(EnvPrefix+k, v)
			}

			path := ""
			switch tt.where {
			case "explicit":
				path = writeConfig(t, t.TempDir(), tt.file)
			case "home":
				writeConfig(t, home, tt.file)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoad_ConfigFromEnv(t *testing.T) {
	isolate(t)
	p := writeConfig(t, t.TempDir(), "format: json\n")
	t.Setenv(EnvPrefix+"CONFIG", p)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "json" {
		t.Fatalf("expected format from $%sCONFIG, got %q", EnvPrefix, cfg.Format)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"english", func(c *Config) { c.Lang = "en" }, false},
		{"german", func(c *Config) { c.Lang = "de" }, true},
		{"xml format", func(c *Config) { c.Format = "xml" }, true},
		{"color sometimes", func(c *Config) { c.Color = "sometimes" }, true},
		{"zero chunk", func(c *Config) { c.ChunkSize = 0 }, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
