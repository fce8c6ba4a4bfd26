package config

import (
	"CheckHash/internal/verify"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvPrefix   = "CHECKHASH_"
	DefaultFile = ".checkhash.yaml"
)

type Config struct {
	Lang      string    `yaml:"lang"`
	Format    string    `yaml:"format"`
	Color     string    `yaml:"color"`
	ChunkSize int       `yaml:"chunk_size"`
	Stats     bool      `yaml:"stats"`
	Log       LogConfig `yaml:"log"`
}

type LogConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

func Default() Config {
	return Config{
		Lang:      "sv",
		Format:    "text",
		Color:     "auto",
		ChunkSize: verify.DefaultChunkSize,
		Log: LogConfig{
			Format: "text",
			Level:  "warn",
		},
	}
}

// Load layers defaults, an optional YAML file and CHECKHASH_* environment
// variables. An empty path falls back to $CHECKHASH_CONFIG and then to
// ~/.checkhash.yaml; only an explicitly named file has to exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	explicit := path != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, DefaultFile)
		}
	}

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304
		switch {
		case err == nil:
			if err := decode(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Lang = getenvDefault("LANG", cfg.Lang)
	cfg.Format = getenvDefault("FORMAT", cfg.Format)
	cfg.Color = getenvDefault("COLOR", cfg.Color)
	cfg.Log.Format = getenvDefault("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.Level = getenvDefault("LOG_LEVEL", cfg.Log.Level)

	if v := os.Getenv(EnvPrefix + "CHUNK_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sCHUNK_SIZE: %w", EnvPrefix, err)
		}
		cfg.ChunkSize = n
	}
	if v := os.Getenv(EnvPrefix + "STATS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sSTATS: %w", EnvPrefix, err)
		}
		cfg.Stats = b
	}
	return nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Lang) {
	case "sv", "en":
	default:
		return fmt.Errorf("unsupported language %q (want sv or en)", c.Lang)
	}
	switch strings.ToLower(c.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported format %q (want text or json)", c.Format)
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unsupported color mode %q (want auto, always or never)", c.Color)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be > 0, got %d", c.ChunkSize)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return def
}
