package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fsenergy/till/internal/catalog"
	"github.com/fsenergy/till/internal/history"
	"github.com/fsenergy/till/internal/render"
)

// DefaultConfigPath is used when --config is not given.
const DefaultConfigPath = "till.yaml"

// StoreConfig selects and locates the history backend.
type StoreConfig struct {
	Backend string `yaml:"backend"` // "file" | "sqlite"
	Path    string `yaml:"path"`
}

// Config is the register configuration, loaded from a YAML file with
// environment overrides for the values a deployment is most likely to
// inject (secret and store path).
type Config struct {
	Catalog       string         `yaml:"catalog"`
	Store         StoreConfig    `yaml:"store"`
	AdminSecret   string         `yaml:"admin_secret"`
	ReceiptPrefix string         `yaml:"receipt_prefix"`
	Business      render.Profile `yaml:"business"`
}

// defaultConfig returns the built-in defaults. The admin secret default
// is a deliberately weak development value and a known limitation of
// this design; deployments must override it via the config file or
// TILL_ADMIN_SECRET.
func defaultConfig() *Config {
	return &Config{
		Catalog: "catalog.cue",
		Store: StoreConfig{
			Backend: "file",
			Path:    "till-history.json",
		},
		AdminSecret:   "admin123",
		ReceiptPrefix: "FSE",
		Business: render.Profile{
			Currency: "₦",
		},
	}
}

// LoadConfig reads the config file at path, or the default path when
// path is empty. A missing default config is not an error: the built-in
// defaults apply. Environment variables override the file.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// Defaults only.
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if v := os.Getenv("TILL_ADMIN_SECRET"); v != "" {
		cfg.AdminSecret = v
	}
	if v := os.Getenv("TILL_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}

	if cfg.Store.Backend != "file" && cfg.Store.Backend != "sqlite" {
		return nil, fmt.Errorf("invalid store backend %q: must be file or sqlite", cfg.Store.Backend)
	}

	return cfg, nil
}

// OpenStore opens the configured history backend.
func (c *Config) OpenStore() (history.Store, error) {
	switch c.Store.Backend {
	case "sqlite":
		return history.OpenSQLite(c.Store.Path)
	default:
		return history.NewFileStore(c.Store.Path), nil
	}
}

// LoadCatalog loads the configured product catalog.
func (c *Config) LoadCatalog() (*catalog.Catalog, error) {
	return catalog.Load(c.Catalog)
}
