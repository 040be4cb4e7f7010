package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

type Config struct {
	DataPath       string
	DBPath         string
	HubDBPath      string
	LedgerFilePath string
	StoreBackend   string
	HubAddr        string
	MirrorWorkers  int
	MirrorQueue    int
}

// fileConfig is the optional on-disk shape at <data>/.tokenhub/config.yaml.
type fileConfig struct {
	HubAddr       string `yaml:"hub_addr"`
	Store         string `yaml:"store"`
	MirrorWorkers int    `yaml:"mirror_workers"`
	MirrorQueue   int    `yaml:"mirror_queue"`
}

// Load resolves configuration from defaults, the optional YAML file, a .env
// file if present, and finally TOKENHUB_* environment variables.
func Load(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	_ = godotenv.Load()

	cfg := Config{
		DataPath:       dataPath,
		DBPath:         filepath.Join(dataPath, ".tokenhub", "tokens.db"),
		HubDBPath:      filepath.Join(dataPath, ".tokenhub", "hub.db"),
		LedgerFilePath: filepath.Join(dataPath, ".tokenhub", "scans.json"),
		StoreBackend:   StoreSQLite,
		MirrorWorkers:  2,
		MirrorQueue:    32,
	}

	if err := cfg.applyFile(filepath.Join(dataPath, ".tokenhub", "config.yaml")); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()

	if cfg.StoreBackend != StoreSQLite && cfg.StoreBackend != StoreFile {
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	if fc.HubAddr != "" {
		c.HubAddr = fc.HubAddr
	}
	if fc.Store != "" {
		c.StoreBackend = fc.Store
	}
	if fc.MirrorWorkers > 0 {
		c.MirrorWorkers = fc.MirrorWorkers
	}
	if fc.MirrorQueue > 0 {
		c.MirrorQueue = fc.MirrorQueue
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TOKENHUB_HUB_ADDR"); v != "" {
		c.HubAddr = v
	}
	if v := os.Getenv("TOKENHUB_STORE"); v != "" {
		c.StoreBackend = v
	}
	if v := os.Getenv("TOKENHUB_MIRROR_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MirrorWorkers = n
		}
	}
}
