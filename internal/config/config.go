package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	defaultNetwork = "ETH_MAINNET"
	defaultLimit   = 25

	configFile = "config.json"
)

// Environment variables honoured at runtime.
const (
	EnvAPIKey    = "ALCHEMY_API_KEY"
	EnvAgentKey  = "AGENT_API_KEY"
	EnvConfigDir = "W3WORKER_CONFIG_DIR"
)

// agentKeyFallback keeps the example flows runnable without credentials.
const agentKeyFallback = "demo"

// KeyRetriever resolves a stored credential reference.
// *secrets.Keystore satisfies it.
type KeyRetriever interface {
	Retrieve(ref string) (string, error)
}

// Load reads config from dir (or creates defaults). dir defaults to ~/.w3worker.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".w3worker")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	if len(cfg.DefaultNetworks) == 0 {
		cfg.DefaultNetworks = []string{defaultNetwork}
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = defaultLimit
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// ResolveAPIKey returns the Alchemy API key: the environment variable
// wins, then the keychain reference stored in the config. Returns ""
// when neither resolves.
func (c *Config) ResolveAPIKey(ks KeyRetriever) string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	if c.APIKeyRef != "" && ks != nil {
		if key, err := ks.Retrieve(c.APIKeyRef); err == nil && key != "" {
			return key
		}
	}
	return ""
}

// AgentKey returns the host-framework credential, falling back to the
// "demo" literal so example flows run without one.
func AgentKey() string {
	if key := os.Getenv(EnvAgentKey); key != "" {
		return key
	}
	return agentKeyFallback
}

// LoadDotEnv loads .env from the working directory when present.
// Missing files are not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		DefaultNetworks: []string{defaultNetwork},
		DefaultLimit:    defaultLimit,
		configDir:       dir,
	}
}
