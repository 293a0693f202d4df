package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Mohsinsiddi/w3worker/agent"
	"github.com/Mohsinsiddi/w3worker/alchemy"
	"github.com/Mohsinsiddi/w3worker/internal/config"
	"github.com/Mohsinsiddi/w3worker/internal/secrets"
)

// newRegistry wires every worker this binary ships into a fresh registry.
// Worker identity comes from config so a deployment can rename itself.
func newRegistry(apiKey string) (*agent.Registry, error) {
	adapter, err := alchemy.New(alchemy.Options{
		APIKey:      apiKey,
		ID:          cfg.WorkerID,
		Name:        cfg.WorkerName,
		Description: cfg.WorkerDescription,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
	})
	if err != nil {
		return nil, err
	}
	reg := agent.NewRegistry()
	if err := reg.RegisterWorker(adapter.AsWorker()); err != nil {
		return nil, err
	}
	return reg, nil
}

// requireAPIKey resolves the Alchemy key (environment first, then the
// OS keychain reference) and errors with setup hints when neither is
// configured.
func requireAPIKey() (string, error) {
	key := cfg.ResolveAPIKey(secrets.DefaultKeystore())
	if key == "" {
		return "", fmt.Errorf(
			"no Alchemy API key configured\n  Export %s (a .env file works) or store one with: w3worker config set-key <key>",
			config.EnvAPIKey,
		)
	}
	return key, nil
}
