// Package alchemy adapts the Alchemy Transaction History API into a
// worker function an agent framework can register and call.
package alchemy

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Mohsinsiddi/w3worker/agent"
)

// DefaultBaseURL is the production endpoint root for the Data API.
const DefaultBaseURL = "https://api.g.alchemy.com/data/v1"

// SupportedNetworks lists the upstream chain tags this worker targets,
// in the upper-cased form the API expects.
var SupportedNetworks = []string{"ETH_MAINNET", "BASE_MAINNET"}

const (
	defaultID          = "alchemy-worker"
	defaultName        = "Alchemy Worker"
	defaultDescription = "Fetches on-chain transaction history through the Alchemy Data API."
)

// Adapter holds the immutable configuration of one worker instance.
// Every invocation is an independent, stateless pass; concurrent calls
// need no coordination.
type Adapter struct {
	id          string
	name        string
	description string
	apiKey      string
	baseURL     string
	httpClient  *http.Client
}

// Options configures New. APIKey is required; everything else defaults.
type Options struct {
	APIKey      string
	ID          string
	Name        string
	Description string
	BaseURL     string       // overrides DefaultBaseURL (used by tests)
	HTTPClient  *http.Client // timeouts are the caller's to configure
}

// New builds an Adapter. It fails when no API key is supplied.
func New(opts Options) (*Adapter, error) {
	if opts.APIKey == "" {
		return nil, errors.New("alchemy: API key is required")
	}
	a := &Adapter{
		id:          opts.ID,
		name:        opts.Name,
		description: opts.Description,
		apiKey:      opts.APIKey,
		baseURL:     strings.TrimSuffix(opts.BaseURL, "/"),
		httpClient:  opts.HTTPClient,
	}
	if a.id == "" {
		a.id = defaultID
	}
	if a.name == "" {
		a.name = defaultName
	}
	if a.description == "" {
		a.description = defaultDescription
	}
	if a.baseURL == "" {
		a.baseURL = DefaultBaseURL
	}
	if a.httpClient == nil {
		a.httpClient = &http.Client{}
	}
	return a, nil
}

// AsWorker bundles the adapter's functions into the named, described
// worker unit the host framework registers.
func (a *Adapter) AsWorker() agent.Worker {
	return agent.Worker{
		ID:          a.id,
		Name:        a.name,
		Description: a.description,
		Functions:   []agent.Function{a.HistoryFunction()},
	}
}
