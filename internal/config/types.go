package config

// Config holds all w3worker configuration.
type Config struct {
	DefaultNetworks   []string `json:"default_networks"`
	DefaultLimit      int      `json:"default_limit"`
	WorkerID          string   `json:"worker_id,omitempty"`
	WorkerName        string   `json:"worker_name,omitempty"`
	WorkerDescription string   `json:"worker_description,omitempty"`
	APIKeyRef         string   `json:"api_key_ref,omitempty"` // keychain reference for the Alchemy key

	// internal: config dir path used for Save()
	configDir string
}
