// Package config resolves, per named environment, the settings the client
// consumes: the base API URL, storage account name and key, and an optional
// default container. How the values got there (environment variables, files,
// flags) stays with the application; this package only holds and looks them
// up.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
)

const (
	// ErrMissingAccountName constant is returned when settings have no account name
	ErrMissingAccountName = "account name is required"
	// ErrMissingAccountKey constant is returned when settings have no account key
	ErrMissingAccountKey = "account key is required"
)

// Settings holds everything the client needs for one storage account.
type Settings struct {
	// AccountName holds the Azure Blob Storage account name for authentication
	AccountName string

	// AccountKey holds the base64-encoded Azure Blob Storage account key for authentication
	AccountKey string

	// BaseURL optionally overrides the default https://{account}.blob.core.windows.net
	BaseURL string

	// DefaultContainer is used by operations called with an empty container name
	DefaultContainer string
}

// Validate ensures the required fields are present. BaseURL and
// DefaultContainer are optional.
func (s Settings) Validate() error {
	if s.AccountName == "" {
		return errors.New(ErrMissingAccountName)
	}
	if s.AccountKey == "" {
		return errors.New(ErrMissingAccountKey)
	}
	return nil
}

// FromEnv builds Settings from the AZSTORE_ACCOUNT, AZSTORE_ACCOUNT_KEY,
// AZSTORE_BASE_URL, and AZSTORE_CONTAINER environment variables.
func FromEnv() Settings {
	return Settings{
		AccountName:      os.Getenv("AZSTORE_ACCOUNT"),
		AccountKey:       os.Getenv("AZSTORE_ACCOUNT_KEY"),
		BaseURL:          os.Getenv("AZSTORE_BASE_URL"),
		DefaultContainer: os.Getenv("AZSTORE_CONTAINER"),
	}
}

// Registry maps environment names ("staging", "production") to Settings. It
// is an explicit value rather than package state so tests and applications
// can hold independent registries. Safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	envs map[string]Settings
}

// NewRegistry initializes an empty Registry.
func NewRegistry() *Registry {
	return &Registry{envs: make(map[string]Settings)}
}

// Register stores settings under env, replacing any previous entry.
func (r *Registry) Register(env string, settings Settings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.envs[env] = settings
}

// Resolve returns the settings registered under env. An unknown environment
// is an error.
func (r *Registry) Resolve(env string) (Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	settings, ok := r.envs[env]
	if !ok {
		return Settings{}, fmt.Errorf("no settings registered for environment %q", env)
	}
	return settings, nil
}

// Environments returns the registered environment names, sorted.
func (r *Registry) Environments() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	envs := make([]string, 0, len(r.envs))
	for env := range r.envs {
		envs = append(envs, env)
	}
	sort.Strings(envs)
	return envs
}
