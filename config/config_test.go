package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2fo/azstore/config"
)

func validSettings() config.Settings {
	return config.Settings{
		AccountName: "testaccount",
		AccountKey:  "dGVzdGtleQ==",
	}
}

func TestSettingsValidate(t *testing.T) {
	require.NoError(t, validSettings().Validate())

	missingName := validSettings()
	missingName.AccountName = ""
	assert.EqualError(t, missingName.Validate(), config.ErrMissingAccountName)

	missingKey := validSettings()
	missingKey.AccountKey = ""
	assert.EqualError(t, missingKey.Validate(), config.ErrMissingAccountKey)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("AZSTORE_ACCOUNT", "envaccount")
	t.Setenv("AZSTORE_ACCOUNT_KEY", "ZW52a2V5")
	t.Setenv("AZSTORE_BASE_URL", "https://envaccount.blob.core.windows.net")
	t.Setenv("AZSTORE_CONTAINER", "envcontainer")

	settings := config.FromEnv()
	assert.Equal(t, "envaccount", settings.AccountName)
	assert.Equal(t, "ZW52a2V5", settings.AccountKey)
	assert.Equal(t, "https://envaccount.blob.core.windows.net", settings.BaseURL)
	assert.Equal(t, "envcontainer", settings.DefaultContainer)
}

func TestRegistry(t *testing.T) {
	registry := config.NewRegistry()
	staging := validSettings()
	staging.DefaultContainer = "staging-data"
	production := validSettings()
	production.DefaultContainer = "production-data"

	registry.Register("staging", staging)
	registry.Register("production", production)

	resolved, err := registry.Resolve("staging")
	require.NoError(t, err)
	assert.Equal(t, "staging-data", resolved.DefaultContainer)

	assert.Equal(t, []string{"production", "staging"}, registry.Environments())
}

func TestRegistryUnknownEnvironment(t *testing.T) {
	registry := config.NewRegistry()
	_, err := registry.Resolve("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestRegistryReplace(t *testing.T) {
	registry := config.NewRegistry()
	registry.Register("staging", validSettings())

	updated := validSettings()
	updated.AccountName = "other"
	registry.Register("staging", updated)

	resolved, err := registry.Resolve("staging")
	require.NoError(t, err)
	assert.Equal(t, "other", resolved.AccountName)
	assert.Equal(t, []string{"staging"}, registry.Environments())
}
