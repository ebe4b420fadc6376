package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SO_IMPORTER_TOKEN", "")
	t.Setenv("SO_IMPORTER_API_URL", "")
	viper.Reset()
	t.Cleanup(viper.Reset)
	require.NoError(t, Init())
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := setupHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIUrl)
	assert.Equal(t, DefaultAPIVersion, cfg.APIVersion)
	assert.Equal(t, DefaultSite, cfg.Site)
	assert.Empty(t, cfg.AccessToken)
	require.NoError(t, cfg.Validate())

	assert.DirExists(t, filepath.Join(home, configDirName))
}

func TestSaveThenLoad(t *testing.T) {
	home := setupHome(t)

	cfg := &Config{
		APIUrl:      "https://api.example.test",
		APIVersion:  "2.3",
		Site:        "superuser",
		AccessToken: "tok(en)",
	}
	require.NoError(t, cfg.Save())
	assert.FileExists(t, filepath.Join(home, configDirName, "config.json"))

	// overwrite path
	cfg.AccessToken = "token-2"
	require.NoError(t, cfg.Save())

	viper.Reset()
	require.NoError(t, Init())
	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setupHome(t)
	t.Setenv("SO_IMPORTER_TOKEN", "env-token")
	t.Setenv("SO_IMPORTER_API_URL", "http://localhost:9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.AccessToken)
	assert.Equal(t, "http://localhost:9999", cfg.APIUrl)
}

func TestValidate(t *testing.T) {
	cfg := Config{APIUrl: "not a url", APIVersion: "2.3", Site: "stackoverflow"}
	require.Error(t, cfg.Validate())

	cfg = Config{APIUrl: DefaultAPIURL, Site: "stackoverflow"}
	require.Error(t, cfg.Validate())

	cfg = Config{APIUrl: DefaultAPIURL, APIVersion: "2.3", Site: "stackoverflow"}
	require.NoError(t, cfg.Validate())
}

func TestClear(t *testing.T) {
	home := setupHome(t)
	require.NoError(t, (&Config{APIUrl: DefaultAPIURL, APIVersion: "2.3", Site: "stackoverflow"}).Save())

	require.NoError(t, Clear())
	_, err := os.Stat(filepath.Join(home, configDirName))
	assert.True(t, os.IsNotExist(err))

	// clearing twice is fine
	require.NoError(t, Clear())
}

func TestRetrieveCredentials(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	t.Setenv("SO_IMPORTER_CLIENT_ID", "12345")
	t.Setenv("SO_IMPORTER_KEY", "test_key")
	assert.Equal(t, "12345", RetrieveClientID(log))
	assert.Equal(t, "test_key", RetrieveKey(log))
	assert.Empty(t, buf.String())

	t.Setenv("SO_IMPORTER_KEY", "")
	assert.Empty(t, RetrieveKey(log))
	assert.Contains(t, buf.String(), "SO_IMPORTER_KEY")
	assert.Contains(t, buf.String(), "The key is missing")
}

func TestLookup_NoName(t *testing.T) {
	var buf bytes.Buffer
	assert.Empty(t, Lookup(zerolog.New(&buf), ""))
	assert.Contains(t, buf.String(), "an environment variable name must be supplied")
}

func TestRetrieveToken(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	t.Setenv("SO_IMPORTER_TOKEN", "env-token")
	assert.Equal(t, "env-token", RetrieveToken(log, &Config{AccessToken: "stored"}))

	t.Setenv("SO_IMPORTER_TOKEN", "")
	assert.Equal(t, "stored", RetrieveToken(log, &Config{AccessToken: "stored"}))

	assert.Empty(t, RetrieveToken(log, nil))
	assert.Contains(t, buf.String(), "The OAuth token is missing")
}
