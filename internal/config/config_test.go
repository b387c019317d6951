package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnMissingFile_ShouldUseDefaults(t *testing.T) {
	cfg, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Frankfurter().BaseURL())
	assert.Equal(t, 10*time.Second, cfg.Frankfurter().Timeout())
	assert.Equal(t, "USD", cfg.App().DefaultFrom())
	assert.Equal(t, "PHP", cfg.App().DefaultTo())
	assert.Equal(t, "1", cfg.App().DefaultAmount())
	assert.False(t, cfg.Telegram().Configured())
}

func Test_OnYAMLFile_ShouldOverrideDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte(`
frankfurter:
  base-url: "http://localhost:9999/"
app:
  default-from: "EUR"
  locale: "ru"
telegram:
  token: "abc"
`)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	cfg, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/", cfg.Frankfurter().BaseURL())
	assert.Equal(t, "EUR", cfg.App().DefaultFrom())
	assert.Equal(t, "PHP", cfg.App().DefaultTo())
	assert.Equal(t, "ru", cfg.App().Locale())
	assert.True(t, cfg.Telegram().Configured())
}

func Test_OnBrokenYAML_ShouldFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))

	_, err := New(path)
	assert.Error(t, err)
}

func Test_OnEnvOverride_ShouldWinOverFile(t *testing.T) {
	t.Setenv(envAPIURL, "http://env.example/")
	t.Setenv(envLocale, "ru")

	cfg, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://env.example/", cfg.Frankfurter().BaseURL())
	assert.Equal(t, "ru", cfg.App().Locale())
}
