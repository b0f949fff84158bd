package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("VERSION", "")
	t.Setenv("SERVICE_PORT", "")

	cfg, err := Load(Defaults{Name: "user-service", Port: 5001})

	require.NoError(t, err)
	assert.Equal(t, "user-service", cfg.Name)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, 5001, cfg.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("SERVICE_NAME", "renamed-service")
	t.Setenv("VERSION", "2.1.0")
	t.Setenv("SERVICE_PORT", "8080")

	cfg, err := Load(Defaults{Name: "user-service", Port: 5001})

	require.NoError(t, err)
	assert.Equal(t, "renamed-service", cfg.Name)
	assert.Equal(t, "2.1.0", cfg.Version)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: filed-service\nport: 9000\n"), 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("VERSION", "")
	t.Setenv("SERVICE_PORT", "")

	cfg, err := Load(Defaults{Name: "user-service", Port: 5001})

	require.NoError(t, err)
	assert.Equal(t, "filed-service", cfg.Name)
	assert.Equal(t, 9000, cfg.Port)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "1.0.0", cfg.Version)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\n"), 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("VERSION", "")
	t.Setenv("SERVICE_PORT", "7000")

	cfg, err := Load(Defaults{Name: "user-service", Port: 5001})

	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("SERVICE_PORT", "not-a-port")

	_, err := Load(Defaults{Name: "user-service", Port: 5001})

	assert.Error(t, err)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load(Defaults{Name: "user-service", Port: 5001})

	assert.Error(t, err)
}
