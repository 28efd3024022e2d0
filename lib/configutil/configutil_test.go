package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseURL   string `json:"base_url"`
	TokenPath string `json:"token_path"`
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "satori.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{
		// comments are fine in json5
		base_url: "https://judge.example.com",
		token_path: "/tmp/token.txt",
	}`), 0o644))

	config, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "https://judge.example.com", config.BaseURL)
	require.Equal(t, "/tmp/token.txt", config.TokenPath)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "satori.json5"),
		[]byte(`{base_url: "https://judge.example.com", token_path: "/tmp/token.txt"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "satori.local.json5"),
		[]byte(`{base_url: "http://localhost:8080"}`), 0o644))

	config, err := ReadConfig[testConfig](filepath.Join(dir, "satori.json5"))
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", config.BaseURL)
	require.Equal(t, "/tmp/token.txt", config.TokenPath)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "satori.json5"))
	require.True(t, os.IsNotExist(err))
}
