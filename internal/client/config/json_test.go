package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url": "https://api.payorbit.test/api",
		"state_path":   "elsewhere.db",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "https://api.payorbit.test/api", cfg.APIBaseURL)
		assert.Equal(t, "elsewhere.db", cfg.StatePath)
	})

	t.Run("absent fields keep earlier values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"export_dir": "reports",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{APIBaseURL: "http://defaults:8000/api", ExportDir: "exports"}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:8000/api", cfg.APIBaseURL)
		assert.Equal(t, "reports", cfg.ExportDir)
	})

	t.Run("no config flag means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "http://defaults:8000/api"}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:8000/api", cfg.APIBaseURL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

func Test_parseEnv(t *testing.T) {
	t.Setenv("PAYORBIT_API_URL", "https://env.payorbit.test/api")

	cfg := &Config{APIBaseURL: "http://defaults:8000/api", StatePath: "payorbit.db"}
	parseEnv(cfg)

	assert.Equal(t, "https://env.payorbit.test/api", cfg.APIBaseURL)
	assert.Equal(t, "payorbit.db", cfg.StatePath, "unset variables keep earlier values")
}
