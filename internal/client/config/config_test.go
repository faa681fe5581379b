package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"cli"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()

	require.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "styleoracle.db", cfg.DatabasePath)
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	resetArgs(t, "-a", "http://api.example.org", "-t", "30", "-d", "/tmp/so.db")

	cfg := LoadConfig()

	require.Equal(t, "http://api.example.org", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/tmp/so.db", cfg.DatabasePath)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("STYLEORACLE_API_URL", "http://env.example.org")
	t.Setenv("STYLEORACLE_REQUEST_TIMEOUT", "45s")

	cfg := LoadConfig()

	require.Equal(t, "http://env.example.org", cfg.APIBaseURL)
	require.Equal(t, 45*time.Second, cfg.RequestTimeout)
	require.Equal(t, "styleoracle.db", cfg.DatabasePath, "untouched values keep their defaults")
}

func TestLoadConfig_FlagsBeatEnv(t *testing.T) {
	resetArgs(t, "-a", "http://flag.example.org")
	t.Setenv("STYLEORACLE_API_URL", "http://env.example.org")

	cfg := LoadConfig()

	require.Equal(t, "http://flag.example.org", cfg.APIBaseURL)
}
