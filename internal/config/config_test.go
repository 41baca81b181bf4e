package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_PATH", "RIAK_HOST", "RIAK_PORT", "BANGFS_NAMESPACE",
		"BANGFS_MOUNTDIR", "TRACE_LOG", "BANGFS_TEST_TRACE",
		"BANGFS_TEST_NOSKIP", "BANGFS_TEST_PHASE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "172.17.0.2", cfg.Backend.Host)
	assert.Equal(t, 8087, cfg.Backend.Port)
	assert.False(t, cfg.Backend.Dummy)
	assert.Equal(t, "foobar", cfg.Namespace)
	assert.Equal(t, "/tmp/bangfs", cfg.Mountpoint)
	assert.Equal(t, "/tmp/bangfs-trace.log", cfg.TraceLog)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.False(t, cfg.TraceAlways)
	assert.False(t, cfg.NoSkip)
	assert.Empty(t, cfg.PhaseFilter)
}

func TestLoad_ConfigPathOverridesDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend:
  host: riak.example.com
namespace: staging
`), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "riak.example.com", cfg.Backend.Host)
	assert.Equal(t, "staging", cfg.Namespace)
	// Unset keys keep their defaults.
	assert.Equal(t, 8087, cfg.Backend.Port)
	assert.Equal(t, "/tmp/bangfs", cfg.Mountpoint)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("namespace: fromfile\n"), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("BANGFS_NAMESPACE", "fromenv")
	t.Setenv("RIAK_HOST", "10.0.0.9")
	t.Setenv("RIAK_PORT", "9999")
	t.Setenv("BANGFS_MOUNTDIR", "/mnt/alt")
	t.Setenv("BANGFS_TEST_PHASE", "4,5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "fromenv", cfg.Namespace)
	assert.Equal(t, "10.0.0.9", cfg.Backend.Host)
	assert.Equal(t, 9999, cfg.Backend.Port)
	assert.Equal(t, "/mnt/alt", cfg.Mountpoint)
	assert.Equal(t, "4,5", cfg.PhaseFilter)
}

func TestLoad_BadPortIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("RIAK_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8087, cfg.Backend.Port)
}

func TestLoad_MissingConfigPathFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_BooleanEnvToggles(t *testing.T) {
	clearEnv(t)

	t.Setenv("BANGFS_TEST_TRACE", "1")
	t.Setenv("BANGFS_TEST_NOSKIP", "yes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.TraceAlways)
	assert.True(t, cfg.NoSkip)
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "on", "anything"} {
		assert.True(t, truthy(v), "%q should be truthy", v)
	}
	for _, v := range []string{"", "0", "false", "False", "no", " NO "} {
		assert.False(t, truthy(v), "%q should be falsy", v)
	}
}
