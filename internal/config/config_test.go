package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.MBits)
	assert.Equal(t, 3, cfg.ReplicationK)
	assert.Equal(t, 3*time.Second, cfg.StabilizeInterval)
	assert.Equal(t, 3*time.Second, cfg.ReplicationInterval)
	assert.Equal(t, 5*time.Second, cfg.DiscoveryInterval)
	assert.Equal(t, 5*time.Second, cfg.TimerInterval)
	assert.Equal(t, "socialnet_server", cfg.NetworkAlias)
	assert.False(t, cfg.UseTLS)
	assert.Equal(t, 15*time.Second, cfg.Timeouts.Save)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("M_BITS", "16")
	t.Setenv("REPLICATION_K", "5")
	t.Setenv("STABILIZE_INTERVAL", "7")
	t.Setenv("NETWORK_ALIAS", "ring.internal")
	t.Setenv("NODE_HOST", "10.1.2.3")
	t.Setenv("USE_TLS", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.MBits)
	assert.Equal(t, 5, cfg.ReplicationK)
	assert.Equal(t, 7*time.Second, cfg.StabilizeInterval)
	assert.Equal(t, "ring.internal", cfg.NetworkAlias)
	assert.Equal(t, "10.1.2.3", cfg.NodeHost)
	assert.True(t, cfg.UseTLS)
}

func TestYAMLFileThenEnvWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "node.yaml")
	doc := "m_bits: 12\nreplication_k: 4\nnetwork_alias: from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	t.Setenv("NETWORK_ALIAS", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.MBits)
	assert.Equal(t, 4, cfg.ReplicationK)
	assert.Equal(t, "from-env", cfg.NetworkAlias)
}

func TestInvalidValuesRejected(t *testing.T) {
	t.Setenv("M_BITS", "0")
	_, err := Load("")
	assert.Error(t, err)
}

func TestMissingFileRejected(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
