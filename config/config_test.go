package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 5, cfg.WaitN.Count)
	require.Equal(t, time.Second, cfg.WaitN.MaxDelay)
	require.Equal(t, 4, cfg.Comprehension.Batches)
	require.Equal(t, 10, cfg.Comprehension.Count)
	require.Equal(t, 100*time.Millisecond, cfg.Comprehension.Interval)
	require.Equal(t, 10.0, cfg.Comprehension.MaxValue)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.Nil(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, os.WriteFile(path, []byte("log_level: debug\nwait_n:\n  count: 3\n"), 0o644))

	cfg, err := Load(path)
	require.Nil(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 3, cfg.WaitN.Count)
	require.Equal(t, time.Second, cfg.WaitN.MaxDelay)
	require.Equal(t, 4, cfg.Comprehension.Batches)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, os.WriteFile(path, []byte("wait_n:\n  count: -1\n"), 0o644))
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("wait_n: [1, 2"))
	require.NotNil(t, err)
	_, err = Parse([]byte("wait_n:\n  max_delay: soon\n"))
	require.NotNil(t, err)
}
