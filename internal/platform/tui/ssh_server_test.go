package tui

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestResolveHostKeyPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	got, err := resolveHostKeyPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tui-snake", "host_key"), got)

	got, err = resolveHostKeyPath("~/keys/snake")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "keys", "snake"), got)

	got, err = resolveHostKeyPath("/etc/snake/key")
	require.NoError(t, err)
	assert.Equal(t, "/etc/snake/key", got)
}

func TestNewSSHServer(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "nested", "host_key")

	srv, err := NewSSHServer(cfg, config.Default(), log.New(&buf))

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
	assert.DirExists(t, filepath.Dir(cfg.HostKeyPath))
}
