//go:build e2e && unix

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigFileCreation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	tf.Quit()
	require.NoError(t, tf.WaitExit(2*time.Second))

	data, err := os.ReadFile(tf.ConfigPath())
	require.NoError(t, err, "Config file should be created on first run")
	require.Contains(t, string(data), "version = 1")
	require.Contains(t, string(data), "frame_delay_ms")
}

func TestConfigFileIsUsed(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	config := "version = 1\n[array]\nsize = 8\nmax_value = 2\nseed = 3\n[search]\nframe_delay_ms = 1\n"
	require.NoError(t, os.WriteFile(tf.ConfigPath(), []byte(config), 0644))

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	// eight ones: the first probe lands on index 3
	require.NoError(t, tf.Search("1"))
	require.True(t, tf.SeePlain("FOUND 1 AT INDEX 3"))
}

func TestBrokenConfigFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tf.ConfigPath(), []byte("version = = 1"), 0644))

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "App should still start")
	require.True(t, tf.SeePlain("config not loaded, using defaults"))
}
