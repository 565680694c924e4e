package config

import (
	"os"
	"path/filepath"
	"testing"

	"area51/internal/components"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "assets/scenes/range.yaml", cfg.Scene)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, float32(-9.81), cfg.Physics.Gravity)
	assert.Equal(t, [3]float32{0, 0, -6}, cfg.Player.Position)
	assert.Equal(t, components.DefaultFPSettings(), cfg.Controller)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	body := `{
		"logLevel": "debug",
		"window": { "width": 800 },
		"controller": { "walkSpeed": 4, "runSpeed": 12, "pickupTag": "holdable" },
		"player": { "position": [1, 2, 3] }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, float32(4), cfg.Controller.WalkSpeed)
	assert.Equal(t, float32(12), cfg.Controller.RunSpeed)
	assert.Equal(t, "holdable", cfg.Controller.PickupTag)
	assert.Equal(t, components.DefaultFPSettings().CrouchSpeed, cfg.Controller.CrouchSpeed)
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Player.Position)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{ not json`), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_RejectsInvertedZoomRange(t *testing.T) {
	dir := t.TempDir()
	body := `{ "controller": { "zoomedInFOV": 120, "zoomedOutFOV": 30 } }`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "zoomedInFOV")
}
