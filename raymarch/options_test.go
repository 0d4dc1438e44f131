package raymarch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/raymarch/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "raymarch.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 1280, opts.Width)
	assert.Equal(t, 720, opts.Height)
	assert.Equal(t, "Ray Marching", opts.Title)
	assert.Equal(t, glm.Vec3f{8, 5, 7}, opts.CamPos)
	assert.NoError(t, opts.Validate())

	r, g, b, a := opts.Clear().Components()
	assert.InDelta(t, 0.2, r, 1e-6)
	assert.InDelta(t, 0.2, g, 1e-6)
	assert.InDelta(t, 0.2, b, 1e-6)
	assert.InDelta(t, 1.0, a, 1e-6)
}

func clearEnv(t *testing.T) {
	t.Setenv("RAYMARCH_PROFILE", "")
	t.Setenv("WGPU_FORCE_FALLBACK_ADAPTER", "")
	t.Setenv("WGPU_LOG_LEVEL", "")
}

func TestLoadOptionsMissingFile(t *testing.T) {
	clearEnv(t)

	opts, err := LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultOptions(), opts)
}

func TestLoadOptionsOverrides(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
title = "Spheres"
cam_pos = [1.0, 2.0, 3.0]
present_mode = "mailbox"
fragment_shader = "scene.wgsl"
`)

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, "Spheres", opts.Title)
	assert.Equal(t, glm.Vec3f{1, 2, 3}, opts.CamPos)
	assert.Equal(t, "scene.wgsl", opts.FragmentShader)

	// untouched values keep their defaults
	assert.Equal(t, DefaultOptions().ClearColor, opts.ClearColor)
	assert.Equal(t, WindowWidth, opts.Width)

	mode, err := opts.WGPUPresentMode()
	require.NoError(t, err)
	assert.Equal(t, wgpu.PresentModeMailbox, mode)
}

func TestLoadOptionsWindowSizeIsFixed(t *testing.T) {
	path := writeConfig(t, "width = 10\n")

	_, err := LoadOptions(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestLoadOptionsRejectsUnknownPresentMode(t *testing.T) {
	path := writeConfig(t, `present_mode = "vsync"`)

	_, err := LoadOptions(path)
	assert.ErrorContains(t, err, `unknown present mode "vsync"`)
}

func TestLoadOptionsRejectsInvalidToml(t *testing.T) {
	path := writeConfig(t, `title = `)

	_, err := LoadOptions(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestLoadOptionsProfileFromEnv(t *testing.T) {
	t.Setenv("RAYMARCH_PROFILE", "cpu")

	opts, err := LoadOptions("")
	require.NoError(t, err)
	assert.Equal(t, "cpu", opts.Profile)

	t.Setenv("RAYMARCH_PROFILE", "gpu")

	_, err = LoadOptions("")
	assert.ErrorContains(t, err, `unknown profile mode "gpu"`)
}

func TestLoadOptionsAdapterSelection(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
power_preference = "high"
wgpu_log_level = "warn"
`)

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	ctxOpts, err := opts.ContextOptions()
	require.NoError(t, err)

	assert.False(t, ctxOpts.ForceFallbackAdapter)
	assert.Equal(t, wgpu.PowerPreferenceHighPerformance, ctxOpts.PowerPreference)
	require.NotNil(t, ctxOpts.LogLevel)
	assert.Equal(t, wgpu.LogLevelWarn, *ctxOpts.LogLevel)
}

func TestLoadOptionsAdapterFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WGPU_FORCE_FALLBACK_ADAPTER", "1")
	t.Setenv("WGPU_LOG_LEVEL", "debug")

	opts, err := LoadOptions("")
	require.NoError(t, err)

	ctxOpts, err := opts.ContextOptions()
	require.NoError(t, err)

	assert.True(t, ctxOpts.ForceFallbackAdapter)
	require.NotNil(t, ctxOpts.LogLevel)
	assert.Equal(t, wgpu.LogLevelDebug, *ctxOpts.LogLevel)
}

func TestDefaultContextOptionsKeepLibraryLogLevel(t *testing.T) {
	ctxOpts, err := DefaultOptions().ContextOptions()
	require.NoError(t, err)

	assert.Nil(t, ctxOpts.LogLevel)
	assert.Equal(t, wgpu.PowerPreferenceUndefined, ctxOpts.PowerPreference)
}

func TestLoadOptionsRejectsUnknownPowerPreference(t *testing.T) {
	clearEnv(t)

	_, err := LoadOptions(writeConfig(t, `power_preference = "max"`))
	assert.ErrorContains(t, err, `unknown power preference "max"`)
}
