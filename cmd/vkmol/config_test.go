package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/vkmol/gpu"
	"github.com/vkngwrapper/vkmol/swapchain"
)

func TestParseConfig_Defaults(t *testing.T) {
	config, err := parseConfig(nil)
	require.NoError(t, err)
	require.Equal(t, defaultFileConfig(), config)

	engineConfig, err := config.engineConfig()
	require.NoError(t, err)
	require.Equal(t, "vkmol", engineConfig.AppName)
	require.Equal(t, gpu.Version{Major: 1}, engineConfig.AppVersion)
	require.Equal(t, swapchain.PipelineSolid, engineConfig.InitialPipeline)
	require.False(t, engineConfig.Debug)
}

func TestParseConfig_Overrides(t *testing.T) {
	config, err := parseConfig([]byte(`
pipeline = "Wireframe"

[app]
name = "molecules"
version = "2.3.4"

[window]
width = 1024
height = 768

[validation]
layers = ["VK_LAYER_KHRONOS_validation"]
debug = true
trace = true

[shaders]
vertex = "a.spv"
`))
	require.NoError(t, err)
	require.Equal(t, int32(1024), config.Window.Width)
	require.Equal(t, int32(768), config.Window.Height)
	require.Equal(t, "a.spv", config.Shaders.Vertex)
	require.Equal(t, "shaders/frag.spv", config.Shaders.Fragment)

	engineConfig, err := config.engineConfig()
	require.NoError(t, err)
	require.Equal(t, "molecules", engineConfig.AppName)
	require.Equal(t, gpu.Version{Major: 2, Minor: 3, Patch: 4}, engineConfig.AppVersion)
	require.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, engineConfig.ValidationLayers)
	require.True(t, engineConfig.Debug)
	require.True(t, engineConfig.Trace)
	require.Equal(t, swapchain.PipelineWireframe, engineConfig.InitialPipeline)
}

var invalidConfigTestCases = map[string]string{
	"UnknownKey":      `colour = "red"`,
	"NotToml":         `[window`,
	"ZeroWidth":       "[window]\nwidth = 0",
	"NegativeHeight":  "[window]\nheight = -1",
	"TraceWithoutDbg": "[validation]\ntrace = true",
}

func TestParseConfig_Invalid(t *testing.T) {
	for testName, document := range invalidConfigTestCases {
		t.Run(testName, func(t *testing.T) {
			_, err := parseConfig([]byte(document))
			require.Error(t, err)
		})
	}
}

var invalidEngineConfigTestCases = map[string]string{
	"ShortVersion":    "[app]\nversion = \"1.0\"",
	"TrailingVersion": "[app]\nversion = \"1.0.0-beta\"",
	"UnknownPipeline": `pipeline = "Points"`,
}

func TestEngineConfig_Invalid(t *testing.T) {
	for testName, document := range invalidEngineConfigTestCases {
		t.Run(testName, func(t *testing.T) {
			config, err := parseConfig([]byte(document))
			require.NoError(t, err)

			_, err = config.engineConfig()
			require.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	config, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultFileConfig(), config)

	path := filepath.Join(t.TempDir(), "vkmol.toml")
	require.NoError(t, os.WriteFile(path, []byte("[app]\nname = \"from file\""), 0o600))

	config, err = loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "from file", config.App.Name)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
