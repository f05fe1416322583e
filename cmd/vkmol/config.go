package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/vkngwrapper/vkmol/engine"
	"github.com/vkngwrapper/vkmol/gpu"
	"github.com/vkngwrapper/vkmol/swapchain"
)

// fileConfig is the layout of the optional TOML config file
type fileConfig struct {
	App struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"app"`

	Window struct {
		Width  int32 `toml:"width"`
		Height int32 `toml:"height"`
	} `toml:"window"`

	Validation struct {
		Layers []string `toml:"layers"`
		Debug  bool     `toml:"debug"`
		Trace  bool     `toml:"trace"`
	} `toml:"validation"`

	Shaders struct {
		Vertex   string `toml:"vertex"`
		Fragment string `toml:"fragment"`
	} `toml:"shaders"`

	Pipeline string `toml:"pipeline"`
}

func defaultFileConfig() fileConfig {
	var config fileConfig
	config.App.Name = "vkmol"
	config.App.Version = "1.0.0"
	config.Window.Width = 800
	config.Window.Height = 600
	config.Shaders.Vertex = "shaders/vert.spv"
	config.Shaders.Fragment = "shaders/frag.spv"
	config.Pipeline = swapchain.PipelineSolid.String()
	return config
}

// parseConfig overlays the TOML document onto the defaults. Unknown keys are rejected.
func parseConfig(data []byte) (fileConfig, error) {
	config := defaultFileConfig()

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&config)
	if err != nil {
		return config, errors.Wrap(err, "decoding config")
	}

	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		return config, errors.Newf("window size %dx%d is not positive", config.Window.Width, config.Window.Height)
	}

	if config.Validation.Trace && !config.Validation.Debug {
		return config, errors.New("trace requires debug")
	}

	return config, nil
}

// loadConfig reads path, or returns the defaults when path is empty
func loadConfig(path string) (fileConfig, error) {
	if path == "" {
		return defaultFileConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, errors.Wrapf(err, "reading config %s", path)
	}

	config, err := parseConfig(data)
	return config, errors.Wrapf(err, "loading config %s", path)
}

func parseVersion(str string) (gpu.Version, error) {
	var version gpu.Version
	// Sscanf ignores trailing input, the round trip catches it
	_, err := fmt.Sscanf(str, "%d.%d.%d", &version.Major, &version.Minor, &version.Patch)
	if err != nil || version.String() != str {
		return gpu.Version{}, errors.Newf("version %q is not major.minor.patch", str)
	}
	return version, nil
}

// engineConfig converts the file settings into an engine.Config. Window and shader fields are
// filled in by the caller.
func (c fileConfig) engineConfig() (engine.Config, error) {
	version, err := parseVersion(c.App.Version)
	if err != nil {
		return engine.Config{}, err
	}

	pipeline, ok := swapchain.ParsePipelineVariant(c.Pipeline)
	if !ok {
		return engine.Config{}, errors.Newf("unknown pipeline %q", c.Pipeline)
	}

	return engine.Config{
		AppName:          c.App.Name,
		AppVersion:       version,
		ValidationLayers: c.Validation.Layers,
		Debug:            c.Validation.Debug,
		Trace:            c.Validation.Trace,
		InitialPipeline:  pipeline,
	}, nil
}
