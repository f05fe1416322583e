package engine

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/vkmol/gpu"
	"github.com/vkngwrapper/vkmol/resource"
	"github.com/vkngwrapper/vkmol/swapchain"
	"golang.org/x/exp/slices"
)

const (
	// EngineName is reported to the driver as the engine name
	EngineName = "vkmol"
	// SwapchainExtension is always added to the required device extensions
	SwapchainExtension = "VK_KHR_swapchain"

	defaultAppName = "untitled"
)

// EngineVersion is reported to the driver as the engine version
var EngineVersion = gpu.Version{Major: 1, Minor: 0, Patch: 0}

var defaultAppVersion = gpu.Version{Major: 1, Minor: 0, Patch: 0}

// Config contains everything an Engine needs from the application. Only the window
// callbacks and the shaders are required: zero values elsewhere are replaced with defaults.
type Config struct {
	// AppName is reported to the driver. Defaults to "untitled".
	AppName string
	// AppVersion is reported to the driver. Defaults to 1.0.0.
	AppVersion gpu.Version

	// InstanceExtensions lists instance extensions that must be enabled, usually the ones the
	// windowing system needs to create a surface
	InstanceExtensions []string
	// DeviceExtensions lists device extensions every viable device must support. The
	// swapchain extension is always added.
	DeviceExtensions []string
	// ValidationLayers lists layers enabled on the instance
	ValidationLayers []string

	// Debug installs a debug messenger that forwards validation warnings and errors to
	// the logger
	Debug bool
	// Trace also forwards info and verbose validation messages
	Trace bool

	// WindowSize reports the drawable size in pixels
	WindowSize func() (int, int)
	// SurfaceFactory creates the presentation surface for the window
	SurfaceFactory func(instance gpu.Instance) (gpu.Surface, error)

	// VertexShader and FragmentShader are SPIR-V modules. Every pipeline variant uses both.
	VertexShader   []byte
	FragmentShader []byte

	// InitialPipeline is the pipeline variant command buffers are first recorded with
	InitialPipeline swapchain.PipelineVariant

	// AllocatorOptions is passed through to the buffer allocator
	AllocatorOptions resource.CreateOptions
}

func (c Config) withDefaults() Config {
	if c.AppName == "" {
		c.AppName = defaultAppName
	}

	if c.AppVersion == (gpu.Version{}) {
		c.AppVersion = defaultAppVersion
	}

	if !slices.Contains(c.DeviceExtensions, SwapchainExtension) {
		c.DeviceExtensions = append(slices.Clone(c.DeviceExtensions), SwapchainExtension)
	}

	return c
}

func (c Config) validate() error {
	if c.WindowSize == nil {
		return errors.New("config is missing a WindowSize callback")
	}

	if c.SurfaceFactory == nil {
		return errors.New("config is missing a SurfaceFactory")
	}

	if len(c.VertexShader) == 0 || len(c.FragmentShader) == 0 {
		return errors.New("config is missing shader code")
	}

	if !c.InitialPipeline.Valid() {
		return errors.Newf("unknown initial pipeline %s", c.InitialPipeline)
	}

	return nil
}
