package vkng

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v2/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/vkmol/gpu"
	"golang.org/x/exp/slog"
)

// Loader creates vkngwrapper instances from a loader obtained from the windowing system
type Loader struct {
	logger *slog.Logger
	loader core.Loader
}

var _ gpu.Loader = &Loader{}

func NewLoader(logger *slog.Logger, loader core.Loader) *Loader {
	return &Loader{
		logger: logger,
		loader: loader,
	}
}

func createVersion(v gpu.Version) common.Version {
	return common.CreateVersion(v.Major, v.Minor, v.Patch)
}

// CreateInstance creates an instance with every requested extension and layer. The portability
// enumeration extension is added when the loader offers it, and the debug utils extension is
// added when info.Debug is set.
func (l *Loader) CreateInstance(info gpu.InstanceCreateInfo) (gpu.Instance, error) {
	createInfo := core1_0.InstanceCreateInfo{
		ApplicationName:    info.AppName,
		ApplicationVersion: createVersion(info.AppVersion),
		EngineName:         info.EngineName,
		EngineVersion:      createVersion(info.EngineVersion),
		APIVersion:         common.Vulkan1_0,
	}

	available, _, err := l.loader.AvailableExtensions()
	if err != nil {
		return nil, errors.Wrap(err, "listing instance extensions")
	}

	extensions := info.Extensions
	if info.Debug {
		extensions = append(extensions, ext_debug_utils.ExtensionName)
	}

	for _, extension := range extensions {
		_, hasExtension := available[extension]
		if !hasExtension {
			return nil, errors.Newf("instance extension %s is not available", extension)
		}
		createInfo.EnabledExtensionNames = append(createInfo.EnabledExtensionNames, extension)
	}

	_, enumerationSupported := available[khr_portability_enumeration.ExtensionName]
	if enumerationSupported {
		createInfo.EnabledExtensionNames = append(createInfo.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		createInfo.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	layers, _, err := l.loader.AvailableLayers()
	if err != nil {
		return nil, errors.Wrap(err, "listing instance layers")
	}

	for _, layer := range info.Layers {
		_, hasLayer := layers[layer]
		if !hasLayer {
			return nil, errors.Newf("layer %s is not available", layer)
		}
		createInfo.EnabledLayerNames = append(createInfo.EnabledLayerNames, layer)
	}

	messenger := debugMessenger{logger: l.logger, trace: info.Trace}
	if info.Debug {
		// Chaining the messenger options covers messages emitted during instance creation
		createInfo.Next = messenger.createInfo()
	}

	l.logger.Debug("Creating instance",
		slog.Any("Extensions", createInfo.EnabledExtensionNames),
		slog.Any("Layers", createInfo.EnabledLayerNames),
	)

	instance, res, err := l.loader.CreateInstance(nil, createInfo)
	if err != nil {
		return nil, check(res, err, "vkCreateInstance")
	}

	result := &Instance{
		logger:   l.logger,
		instance: instance,
	}

	if info.Debug {
		extension := ext_debug_utils.CreateExtensionFromInstance(instance)
		result.messenger, res, err = extension.CreateDebugUtilsMessenger(instance, nil, messenger.createInfo())
		if err != nil {
			instance.Destroy(nil)
			return nil, check(res, err, "vkCreateDebugUtilsMessengerEXT")
		}
	}

	return result, nil
}

// Instance wraps a live core1_0.Instance and the debug messenger installed on it
type Instance struct {
	logger    *slog.Logger
	instance  core1_0.Instance
	messenger ext_debug_utils.DebugUtilsMessenger
}

var _ gpu.Instance = &Instance{}

// Handle exposes the wrapped instance to windowing integrations
func (i *Instance) Handle() core1_0.Instance {
	return i.instance
}

func (i *Instance) EnumeratePhysicalDevices() ([]gpu.PhysicalDevice, error) {
	devices, res, err := i.instance.EnumeratePhysicalDevices()
	if err != nil {
		return nil, check(res, err, "vkEnumeratePhysicalDevices")
	}

	var result []gpu.PhysicalDevice
	for _, device := range devices {
		result = append(result, &PhysicalDevice{
			logger: i.logger,
			device: device,
		})
	}

	return result, nil
}

// Destroy destroys the debug messenger, if any, and then the instance
func (i *Instance) Destroy() {
	if i.messenger != nil {
		i.messenger.Destroy(nil)
		i.messenger = nil
	}

	i.instance.Destroy(nil)
}

// SurfaceFactory adapts a windowing integration that creates a khr_surface.Surface into the
// callback an engine Config expects. The instance passed to the callback must come from a Loader
// in this package.
func SurfaceFactory(create func(instance core1_0.Instance, extension khr_surface.Extension) (khr_surface.Surface, error)) func(gpu.Instance) (gpu.Surface, error) {
	return func(instance gpu.Instance) (gpu.Surface, error) {
		vkInstance, ok := instance.(*Instance)
		if !ok {
			return nil, errors.Newf("cannot create a surface for instance of type %T", instance)
		}

		surface, err := create(vkInstance.instance, khr_surface.CreateExtensionFromInstance(vkInstance.instance))
		if err != nil {
			return nil, errors.Wrap(err, "creating window surface")
		}

		return &Surface{surface: surface}, nil
	}
}
