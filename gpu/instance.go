package gpu

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
)

// InstanceCreateInfo contains the settings used to create an Instance
type InstanceCreateInfo struct {
	// AppName is reported to the driver as the application name
	AppName string
	// AppVersion is reported to the driver as the application version
	AppVersion Version
	// EngineName is reported to the driver as the engine name
	EngineName string
	// EngineVersion is reported to the driver as the engine version
	EngineVersion Version

	// Extensions is the list of instance extensions that must be enabled. Creation fails if
	// any of them is unavailable.
	Extensions []string
	// Layers is the list of layers that must be enabled. Creation fails if any of them is
	// unavailable.
	Layers []string

	// Debug installs a debug messenger that forwards validation errors and warnings to
	// the logger
	Debug bool
	// Trace widens the debug messenger to info and verbose messages. It has no effect unless
	// Debug is also set.
	Trace bool
}

// Loader creates instances
type Loader interface {
	CreateInstance(info InstanceCreateInfo) (Instance, error)
}

// Instance is a live Vulkan instance
type Instance interface {
	EnumeratePhysicalDevices() ([]PhysicalDevice, error)
	Destroy()
}

// DeviceProperties is the subset of physical device properties used when scoring devices
type DeviceProperties struct {
	Name       string
	DriverType core1_0.PhysicalDeviceType
}

// DeviceFeatures is the subset of physical device features vkmol depends on
type DeviceFeatures struct {
	// FillModeNonSolid is required for wireframe rendering
	FillModeNonSolid bool
}

// QueueFamily describes one queue family of a physical device
type QueueFamily struct {
	QueueFlags core1_0.QueueFlags
	QueueCount int
}

// DeviceCreateInfo contains the settings used to create a logical Device
type DeviceCreateInfo struct {
	// QueueFamilies lists the distinct queue families that will each receive one queue
	QueueFamilies []int
	// Extensions lists the device extensions to enable
	Extensions []string
	// Features lists the device features to enable
	Features DeviceFeatures
}

// PhysicalDevice is a device enumerated from an Instance. All of its methods are reads.
type PhysicalDevice interface {
	Properties() (DeviceProperties, error)
	Features() DeviceFeatures
	QueueFamilies() []QueueFamily
	// Extensions returns the names of every device extension the device supports
	Extensions() ([]string, error)
	MemoryTypes() []core1_0.MemoryType

	CreateDevice(info DeviceCreateInfo) (Device, error)
}

// Surface is a presentable surface owned by an Instance
type Surface interface {
	SupportsPresent(device PhysicalDevice, queueFamily int) (bool, error)
	Capabilities(device PhysicalDevice) (*khr_surface.SurfaceCapabilities, error)
	Formats(device PhysicalDevice) ([]khr_surface.SurfaceFormat, error)
	PresentModes(device PhysicalDevice) ([]khr_surface.PresentMode, error)
	Destroy()
}
