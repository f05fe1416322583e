package vkng

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_portability_subset"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"github.com/vkngwrapper/vkmol/gpu"
	"golang.org/x/exp/slog"
)

type PhysicalDevice struct {
	logger *slog.Logger
	device core1_0.PhysicalDevice
}

var _ gpu.PhysicalDevice = &PhysicalDevice{}

func (d *PhysicalDevice) Properties() (gpu.DeviceProperties, error) {
	properties, err := d.device.Properties()
	if err != nil {
		return gpu.DeviceProperties{}, errors.Wrap(err, "reading device properties")
	}

	return gpu.DeviceProperties{
		Name:       properties.DriverName,
		DriverType: properties.DriverType,
	}, nil
}

func (d *PhysicalDevice) Features() gpu.DeviceFeatures {
	features := d.device.Features()
	if features == nil {
		return gpu.DeviceFeatures{}
	}

	return gpu.DeviceFeatures{
		FillModeNonSolid: features.FillModeNonSolid,
	}
}

func (d *PhysicalDevice) QueueFamilies() []gpu.QueueFamily {
	var families []gpu.QueueFamily
	for _, family := range d.device.QueueFamilyProperties() {
		families = append(families, gpu.QueueFamily{
			QueueFlags: family.QueueFlags,
			QueueCount: family.QueueCount,
		})
	}
	return families
}

func (d *PhysicalDevice) Extensions() ([]string, error) {
	extensions, res, err := d.device.EnumerateDeviceExtensionProperties()
	if err != nil {
		return nil, check(res, err, "vkEnumerateDeviceExtensionProperties")
	}

	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	return names, nil
}

func (d *PhysicalDevice) MemoryTypes() []core1_0.MemoryType {
	return d.device.MemoryProperties().MemoryTypes
}

// CreateDevice creates a logical device with one queue per listed family. The portability
// subset extension is enabled whenever the device advertises it.
func (d *PhysicalDevice) CreateDevice(info gpu.DeviceCreateInfo) (gpu.Device, error) {
	var queues []core1_0.DeviceQueueCreateInfo
	for _, family := range info.QueueFamilies {
		queues = append(queues, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: family,
			QueuePriorities:  []float32{1.0},
		})
	}

	extensionNames := append([]string(nil), info.Extensions...)

	available, res, err := d.device.EnumerateDeviceExtensionProperties()
	if err != nil {
		return nil, check(res, err, "vkEnumerateDeviceExtensionProperties")
	}

	_, portability := available[khr_portability_subset.ExtensionName]
	if portability {
		extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
	}

	device, res, err := d.device.CreateDevice(nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos: queues,
		EnabledFeatures: &core1_0.PhysicalDeviceFeatures{
			FillModeNonSolid: info.Features.FillModeNonSolid,
		},
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return nil, check(res, err, "vkCreateDevice")
	}

	d.logger.Debug("Created device", slog.Any("Extensions", extensionNames))

	return &Device{
		logger:             d.logger,
		device:             device,
		swapchainExtension: khr_swapchain.CreateExtensionFromDevice(device),
	}, nil
}

// Surface wraps a khr_surface.Surface created by a windowing integration
type Surface struct {
	surface khr_surface.Surface
}

var _ gpu.Surface = &Surface{}

func unwrapPhysicalDevice(device gpu.PhysicalDevice) (core1_0.PhysicalDevice, error) {
	physicalDevice, ok := device.(*PhysicalDevice)
	if !ok {
		return nil, errors.Newf("physical device of type %T was not enumerated by this backend", device)
	}
	return physicalDevice.device, nil
}

func (s *Surface) SupportsPresent(device gpu.PhysicalDevice, queueFamily int) (bool, error) {
	physicalDevice, err := unwrapPhysicalDevice(device)
	if err != nil {
		return false, err
	}

	supported, res, err := s.surface.PhysicalDeviceSurfaceSupport(physicalDevice, queueFamily)
	if err != nil {
		return false, check(res, err, "vkGetPhysicalDeviceSurfaceSupportKHR")
	}
	return supported, nil
}

func (s *Surface) Capabilities(device gpu.PhysicalDevice) (*khr_surface.SurfaceCapabilities, error) {
	physicalDevice, err := unwrapPhysicalDevice(device)
	if err != nil {
		return nil, err
	}

	capabilities, res, err := s.surface.PhysicalDeviceSurfaceCapabilities(physicalDevice)
	if err != nil {
		return nil, check(res, err, "vkGetPhysicalDeviceSurfaceCapabilitiesKHR")
	}
	return capabilities, nil
}

func (s *Surface) Formats(device gpu.PhysicalDevice) ([]khr_surface.SurfaceFormat, error) {
	physicalDevice, err := unwrapPhysicalDevice(device)
	if err != nil {
		return nil, err
	}

	formats, res, err := s.surface.PhysicalDeviceSurfaceFormats(physicalDevice)
	if err != nil {
		return nil, check(res, err, "vkGetPhysicalDeviceSurfaceFormatsKHR")
	}
	return formats, nil
}

func (s *Surface) PresentModes(device gpu.PhysicalDevice) ([]khr_surface.PresentMode, error) {
	physicalDevice, err := unwrapPhysicalDevice(device)
	if err != nil {
		return nil, err
	}

	modes, res, err := s.surface.PhysicalDeviceSurfacePresentModes(physicalDevice)
	if err != nil {
		return nil, check(res, err, "vkGetPhysicalDeviceSurfacePresentModesKHR")
	}
	return modes, nil
}

func (s *Surface) Destroy() {
	s.surface.Destroy(nil)
}
