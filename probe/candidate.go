package probe

import (
	"github.com/vkngwrapper/vkmol/gpu"
)

// Candidate is everything known about one physical device during selection
type Candidate struct {
	Device     gpu.PhysicalDevice
	Properties gpu.DeviceProperties
	Features   gpu.DeviceFeatures
	Indices    QueueFamilyIndices
	Extensions ExtensionSet
	// Support is only queried for devices that can present and draw. It is left empty
	// otherwise.
	Support SwapchainSupport
}

// Probe gathers a Candidate for one device. Swapchain support is skipped for devices with
// incomplete queue families since no surface query can rescue them.
func Probe(device gpu.PhysicalDevice, surface gpu.Surface) (*Candidate, error) {
	properties, err := device.Properties()
	if err != nil {
		return nil, queryError(err, "device properties")
	}

	candidate := &Candidate{
		Device:     device,
		Properties: properties,
		Features:   device.Features(),
	}

	candidate.Indices, err = FindQueueFamilies(device, surface)
	if err != nil {
		return nil, err
	}

	candidate.Extensions, err = SupportedExtensions(device)
	if err != nil {
		return nil, err
	}

	if !candidate.Indices.IsComplete() {
		return candidate, nil
	}

	candidate.Support, err = QuerySwapchainSupport(device, surface)
	if err != nil {
		return nil, err
	}

	return candidate, nil
}
