// Package probe answers capability questions about a physical device and a surface: which
// queue families can draw and present, which device extensions exist, and what the surface
// supports. Every function here is a read. A failing driver call is reported as an error marked
// with ErrQuery; a query that succeeds but finds nothing usable is reported through empty or
// incomplete results instead.
package probe

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/vkmol/gpu"
)

// ErrQuery marks errors returned by a capability query that the driver failed to answer
var ErrQuery = errors.New("capability query failed")

func queryError(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrQuery)
}

// QueueFamilyIndices holds the queue families chosen for graphics and presentation. The two
// may be the same family.
type QueueFamilyIndices struct {
	Graphics *int
	Present  *int
}

// IsComplete returns true if both a graphics and a present family were found
func (i QueueFamilyIndices) IsComplete() bool {
	return i.Graphics != nil && i.Present != nil
}

// Shared returns true if graphics and presentation use the same queue family. It returns false
// for incomplete indices.
func (i QueueFamilyIndices) Shared() bool {
	return i.IsComplete() && *i.Graphics == *i.Present
}

// Unique returns the distinct families in graphics, present order
func (i QueueFamilyIndices) Unique() []int {
	var families []int
	if i.Graphics != nil {
		families = append(families, *i.Graphics)
	}
	if i.Present != nil && (i.Graphics == nil || *i.Present != *i.Graphics) {
		families = append(families, *i.Present)
	}
	return families
}

// SwapchainSupport is everything the surface reports for a device
type SwapchainSupport struct {
	Capabilities *khr_surface.SurfaceCapabilities
	Formats      []khr_surface.SurfaceFormat
	PresentModes []khr_surface.PresentMode
}

// Adequate returns true if the surface exposes at least one format and one present mode
func (s SwapchainSupport) Adequate() bool {
	return len(s.Formats) > 0 && len(s.PresentModes) > 0
}

// ExtensionSet is the set of extension names a device supports
type ExtensionSet struct {
	names *swiss.Map[string, struct{}]
}

// NewExtensionSet builds a set from a list of names
func NewExtensionSet(names []string) ExtensionSet {
	set := ExtensionSet{names: swiss.NewMap[string, struct{}](uint32(len(names)))}
	for _, name := range names {
		set.names.Put(name, struct{}{})
	}
	return set
}

// Has returns true if the named extension is present
func (s ExtensionSet) Has(name string) bool {
	if s.names == nil {
		return false
	}
	return s.names.Has(name)
}

// Len returns the number of extensions in the set
func (s ExtensionSet) Len() int {
	if s.names == nil {
		return 0
	}
	return s.names.Count()
}

// Missing returns the required names that are not in the set, in the order they were requested
func (s ExtensionSet) Missing(required []string) []string {
	var missing []string
	for _, name := range required {
		if !s.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// FindQueueFamilies scans the device's queue families in order. A family is only considered if
// it exposes at least one queue. The scan stops as soon as both a graphics and a present family
// have been found.
func FindQueueFamilies(device gpu.PhysicalDevice, surface gpu.Surface) (QueueFamilyIndices, error) {
	var indices QueueFamilyIndices

	for familyIndex, family := range device.QueueFamilies() {
		if family.QueueCount > 0 && family.QueueFlags&core1_0.QueueGraphics != 0 {
			index := familyIndex
			indices.Graphics = &index
		}

		supported, err := surface.SupportsPresent(device, familyIndex)
		if err != nil {
			return indices, queryError(err, "present support for queue family %d", familyIndex)
		}

		if family.QueueCount > 0 && supported {
			index := familyIndex
			indices.Present = &index
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices, nil
}

// SupportedExtensions returns the set of device extensions the device supports
func SupportedExtensions(device gpu.PhysicalDevice) (ExtensionSet, error) {
	names, err := device.Extensions()
	if err != nil {
		return ExtensionSet{}, queryError(err, "device extensions")
	}

	return NewExtensionSet(names), nil
}

// QuerySwapchainSupport reads the surface capabilities, formats, and present modes for a device
func QuerySwapchainSupport(device gpu.PhysicalDevice, surface gpu.Surface) (SwapchainSupport, error) {
	var support SwapchainSupport
	var err error

	support.Capabilities, err = surface.Capabilities(device)
	if err != nil {
		return support, queryError(err, "surface capabilities")
	}

	support.Formats, err = surface.Formats(device)
	if err != nil {
		return support, queryError(err, "surface formats")
	}

	support.PresentModes, err = surface.PresentModes(device)
	if err != nil {
		return support, queryError(err, "surface present modes")
	}

	return support, nil
}
