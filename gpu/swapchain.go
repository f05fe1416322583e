package gpu

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
)

// SwapchainCreateInfo contains the negotiated settings for a new Swapchain
type SwapchainCreateInfo struct {
	Surface       Surface
	MinImageCount int
	Format        khr_surface.SurfaceFormat
	Extent        core1_0.Extent2D

	// SharingMode is concurrent when graphics and present queues come from different
	// families, in which case QueueFamilyIndices lists both
	SharingMode        core1_0.SharingMode
	QueueFamilyIndices []int

	PreTransform khr_surface.SurfaceTransformFlags
	PresentMode  khr_surface.PresentMode

	// OldSwapchain is optional. When present, the new swapchain is chained to it so the
	// presentation engine can transition between them.
	OldSwapchain Swapchain
}

// Swapchain is a chain of presentable images
type Swapchain interface {
	Images() ([]Image, error)
	// AcquireNextImage blocks without a timeout until an image is available and arranges for
	// signal to be signaled when the image can be rendered to. A stale Status is not an error.
	AcquireNextImage(signal Semaphore) (int, Status, error)
	// Present queues imageIndex for presentation once wait is signaled. A stale Status is not
	// an error.
	Present(queue Queue, wait Semaphore, imageIndex int) (Status, error)
	Destroy()
}
