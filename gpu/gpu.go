// Package gpu describes the slice of the Vulkan API that vkmol drives. The interfaces are narrow
// on purpose: every method maps onto one or two vkngwrapper calls in gpu/vkng, and everything
// above this package can be exercised against the mocks in gpu/mocks or the fake in gpu/gputest.
//
// Value types (extents, flags, formats, memory types) are the vkngwrapper types themselves so
// that the backend does not need to translate them.
package gpu

//go:generate mockgen -source instance.go -destination mocks/instance.go
//go:generate mockgen -source device.go -destination mocks/device.go
//go:generate mockgen -source handles.go -destination mocks/handles.go
//go:generate mockgen -source swapchain.go -destination mocks/swapchain.go

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrDeviceLost marks errors caused by the driver reporting VK_ERROR_DEVICE_LOST. Device loss
// is not recoverable by vkmol and is always propagated to the caller.
var ErrDeviceLost = errors.New("device lost")

// Version is a major.minor.patch triple used for application and engine versions
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Status is the non-fatal outcome of an acquire or present call
type Status int

const (
	// StatusSuccess indicates the swapchain still matches the surface
	StatusSuccess Status = iota
	// StatusSuboptimal indicates the call succeeded but the swapchain no longer matches the
	// surface exactly and should be rebuilt
	StatusSuboptimal
	// StatusOutOfDate indicates the swapchain can no longer be used with the surface
	StatusOutOfDate
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusSuboptimal:
		return "Suboptimal"
	case StatusOutOfDate:
		return "OutOfDate"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Stale returns true if the swapchain must be rebuilt before further use
func (s Status) Stale() bool {
	return s == StatusSuboptimal || s == StatusOutOfDate
}
