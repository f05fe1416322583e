package frame

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/vkmol/gpu"
	"github.com/vkngwrapper/vkmol/internal/release"
)

// MaxFramesInFlight is the number of frame slots. The CPU records at most this many frames
// ahead of the GPU.
const MaxFramesInFlight = 2

// SyncSet is the synchronization primitives owned by one frame slot
type SyncSet struct {
	// ImageAvailable is signaled by the presentation engine when the acquired image can be
	// rendered to
	ImageAvailable gpu.Semaphore
	// RenderFinished is signaled by the slot's submission and waited on by present
	RenderFinished gpu.Semaphore
	// InFlight is signaled when the slot's submission completes. It is created signaled so
	// the first frame in each slot does not block.
	InFlight gpu.Fence
}

func newSyncSet(device gpu.Device) (SyncSet, error) {
	var cleanup release.Stack
	defer cleanup.Release()

	imageAvailable, err := device.CreateSemaphore()
	if err != nil {
		return SyncSet{}, errors.Wrap(err, "creating image available semaphore")
	}
	cleanup.Push(imageAvailable.Destroy)

	renderFinished, err := device.CreateSemaphore()
	if err != nil {
		return SyncSet{}, errors.Wrap(err, "creating render finished semaphore")
	}
	cleanup.Push(renderFinished.Destroy)

	inFlight, err := device.CreateFence(true)
	if err != nil {
		return SyncSet{}, errors.Wrap(err, "creating in flight fence")
	}
	cleanup.Disarm()

	return SyncSet{
		ImageAvailable: imageAvailable,
		RenderFinished: renderFinished,
		InFlight:       inFlight,
	}, nil
}

func (s *SyncSet) destroy() {
	if s.InFlight != nil {
		s.InFlight.Destroy()
	}
	if s.RenderFinished != nil {
		s.RenderFinished.Destroy()
	}
	if s.ImageAvailable != nil {
		s.ImageAvailable.Destroy()
	}
	*s = SyncSet{}
}

// Cursor selects the frame slot the next DrawFrame uses
type Cursor int

// Slot returns the index of the SyncSet the cursor points at
func (c Cursor) Slot() int {
	return int(c) % MaxFramesInFlight
}

// Next returns the cursor for the following frame
func (c Cursor) Next() Cursor {
	return Cursor((int(c) + 1) % MaxFramesInFlight)
}

func (c Cursor) String() string {
	return fmt.Sprintf("Slot(%d/%d)", c.Slot(), MaxFramesInFlight)
}
