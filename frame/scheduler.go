// Package frame drives the acquire, submit and present loop. Each frame slot owns a SyncSet,
// and a slot is only reused once the GPU has signaled the slot's fence, so no more than
// MaxFramesInFlight frames are ever queued.
package frame

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/vkmol/gpu"
	"github.com/vkngwrapper/vkmol/internal/release"
	"golang.org/x/exp/slog"
)

// ErrDeviceLost marks errors caused by the driver reporting device loss during a frame
var ErrDeviceLost = gpu.ErrDeviceLost

// Target is the renderer a Scheduler draws with
type Target interface {
	// UpdateFrame writes the per-frame data used by the next frame in slot
	UpdateFrame(slot int) error
	// Swapchain returns the swapchain images are acquired from
	Swapchain() gpu.Swapchain
	// CommandBuffer returns the command buffer recorded for an image. It fails if the buffer
	// was recorded against an older swapchain generation.
	CommandBuffer(imageIndex int) (gpu.CommandBuffer, error)
	// Recreate rebuilds the swapchain and everything recorded against it
	Recreate() error
}

// Scheduler owns the frame slots and the cursor
type Scheduler struct {
	logger        *slog.Logger
	device        gpu.Device
	graphicsQueue gpu.Queue
	presentQueue  gpu.Queue
	target        Target

	syncSets [MaxFramesInFlight]SyncSet
	cursor   Cursor
	frames   int

	// imagesInFlight maps a swapchain image to the fence of the last submission that used it
	imagesInFlight *swiss.Map[int, gpu.Fence]
}

// New creates a Scheduler and the SyncSet of every slot
func New(logger *slog.Logger, device gpu.Device, graphicsQueue, presentQueue gpu.Queue, target Target) (*Scheduler, error) {
	logger.Debug("Scheduler::New", slog.Int("FramesInFlight", MaxFramesInFlight))

	scheduler := &Scheduler{
		logger:         logger,
		device:         device,
		graphicsQueue:  graphicsQueue,
		presentQueue:   presentQueue,
		target:         target,
		imagesInFlight: swiss.NewMap[int, gpu.Fence](8),
	}

	var cleanup release.Stack
	defer cleanup.Release()

	for slot := range scheduler.syncSets {
		syncSet, err := newSyncSet(device)
		if err != nil {
			return nil, errors.Wrapf(err, "creating sync set for slot %d", slot)
		}
		scheduler.syncSets[slot] = syncSet
		cleanup.Push(scheduler.syncSets[slot].destroy)
	}
	cleanup.Disarm()

	return scheduler, nil
}

// Cursor returns the cursor the next DrawFrame uses
func (s *Scheduler) Cursor() Cursor {
	return s.cursor
}

// SyncSet returns the primitives owned by a slot
func (s *Scheduler) SyncSet(slot int) SyncSet {
	return s.syncSets[slot]
}

// Frames returns the number of frames presented so far
func (s *Scheduler) Frames() int {
	return s.frames
}

// DrawFrame renders and presents one frame in the cursor's slot. A stale swapchain is rebuilt
// and reported as success: when the acquire is stale the frame is abandoned before anything is
// submitted, and when the present is stale the frame was already queued. Every other failure
// is returned and leaves the Scheduler unusable.
func (s *Scheduler) DrawFrame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	slot := s.cursor.Slot()
	syncSet := &s.syncSets[slot]

	err := s.target.UpdateFrame(slot)
	if err != nil {
		return errors.Wrap(err, "updating frame data")
	}

	err = syncSet.InFlight.Wait()
	if err != nil {
		return errors.Wrapf(err, "waiting for slot %d", slot)
	}

	swapchain := s.target.Swapchain()
	imageIndex, status, err := swapchain.AcquireNextImage(syncSet.ImageAvailable)
	if err != nil {
		return errors.Wrap(err, "acquiring swapchain image")
	}

	if status.Stale() {
		s.logger.Debug("Scheduler::DrawFrame abandoned", slog.String("Status", status.String()))
		err = s.recreate()
		if err != nil {
			return err
		}

		// A suboptimal acquire still signals the semaphore, and nothing else will wait on it
		if status == gpu.StatusSuboptimal {
			return s.drainImageAvailable(syncSet)
		}
		return nil
	}

	fence, previouslyUsed := s.imagesInFlight.Get(imageIndex)
	if previouslyUsed && fence != syncSet.InFlight {
		err = fence.Wait()
		if err != nil {
			return errors.Wrapf(err, "waiting for image %d", imageIndex)
		}
	}
	s.imagesInFlight.Put(imageIndex, syncSet.InFlight)

	commandBuffer, err := s.target.CommandBuffer(imageIndex)
	if err != nil {
		return err
	}

	err = syncSet.InFlight.Reset()
	if err != nil {
		return errors.Wrapf(err, "resetting fence for slot %d", slot)
	}

	err = s.graphicsQueue.Submit(syncSet.InFlight, gpu.SubmitInfo{
		WaitSemaphores:   []gpu.Semaphore{syncSet.ImageAvailable},
		WaitStages:       []core1_0.PipelineStageFlags{core1_0.PipelineStageColorAttachmentOutput},
		CommandBuffers:   []gpu.CommandBuffer{commandBuffer},
		SignalSemaphores: []gpu.Semaphore{syncSet.RenderFinished},
	})
	if err != nil {
		return errors.Wrapf(err, "submitting image %d", imageIndex)
	}

	status, err = swapchain.Present(s.presentQueue, syncSet.RenderFinished, imageIndex)
	if err != nil {
		return errors.Wrapf(err, "presenting image %d", imageIndex)
	}

	s.cursor = s.cursor.Next()
	s.frames++

	if status.Stale() {
		s.logger.Debug("Scheduler::DrawFrame present", slog.String("Status", status.String()))
		return s.recreate()
	}

	return nil
}

// recreate rebuilds the target. Images in the new swapchain have never been submitted.
func (s *Scheduler) recreate() error {
	err := s.target.Recreate()
	if err != nil {
		return errors.Wrap(err, "recreating swapchain")
	}

	s.imagesInFlight = swiss.NewMap[int, gpu.Fence](8)
	return nil
}

// drainImageAvailable consumes the signal a suboptimal acquire left on a slot's image available
// semaphore with an empty wait-only batch, so the next acquire into it starts unsignaled
func (s *Scheduler) drainImageAvailable(syncSet *SyncSet) error {
	err := s.graphicsQueue.Submit(nil, gpu.SubmitInfo{
		WaitSemaphores: []gpu.Semaphore{syncSet.ImageAvailable},
		WaitStages:     []core1_0.PipelineStageFlags{core1_0.PipelineStageColorAttachmentOutput},
	})
	if err != nil {
		return errors.Wrap(err, "draining image available semaphore")
	}

	return errors.Wrap(s.graphicsQueue.WaitIdle(), "waiting for graphics queue idle")
}

// Reset forgets which fence last used each image. Call it after the swapchain was rebuilt
// outside of DrawFrame.
func (s *Scheduler) Reset() {
	s.imagesInFlight = swiss.NewMap[int, gpu.Fence](8)
}

// Destroy releases every SyncSet. The caller must make sure the device is idle.
func (s *Scheduler) Destroy() {
	s.logger.Debug("Scheduler::Destroy")

	for slot := len(s.syncSets) - 1; slot >= 0; slot-- {
		s.syncSets[slot].destroy()
	}
	s.imagesInFlight = swiss.NewMap[int, gpu.Fence](8)
}
