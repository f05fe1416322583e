// Package engine composes device selection, buffer allocation, the swapchain and the frame
// loop into a renderer that draws a spinning quad. An Engine is driven by a single goroutine;
// DrawFrame, Resize, SetActivePipeline and Destroy are serialized so a rebuild can never race
// a frame.
package engine

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/vkmol/frame"
	"github.com/vkngwrapper/vkmol/gpu"
	"github.com/vkngwrapper/vkmol/internal/release"
	"github.com/vkngwrapper/vkmol/probe"
	"github.com/vkngwrapper/vkmol/resource"
	"github.com/vkngwrapper/vkmol/selector"
	"github.com/vkngwrapper/vkmol/swapchain"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/semaphore"
)

// ErrNotInitialized is returned by operations that need a successful Initialize
var ErrNotInitialized = errors.New("engine has not been initialized")

// Engine owns every native object vkmol creates
type Engine struct {
	logger *slog.Logger
	loader gpu.Loader
	config Config

	lock        *semaphore.Weighted
	initialized bool
	cleanup     release.Stack

	instance       gpu.Instance
	surface        gpu.Surface
	physicalDevice gpu.PhysicalDevice
	indices        probe.QueueFamilyIndices
	device         gpu.Device
	graphicsQueue  gpu.Queue
	presentQueue   gpu.Queue

	swapchain   *swapchain.Manager
	commandPool gpu.CommandPool
	allocator   *resource.Allocator

	vertexBuffer  *resource.Buffer
	indexBuffer   *resource.Buffer
	uniformBuffer *resource.Buffer

	descriptorPool gpu.DescriptorPool
	descriptorSet  gpu.DescriptorSet

	commandBuffers     []gpu.CommandBuffer
	recordedGeneration int

	scheduler      *frame.Scheduler
	activePipeline swapchain.PipelineVariant

	start time.Duration
	clock func() time.Duration
}

// New creates an Engine. Nothing is created on the GPU until Initialize.
func New(logger *slog.Logger, loader gpu.Loader, config Config) *Engine {
	config = config.withDefaults()

	return &Engine{
		logger:         logger,
		loader:         loader,
		config:         config,
		lock:           semaphore.NewWeighted(1),
		activePipeline: config.InitialPipeline,
		clock:          hrtime.Now,
	}
}

// Initialize creates every object the Engine needs to draw, in dependency order. If any
// step fails, everything created so far is released before the error is returned.
func (e *Engine) Initialize() error {
	e.logger.Debug("Engine::Initialize", slog.String("AppName", e.config.AppName))

	if e.initialized {
		return errors.New("engine is already initialized")
	}

	err := e.config.validate()
	if err != nil {
		return err
	}

	err = e.initialize()
	if err != nil {
		e.cleanup.Release()
		e.reset()
		return err
	}

	e.start = e.clock()
	e.initialized = true
	return nil
}

func (e *Engine) initialize() error {
	instance, err := e.loader.CreateInstance(gpu.InstanceCreateInfo{
		AppName:       e.config.AppName,
		AppVersion:    e.config.AppVersion,
		EngineName:    EngineName,
		EngineVersion: EngineVersion,
		Extensions:    e.config.InstanceExtensions,
		Layers:        e.config.ValidationLayers,
		Debug:         e.config.Debug || len(e.config.ValidationLayers) > 0,
		Trace:         e.config.Trace,
	})
	if err != nil {
		return errors.Wrap(err, "creating instance")
	}
	e.instance = instance
	e.cleanup.Push(instance.Destroy)

	surface, err := e.config.SurfaceFactory(instance)
	if err != nil {
		return errors.Wrap(err, "creating surface")
	}
	e.surface = surface
	e.cleanup.Push(surface.Destroy)

	err = e.createDevice()
	if err != nil {
		return err
	}

	e.swapchain = swapchain.New(e.logger, swapchain.CreateInfo{
		PhysicalDevice:   e.physicalDevice,
		Device:           e.device,
		Surface:          e.surface,
		Indices:          e.indices,
		WindowSize:       e.config.WindowSize,
		VertexShader:     e.config.VertexShader,
		FragmentShader:   e.config.FragmentShader,
		VertexBindings:   VertexBindings(),
		VertexAttributes: VertexAttributes(),
	})
	err = e.swapchain.Create()
	if err != nil {
		return err
	}
	e.cleanup.Push(e.swapchain.Destroy)

	commandPool, err := e.device.CreateCommandPool(*e.indices.Graphics)
	if err != nil {
		return errors.Wrap(err, "creating command pool")
	}
	e.commandPool = commandPool
	e.cleanup.Push(commandPool.Destroy)

	e.allocator = resource.New(e.logger, e.physicalDevice, e.device, e.graphicsQueue, commandPool, e.config.AllocatorOptions)

	err = e.createBuffers()
	if err != nil {
		return err
	}

	err = e.createDescriptors()
	if err != nil {
		return err
	}

	err = e.allocateCommandBuffers()
	if err != nil {
		return err
	}
	e.cleanup.Push(e.freeCommandBuffers)

	err = e.recordCommandBuffers()
	if err != nil {
		return err
	}

	scheduler, err := frame.New(e.logger, e.device, e.graphicsQueue, e.presentQueue, frameTarget{engine: e})
	if err != nil {
		return err
	}
	e.scheduler = scheduler
	e.cleanup.Push(scheduler.Destroy)

	return nil
}

func (e *Engine) createDevice() error {
	devices, err := e.instance.EnumeratePhysicalDevices()
	if err != nil {
		return errors.Wrap(err, "enumerating physical devices")
	}

	candidate, err := selector.New(e.logger, e.config.DeviceExtensions).Select(devices, e.surface)
	if err != nil {
		return err
	}

	device, err := candidate.Device.CreateDevice(gpu.DeviceCreateInfo{
		QueueFamilies: candidate.Indices.Unique(),
		Extensions:    e.config.DeviceExtensions,
		Features: gpu.DeviceFeatures{
			FillModeNonSolid: candidate.Features.FillModeNonSolid,
		},
	})
	if err != nil {
		return errors.Wrap(err, "creating logical device")
	}
	e.cleanup.Push(device.Destroy)

	e.physicalDevice = candidate.Device
	e.indices = candidate.Indices
	e.device = device
	e.graphicsQueue = device.Queue(*candidate.Indices.Graphics)
	e.presentQueue = device.Queue(*candidate.Indices.Present)
	return nil
}

func (e *Engine) createBuffers() error {
	vertexData, err := encode(Quad)
	if err != nil {
		return err
	}

	e.vertexBuffer, err = e.allocator.UploadViaStaging(core1_0.BufferUsageVertexBuffer, vertexData)
	if err != nil {
		return errors.Wrap(err, "uploading vertex buffer")
	}
	e.cleanup.Push(e.vertexBuffer.Destroy)

	indexData, err := encode(QuadIndices)
	if err != nil {
		return err
	}

	e.indexBuffer, err = e.allocator.UploadViaStaging(core1_0.BufferUsageIndexBuffer, indexData)
	if err != nil {
		return errors.Wrap(err, "uploading index buffer")
	}
	e.cleanup.Push(e.indexBuffer.Destroy)

	e.uniformBuffer, err = e.allocator.CreateBuffer(uniformBufferSize(), core1_0.BufferUsageUniformBuffer,
		core1_0.MemoryPropertyHostVisible|core1_0.MemoryPropertyHostCoherent)
	if err != nil {
		return errors.Wrap(err, "creating uniform buffer")
	}
	e.cleanup.Push(e.uniformBuffer.Destroy)

	e.logger.Debug("Created buffers", slog.String("Allocator", e.allocator.BuildStatsString()))
	return nil
}

func (e *Engine) createDescriptors() error {
	pool, err := e.device.CreateDescriptorPool(core1_0.DescriptorPoolCreateInfo{
		MaxSets: 1,
		PoolSizes: []core1_0.DescriptorPoolSize{
			{
				Type:            core1_0.DescriptorTypeUniformBuffer,
				DescriptorCount: 1,
			},
		},
	})
	if err != nil {
		return errors.Wrap(err, "creating descriptor pool")
	}
	e.descriptorPool = pool
	e.cleanup.Push(pool.Destroy)

	set, err := pool.AllocateSet(e.swapchain.DescriptorSetLayout())
	if err != nil {
		return errors.Wrap(err, "allocating descriptor set")
	}

	err = set.WriteUniformBuffer(0, e.uniformBuffer.Handle(), e.uniformBuffer.Size())
	if err != nil {
		return errors.Wrap(err, "writing descriptor set")
	}

	e.descriptorSet = set
	return nil
}

func (e *Engine) allocateCommandBuffers() error {
	commandBuffers, err := e.commandPool.Allocate(e.swapchain.ImageCount())
	if err != nil {
		return errors.Wrap(err, "allocating command buffers")
	}
	e.commandBuffers = commandBuffers
	return nil
}

func (e *Engine) freeCommandBuffers() {
	if len(e.commandBuffers) > 0 {
		e.commandPool.Free(e.commandBuffers)
	}
	e.commandBuffers = nil
}

// recordCommandBuffers records one command buffer per framebuffer with the active pipeline.
// The device must not be using any of them.
func (e *Engine) recordCommandBuffers() error {
	pipeline, err := e.swapchain.Pipeline(e.activePipeline)
	if err != nil {
		return err
	}

	framebuffers := e.swapchain.Framebuffers()
	if len(framebuffers) != len(e.commandBuffers) {
		return errors.Newf("%d command buffers for %d framebuffers", len(e.commandBuffers), len(framebuffers))
	}

	// A partial recording must never be submitted
	e.recordedGeneration = -1
	for i, commandBuffer := range e.commandBuffers {
		err = recordCommands(commandBuffer, gpu.RenderPassBeginInfo{
			RenderPass:  e.swapchain.RenderPass(),
			Framebuffer: framebuffers[i],
			Extent:      e.swapchain.Extent(),
			ClearColor:  clearColor(),
		}, pipeline, e.swapchain.PipelineLayout(), e.vertexBuffer.Handle(), e.indexBuffer.Handle(), e.descriptorSet)
		if err != nil {
			return errors.Wrapf(err, "recording command buffer %d", i)
		}
	}

	e.recordedGeneration = e.swapchain.Generation()
	e.logger.Debug("Recorded command buffers",
		slog.Int("Count", len(e.commandBuffers)),
		slog.Int("Generation", e.recordedGeneration),
		slog.String("Pipeline", e.activePipeline.String()),
	)
	return nil
}

// recreate rebuilds the swapchain and re-records the command buffers against the new
// generation. The image count may change between generations.
func (e *Engine) recreate() error {
	e.swapchain.MarkStale()
	err := e.swapchain.Recreate()
	if err != nil {
		return err
	}

	return e.rerecord()
}

// rerecord matches the command buffers to the live swapchain and records them again
func (e *Engine) rerecord() error {
	if e.swapchain.ImageCount() != len(e.commandBuffers) {
		e.freeCommandBuffers()
		err := e.allocateCommandBuffers()
		if err != nil {
			return err
		}
	}

	return e.recordCommandBuffers()
}

func (e *Engine) acquire(ctx context.Context) error {
	err := e.lock.Acquire(ctx, 1)
	if err != nil {
		return err
	}

	if !e.initialized {
		e.lock.Release(1)
		return ErrNotInitialized
	}
	return nil
}

// DrawFrame renders and presents one frame. A stale swapchain is rebuilt without returning
// an error, and a rebuild that failed earlier is retried before anything is acquired. Other
// errors are fatal; they are marked with frame.ErrDeviceLost when the device was lost.
func (e *Engine) DrawFrame(ctx context.Context) error {
	err := e.acquire(ctx)
	if err != nil {
		return err
	}
	defer e.lock.Release(1)

	err = e.restore()
	if err != nil {
		return err
	}

	return e.scheduler.DrawFrame(ctx)
}

// restore finishes a rebuild or recording that failed earlier, so nothing recorded against
// released objects is submitted
func (e *Engine) restore() error {
	if e.swapchain.State() != swapchain.StateLive {
		e.logger.Warn("Retrying swapchain rebuild", slog.String("State", e.swapchain.State().String()))
		err := e.recreate()
		if err != nil {
			return errors.Wrap(err, "rebuilding swapchain before drawing")
		}
		e.scheduler.Reset()
		return nil
	}

	if e.recordedGeneration != e.swapchain.Generation() {
		e.logger.Warn("Re-recording command buffers", slog.Int("Generation", e.swapchain.Generation()))
		err := e.device.WaitIdle()
		if err != nil {
			return errors.Wrap(err, "waiting for device idle")
		}
		e.scheduler.Reset()
		return e.rerecord()
	}

	return nil
}

// Resize rebuilds the swapchain for the current window size. When the rebuild fails, the next
// DrawFrame retries it before drawing.
func (e *Engine) Resize(ctx context.Context) error {
	err := e.acquire(ctx)
	if err != nil {
		return err
	}
	defer e.lock.Release(1)

	e.logger.Debug("Engine::Resize")

	err = e.recreate()
	if err != nil {
		return err
	}
	e.scheduler.Reset()
	return nil
}

// SetActivePipeline switches the pipeline every frame is drawn with. It waits for the device
// to go idle and re-records the command buffers.
func (e *Engine) SetActivePipeline(ctx context.Context, variant swapchain.PipelineVariant) error {
	if !variant.Valid() {
		return errors.Newf("unknown pipeline variant %s", variant)
	}

	err := e.acquire(ctx)
	if err != nil {
		return err
	}
	defer e.lock.Release(1)

	e.logger.Debug("Engine::SetActivePipeline", slog.String("Pipeline", variant.String()))

	err = e.device.WaitIdle()
	if err != nil {
		return errors.Wrap(err, "waiting for device idle")
	}

	previous := e.activePipeline
	e.activePipeline = variant
	err = e.recordCommandBuffers()
	if err != nil {
		e.activePipeline = previous
		return err
	}
	return nil
}

// ActivePipeline returns the pipeline variant command buffers are recorded with
func (e *Engine) ActivePipeline() swapchain.PipelineVariant {
	return e.activePipeline
}

// WaitIdle blocks until the device has finished all submitted work. It waits for any frame,
// resize or pipeline switch in progress first.
func (e *Engine) WaitIdle() error {
	err := e.acquire(context.Background())
	if err != nil {
		return err
	}
	defer e.lock.Release(1)

	return errors.Wrap(e.device.WaitIdle(), "waiting for device idle")
}

// Run draws frames until poll returns false or ctx is done, then waits for the device to go
// idle. poll is called once before every frame and is where the window's events are pumped.
func (e *Engine) Run(ctx context.Context, poll func() bool) error {
	e.logger.Debug("Engine::Run")

	for ctx.Err() == nil && poll() {
		err := e.DrawFrame(ctx)
		if err != nil && ctx.Err() == nil {
			return err
		}
	}

	return e.WaitIdle()
}

// Frames returns the number of frames presented since Initialize
func (e *Engine) Frames() int {
	if e.scheduler == nil {
		return 0
	}
	return e.scheduler.Frames()
}

// Destroy waits for the device to go idle and releases everything in reverse creation order.
// It is safe to call on an Engine that was never initialized.
func (e *Engine) Destroy() {
	_ = e.lock.Acquire(context.Background(), 1)
	defer e.lock.Release(1)

	if !e.initialized {
		return
	}

	e.logger.Debug("Engine::Destroy", slog.String("Allocator", e.allocator.BuildStatsString()))

	err := e.device.WaitIdle()
	if err != nil {
		e.logger.Error("Could not wait for device idle before teardown", slog.Any("error", err))
	}

	e.cleanup.Release()
	e.reset()
	e.initialized = false
}

func (e *Engine) reset() {
	e.instance = nil
	e.surface = nil
	e.physicalDevice = nil
	e.indices = probe.QueueFamilyIndices{}
	e.device = nil
	e.graphicsQueue = nil
	e.presentQueue = nil
	e.swapchain = nil
	e.commandPool = nil
	e.allocator = nil
	e.vertexBuffer = nil
	e.indexBuffer = nil
	e.uniformBuffer = nil
	e.descriptorPool = nil
	e.descriptorSet = nil
	e.commandBuffers = nil
	e.recordedGeneration = 0
	e.scheduler = nil
}

// frameTarget is the Engine as seen by the frame scheduler
type frameTarget struct {
	engine *Engine
}

func (t frameTarget) UpdateFrame(slot int) error {
	e := t.engine
	ubo := NewUniformBufferObject(e.clock()-e.start, e.swapchain.Extent())

	data, err := encode(&ubo)
	if err != nil {
		return err
	}
	return e.uniformBuffer.Write(data)
}

func (t frameTarget) Swapchain() gpu.Swapchain {
	return t.engine.swapchain.Swapchain()
}

func (t frameTarget) CommandBuffer(imageIndex int) (gpu.CommandBuffer, error) {
	e := t.engine
	if e.swapchain.State() != swapchain.StateLive {
		return nil, errors.Newf("swapchain is %s", e.swapchain.State())
	}

	if e.recordedGeneration != e.swapchain.Generation() {
		return nil, errors.Newf("command buffers were recorded for generation %d, swapchain is at %d",
			e.recordedGeneration, e.swapchain.Generation())
	}

	if imageIndex < 0 || imageIndex >= len(e.commandBuffers) {
		return nil, errors.Newf("image index %d out of range for %d command buffers", imageIndex, len(e.commandBuffers))
	}

	return e.commandBuffers[imageIndex], nil
}

func (t frameTarget) Recreate() error {
	return t.engine.recreate()
}
