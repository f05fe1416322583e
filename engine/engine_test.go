package engine

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/vkmol/frame"
	"github.com/vkngwrapper/vkmol/gpu"
	"github.com/vkngwrapper/vkmol/gpu/gputest"
	"github.com/vkngwrapper/vkmol/selector"
	"github.com/vkngwrapper/vkmol/swapchain"
	"golang.org/x/exp/slog"
)

var errInjected = errors.New("injected failure")

var drawCommands = []string{
	"BeginRenderPass",
	"BindPipeline",
	"BindVertexBuffers",
	"BindIndexBuffer",
	"BindDescriptorSets",
	"DrawIndexed",
	"EndRenderPass",
}

func testConfig(g *gputest.GPU) Config {
	return Config{
		WindowSize:     func() (int, int) { return 800, 600 },
		SurfaceFactory: g.SurfaceFactory,
		VertexShader:   make([]byte, 8),
		FragmentShader: make([]byte, 8),
	}
}

func newTestEngine(t *testing.T, g *gputest.GPU, config Config) *Engine {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	e := New(logger, g.Loader(), config)

	var now time.Duration
	e.clock = func() time.Duration {
		now += 250 * time.Millisecond
		return now
	}
	return e
}

func initializedEngine(t *testing.T, g *gputest.GPU) *Engine {
	e := newTestEngine(t, g, testConfig(g))
	require.NoError(t, e.Initialize())
	return e
}

func destroyedKinds(events []string) []string {
	var kinds []string
	for _, event := range events {
		if !strings.HasPrefix(event, "destroy ") {
			continue
		}
		kind, _, _ := strings.Cut(strings.TrimPrefix(event, "destroy "), "#")
		if len(kinds) == 0 || kinds[len(kinds)-1] != kind {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

func lastCommandBuffer(g *gputest.GPU) *gputest.CommandBuffer {
	submission := g.Submissions[len(g.Submissions)-1]
	return submission.CommandBuffers[0]
}

func TestConfig_Defaults(t *testing.T) {
	extensions := make([]string, 1, 4)
	extensions[0] = "VK_EXT_custom"

	config := Config{DeviceExtensions: extensions}.withDefaults()
	require.Equal(t, "untitled", config.AppName)
	require.Equal(t, gpu.Version{Major: 1}, config.AppVersion)
	require.Equal(t, []string{"VK_EXT_custom", SwapchainExtension}, config.DeviceExtensions)
	require.Equal(t, []string{"VK_EXT_custom"}, extensions)
	require.Equal(t, swapchain.PipelineSolid, config.InitialPipeline)

	config = Config{AppName: "molecules", DeviceExtensions: []string{SwapchainExtension}}.withDefaults()
	require.Equal(t, "molecules", config.AppName)
	require.Equal(t, []string{SwapchainExtension}, config.DeviceExtensions)
}

var invalidConfigTestCases = map[string]struct {
	Modify func(config *Config)
}{
	"MissingWindowSize": {
		Modify: func(config *Config) { config.WindowSize = nil },
	},
	"MissingSurfaceFactory": {
		Modify: func(config *Config) { config.SurfaceFactory = nil },
	},
	"MissingVertexShader": {
		Modify: func(config *Config) { config.VertexShader = nil },
	},
	"MissingFragmentShader": {
		Modify: func(config *Config) { config.FragmentShader = []byte{} },
	},
	"UnknownPipeline": {
		Modify: func(config *Config) { config.InitialPipeline = swapchain.PipelineVariant(9) },
	},
}

func TestEngine_InvalidConfig(t *testing.T) {
	for testName, testCase := range invalidConfigTestCases {
		t.Run(testName, func(t *testing.T) {
			g := gputest.New()
			config := testConfig(g)
			testCase.Modify(&config)

			e := newTestEngine(t, g, config)
			require.Error(t, e.Initialize())
			require.Nil(t, g.InstanceInfo)
			require.Equal(t, 0, g.LiveTotal())
		})
	}
}

func TestEngine_Initialize(t *testing.T) {
	g := gputest.New()
	config := testConfig(g)
	config.ValidationLayers = []string{"VK_LAYER_KHRONOS_validation"}
	e := newTestEngine(t, g, config)

	require.NoError(t, e.Initialize())
	require.Error(t, e.Initialize())

	require.Equal(t, "untitled", g.InstanceInfo.AppName)
	require.Equal(t, EngineName, g.InstanceInfo.EngineName)
	require.Equal(t, EngineVersion, g.InstanceInfo.EngineVersion)
	require.True(t, g.InstanceInfo.Debug)
	require.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, g.InstanceInfo.Layers)

	require.Equal(t, []int{0}, g.DeviceInfo.QueueFamilies)
	require.Equal(t, []string{SwapchainExtension}, g.DeviceInfo.Extensions)
	require.True(t, g.DeviceInfo.Features.FillModeNonSolid)

	require.Equal(t, 3, g.Live("CommandBuffer"))
	require.Equal(t, 3, g.Live("Buffer"))
	require.Equal(t, 3, g.Live("DeviceMemory"))
	require.Equal(t, 4, g.Live("Semaphore"))
	require.Equal(t, 2, g.Live("Fence"))

	require.Equal(t, 80, e.vertexBuffer.Size())
	require.Equal(t, 12, e.indexBuffer.Size())
	require.Equal(t, core1_0.MemoryPropertyDeviceLocal, e.vertexBuffer.MemoryProperties())

	vertices := e.vertexBuffer.Handle().(*gputest.Buffer).Memory.Data
	expected, err := encode(Quad)
	require.NoError(t, err)
	require.Equal(t, expected, vertices)

	set := e.descriptorSet.(*gputest.DescriptorSet)
	require.Same(t, e.uniformBuffer.Handle(), set.Buffers[0])
	require.Equal(t, uniformBufferSize(), set.Ranges[0])

	for _, commandBuffer := range e.commandBuffers {
		recorded := commandBuffer.(*gputest.CommandBuffer)
		require.Equal(t, drawCommands, recorded.Commands)
		require.Equal(t, core1_0.CommandBufferUsageSimultaneousUse, recorded.Flags)
		require.Equal(t, core1_0.PrimitiveTopologyTriangleList, recorded.Pipeline.Info.Topology)
	}

	require.Empty(t, g.Violations)
}

func TestEngine_Destroy(t *testing.T) {
	g := gputest.New()
	e := initializedEngine(t, g)

	mark := len(g.Events)
	e.Destroy()

	require.Equal(t, 0, g.LiveTotal())
	require.Equal(t, []string{
		"Fence", "Semaphore", "Fence", "Semaphore",
		"CommandBuffer",
		"DescriptorPool",
		"Buffer", "DeviceMemory", "Buffer", "DeviceMemory", "Buffer", "DeviceMemory",
		"CommandPool",
		"Framebuffer", "Pipeline", "PipelineLayout", "DescriptorSetLayout", "RenderPass", "ImageView", "Swapchain",
		"Device",
		"Surface",
		"Instance",
	}, destroyedKinds(g.Events[mark:]))

	e.Destroy()
	require.Empty(t, g.Violations)
	require.True(t, errors.Is(e.DrawFrame(context.Background()), ErrNotInitialized))
}

func TestEngine_NoViableDevice(t *testing.T) {
	g := gputest.New()
	g.PhysicalDevices[0].ExtensionNames = nil
	e := newTestEngine(t, g, testConfig(g))

	err := e.Initialize()
	require.True(t, errors.Is(err, selector.ErrDeviceInitializationFailed))
	require.Nil(t, g.Device)
	require.Equal(t, 0, g.LiveTotal())
}

var initializeFailureTestCases = map[string]struct {
	Method string
}{
	"Instance":         {Method: "CreateInstance"},
	"Surface":          {Method: "CreateSurface"},
	"Enumerate":        {Method: "EnumeratePhysicalDevices"},
	"Device":           {Method: "CreateDevice"},
	"Swapchain":        {Method: "CreateSwapchain"},
	"CommandPool":      {Method: "CreateCommandPool"},
	"Memory":           {Method: "AllocateMemory"},
	"StagingSubmit":    {Method: "Submit"},
	"DescriptorPool":   {Method: "CreateDescriptorPool"},
	"DescriptorSet":    {Method: "AllocateSet"},
	"Semaphore":        {Method: "CreateSemaphore"},
	"Fence":            {Method: "CreateFence"},
	"CommandBuffers":   {Method: "AllocateCommandBuffers"},
	"GraphicsPipeline": {Method: "CreateGraphicsPipeline"},
}

func TestEngine_InitializeFailureReleasesEverything(t *testing.T) {
	for testName, testCase := range initializeFailureTestCases {
		t.Run(testName, func(t *testing.T) {
			g := gputest.New()
			e := newTestEngine(t, g, testConfig(g))

			g.Fail(testCase.Method, errInjected)
			err := e.Initialize()
			require.True(t, errors.Is(err, errInjected))
			require.Equal(t, 0, g.LiveTotal())
			require.Empty(t, g.Violations)

			require.NoError(t, e.Initialize())
			e.Destroy()
			require.Equal(t, 0, g.LiveTotal())
			require.Empty(t, g.Violations)
		})
	}
}

func TestEngine_DrawFrame(t *testing.T) {
	g := gputest.New()
	g.AcquireScript = []gputest.AcquireResult{{ImageIndex: 0}, {ImageIndex: 1}, {ImageIndex: 0}, {ImageIndex: 1}}
	e := initializedEngine(t, g)
	defer e.Destroy()

	uniform := e.uniformBuffer.Handle().(*gputest.Buffer).Memory
	var previous []byte

	for i := 0; i < 4; i++ {
		require.NoError(t, e.DrawFrame(context.Background()))
		require.LessOrEqual(t, g.Pending(), frame.MaxFramesInFlight)

		require.False(t, uniform.Mapped())
		require.NotEqual(t, previous, uniform.Data)
		previous = append([]byte(nil), uniform.Data...)

		commandBuffer := lastCommandBuffer(g)
		require.Same(t, e.commandBuffers[g.Presents[i].ImageIndex], commandBuffer)
		require.Equal(t, drawCommands, commandBuffer.Commands)
	}

	require.Equal(t, 4, e.Frames())
	require.Empty(t, g.Violations)
}

func TestEngine_SetActivePipeline(t *testing.T) {
	g := gputest.New()
	e := initializedEngine(t, g)
	defer e.Destroy()

	require.NoError(t, e.DrawFrame(context.Background()))
	require.Equal(t, core1_0.PrimitiveTopologyTriangleList, lastCommandBuffer(g).Pipeline.Info.Topology)

	require.Error(t, e.SetActivePipeline(context.Background(), swapchain.PipelineVariant(-1)))
	require.Equal(t, swapchain.PipelineSolid, e.ActivePipeline())

	require.NoError(t, e.SetActivePipeline(context.Background(), swapchain.PipelineWireframe))
	require.Equal(t, swapchain.PipelineWireframe, e.ActivePipeline())
	require.Equal(t, 0, g.Pending())

	require.NoError(t, e.DrawFrame(context.Background()))
	require.Equal(t, core1_0.PrimitiveTopologyLineStrip, lastCommandBuffer(g).Pipeline.Info.Topology)

	require.NoError(t, e.SetActivePipeline(context.Background(), e.ActivePipeline().Next()))
	require.NoError(t, e.DrawFrame(context.Background()))
	require.Equal(t, core1_0.PrimitiveTopologyTriangleList, lastCommandBuffer(g).Pipeline.Info.Topology)
	require.Empty(t, g.Violations)
}

func TestEngine_Resize(t *testing.T) {
	g := gputest.New()
	e := initializedEngine(t, g)
	defer e.Destroy()

	require.NoError(t, e.DrawFrame(context.Background()))

	g.Surface.Resize(1280, 720)
	require.NoError(t, e.Resize(context.Background()))
	require.Equal(t, 1, e.swapchain.Generation())
	require.Equal(t, 1, e.recordedGeneration)

	require.NoError(t, e.DrawFrame(context.Background()))
	target := lastCommandBuffer(g).Target
	require.Equal(t, core1_0.Extent2D{Width: 1280, Height: 720}, target.Info.Extent)
	require.False(t, target.Destroyed())
	require.Empty(t, g.Violations)
}

func TestEngine_ResizeChangesImageCount(t *testing.T) {
	g := gputest.New()
	e := initializedEngine(t, g)
	defer e.Destroy()

	g.Surface.SurfaceCapabilities.MinImageCount = 3
	require.NoError(t, e.Resize(context.Background()))
	require.Equal(t, 4, e.swapchain.ImageCount())
	require.Len(t, e.commandBuffers, 4)
	require.Equal(t, 4, g.Live("CommandBuffer"))

	g.AcquireScript = []gputest.AcquireResult{{ImageIndex: 3}}
	require.NoError(t, e.DrawFrame(context.Background()))
	require.Same(t, e.commandBuffers[3], lastCommandBuffer(g))
	require.Empty(t, g.Violations)
}

func TestEngine_StaleAcquireRebuilds(t *testing.T) {
	g := gputest.New()
	e := initializedEngine(t, g)
	defer e.Destroy()

	submitted := len(g.Submissions)
	g.Surface.Resize(640, 480)
	g.AcquireScript = []gputest.AcquireResult{{Status: gpu.StatusOutOfDate}}
	require.NoError(t, e.DrawFrame(context.Background()))
	require.Len(t, g.Submissions, submitted)
	require.Equal(t, 1, e.swapchain.Generation())

	require.NoError(t, e.DrawFrame(context.Background()))
	require.Equal(t, core1_0.Extent2D{Width: 640, Height: 480}, lastCommandBuffer(g).Target.Info.Extent)
	require.Empty(t, g.Violations)
}

func TestEngine_StaleCommandBuffersAreRejected(t *testing.T) {
	g := gputest.New()
	e := initializedEngine(t, g)
	defer e.Destroy()

	e.recordedGeneration = -1
	_, err := frameTarget{engine: e}.CommandBuffer(0)
	require.Error(t, err)

	e.recordedGeneration = e.swapchain.Generation()
	_, err = frameTarget{engine: e}.CommandBuffer(len(e.commandBuffers))
	require.Error(t, err)
}

func TestEngine_DrawFrameAfterFailedResize(t *testing.T) {
	g := gputest.New()
	e := initializedEngine(t, g)
	defer e.Destroy()

	require.NoError(t, e.DrawFrame(context.Background()))

	g.Surface.Resize(1024, 768)
	g.Fail("CreateSwapchain", errInjected)
	require.True(t, errors.Is(e.Resize(context.Background()), errInjected))
	require.Equal(t, swapchain.StateStale, e.swapchain.State())

	// The retry fails as well, so nothing is drawn
	submitted := len(g.Submissions)
	g.Fail("CreateSwapchain", errInjected)
	require.True(t, errors.Is(e.DrawFrame(context.Background()), errInjected))
	require.Len(t, g.Submissions, submitted)

	require.NoError(t, e.DrawFrame(context.Background()))
	require.Equal(t, swapchain.StateLive, e.swapchain.State())
	require.Equal(t, 1, e.swapchain.Generation())
	require.Len(t, g.Submissions, submitted+1)

	target := lastCommandBuffer(g).Target
	require.False(t, target.Destroyed())
	require.Equal(t, core1_0.Extent2D{Width: 1024, Height: 768}, target.Info.Extent)
	require.Empty(t, g.Violations)
}

func TestEngine_DrawFrameAfterFailedRecording(t *testing.T) {
	g := gputest.New()
	e := initializedEngine(t, g)
	defer e.Destroy()

	g.Surface.SurfaceCapabilities.MinImageCount = 3
	g.Fail("AllocateCommandBuffers", errInjected)
	require.True(t, errors.Is(e.Resize(context.Background()), errInjected))
	require.Equal(t, swapchain.StateLive, e.swapchain.State())

	_, err := frameTarget{engine: e}.CommandBuffer(0)
	require.Error(t, err)

	require.NoError(t, e.DrawFrame(context.Background()))
	require.Len(t, e.commandBuffers, 4)
	require.Equal(t, e.swapchain.Generation(), e.recordedGeneration)
	require.False(t, lastCommandBuffer(g).Target.Destroyed())
	require.Empty(t, g.Violations)
}

func TestEngine_DeviceLost(t *testing.T) {
	g := gputest.New()
	e := initializedEngine(t, g)
	defer e.Destroy()

	g.AcquireScript = []gputest.AcquireResult{{Err: errors.Mark(errors.New("VK_ERROR_DEVICE_LOST"), gpu.ErrDeviceLost)}}
	err := e.DrawFrame(context.Background())
	require.True(t, errors.Is(err, frame.ErrDeviceLost))
}

func TestEngine_NotInitialized(t *testing.T) {
	g := gputest.New()
	e := newTestEngine(t, g, testConfig(g))

	require.True(t, errors.Is(e.DrawFrame(context.Background()), ErrNotInitialized))
	require.True(t, errors.Is(e.Resize(context.Background()), ErrNotInitialized))
	require.True(t, errors.Is(e.SetActivePipeline(context.Background(), swapchain.PipelineWireframe), ErrNotInitialized))
	require.True(t, errors.Is(e.WaitIdle(), ErrNotInitialized))
	require.Equal(t, 0, e.Frames())
	e.Destroy()
}

func TestEngine_WaitIdleWaitsForLock(t *testing.T) {
	g := gputest.New()
	e := initializedEngine(t, g)
	defer e.Destroy()

	require.NoError(t, e.lock.Acquire(context.Background(), 1))
	done := make(chan error, 1)
	go func() {
		done <- e.WaitIdle()
	}()

	select {
	case err := <-done:
		t.Fatalf("WaitIdle returned while the engine was held: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	e.lock.Release(1)
	require.NoError(t, <-done)
}

func TestEngine_CanceledContext(t *testing.T) {
	g := gputest.New()
	e := initializedEngine(t, g)
	defer e.Destroy()

	submitted := len(g.Submissions)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.True(t, errors.Is(e.DrawFrame(ctx), context.Canceled))
	require.True(t, errors.Is(e.Resize(ctx), context.Canceled))
	require.Len(t, g.Submissions, submitted)
}

func TestEngine_Run(t *testing.T) {
	g := gputest.New()
	e := initializedEngine(t, g)
	defer e.Destroy()

	polls := 0
	require.NoError(t, e.Run(context.Background(), func() bool {
		polls++
		return polls <= 3
	}))
	require.Equal(t, 3, e.Frames())
	require.Equal(t, 0, g.Pending())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, e.Run(ctx, func() bool {
		if e.Frames() == 5 {
			cancel()
		}
		return true
	}))
	require.Equal(t, 5, e.Frames())
	require.Empty(t, g.Violations)
}

func TestEngine_RunReturnsFatalErrors(t *testing.T) {
	g := gputest.New()
	e := initializedEngine(t, g)
	defer e.Destroy()

	g.PresentScript = []gputest.PresentResult{{}, {Err: errInjected}}
	err := e.Run(context.Background(), func() bool { return true })
	require.True(t, errors.Is(err, errInjected))
	require.Equal(t, 1, e.Frames())
}
