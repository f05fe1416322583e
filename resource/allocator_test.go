package resource_test

import (
	"io"
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/vkmol/gpu"
	mock_gpu "github.com/vkngwrapper/vkmol/gpu/mocks"
	"github.com/vkngwrapper/vkmol/resource"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

var testMemoryTypes = []core1_0.MemoryType{
	{PropertyFlags: core1_0.MemoryPropertyDeviceLocal, HeapIndex: 0},
	{PropertyFlags: core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent, HeapIndex: 1},
	{PropertyFlags: core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent | core1_0.MemoryPropertyHostCached, HeapIndex: 1},
	{PropertyFlags: core1_0.MemoryPropertyDeviceLocal | core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent, HeapIndex: 2},
}

type AllocatorSetup struct {
	Device         *mock_gpu.MockDevice
	PhysicalDevice *mock_gpu.MockPhysicalDevice
	Queue          *mock_gpu.MockQueue
	CommandPool    *mock_gpu.MockCommandPool
	Allocator      *resource.Allocator
}

func newAllocator(ctrl *gomock.Controller, flags resource.CreateFlags) AllocatorSetup {
	setup := AllocatorSetup{
		Device:         mock_gpu.NewMockDevice(ctrl),
		PhysicalDevice: mock_gpu.NewMockPhysicalDevice(ctrl),
		Queue:          mock_gpu.NewMockQueue(ctrl),
		CommandPool:    mock_gpu.NewMockCommandPool(ctrl),
	}
	setup.PhysicalDevice.EXPECT().MemoryTypes().Return(testMemoryTypes)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	setup.Allocator = resource.New(logger, setup.PhysicalDevice, setup.Device, setup.Queue, setup.CommandPool, resource.CreateOptions{
		Flags: flags,
	})
	return setup
}

// expectBuffer scripts a successful buffer creation and returns the handle and memory mocks
func expectBuffer(ctrl *gomock.Controller, setup AllocatorSetup, size int, usage core1_0.BufferUsageFlags, reqs gpu.MemoryRequirements, allocationSize, memoryType int) (*mock_gpu.MockBuffer, *mock_gpu.MockDeviceMemory) {
	handle := mock_gpu.NewMockBuffer(ctrl)
	memory := mock_gpu.NewMockDeviceMemory(ctrl)

	setup.Device.EXPECT().CreateBuffer(size, usage).Return(handle, nil)
	handle.EXPECT().MemoryRequirements().Return(reqs)
	setup.Device.EXPECT().AllocateMemory(allocationSize, memoryType).Return(memory, nil)
	handle.EXPECT().BindMemory(memory).Return(nil)

	return handle, memory
}

var findMemoryTypeTestCases = map[string]struct {
	TypeFilter uint32
	Properties core1_0.MemoryPropertyFlags

	ExpectedIndex int
	ExpectedError error
}{
	"DeviceLocal": {
		TypeFilter:    0xF,
		Properties:    core1_0.MemoryPropertyDeviceLocal,
		ExpectedIndex: 0,
	},
	"HostVisibleFirstFit": {
		TypeFilter:    0xF,
		Properties:    core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent,
		ExpectedIndex: 1,
	},
	"FilterSkipsFirstMatch": {
		TypeFilter:    0b1100,
		Properties:    core1_0.MemoryPropertyHostVisible,
		ExpectedIndex: 2,
	},
	"SupersetMatches": {
		TypeFilter:    0b1001,
		Properties:    core1_0.MemoryPropertyHostVisible,
		ExpectedIndex: 3,
	},
	"NoProperties": {
		TypeFilter:    0b0100,
		ExpectedIndex: 2,
	},
	"FilterExcludesEverything": {
		TypeFilter:    0,
		Properties:    core1_0.MemoryPropertyDeviceLocal,
		ExpectedIndex: -1,
		ExpectedError: resource.ErrNoMemoryType,
	},
	"NoTypeHasProperties": {
		TypeFilter:    0xF,
		Properties:    core1_0.MemoryPropertyLazilyAllocated,
		ExpectedIndex: -1,
		ExpectedError: resource.ErrNoMemoryType,
	},
	"FilterBeyondTypeCount": {
		TypeFilter:    0xF0,
		ExpectedIndex: -1,
		ExpectedError: resource.ErrNoMemoryType,
	},
}

func TestFindMemoryType(t *testing.T) {
	for testName, testCase := range findMemoryTypeTestCases {
		t.Run(testName, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			setup := newAllocator(ctrl, 0)

			index, err := setup.Allocator.FindMemoryType(testCase.TypeFilter, testCase.Properties)
			require.Equal(t, testCase.ExpectedIndex, index)
			if testCase.ExpectedError != nil {
				require.True(t, errors.Is(err, testCase.ExpectedError))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCreateBuffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := newAllocator(ctrl, 0)

	handle, memory := expectBuffer(ctrl, setup, 100, core1_0.BufferUsageUniformBuffer,
		gpu.MemoryRequirements{Size: 100, Alignment: 64, MemoryTypeBits: 0b1110}, 128, 1)

	buffer, err := setup.Allocator.CreateBuffer(100, core1_0.BufferUsageUniformBuffer,
		core1_0.MemoryPropertyHostVisible|core1_0.MemoryPropertyHostCoherent)
	require.NoError(t, err)
	require.Same(t, handle, buffer.Handle())
	require.Equal(t, 100, buffer.Size())
	require.Equal(t, 1, buffer.MemoryTypeIndex())
	require.Equal(t, core1_0.BufferUsageUniformBuffer, buffer.Usage())

	require.Equal(t, resource.Statistics{
		BufferCount:     1,
		AllocationCount: 1,
		BufferBytes:     100,
		AllocationBytes: 128,
	}, setup.Allocator.Statistics())

	stats := setup.Allocator.BuildStatsString()
	require.Contains(t, stats, `"BufferCount":1`)
	require.Contains(t, stats, `"AllocationSize":128`)
	require.Contains(t, stats, `"MemoryType":1`)

	gomock.InOrder(
		handle.EXPECT().Destroy(),
		memory.EXPECT().Free(),
	)
	buffer.Destroy()
	require.Equal(t, resource.Statistics{}, setup.Allocator.Statistics())

	// A second destroy does not release anything again
	buffer.Destroy()
	require.Equal(t, resource.Statistics{}, setup.Allocator.Statistics())
}

func TestAllocator_MemoryTypeStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := newAllocator(ctrl, 0)

	expectBuffer(ctrl, setup, 100, core1_0.BufferUsageVertexBuffer,
		gpu.MemoryRequirements{Size: 100, Alignment: 64, MemoryTypeBits: 0xF}, 128, 0)
	expectBuffer(ctrl, setup, 60, core1_0.BufferUsageUniformBuffer,
		gpu.MemoryRequirements{Size: 60, Alignment: 16, MemoryTypeBits: 0xF}, 64, 1)
	uniformHandle, uniformMemory := expectBuffer(ctrl, setup, 8, core1_0.BufferUsageUniformBuffer,
		gpu.MemoryRequirements{Size: 8, Alignment: 16, MemoryTypeBits: 0xF}, 16, 1)

	_, err := setup.Allocator.CreateBuffer(100, core1_0.BufferUsageVertexBuffer, core1_0.MemoryPropertyDeviceLocal)
	require.NoError(t, err)
	_, err = setup.Allocator.CreateBuffer(60, core1_0.BufferUsageUniformBuffer, core1_0.MemoryPropertyHostVisible)
	require.NoError(t, err)
	uniform, err := setup.Allocator.CreateBuffer(8, core1_0.BufferUsageUniformBuffer, core1_0.MemoryPropertyHostVisible)
	require.NoError(t, err)

	require.Equal(t, []resource.Statistics{
		{BufferCount: 1, AllocationCount: 1, BufferBytes: 100, AllocationBytes: 128},
		{BufferCount: 2, AllocationCount: 2, BufferBytes: 68, AllocationBytes: 80},
		{},
		{},
	}, setup.Allocator.MemoryTypeStatistics())
	require.Equal(t, resource.Statistics{
		BufferCount:     3,
		AllocationCount: 3,
		BufferBytes:     168,
		AllocationBytes: 208,
	}, setup.Allocator.Statistics())

	stats := setup.Allocator.BuildStatsString()
	require.Contains(t, stats, `"Total":{"BufferCount":3`)
	require.Contains(t, stats, `{"Index":1,`)
	require.NotContains(t, stats, `"Index":2`)

	uniformHandle.EXPECT().Destroy()
	uniformMemory.EXPECT().Free()
	uniform.Destroy()
	require.Equal(t, resource.Statistics{BufferCount: 1, AllocationCount: 1, BufferBytes: 60, AllocationBytes: 64},
		setup.Allocator.MemoryTypeStatistics()[1])
}

func TestCreateBuffer_Failures(t *testing.T) {
	t.Run("CreateFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		setup := newAllocator(ctrl, 0)

		setup.Device.EXPECT().CreateBuffer(64, core1_0.BufferUsageVertexBuffer).Return(nil, errors.New("out of host memory"))

		_, err := setup.Allocator.CreateBuffer(64, core1_0.BufferUsageVertexBuffer, core1_0.MemoryPropertyDeviceLocal)
		require.ErrorContains(t, err, "out of host memory")
	})

	t.Run("NoMemoryTypeReleasesBuffer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		setup := newAllocator(ctrl, 0)

		handle := mock_gpu.NewMockBuffer(ctrl)
		setup.Device.EXPECT().CreateBuffer(64, core1_0.BufferUsageVertexBuffer).Return(handle, nil)
		handle.EXPECT().MemoryRequirements().Return(gpu.MemoryRequirements{Size: 64, Alignment: 4, MemoryTypeBits: 0b0001})
		handle.EXPECT().Destroy()

		_, err := setup.Allocator.CreateBuffer(64, core1_0.BufferUsageVertexBuffer, core1_0.MemoryPropertyHostVisible)
		require.True(t, errors.Is(err, resource.ErrNoMemoryType))
		require.Equal(t, resource.Statistics{}, setup.Allocator.Statistics())
	})

	t.Run("BadAlignmentReleasesBuffer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		setup := newAllocator(ctrl, 0)

		handle := mock_gpu.NewMockBuffer(ctrl)
		setup.Device.EXPECT().CreateBuffer(64, core1_0.BufferUsageVertexBuffer).Return(handle, nil)
		handle.EXPECT().MemoryRequirements().Return(gpu.MemoryRequirements{Size: 64, Alignment: 12, MemoryTypeBits: 0b0001})
		handle.EXPECT().Destroy()

		_, err := setup.Allocator.CreateBuffer(64, core1_0.BufferUsageVertexBuffer, core1_0.MemoryPropertyDeviceLocal)
		require.True(t, errors.Is(err, resource.PowerOfTwoError))
	})

	t.Run("AllocationFailsReleasesBuffer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		setup := newAllocator(ctrl, 0)

		handle := mock_gpu.NewMockBuffer(ctrl)
		setup.Device.EXPECT().CreateBuffer(64, core1_0.BufferUsageVertexBuffer).Return(handle, nil)
		handle.EXPECT().MemoryRequirements().Return(gpu.MemoryRequirements{Size: 64, Alignment: 4, MemoryTypeBits: 0b0001})
		setup.Device.EXPECT().AllocateMemory(64, 0).Return(nil, errors.New("out of device memory"))
		handle.EXPECT().Destroy()

		_, err := setup.Allocator.CreateBuffer(64, core1_0.BufferUsageVertexBuffer, core1_0.MemoryPropertyDeviceLocal)
		require.ErrorContains(t, err, "out of device memory")
	})

	t.Run("BindFailsReleasesInReverse", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		setup := newAllocator(ctrl, 0)

		handle := mock_gpu.NewMockBuffer(ctrl)
		memory := mock_gpu.NewMockDeviceMemory(ctrl)
		setup.Device.EXPECT().CreateBuffer(64, core1_0.BufferUsageVertexBuffer).Return(handle, nil)
		handle.EXPECT().MemoryRequirements().Return(gpu.MemoryRequirements{Size: 64, Alignment: 4, MemoryTypeBits: 0b0001})
		setup.Device.EXPECT().AllocateMemory(64, 0).Return(memory, nil)
		handle.EXPECT().BindMemory(memory).Return(errors.New("invalid offset"))
		gomock.InOrder(
			memory.EXPECT().Free(),
			handle.EXPECT().Destroy(),
		)

		_, err := setup.Allocator.CreateBuffer(64, core1_0.BufferUsageVertexBuffer, core1_0.MemoryPropertyDeviceLocal)
		require.ErrorContains(t, err, "invalid offset")
	})

	t.Run("ZeroSize", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		setup := newAllocator(ctrl, 0)

		_, err := setup.Allocator.CreateBuffer(0, core1_0.BufferUsageVertexBuffer, core1_0.MemoryPropertyDeviceLocal)
		require.Error(t, err)
	})
}

func TestBuffer_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := newAllocator(ctrl, resource.CreateExternallySynchronized)

	_, memory := expectBuffer(ctrl, setup, 8, core1_0.BufferUsageUniformBuffer,
		gpu.MemoryRequirements{Size: 8, Alignment: 8, MemoryTypeBits: 0xF}, 8, 1)

	buffer, err := setup.Allocator.CreateBuffer(8, core1_0.BufferUsageUniformBuffer, core1_0.MemoryPropertyHostVisible)
	require.NoError(t, err)

	backing := make([]byte, 8)
	gomock.InOrder(
		memory.EXPECT().Map(0, 4).Return(unsafe.Pointer(&backing[0]), nil),
		memory.EXPECT().Unmap(),
	)

	err = buffer.Write([]byte{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0}, backing)

	err = buffer.Write(make([]byte, 9))
	require.Error(t, err)
}

func TestBuffer_WriteDeviceLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := newAllocator(ctrl, 0)

	expectBuffer(ctrl, setup, 8, core1_0.BufferUsageVertexBuffer,
		gpu.MemoryRequirements{Size: 8, Alignment: 8, MemoryTypeBits: 0xF}, 8, 0)

	buffer, err := setup.Allocator.CreateBuffer(8, core1_0.BufferUsageVertexBuffer, core1_0.MemoryPropertyDeviceLocal)
	require.NoError(t, err)

	// Device-local memory is never mapped
	err = buffer.Write([]byte{1})
	require.Error(t, err)
}

func TestUploadViaStaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := newAllocator(ctrl, 0)

	data := []byte{9, 8, 7, 6, 5, 4}
	reqs := gpu.MemoryRequirements{Size: 16, Alignment: 16, MemoryTypeBits: 0xF}

	stagingHandle, stagingMemory := expectBuffer(ctrl, setup, len(data), core1_0.BufferUsageTransferSrc, reqs, 16, 1)
	dstHandle, _ := expectBuffer(ctrl, setup, len(data), core1_0.BufferUsageIndexBuffer|core1_0.BufferUsageTransferDst, reqs, 16, 0)

	backing := make([]byte, 16)
	stagingMemory.EXPECT().Map(0, len(data)).Return(unsafe.Pointer(&backing[0]), nil)
	stagingMemory.EXPECT().Unmap()

	commandBuffer := mock_gpu.NewMockCommandBuffer(ctrl)
	commandBuffers := []gpu.CommandBuffer{commandBuffer}
	gomock.InOrder(
		setup.CommandPool.EXPECT().Allocate(1).Return(commandBuffers, nil),
		commandBuffer.EXPECT().Begin(core1_0.CommandBufferUsageOneTimeSubmit).Return(nil),
		commandBuffer.EXPECT().CopyBuffer(stagingHandle, dstHandle, len(data)),
		commandBuffer.EXPECT().End().Return(nil),
		setup.Queue.EXPECT().Submit(gomock.Nil(), gpu.SubmitInfo{CommandBuffers: commandBuffers}).Return(nil),
		setup.Queue.EXPECT().WaitIdle().Return(nil),
		setup.CommandPool.EXPECT().Free(commandBuffers),
		stagingHandle.EXPECT().Destroy(),
		stagingMemory.EXPECT().Free(),
	)

	buffer, err := setup.Allocator.UploadViaStaging(core1_0.BufferUsageIndexBuffer, data)
	require.NoError(t, err)
	require.Same(t, dstHandle, buffer.Handle())
	require.Equal(t, core1_0.MemoryPropertyDeviceLocal, buffer.MemoryProperties())
	require.Equal(t, data, backing[:len(data)])

	// Only the destination survives the upload
	stats := setup.Allocator.Statistics()
	require.Equal(t, 1, stats.BufferCount)
	require.Equal(t, len(data), stats.BufferBytes)
}

func TestUploadViaStaging_SubmitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := newAllocator(ctrl, 0)

	data := []byte{1, 2, 3, 4}
	reqs := gpu.MemoryRequirements{Size: 4, Alignment: 4, MemoryTypeBits: 0xF}

	stagingHandle, stagingMemory := expectBuffer(ctrl, setup, len(data), core1_0.BufferUsageTransferSrc, reqs, 4, 1)
	dstHandle, dstMemory := expectBuffer(ctrl, setup, len(data), core1_0.BufferUsageVertexBuffer|core1_0.BufferUsageTransferDst, reqs, 4, 0)

	backing := make([]byte, 4)
	stagingMemory.EXPECT().Map(0, len(data)).Return(unsafe.Pointer(&backing[0]), nil)
	stagingMemory.EXPECT().Unmap()

	commandBuffer := mock_gpu.NewMockCommandBuffer(ctrl)
	commandBuffers := []gpu.CommandBuffer{commandBuffer}
	setup.CommandPool.EXPECT().Allocate(1).Return(commandBuffers, nil)
	commandBuffer.EXPECT().Begin(core1_0.CommandBufferUsageOneTimeSubmit).Return(nil)
	commandBuffer.EXPECT().CopyBuffer(stagingHandle, dstHandle, len(data))
	commandBuffer.EXPECT().End().Return(nil)
	setup.Queue.EXPECT().Submit(gomock.Nil(), gomock.Any()).Return(errors.New("device lost"))
	setup.CommandPool.EXPECT().Free(commandBuffers)

	dstHandle.EXPECT().Destroy()
	dstMemory.EXPECT().Free()
	stagingHandle.EXPECT().Destroy()
	stagingMemory.EXPECT().Free()

	_, err := setup.Allocator.UploadViaStaging(core1_0.BufferUsageVertexBuffer, data)
	require.ErrorContains(t, err, "device lost")
	require.Equal(t, resource.Statistics{}, setup.Allocator.Statistics())
}

func TestUploadViaStaging_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	setup := newAllocator(ctrl, 0)

	_, err := setup.Allocator.UploadViaStaging(core1_0.BufferUsageVertexBuffer, nil)
	require.Error(t, err)
}

func TestCreateFlags_String(t *testing.T) {
	require.Equal(t, "CreateExternallySynchronized", resource.CreateExternallySynchronized.String())
}
