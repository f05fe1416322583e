package gpu

import (
	"unsafe"

	"github.com/vkngwrapper/core/v2/core1_0"
)

// Image is a swapchain image. Swapchain images are owned by the presentation engine and are
// never destroyed directly.
type Image interface{}

// ImageView is an owned view of an Image
type ImageView interface {
	Destroy()
}

type RenderPass interface {
	Destroy()
}

type DescriptorSetLayout interface {
	Destroy()
}

type PipelineLayout interface {
	Destroy()
}

type Pipeline interface {
	Destroy()
}

type ShaderModule interface {
	Destroy()
}

type Framebuffer interface {
	Destroy()
}

type Semaphore interface {
	Destroy()
}

// Fence is a CPU-visible completion signal
type Fence interface {
	// Wait blocks without a timeout until the fence is signaled
	Wait() error
	// Reset returns the fence to the unsignaled state
	Reset() error
	Destroy()
}

// MemoryRequirements is the size and set of memory types a Buffer may be bound to
type MemoryRequirements struct {
	Size           int
	Alignment      int
	MemoryTypeBits uint32
}

// Buffer is an unbound or bound buffer object
type Buffer interface {
	MemoryRequirements() MemoryRequirements
	// BindMemory binds the buffer to memory at offset 0
	BindMemory(memory DeviceMemory) error
	Destroy()
}

// DeviceMemory is a single device memory allocation
type DeviceMemory interface {
	Map(offset, size int) (unsafe.Pointer, error)
	Unmap()
	Free()
}

type DescriptorPool interface {
	AllocateSet(layout DescriptorSetLayout) (DescriptorSet, error)
	Destroy()
}

// DescriptorSet is freed along with the pool it was allocated from
type DescriptorSet interface {
	WriteUniformBuffer(binding int, buffer Buffer, size int) error
}

// RenderPassBeginInfo describes the render pass instance begun by CommandBuffer.BeginRenderPass
type RenderPassBeginInfo struct {
	RenderPass  RenderPass
	Framebuffer Framebuffer
	Extent      core1_0.Extent2D
	ClearColor  [4]float32
}

// CommandBuffer is a primary command buffer allocated from a CommandPool
type CommandBuffer interface {
	Begin(flags core1_0.CommandBufferUsageFlags) error
	End() error

	BeginRenderPass(info RenderPassBeginInfo) error
	EndRenderPass()
	BindPipeline(pipeline Pipeline)
	BindVertexBuffers(buffers []Buffer)
	BindIndexBuffer(buffer Buffer, indexType core1_0.IndexType)
	BindDescriptorSets(layout PipelineLayout, sets []DescriptorSet)
	DrawIndexed(indexCount int)
	CopyBuffer(src, dst Buffer, size int)
}

type CommandPool interface {
	Allocate(count int) ([]CommandBuffer, error)
	Free(buffers []CommandBuffer)
	Destroy()
}
