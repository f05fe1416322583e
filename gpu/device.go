package gpu

import (
	"github.com/vkngwrapper/core/v2/core1_0"
)

// SubmitInfo describes a single batch submitted to a Queue
type SubmitInfo struct {
	WaitSemaphores   []Semaphore
	WaitStages       []core1_0.PipelineStageFlags
	CommandBuffers   []CommandBuffer
	SignalSemaphores []Semaphore
}

type Queue interface {
	// Submit submits a batch. The fence is optional and is signaled when the batch completes.
	Submit(fence Fence, info SubmitInfo) error
	WaitIdle() error
}

// PipelineCreateInfo contains the state used to build one graphics pipeline. Fixed-function
// state not listed here uses a single-sample, no depth, one color attachment configuration.
type PipelineCreateInfo struct {
	Layout     PipelineLayout
	RenderPass RenderPass

	VertexShader   ShaderModule
	FragmentShader ShaderModule

	VertexBindings   []core1_0.VertexInputBindingDescription
	VertexAttributes []core1_0.VertexInputAttributeDescription

	Topology    core1_0.PrimitiveTopology
	PolygonMode core1_0.PolygonMode
	CullMode    core1_0.CullModeFlags
	FrontFace   core1_0.FrontFace

	// BlendEnabled turns on src-alpha/dst-alpha additive blending on the color attachment
	BlendEnabled bool

	// Extent sizes the static viewport and scissor
	Extent core1_0.Extent2D
}

type FramebufferCreateInfo struct {
	RenderPass  RenderPass
	Attachments []ImageView
	Extent      core1_0.Extent2D
}

// Device is a logical device. Objects created from a Device must be destroyed before it.
type Device interface {
	Queue(queueFamily int) Queue
	WaitIdle() error

	CreateBuffer(size int, usage core1_0.BufferUsageFlags) (Buffer, error)
	AllocateMemory(size int, memoryTypeIndex int) (DeviceMemory, error)

	CreateSwapchain(info SwapchainCreateInfo) (Swapchain, error)
	CreateImageView(image Image, format core1_0.Format) (ImageView, error)
	CreateRenderPass(info core1_0.RenderPassCreateInfo) (RenderPass, error)
	CreateDescriptorSetLayout(info core1_0.DescriptorSetLayoutCreateInfo) (DescriptorSetLayout, error)
	CreatePipelineLayout(setLayouts []DescriptorSetLayout) (PipelineLayout, error)
	CreateShaderModule(code []byte) (ShaderModule, error)
	CreateGraphicsPipeline(info PipelineCreateInfo) (Pipeline, error)
	CreateFramebuffer(info FramebufferCreateInfo) (Framebuffer, error)

	CreateCommandPool(queueFamily int) (CommandPool, error)
	CreateDescriptorPool(info core1_0.DescriptorPoolCreateInfo) (DescriptorPool, error)

	CreateSemaphore() (Semaphore, error)
	CreateFence(signaled bool) (Fence, error)

	Destroy()
}
