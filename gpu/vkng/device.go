package vkng

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"github.com/vkngwrapper/vkmol/gpu"
	"golang.org/x/exp/slog"
)

// Device wraps a logical device and the swapchain extension loaded for it
type Device struct {
	logger             *slog.Logger
	device             core1_0.Device
	swapchainExtension khr_swapchain.Extension
}

var _ gpu.Device = &Device{}

func (d *Device) Queue(queueFamily int) gpu.Queue {
	return &Queue{queue: d.device.GetQueue(queueFamily, 0)}
}

func (d *Device) WaitIdle() error {
	res, err := d.device.WaitIdle()
	return check(res, err, "vkDeviceWaitIdle")
}

func (d *Device) CreateBuffer(size int, usage core1_0.BufferUsageFlags) (gpu.Buffer, error) {
	buffer, res, err := d.device.CreateBuffer(nil, core1_0.BufferCreateInfo{
		Size:        size,
		Usage:       usage,
		SharingMode: core1_0.SharingModeExclusive,
	})
	if err != nil {
		return nil, check(res, err, "vkCreateBuffer")
	}

	return &Buffer{buffer: buffer}, nil
}

func (d *Device) AllocateMemory(size int, memoryTypeIndex int) (gpu.DeviceMemory, error) {
	memory, res, err := d.device.AllocateMemory(nil, core1_0.MemoryAllocateInfo{
		AllocationSize:  size,
		MemoryTypeIndex: memoryTypeIndex,
	})
	if err != nil {
		return nil, check(res, err, "vkAllocateMemory")
	}

	return &DeviceMemory{memory: memory}, nil
}

func (d *Device) CreateSwapchain(info gpu.SwapchainCreateInfo) (gpu.Swapchain, error) {
	surface, ok := info.Surface.(*Surface)
	if !ok {
		return nil, errors.Newf("surface of type %T was not created by this backend", info.Surface)
	}

	createInfo := khr_swapchain.SwapchainCreateInfo{
		Surface: surface.surface,

		MinImageCount:    info.MinImageCount,
		ImageFormat:      info.Format.Format,
		ImageColorSpace:  info.Format.ColorSpace,
		ImageExtent:      info.Extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   info.SharingMode,
		QueueFamilyIndices: info.QueueFamilyIndices,

		PreTransform:   info.PreTransform,
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    info.PresentMode,
		Clipped:        true,
	}

	if info.OldSwapchain != nil {
		createInfo.OldSwapchain = info.OldSwapchain.(*Swapchain).swapchain
	}

	swapchain, res, err := d.swapchainExtension.CreateSwapchain(d.device, nil, createInfo)
	if err != nil {
		return nil, check(res, err, "vkCreateSwapchainKHR")
	}

	return &Swapchain{
		extension: d.swapchainExtension,
		swapchain: swapchain,
	}, nil
}

func (d *Device) CreateImageView(image gpu.Image, format core1_0.Format) (gpu.ImageView, error) {
	vkImage, ok := image.(core1_0.Image)
	if !ok {
		return nil, errors.Newf("image of type %T is not a swapchain image", image)
	}

	view, res, err := d.device.CreateImageView(nil, core1_0.ImageViewCreateInfo{
		ViewType: core1_0.ImageViewType2D,
		Image:    vkImage,
		Format:   format,
		Components: core1_0.ComponentMapping{
			R: core1_0.ComponentSwizzleIdentity,
			G: core1_0.ComponentSwizzleIdentity,
			B: core1_0.ComponentSwizzleIdentity,
			A: core1_0.ComponentSwizzleIdentity,
		},
		SubresourceRange: core1_0.ImageSubresourceRange{
			AspectMask:     core1_0.ImageAspectColor,
			BaseMipLevel:   0,
			LevelCount:     1,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	})
	if err != nil {
		return nil, check(res, err, "vkCreateImageView")
	}

	return &ImageView{view: view}, nil
}

func (d *Device) CreateRenderPass(info core1_0.RenderPassCreateInfo) (gpu.RenderPass, error) {
	renderPass, res, err := d.device.CreateRenderPass(nil, info)
	if err != nil {
		return nil, check(res, err, "vkCreateRenderPass")
	}

	return &RenderPass{renderPass: renderPass}, nil
}

func (d *Device) CreateDescriptorSetLayout(info core1_0.DescriptorSetLayoutCreateInfo) (gpu.DescriptorSetLayout, error) {
	layout, res, err := d.device.CreateDescriptorSetLayout(nil, info)
	if err != nil {
		return nil, check(res, err, "vkCreateDescriptorSetLayout")
	}

	return &DescriptorSetLayout{layout: layout}, nil
}

func (d *Device) CreatePipelineLayout(setLayouts []gpu.DescriptorSetLayout) (gpu.PipelineLayout, error) {
	var layouts []core1_0.DescriptorSetLayout
	for _, layout := range setLayouts {
		layouts = append(layouts, layout.(*DescriptorSetLayout).layout)
	}

	layout, res, err := d.device.CreatePipelineLayout(nil, core1_0.PipelineLayoutCreateInfo{
		SetLayouts: layouts,
	})
	if err != nil {
		return nil, check(res, err, "vkCreatePipelineLayout")
	}

	return &PipelineLayout{layout: layout}, nil
}

// CreateShaderModule creates a module from little-endian SPIR-V
func (d *Device) CreateShaderModule(code []byte) (gpu.ShaderModule, error) {
	if len(code)%4 != 0 {
		return nil, errors.Newf("shader code of %d bytes is not a whole number of SPIR-V words", len(code))
	}

	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}

	module, res, err := d.device.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: words,
	})
	if err != nil {
		return nil, check(res, err, "vkCreateShaderModule")
	}

	return &ShaderModule{module: module}, nil
}

func (d *Device) CreateGraphicsPipeline(info gpu.PipelineCreateInfo) (gpu.Pipeline, error) {
	colorBlend := core1_0.PipelineColorBlendAttachmentState{
		BlendEnabled:   info.BlendEnabled,
		ColorWriteMask: core1_0.ColorComponentRed | core1_0.ColorComponentGreen | core1_0.ColorComponentBlue | core1_0.ColorComponentAlpha,
	}
	if info.BlendEnabled {
		colorBlend.SrcColorBlendFactor = core1_0.BlendFactorSrcAlpha
		colorBlend.DstColorBlendFactor = core1_0.BlendFactorDstAlpha
		colorBlend.ColorBlendOp = core1_0.BlendOpAdd
		colorBlend.SrcAlphaBlendFactor = core1_0.BlendFactorSrcAlpha
		colorBlend.DstAlphaBlendFactor = core1_0.BlendFactorDstAlpha
		colorBlend.AlphaBlendOp = core1_0.BlendOpAdd
	}

	pipelines, res, err := d.device.CreateGraphicsPipelines(nil, nil, []core1_0.GraphicsPipelineCreateInfo{
		{
			Stages: []core1_0.PipelineShaderStageCreateInfo{
				{
					Stage:  core1_0.StageVertex,
					Module: info.VertexShader.(*ShaderModule).module,
					Name:   "main",
				},
				{
					Stage:  core1_0.StageFragment,
					Module: info.FragmentShader.(*ShaderModule).module,
					Name:   "main",
				},
			},
			VertexInputState: &core1_0.PipelineVertexInputStateCreateInfo{
				VertexBindingDescriptions:   info.VertexBindings,
				VertexAttributeDescriptions: info.VertexAttributes,
			},
			InputAssemblyState: &core1_0.PipelineInputAssemblyStateCreateInfo{
				Topology: info.Topology,
			},
			ViewportState: &core1_0.PipelineViewportStateCreateInfo{
				Viewports: []core1_0.Viewport{
					{
						Width:    float32(info.Extent.Width),
						Height:   float32(info.Extent.Height),
						MinDepth: 0,
						MaxDepth: 1,
					},
				},
				Scissors: []core1_0.Rect2D{
					{
						Offset: core1_0.Offset2D{X: 0, Y: 0},
						Extent: info.Extent,
					},
				},
			},
			RasterizationState: &core1_0.PipelineRasterizationStateCreateInfo{
				PolygonMode: info.PolygonMode,
				CullMode:    info.CullMode,
				FrontFace:   info.FrontFace,
				LineWidth:   1.0,
			},
			MultisampleState: &core1_0.PipelineMultisampleStateCreateInfo{
				RasterizationSamples: core1_0.Samples1,
				MinSampleShading:     1.0,
			},
			ColorBlendState: &core1_0.PipelineColorBlendStateCreateInfo{
				LogicOp:     core1_0.LogicOpCopy,
				Attachments: []core1_0.PipelineColorBlendAttachmentState{colorBlend},
			},
			Layout:            info.Layout.(*PipelineLayout).layout,
			RenderPass:        info.RenderPass.(*RenderPass).renderPass,
			Subpass:           0,
			BasePipelineIndex: -1,
		},
	})
	if err != nil {
		return nil, check(res, err, "vkCreateGraphicsPipelines")
	}

	return &Pipeline{pipeline: pipelines[0]}, nil
}

func (d *Device) CreateFramebuffer(info gpu.FramebufferCreateInfo) (gpu.Framebuffer, error) {
	var attachments []core1_0.ImageView
	for _, attachment := range info.Attachments {
		attachments = append(attachments, attachment.(*ImageView).view)
	}

	framebuffer, res, err := d.device.CreateFramebuffer(nil, core1_0.FramebufferCreateInfo{
		RenderPass:  info.RenderPass.(*RenderPass).renderPass,
		Layers:      1,
		Attachments: attachments,
		Width:       info.Extent.Width,
		Height:      info.Extent.Height,
	})
	if err != nil {
		return nil, check(res, err, "vkCreateFramebuffer")
	}

	return &Framebuffer{framebuffer: framebuffer}, nil
}

func (d *Device) CreateCommandPool(queueFamily int) (gpu.CommandPool, error) {
	pool, res, err := d.device.CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		QueueFamilyIndex: queueFamily,
	})
	if err != nil {
		return nil, check(res, err, "vkCreateCommandPool")
	}

	return &CommandPool{device: d.device, pool: pool}, nil
}

func (d *Device) CreateDescriptorPool(info core1_0.DescriptorPoolCreateInfo) (gpu.DescriptorPool, error) {
	pool, res, err := d.device.CreateDescriptorPool(nil, info)
	if err != nil {
		return nil, check(res, err, "vkCreateDescriptorPool")
	}

	return &DescriptorPool{device: d.device, pool: pool}, nil
}

func (d *Device) CreateSemaphore() (gpu.Semaphore, error) {
	semaphore, res, err := d.device.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
	if err != nil {
		return nil, check(res, err, "vkCreateSemaphore")
	}

	return &Semaphore{semaphore: semaphore}, nil
}

func (d *Device) CreateFence(signaled bool) (gpu.Fence, error) {
	var info core1_0.FenceCreateInfo
	if signaled {
		info.Flags = core1_0.FenceCreateSignaled
	}

	fence, res, err := d.device.CreateFence(nil, info)
	if err != nil {
		return nil, check(res, err, "vkCreateFence")
	}

	return &Fence{device: d.device, fence: fence}, nil
}

func (d *Device) Destroy() {
	d.logger.Debug("Destroying device")
	d.device.Destroy(nil)
}

// Queue submits to one queue retrieved from a Device
type Queue struct {
	queue core1_0.Queue
}

var _ gpu.Queue = &Queue{}

func semaphores(list []gpu.Semaphore) []core1_0.Semaphore {
	var result []core1_0.Semaphore
	for _, semaphore := range list {
		result = append(result, semaphore.(*Semaphore).semaphore)
	}
	return result
}

func (q *Queue) Submit(fence gpu.Fence, info gpu.SubmitInfo) error {
	var commandBuffers []core1_0.CommandBuffer
	for _, commandBuffer := range info.CommandBuffers {
		commandBuffers = append(commandBuffers, commandBuffer.(*CommandBuffer).buffer)
	}

	var vkFence core1_0.Fence
	if fence != nil {
		vkFence = fence.(*Fence).fence
	}

	res, err := q.queue.Submit(vkFence, []core1_0.SubmitInfo{
		{
			WaitSemaphores:   semaphores(info.WaitSemaphores),
			WaitDstStageMask: info.WaitStages,
			CommandBuffers:   commandBuffers,
			SignalSemaphores: semaphores(info.SignalSemaphores),
		},
	})
	return check(res, err, "vkQueueSubmit")
}

func (q *Queue) WaitIdle() error {
	res, err := q.queue.WaitIdle()
	return check(res, err, "vkQueueWaitIdle")
}
