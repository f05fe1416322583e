package vkng

import (
	"unsafe"

	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"github.com/vkngwrapper/vkmol/gpu"
)

type ImageView struct {
	view core1_0.ImageView
}

func (v *ImageView) Destroy() { v.view.Destroy(nil) }

type RenderPass struct {
	renderPass core1_0.RenderPass
}

func (p *RenderPass) Destroy() { p.renderPass.Destroy(nil) }

type DescriptorSetLayout struct {
	layout core1_0.DescriptorSetLayout
}

func (l *DescriptorSetLayout) Destroy() { l.layout.Destroy(nil) }

type PipelineLayout struct {
	layout core1_0.PipelineLayout
}

func (l *PipelineLayout) Destroy() { l.layout.Destroy(nil) }

type Pipeline struct {
	pipeline core1_0.Pipeline
}

func (p *Pipeline) Destroy() { p.pipeline.Destroy(nil) }

type ShaderModule struct {
	module core1_0.ShaderModule
}

func (m *ShaderModule) Destroy() { m.module.Destroy(nil) }

type Framebuffer struct {
	framebuffer core1_0.Framebuffer
}

func (f *Framebuffer) Destroy() { f.framebuffer.Destroy(nil) }

type Semaphore struct {
	semaphore core1_0.Semaphore
}

func (s *Semaphore) Destroy() { s.semaphore.Destroy(nil) }

// Fence resets through its device, since vkResetFences is a device command
type Fence struct {
	device core1_0.Device
	fence  core1_0.Fence
}

var _ gpu.Fence = &Fence{}

func (f *Fence) Wait() error {
	res, err := f.fence.Wait(common.NoTimeout)
	return check(res, err, "vkWaitForFences")
}

func (f *Fence) Reset() error {
	res, err := f.device.ResetFences([]core1_0.Fence{f.fence})
	return check(res, err, "vkResetFences")
}

func (f *Fence) Destroy() { f.fence.Destroy(nil) }

type Buffer struct {
	buffer core1_0.Buffer
}

var _ gpu.Buffer = &Buffer{}

func (b *Buffer) MemoryRequirements() gpu.MemoryRequirements {
	requirements := b.buffer.MemoryRequirements()
	return gpu.MemoryRequirements{
		Size:           requirements.Size,
		Alignment:      requirements.Alignment,
		MemoryTypeBits: requirements.MemoryTypeBits,
	}
}

func (b *Buffer) BindMemory(memory gpu.DeviceMemory) error {
	res, err := b.buffer.BindBufferMemory(memory.(*DeviceMemory).memory, 0)
	return check(res, err, "vkBindBufferMemory")
}

func (b *Buffer) Destroy() { b.buffer.Destroy(nil) }

type DeviceMemory struct {
	memory core1_0.DeviceMemory
}

var _ gpu.DeviceMemory = &DeviceMemory{}

func (m *DeviceMemory) Map(offset, size int) (unsafe.Pointer, error) {
	ptr, res, err := m.memory.Map(offset, size, 0)
	if err != nil {
		return nil, check(res, err, "vkMapMemory")
	}
	return ptr, nil
}

func (m *DeviceMemory) Unmap() { m.memory.Unmap() }

func (m *DeviceMemory) Free() { m.memory.Free(nil) }

type DescriptorPool struct {
	device core1_0.Device
	pool   core1_0.DescriptorPool
}

var _ gpu.DescriptorPool = &DescriptorPool{}

func (p *DescriptorPool) AllocateSet(layout gpu.DescriptorSetLayout) (gpu.DescriptorSet, error) {
	sets, res, err := p.device.AllocateDescriptorSets(core1_0.DescriptorSetAllocateInfo{
		DescriptorPool: p.pool,
		SetLayouts:     []core1_0.DescriptorSetLayout{layout.(*DescriptorSetLayout).layout},
	})
	if err != nil {
		return nil, check(res, err, "vkAllocateDescriptorSets")
	}

	return &DescriptorSet{device: p.device, set: sets[0]}, nil
}

func (p *DescriptorPool) Destroy() { p.pool.Destroy(nil) }

type DescriptorSet struct {
	device core1_0.Device
	set    core1_0.DescriptorSet
}

var _ gpu.DescriptorSet = &DescriptorSet{}

func (s *DescriptorSet) WriteUniformBuffer(binding int, buffer gpu.Buffer, size int) error {
	return s.device.UpdateDescriptorSets([]core1_0.WriteDescriptorSet{
		{
			DstSet:          s.set,
			DstBinding:      binding,
			DstArrayElement: 0,
			DescriptorType:  core1_0.DescriptorTypeUniformBuffer,
			BufferInfo: []core1_0.DescriptorBufferInfo{
				{
					Buffer: buffer.(*Buffer).buffer,
					Offset: 0,
					Range:  size,
				},
			},
		},
	}, nil)
}

type CommandPool struct {
	device core1_0.Device
	pool   core1_0.CommandPool
}

var _ gpu.CommandPool = &CommandPool{}

func (p *CommandPool) Allocate(count int) ([]gpu.CommandBuffer, error) {
	buffers, res, err := p.device.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        p.pool,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: count,
	})
	if err != nil {
		return nil, check(res, err, "vkAllocateCommandBuffers")
	}

	result := make([]gpu.CommandBuffer, 0, len(buffers))
	for _, buffer := range buffers {
		result = append(result, &CommandBuffer{buffer: buffer})
	}
	return result, nil
}

func (p *CommandPool) Free(buffers []gpu.CommandBuffer) {
	if len(buffers) == 0 {
		return
	}

	vkBuffers := make([]core1_0.CommandBuffer, 0, len(buffers))
	for _, buffer := range buffers {
		vkBuffers = append(vkBuffers, buffer.(*CommandBuffer).buffer)
	}
	p.device.FreeCommandBuffers(vkBuffers)
}

func (p *CommandPool) Destroy() { p.pool.Destroy(nil) }

type CommandBuffer struct {
	buffer core1_0.CommandBuffer
}

var _ gpu.CommandBuffer = &CommandBuffer{}

func (b *CommandBuffer) Begin(flags core1_0.CommandBufferUsageFlags) error {
	res, err := b.buffer.Begin(core1_0.CommandBufferBeginInfo{Flags: flags})
	return check(res, err, "vkBeginCommandBuffer")
}

func (b *CommandBuffer) End() error {
	res, err := b.buffer.End()
	return check(res, err, "vkEndCommandBuffer")
}

func (b *CommandBuffer) BeginRenderPass(info gpu.RenderPassBeginInfo) error {
	return b.buffer.CmdBeginRenderPass(core1_0.SubpassContentsInline, core1_0.RenderPassBeginInfo{
		RenderPass:  info.RenderPass.(*RenderPass).renderPass,
		Framebuffer: info.Framebuffer.(*Framebuffer).framebuffer,
		RenderArea: core1_0.Rect2D{
			Offset: core1_0.Offset2D{X: 0, Y: 0},
			Extent: info.Extent,
		},
		ClearValues: []core1_0.ClearValue{
			core1_0.ClearValueFloat(info.ClearColor),
		},
	})
}

func (b *CommandBuffer) EndRenderPass() { b.buffer.CmdEndRenderPass() }

func (b *CommandBuffer) BindPipeline(pipeline gpu.Pipeline) {
	b.buffer.CmdBindPipeline(core1_0.PipelineBindPointGraphics, pipeline.(*Pipeline).pipeline)
}

func (b *CommandBuffer) BindVertexBuffers(buffers []gpu.Buffer) {
	vkBuffers := make([]core1_0.Buffer, 0, len(buffers))
	offsets := make([]int, 0, len(buffers))
	for _, buffer := range buffers {
		vkBuffers = append(vkBuffers, buffer.(*Buffer).buffer)
		offsets = append(offsets, 0)
	}
	b.buffer.CmdBindVertexBuffers(0, vkBuffers, offsets)
}

func (b *CommandBuffer) BindIndexBuffer(buffer gpu.Buffer, indexType core1_0.IndexType) {
	b.buffer.CmdBindIndexBuffer(buffer.(*Buffer).buffer, 0, indexType)
}

func (b *CommandBuffer) BindDescriptorSets(layout gpu.PipelineLayout, sets []gpu.DescriptorSet) {
	vkSets := make([]core1_0.DescriptorSet, 0, len(sets))
	for _, set := range sets {
		vkSets = append(vkSets, set.(*DescriptorSet).set)
	}
	b.buffer.CmdBindDescriptorSets(core1_0.PipelineBindPointGraphics, layout.(*PipelineLayout).layout, 0, vkSets, nil)
}

func (b *CommandBuffer) DrawIndexed(indexCount int) {
	b.buffer.CmdDrawIndexed(indexCount, 1, 0, 0, 0)
}

func (b *CommandBuffer) CopyBuffer(src, dst gpu.Buffer, size int) {
	b.buffer.CmdCopyBuffer(src.(*Buffer).buffer, dst.(*Buffer).buffer, []core1_0.BufferCopy{
		{
			SrcOffset: 0,
			DstOffset: 0,
			Size:      size,
		},
	})
}

// Swapchain presents through the extension it was created with
type Swapchain struct {
	extension khr_swapchain.Extension
	swapchain khr_swapchain.Swapchain
}

var _ gpu.Swapchain = &Swapchain{}

func (s *Swapchain) Images() ([]gpu.Image, error) {
	images, res, err := s.swapchain.SwapchainImages()
	if err != nil {
		return nil, check(res, err, "vkGetSwapchainImagesKHR")
	}

	result := make([]gpu.Image, 0, len(images))
	for _, image := range images {
		result = append(result, image)
	}
	return result, nil
}

func (s *Swapchain) AcquireNextImage(signal gpu.Semaphore) (int, gpu.Status, error) {
	imageIndex, res, err := s.swapchain.AcquireNextImage(common.NoTimeout, signal.(*Semaphore).semaphore, nil)
	status, err := presentStatus(res, err, "vkAcquireNextImageKHR")
	return imageIndex, status, err
}

func (s *Swapchain) Present(queue gpu.Queue, wait gpu.Semaphore, imageIndex int) (gpu.Status, error) {
	res, err := s.extension.QueuePresent(queue.(*Queue).queue, khr_swapchain.PresentInfo{
		WaitSemaphores: []core1_0.Semaphore{wait.(*Semaphore).semaphore},
		Swapchains:     []khr_swapchain.Swapchain{s.swapchain},
		ImageIndices:   []int{imageIndex},
	})
	return presentStatus(res, err, "vkQueuePresentKHR")
}

func (s *Swapchain) Destroy() { s.swapchain.Destroy(nil) }
