package gputest

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/vkmol/gpu"
)

// Submission is one batch handed to a Queue. SubmittedAt and CompletedAt are ticks of the
// fake's logical clock; CompletedAt is zero while the batch is pending.
type Submission struct {
	Index          int
	Queue          int
	Fence          *Fence
	Wait           []*Semaphore
	Signal         []*Semaphore
	CommandBuffers []*CommandBuffer
	SubmittedAt    int
	CompletedAt    int
}

// Completed returns true once the GPU has finished the batch
func (s *Submission) Completed() bool {
	return s.CompletedAt != 0
}

// Present is one image handed to the presentation engine
type Present struct {
	Swapchain  *Swapchain
	ImageIndex int
	Queue      int
}

type Device struct {
	Object

	queues map[int]*Queue
}

var _ gpu.Device = (*Device)(nil)

func (d *Device) Queue(queueFamily int) gpu.Queue {
	queue, ok := d.queues[queueFamily]
	if !ok {
		queue = &Queue{gpu: d.gpu, Family: queueFamily}
		d.queues[queueFamily] = queue
	}
	return queue
}

func (d *Device) WaitIdle() error {
	if err := d.gpu.failure("WaitIdle"); err != nil {
		return err
	}
	d.gpu.completeAll()
	d.gpu.record("device idle")
	return nil
}

func (d *Device) CreateBuffer(size int, usage core1_0.BufferUsageFlags) (gpu.Buffer, error) {
	if err := d.gpu.failure("CreateBuffer"); err != nil {
		return nil, err
	}
	return &Buffer{Object: d.gpu.newObject("Buffer"), Size: size, Usage: usage}, nil
}

func (d *Device) AllocateMemory(size int, memoryTypeIndex int) (gpu.DeviceMemory, error) {
	if err := d.gpu.failure("AllocateMemory"); err != nil {
		return nil, err
	}
	return &DeviceMemory{Object: d.gpu.newObject("DeviceMemory"), Data: make([]byte, size), MemoryType: memoryTypeIndex}, nil
}

func (d *Device) CreateSwapchain(info gpu.SwapchainCreateInfo) (gpu.Swapchain, error) {
	if err := d.gpu.failure("CreateSwapchain"); err != nil {
		return nil, err
	}

	swapchain := &Swapchain{Object: d.gpu.newObject("Swapchain"), Info: info}
	for i := 0; i < info.MinImageCount; i++ {
		d.gpu.nextID++
		swapchain.images = append(swapchain.images, &Image{ID: d.gpu.nextID, Index: i})
	}
	return swapchain, nil
}

func (d *Device) CreateImageView(image gpu.Image, format core1_0.Format) (gpu.ImageView, error) {
	if err := d.gpu.failure("CreateImageView"); err != nil {
		return nil, err
	}
	return &ImageView{Object: d.gpu.newObject("ImageView"), Image: image.(*Image), Format: format}, nil
}

func (d *Device) CreateRenderPass(info core1_0.RenderPassCreateInfo) (gpu.RenderPass, error) {
	if err := d.gpu.failure("CreateRenderPass"); err != nil {
		return nil, err
	}
	return &RenderPass{Object: d.gpu.newObject("RenderPass"), Info: info}, nil
}

func (d *Device) CreateDescriptorSetLayout(info core1_0.DescriptorSetLayoutCreateInfo) (gpu.DescriptorSetLayout, error) {
	if err := d.gpu.failure("CreateDescriptorSetLayout"); err != nil {
		return nil, err
	}
	obj := d.gpu.newObject("DescriptorSetLayout")
	return &obj, nil
}

func (d *Device) CreatePipelineLayout(setLayouts []gpu.DescriptorSetLayout) (gpu.PipelineLayout, error) {
	if err := d.gpu.failure("CreatePipelineLayout"); err != nil {
		return nil, err
	}
	obj := d.gpu.newObject("PipelineLayout")
	return &obj, nil
}

func (d *Device) CreateShaderModule(code []byte) (gpu.ShaderModule, error) {
	if err := d.gpu.failure("CreateShaderModule"); err != nil {
		return nil, err
	}
	if len(code) == 0 || len(code)%4 != 0 {
		return nil, errors.Newf("shader code must be a non-empty multiple of 4 bytes, got %d", len(code))
	}
	obj := d.gpu.newObject("ShaderModule")
	return &obj, nil
}

func (d *Device) CreateGraphicsPipeline(info gpu.PipelineCreateInfo) (gpu.Pipeline, error) {
	if err := d.gpu.failure("CreateGraphicsPipeline"); err != nil {
		return nil, err
	}
	return &Pipeline{Object: d.gpu.newObject("Pipeline"), Info: info}, nil
}

func (d *Device) CreateFramebuffer(info gpu.FramebufferCreateInfo) (gpu.Framebuffer, error) {
	if err := d.gpu.failure("CreateFramebuffer"); err != nil {
		return nil, err
	}
	return &Framebuffer{Object: d.gpu.newObject("Framebuffer"), Info: info}, nil
}

func (d *Device) CreateCommandPool(queueFamily int) (gpu.CommandPool, error) {
	if err := d.gpu.failure("CreateCommandPool"); err != nil {
		return nil, err
	}
	return &CommandPool{Object: d.gpu.newObject("CommandPool"), Family: queueFamily}, nil
}

func (d *Device) CreateDescriptorPool(info core1_0.DescriptorPoolCreateInfo) (gpu.DescriptorPool, error) {
	if err := d.gpu.failure("CreateDescriptorPool"); err != nil {
		return nil, err
	}
	return &DescriptorPool{Object: d.gpu.newObject("DescriptorPool"), Info: info}, nil
}

func (d *Device) CreateSemaphore() (gpu.Semaphore, error) {
	if err := d.gpu.failure("CreateSemaphore"); err != nil {
		return nil, err
	}
	return &Semaphore{Object: d.gpu.newObject("Semaphore")}, nil
}

func (d *Device) CreateFence(signaled bool) (gpu.Fence, error) {
	if err := d.gpu.failure("CreateFence"); err != nil {
		return nil, err
	}
	return &Fence{Object: d.gpu.newObject("Fence"), signaled: signaled}, nil
}

// Queue executes nothing on its own. Work submitted to it completes when a fence tied to it
// is waited on, or when the queue or device is waited idle.
type Queue struct {
	gpu    *GPU
	Family int
}

func (q *Queue) Submit(fence gpu.Fence, info gpu.SubmitInfo) error {
	g := q.gpu
	if err := g.failure("Submit"); err != nil {
		return err
	}

	submission := &Submission{
		Index:       len(g.Submissions),
		Queue:       q.Family,
		SubmittedAt: g.tick(),
	}

	if fence != nil {
		submission.Fence = fence.(*Fence)
		if submission.Fence.signaled {
			g.violate("submit#%d uses %s while it is still signaled", submission.Index, submission.Fence)
		}
	}

	for _, semaphore := range info.WaitSemaphores {
		sem := semaphore.(*Semaphore)
		g.consume(sem, "submit")
		submission.Wait = append(submission.Wait, sem)
	}

	for _, semaphore := range info.SignalSemaphores {
		submission.Signal = append(submission.Signal, semaphore.(*Semaphore))
	}

	for _, commandBuffer := range info.CommandBuffers {
		buffer := commandBuffer.(*CommandBuffer)
		if buffer.recording {
			g.violate("submit#%d includes %s while it is recording", submission.Index, buffer)
		}
		if buffer.destroyed {
			g.violate("submit#%d includes %s after it was freed", submission.Index, buffer)
		}
		for _, used := range buffer.uses {
			if used.destroyed {
				g.violate("submit#%d includes %s which uses destroyed %s", submission.Index, buffer, used)
			}
		}
		submission.CommandBuffers = append(submission.CommandBuffers, buffer)
	}

	g.Submissions = append(g.Submissions, submission)
	g.pending = append(g.pending, submission)
	g.record("submit#%d", submission.Index)
	return nil
}

// consume waits on a semaphore. A wait on a semaphore whose signal is still pending takes
// that signal so it does not linger once the signaling batch completes.
func (g *GPU) consume(semaphore *Semaphore, waiter string) {
	switch {
	case semaphore.signaled:
		semaphore.signaled = false
	case g.pendingSignal(semaphore) && !g.consumed[semaphore]:
		g.consumed[semaphore] = true
	default:
		g.violate("%s waits on %s which nothing will signal", waiter, semaphore)
	}
}

func (g *GPU) pendingSignal(semaphore *Semaphore) bool {
	for _, submission := range g.pending {
		for _, signal := range submission.Signal {
			if signal == semaphore {
				return true
			}
		}
	}
	return false
}

func (g *GPU) inFlight(buffer *CommandBuffer) bool {
	for _, submission := range g.pending {
		for _, pending := range submission.CommandBuffers {
			if pending == buffer {
				return true
			}
		}
	}
	return false
}

func (q *Queue) WaitIdle() error {
	if err := q.gpu.failure("QueueWaitIdle"); err != nil {
		return err
	}
	q.gpu.completeAll()
	return nil
}

type Fence struct {
	Object
	signaled bool
}

func (f *Fence) Signaled() bool {
	return f.signaled
}

// Wait finishes queued work in order until the fence is signaled. Waiting on an unsignaled
// fence that no pending submission will signal is a deadlock and fails.
func (f *Fence) Wait() error {
	g := f.gpu
	if err := g.failure("WaitForFence"); err != nil {
		return err
	}

	if f.signaled {
		return nil
	}

	for _, submission := range g.pending {
		if submission.Fence == f {
			g.completeThrough(submission)
			return nil
		}
	}

	g.violate("wait on %s which nothing will signal", f)
	return errors.Newf("%s will never be signaled", f)
}

func (f *Fence) Reset() error {
	if err := f.gpu.failure("ResetFence"); err != nil {
		return err
	}

	for _, submission := range f.gpu.pending {
		if submission.Fence == f {
			f.gpu.violate("reset of %s while submit#%d is pending", f, submission.Index)
		}
	}

	f.signaled = false
	f.gpu.record("reset %s", f)
	return nil
}

type Semaphore struct {
	Object
	signaled bool
}

func (s *Semaphore) Signaled() bool {
	return s.signaled
}

type Image struct {
	ID    int
	Index int
}

type ImageView struct {
	Object
	Image  *Image
	Format core1_0.Format
}

type RenderPass struct {
	Object
	Info core1_0.RenderPassCreateInfo
}

type Pipeline struct {
	Object
	Info gpu.PipelineCreateInfo
}

type Framebuffer struct {
	Object
	Info gpu.FramebufferCreateInfo
}

type Buffer struct {
	Object
	Size   int
	Usage  core1_0.BufferUsageFlags
	Memory *DeviceMemory
}

func (b *Buffer) MemoryRequirements() gpu.MemoryRequirements {
	return gpu.MemoryRequirements{
		Size:           b.Size,
		Alignment:      4,
		MemoryTypeBits: 0xFFFFFFFF,
	}
}

func (b *Buffer) BindMemory(memory gpu.DeviceMemory) error {
	if err := b.gpu.failure("BindMemory"); err != nil {
		return err
	}
	b.Memory = memory.(*DeviceMemory)
	return nil
}

type DeviceMemory struct {
	Object
	Data       []byte
	MemoryType int
	mapped     bool
}

func (m *DeviceMemory) Map(offset, size int) (unsafe.Pointer, error) {
	if m.mapped {
		m.gpu.violate("%s mapped twice", m)
	}
	if offset < 0 || offset+size > len(m.Data) || size <= 0 {
		return nil, errors.Newf("cannot map [%d, %d) of %d bytes", offset, offset+size, len(m.Data))
	}
	m.mapped = true
	return unsafe.Pointer(&m.Data[offset]), nil
}

func (m *DeviceMemory) Unmap() {
	m.mapped = false
}

// Mapped returns true while the memory is mapped
func (m *DeviceMemory) Mapped() bool {
	return m.mapped
}

func (m *DeviceMemory) Free() {
	if m.mapped {
		m.gpu.violate("%s freed while mapped", m)
	}
	m.Destroy()
}

type DescriptorPool struct {
	Object
	Info core1_0.DescriptorPoolCreateInfo
	Sets []*DescriptorSet
}

func (p *DescriptorPool) AllocateSet(layout gpu.DescriptorSetLayout) (gpu.DescriptorSet, error) {
	if err := p.gpu.failure("AllocateSet"); err != nil {
		return nil, err
	}
	if len(p.Sets) >= p.Info.MaxSets {
		return nil, errors.Newf("%s is exhausted", p)
	}

	set := &DescriptorSet{Layout: layout, Buffers: make(map[int]*Buffer)}
	p.Sets = append(p.Sets, set)
	return set, nil
}

type DescriptorSet struct {
	Layout  gpu.DescriptorSetLayout
	Buffers map[int]*Buffer
	Ranges  map[int]int
}

func (s *DescriptorSet) WriteUniformBuffer(binding int, buffer gpu.Buffer, size int) error {
	s.Buffers[binding] = buffer.(*Buffer)
	if s.Ranges == nil {
		s.Ranges = make(map[int]int)
	}
	s.Ranges[binding] = size
	return nil
}

type CommandPool struct {
	Object
	Family    int
	allocated int
}

func (p *CommandPool) Allocate(count int) ([]gpu.CommandBuffer, error) {
	if err := p.gpu.failure("AllocateCommandBuffers"); err != nil {
		return nil, err
	}

	buffers := make([]gpu.CommandBuffer, 0, count)
	for i := 0; i < count; i++ {
		p.gpu.nextID++
		p.allocated++
		buffers = append(buffers, &CommandBuffer{Object: Object{gpu: p.gpu, Kind: "CommandBuffer", ID: p.gpu.nextID}, pool: p})
	}
	p.gpu.live["CommandBuffer"] += count
	p.gpu.record("allocate %d command buffers from %s", count, p)
	return buffers, nil
}

func (p *CommandPool) Free(buffers []gpu.CommandBuffer) {
	for _, buffer := range buffers {
		commandBuffer := buffer.(*CommandBuffer)
		if p.gpu.inFlight(commandBuffer) {
			p.gpu.violate("%s freed while pending", commandBuffer)
		}
		commandBuffer.Destroy()
		p.allocated--
	}
}

func (p *CommandPool) Destroy() {
	if p.allocated > 0 {
		p.gpu.violate("%s destroyed with %d command buffers still allocated", p, p.allocated)
	}
	p.Object.Destroy()
}

// CommandBuffer records commands as readable strings
type CommandBuffer struct {
	Object
	pool *CommandPool

	Flags     core1_0.CommandBufferUsageFlags
	Commands  []string
	Pipeline  *Pipeline
	Target    *Framebuffer
	recording bool

	// uses holds every object the recorded commands reference
	uses []*Object
}

// objectOf returns the shared part of a fake handle, or nil for handles this package did not create
func objectOf(handle any) *Object {
	switch h := handle.(type) {
	case *Object:
		return h
	case *Buffer:
		return &h.Object
	case *Pipeline:
		return &h.Object
	case *Framebuffer:
		return &h.Object
	case *RenderPass:
		return &h.Object
	}
	return nil
}

func (c *CommandBuffer) use(handles ...any) {
	for _, handle := range handles {
		if obj := objectOf(handle); obj != nil {
			c.uses = append(c.uses, obj)
		}
	}
}

func (c *CommandBuffer) Begin(flags core1_0.CommandBufferUsageFlags) error {
	if c.gpu.inFlight(c) {
		c.gpu.violate("%s re-recorded while pending", c)
	}
	c.Flags = flags
	c.Commands = nil
	c.Pipeline = nil
	c.Target = nil
	c.uses = nil
	c.recording = true
	return nil
}

func (c *CommandBuffer) End() error {
	c.recording = false
	return nil
}

func (c *CommandBuffer) push(command string) {
	if !c.recording {
		c.gpu.violate("%s recorded %s outside Begin/End", c, command)
	}
	c.Commands = append(c.Commands, command)
}

func (c *CommandBuffer) BeginRenderPass(info gpu.RenderPassBeginInfo) error {
	c.Target = info.Framebuffer.(*Framebuffer)
	c.use(info.RenderPass, info.Framebuffer)
	c.push("BeginRenderPass")
	return nil
}

func (c *CommandBuffer) EndRenderPass() {
	c.push("EndRenderPass")
}

func (c *CommandBuffer) BindPipeline(pipeline gpu.Pipeline) {
	c.Pipeline = pipeline.(*Pipeline)
	c.use(pipeline)
	c.push("BindPipeline")
}

func (c *CommandBuffer) BindVertexBuffers(buffers []gpu.Buffer) {
	for _, buffer := range buffers {
		c.use(buffer)
	}
	c.push("BindVertexBuffers")
}

func (c *CommandBuffer) BindIndexBuffer(buffer gpu.Buffer, indexType core1_0.IndexType) {
	c.use(buffer)
	c.push("BindIndexBuffer")
}

func (c *CommandBuffer) BindDescriptorSets(layout gpu.PipelineLayout, sets []gpu.DescriptorSet) {
	c.use(layout)
	for _, set := range sets {
		if descriptorSet, ok := set.(*DescriptorSet); ok {
			for _, buffer := range descriptorSet.Buffers {
				c.use(buffer)
			}
		}
	}
	c.push("BindDescriptorSets")
}

func (c *CommandBuffer) DrawIndexed(indexCount int) {
	c.push("DrawIndexed")
}

func (c *CommandBuffer) CopyBuffer(src, dst gpu.Buffer, size int) {
	source := src.(*Buffer)
	destination := dst.(*Buffer)
	copy(destination.Memory.Data[:size], source.Memory.Data[:size])
	c.use(src, dst)
	c.push("CopyBuffer")
}

// Swapchain hands out images according to the fake's acquire script
type Swapchain struct {
	Object
	Info   gpu.SwapchainCreateInfo
	images []*Image
}

func (s *Swapchain) Images() ([]gpu.Image, error) {
	images := make([]gpu.Image, 0, len(s.images))
	for _, image := range s.images {
		images = append(images, image)
	}
	return images, nil
}

func (s *Swapchain) AcquireNextImage(signal gpu.Semaphore) (int, gpu.Status, error) {
	g := s.gpu
	semaphore := signal.(*Semaphore)
	if semaphore.signaled || g.pendingSignal(semaphore) {
		g.violate("acquire into %s which is already signaled", semaphore)
	}

	result := AcquireResult{ImageIndex: g.nextImage % len(s.images)}
	if len(g.AcquireScript) > 0 {
		result = g.AcquireScript[0]
		g.AcquireScript = g.AcquireScript[1:]
	} else {
		g.nextImage++
	}

	if result.Err != nil {
		return -1, gpu.StatusSuccess, result.Err
	}

	if result.Status == gpu.StatusOutOfDate {
		g.record("acquire out of date")
		return -1, result.Status, nil
	}

	semaphore.signaled = true
	g.record("acquire image %d", result.ImageIndex)
	return result.ImageIndex, result.Status, nil
}

func (s *Swapchain) Present(queue gpu.Queue, wait gpu.Semaphore, imageIndex int) (gpu.Status, error) {
	g := s.gpu
	g.consume(wait.(*Semaphore), "present")

	result := PresentResult{}
	if len(g.PresentScript) > 0 {
		result = g.PresentScript[0]
		g.PresentScript = g.PresentScript[1:]
	}

	if result.Err != nil {
		return gpu.StatusSuccess, result.Err
	}

	g.Presents = append(g.Presents, Present{Swapchain: s, ImageIndex: imageIndex, Queue: queue.(*Queue).Family})
	g.record("present image %d", imageIndex)
	return result.Status, nil
}
