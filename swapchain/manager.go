// Package swapchain owns the presentable images and everything whose shape depends on them:
// image views, the render pass, the graphics pipelines and the framebuffers. The set is
// rebuilt wholesale whenever the surface changes.
package swapchain

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"github.com/vkngwrapper/vkmol/gpu"
	"github.com/vkngwrapper/vkmol/internal/release"
	"github.com/vkngwrapper/vkmol/probe"
	"golang.org/x/exp/slog"
)

// ErrNotLive is returned when an operation needs a swapchain that has not been created or has
// already been destroyed
var ErrNotLive = errors.New("swapchain has not been created")

// CreateInfo contains everything a Manager needs to build each generation
type CreateInfo struct {
	PhysicalDevice gpu.PhysicalDevice
	Device         gpu.Device
	Surface        gpu.Surface
	Indices        probe.QueueFamilyIndices

	// WindowSize reports the drawable size in pixels. It is only consulted when the surface
	// leaves the extent up to the application.
	WindowSize func() (int, int)

	VertexShader   []byte
	FragmentShader []byte

	VertexBindings   []core1_0.VertexInputBindingDescription
	VertexAttributes []core1_0.VertexInputAttributeDescription
}

// Manager owns one generation of swapchain-bound objects at a time
type Manager struct {
	logger *slog.Logger
	info   CreateInfo

	state      State
	generation int

	format      khr_surface.SurfaceFormat
	presentMode khr_surface.PresentMode
	extent      core1_0.Extent2D

	swapchain    gpu.Swapchain
	images       []gpu.Image
	imageViews   []gpu.ImageView
	renderPass   gpu.RenderPass
	pipelines    [pipelineVariantCount]gpu.Pipeline
	framebuffers []gpu.Framebuffer

	// Created once and kept across generations
	descriptorSetLayout gpu.DescriptorSetLayout
	pipelineLayout      gpu.PipelineLayout
}

func New(logger *slog.Logger, info CreateInfo) *Manager {
	return &Manager{
		logger: logger,
		info:   info,
	}
}

// Create builds the first generation. It fails if the Manager has already been created.
func (m *Manager) Create() error {
	m.logger.Debug("Manager::Create")

	if m.state != StateUninitialized {
		return errors.Newf("cannot create a swapchain in state %s", m.state)
	}

	var cleanup release.Stack
	defer cleanup.Release()

	layout, err := m.info.Device.CreateDescriptorSetLayout(core1_0.DescriptorSetLayoutCreateInfo{
		Bindings: []core1_0.DescriptorSetLayoutBinding{
			{
				Binding:         0,
				DescriptorType:  core1_0.DescriptorTypeUniformBuffer,
				DescriptorCount: 1,
				StageFlags:      core1_0.StageVertex,
			},
		},
	})
	if err != nil {
		return errors.Wrap(err, "creating descriptor set layout")
	}
	cleanup.Push(layout.Destroy)

	pipelineLayout, err := m.info.Device.CreatePipelineLayout([]gpu.DescriptorSetLayout{layout})
	if err != nil {
		return errors.Wrap(err, "creating pipeline layout")
	}
	cleanup.Push(pipelineLayout.Destroy)

	m.descriptorSetLayout = layout
	m.pipelineLayout = pipelineLayout

	err = m.build(nil)
	if err != nil {
		m.descriptorSetLayout = nil
		m.pipelineLayout = nil
		return err
	}
	cleanup.Disarm()

	m.state = StateLive
	return nil
}

// MarkStale records that the surface no longer matches the swapchain. It has no effect unless
// the Manager is live.
func (m *Manager) MarkStale() {
	if m.state == StateLive {
		m.logger.Debug("Manager::MarkStale", slog.Int("Generation", m.generation))
		m.state = StateStale
	}
}

// Recreate waits for the device to go idle, releases the current generation and builds the
// next one. The old swapchain is handed to the new one and destroyed as soon as the new one
// exists. On success the generation is incremented and the Manager is live.
func (m *Manager) Recreate() error {
	m.logger.Debug("Manager::Recreate", slog.String("State", m.state.String()))

	if m.state == StateUninitialized {
		return ErrNotLive
	}

	err := m.info.Device.WaitIdle()
	if err != nil {
		return errors.Wrap(err, "waiting for device idle before recreate")
	}

	m.state = StateRebuilding
	m.releaseViews()

	err = m.build(m.swapchain)
	if err != nil {
		m.state = StateStale
		return err
	}

	m.generation++
	m.state = StateLive
	m.logger.Info("Rebuilt swapchain",
		slog.Int("Generation", m.generation),
		slog.Int("Width", m.extent.Width),
		slog.Int("Height", m.extent.Height),
	)
	return nil
}

// build creates the swapchain and everything bound to it. On failure, whatever it built is
// released. Once the new swapchain exists old is destroyed, even if a later step fails.
func (m *Manager) build(old gpu.Swapchain) error {
	support, err := probe.QuerySwapchainSupport(m.info.PhysicalDevice, m.info.Surface)
	if err != nil {
		return err
	}

	if !support.Adequate() {
		return errors.New("surface no longer offers any format or present mode")
	}

	width, height := m.info.WindowSize()
	format := ChooseSurfaceFormat(support.Formats)
	presentMode := ChoosePresentMode(support.PresentModes)
	extent := ChooseExtent(support.Capabilities, width, height)
	m.logger.Debug("Chose swapchain extent", slog.Int("Width", extent.Width), slog.Int("Height", extent.Height))

	createInfo := gpu.SwapchainCreateInfo{
		Surface:       m.info.Surface,
		MinImageCount: ImageCount(support.Capabilities),
		Format:        format,
		Extent:        extent,
		SharingMode:   core1_0.SharingModeExclusive,
		PreTransform:  support.Capabilities.CurrentTransform,
		PresentMode:   presentMode,
		OldSwapchain:  old,
	}
	if !m.info.Indices.Shared() {
		createInfo.SharingMode = core1_0.SharingModeConcurrent
		createInfo.QueueFamilyIndices = m.info.Indices.Unique()
	}

	var cleanup release.Stack
	defer cleanup.Release()

	swapchain, err := m.info.Device.CreateSwapchain(createInfo)
	if err != nil {
		return errors.Wrap(err, "creating swapchain")
	}
	cleanup.Push(swapchain.Destroy)

	// The old swapchain has been retired by the create, whether or not the rest succeeds
	if old != nil {
		old.Destroy()
		m.swapchain = nil
	}

	images, err := swapchain.Images()
	if err != nil {
		return errors.Wrap(err, "retrieving swapchain images")
	}

	imageViews := make([]gpu.ImageView, 0, len(images))
	for _, image := range images {
		view, err := m.info.Device.CreateImageView(image, format.Format)
		if err != nil {
			return errors.Wrap(err, "creating image view")
		}
		cleanup.Push(view.Destroy)
		imageViews = append(imageViews, view)
	}

	renderPass, err := m.info.Device.CreateRenderPass(renderPassCreateInfo(format.Format))
	if err != nil {
		return errors.Wrap(err, "creating render pass")
	}
	cleanup.Push(renderPass.Destroy)

	pipelines, err := m.buildPipelines(renderPass, extent)
	if err != nil {
		return err
	}
	for _, pipeline := range pipelines {
		cleanup.Push(pipeline.Destroy)
	}

	framebuffers := make([]gpu.Framebuffer, 0, len(imageViews))
	for _, view := range imageViews {
		framebuffer, err := m.info.Device.CreateFramebuffer(gpu.FramebufferCreateInfo{
			RenderPass:  renderPass,
			Attachments: []gpu.ImageView{view},
			Extent:      extent,
		})
		if err != nil {
			return errors.Wrap(err, "creating framebuffer")
		}
		cleanup.Push(framebuffer.Destroy)
		framebuffers = append(framebuffers, framebuffer)
	}
	cleanup.Disarm()

	m.format = format
	m.presentMode = presentMode
	m.extent = extent
	m.swapchain = swapchain
	m.images = images
	m.imageViews = imageViews
	m.renderPass = renderPass
	m.pipelines = pipelines
	m.framebuffers = framebuffers
	return nil
}

func (m *Manager) buildPipelines(renderPass gpu.RenderPass, extent core1_0.Extent2D) ([pipelineVariantCount]gpu.Pipeline, error) {
	var pipelines [pipelineVariantCount]gpu.Pipeline

	vertexShader, err := m.info.Device.CreateShaderModule(m.info.VertexShader)
	if err != nil {
		return pipelines, errors.Wrap(err, "creating vertex shader module")
	}
	defer vertexShader.Destroy()

	fragmentShader, err := m.info.Device.CreateShaderModule(m.info.FragmentShader)
	if err != nil {
		return pipelines, errors.Wrap(err, "creating fragment shader module")
	}
	defer fragmentShader.Destroy()

	for variant, configure := range variantBuilders {
		info := gpu.PipelineCreateInfo{
			Layout:           m.pipelineLayout,
			RenderPass:       renderPass,
			VertexShader:     vertexShader,
			FragmentShader:   fragmentShader,
			VertexBindings:   m.info.VertexBindings,
			VertexAttributes: m.info.VertexAttributes,
			PolygonMode:      core1_0.PolygonModeFill,
			CullMode:         core1_0.CullModeFlags(0),
			FrontFace:        core1_0.FrontFaceCounterClockwise,
			BlendEnabled:     true,
			Extent:           extent,
		}
		configure(&info)

		pipeline, err := m.info.Device.CreateGraphicsPipeline(info)
		if err != nil {
			for _, built := range pipelines[:variant] {
				built.Destroy()
			}
			return pipelines, errors.Wrapf(err, "creating %s pipeline", PipelineVariant(variant))
		}
		pipelines[variant] = pipeline
	}

	return pipelines, nil
}

func renderPassCreateInfo(format core1_0.Format) core1_0.RenderPassCreateInfo {
	return core1_0.RenderPassCreateInfo{
		Attachments: []core1_0.AttachmentDescription{
			{
				Format:         format,
				Samples:        core1_0.Samples1,
				LoadOp:         core1_0.AttachmentLoadOpClear,
				StoreOp:        core1_0.AttachmentStoreOpStore,
				StencilLoadOp:  core1_0.AttachmentLoadOpDontCare,
				StencilStoreOp: core1_0.AttachmentStoreOpDontCare,
				InitialLayout:  core1_0.ImageLayoutUndefined,
				FinalLayout:    khr_swapchain.ImageLayoutPresentSrc,
			},
		},
		Subpasses: []core1_0.SubpassDescription{
			{
				PipelineBindPoint: core1_0.PipelineBindPointGraphics,
				ColorAttachments: []core1_0.AttachmentReference{
					{
						Attachment: 0,
						Layout:     core1_0.ImageLayoutColorAttachmentOptimal,
					},
				},
			},
		},
		SubpassDependencies: []core1_0.SubpassDependency{
			{
				SrcSubpass: core1_0.SubpassExternal,
				DstSubpass: 0,

				SrcStageMask:  core1_0.PipelineStageColorAttachmentOutput,
				SrcAccessMask: 0,

				DstStageMask:  core1_0.PipelineStageColorAttachmentOutput,
				DstAccessMask: core1_0.AccessColorAttachmentRead | core1_0.AccessColorAttachmentWrite,
			},
		},
	}
}

// releaseViews destroys everything bound to the current images except the swapchain itself,
// in reverse dependency order
func (m *Manager) releaseViews() {
	for _, framebuffer := range m.framebuffers {
		framebuffer.Destroy()
	}
	m.framebuffers = nil

	for i, pipeline := range m.pipelines {
		if pipeline != nil {
			pipeline.Destroy()
		}
		m.pipelines[i] = nil
	}

	if m.renderPass != nil {
		m.renderPass.Destroy()
		m.renderPass = nil
	}

	for _, view := range m.imageViews {
		view.Destroy()
	}
	m.imageViews = nil
	m.images = nil
}

// Destroy releases every object the Manager owns: framebuffers, pipelines, pipeline layout,
// descriptor set layout, render pass, image views and finally the swapchain. The caller must
// make sure the device is idle.
func (m *Manager) Destroy() {
	m.logger.Debug("Manager::Destroy")

	for _, framebuffer := range m.framebuffers {
		framebuffer.Destroy()
	}
	m.framebuffers = nil

	for i, pipeline := range m.pipelines {
		if pipeline != nil {
			pipeline.Destroy()
		}
		m.pipelines[i] = nil
	}

	if m.pipelineLayout != nil {
		m.pipelineLayout.Destroy()
		m.pipelineLayout = nil
	}

	if m.descriptorSetLayout != nil {
		m.descriptorSetLayout.Destroy()
		m.descriptorSetLayout = nil
	}

	if m.renderPass != nil {
		m.renderPass.Destroy()
		m.renderPass = nil
	}

	for _, view := range m.imageViews {
		view.Destroy()
	}
	m.imageViews = nil
	m.images = nil

	if m.swapchain != nil {
		m.swapchain.Destroy()
		m.swapchain = nil
	}

	m.state = StateUninitialized
}

func (m *Manager) State() State {
	return m.state
}

// Generation increments every time Recreate succeeds. Anything recorded against the
// Manager's objects is only valid for the generation it was recorded in.
func (m *Manager) Generation() int {
	return m.generation
}

func (m *Manager) Swapchain() gpu.Swapchain {
	return m.swapchain
}

func (m *Manager) Format() khr_surface.SurfaceFormat {
	return m.format
}

func (m *Manager) PresentMode() khr_surface.PresentMode {
	return m.presentMode
}

func (m *Manager) Extent() core1_0.Extent2D {
	return m.extent
}

// ImageCount returns the number of images the presentation engine actually created
func (m *Manager) ImageCount() int {
	return len(m.images)
}

func (m *Manager) RenderPass() gpu.RenderPass {
	return m.renderPass
}

func (m *Manager) Framebuffers() []gpu.Framebuffer {
	return m.framebuffers
}

func (m *Manager) DescriptorSetLayout() gpu.DescriptorSetLayout {
	return m.descriptorSetLayout
}

func (m *Manager) PipelineLayout() gpu.PipelineLayout {
	return m.pipelineLayout
}

// Pipeline returns the current generation's pipeline for a variant
func (m *Manager) Pipeline(variant PipelineVariant) (gpu.Pipeline, error) {
	if !variant.Valid() {
		return nil, errors.Newf("unknown pipeline variant %s", variant)
	}

	pipeline := m.pipelines[variant]
	if pipeline == nil {
		return nil, ErrNotLive
	}
	return pipeline, nil
}
