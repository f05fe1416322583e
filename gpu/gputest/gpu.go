// Package gputest is an in-memory GPU that implements the gpu interfaces well enough to drive
// vkmol end to end in tests. Queue work completes only when something waits for it, so tests
// can observe exactly what was in flight at every submit. Misuse that a validation layer would
// report (waiting on a fence nothing will signal, re-recording a pending command buffer,
// acquiring into a signaled semaphore, destroying twice) is collected in Violations.
package gputest

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/vkmol/gpu"
)

// AcquireResult scripts one call to Swapchain.AcquireNextImage
type AcquireResult struct {
	ImageIndex int
	Status     gpu.Status
	Err        error
}

// PresentResult scripts one call to Swapchain.Present
type PresentResult struct {
	Status gpu.Status
	Err    error
}

// GPU holds the state shared by every object the fake creates
type GPU struct {
	PhysicalDevices []*PhysicalDevice
	Surface         *Surface

	// AcquireScript is consumed one entry per acquire. When it runs out, images are handed
	// out round robin with StatusSuccess.
	AcquireScript []AcquireResult
	// PresentScript is consumed one entry per present. When it runs out, presents succeed.
	PresentScript []PresentResult

	Events      []string
	Violations  []string
	Submissions []*Submission
	Presents    []Present

	InstanceInfo *gpu.InstanceCreateInfo
	DeviceInfo   *gpu.DeviceCreateInfo
	Device       *Device

	clock     int
	nextID    int
	nextImage int
	live      map[string]int
	failures  map[string]error
	pending   []*Submission
	consumed  map[*Semaphore]bool
	instance  *Instance
}

// New creates a fake with a single discrete GPU and an 800x600 surface. Swapchains created
// against the default surface get three images.
func New() *GPU {
	g := &GPU{
		live:     make(map[string]int),
		failures: make(map[string]error),
		consumed: make(map[*Semaphore]bool),
	}

	g.Surface = &Surface{
		SurfaceCapabilities: khr_surface.SurfaceCapabilities{
			MinImageCount:    2,
			MaxImageCount:    8,
			CurrentExtent:    core1_0.Extent2D{Width: 800, Height: 600},
			MinImageExtent:   core1_0.Extent2D{Width: 1, Height: 1},
			MaxImageExtent:   core1_0.Extent2D{Width: 4096, Height: 4096},
			CurrentTransform: khr_surface.TransformIdentity,
		},
		SurfaceFormats: []khr_surface.SurfaceFormat{
			{Format: core1_0.FormatB8G8R8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		},
		SurfacePresentModes: []khr_surface.PresentMode{khr_surface.PresentModeFIFO, khr_surface.PresentModeMailbox},
	}
	g.PhysicalDevices = []*PhysicalDevice{g.NewPhysicalDevice("Fake Discrete GPU", core1_0.PhysicalDeviceTypeDiscreteGPU)}

	return g
}

// Fail makes the next call to the named method return err
func (g *GPU) Fail(method string, err error) {
	g.failures[method] = err
}

func (g *GPU) failure(method string) error {
	err, ok := g.failures[method]
	if !ok {
		return nil
	}
	delete(g.failures, method)
	return err
}

func (g *GPU) tick() int {
	g.clock++
	return g.clock
}

func (g *GPU) record(format string, args ...any) {
	g.tick()
	g.Events = append(g.Events, fmt.Sprintf(format, args...))
}

func (g *GPU) violate(format string, args ...any) {
	g.Violations = append(g.Violations, fmt.Sprintf(format, args...))
}

func (g *GPU) newObject(kind string) Object {
	g.nextID++
	g.live[kind]++
	obj := Object{gpu: g, Kind: kind, ID: g.nextID}
	g.record("create %s", obj)
	return obj
}

// Live returns the number of objects of a kind that have been created and not destroyed
func (g *GPU) Live(kind string) int {
	return g.live[kind]
}

// LiveTotal returns the number of objects of every kind that have not been destroyed
func (g *GPU) LiveTotal() int {
	total := 0
	for _, count := range g.live {
		total += count
	}
	return total
}

// Pending returns the number of submissions the GPU has not finished yet
func (g *GPU) Pending() int {
	return len(g.pending)
}

// completeThrough finishes pending work in submission order up to and including target
func (g *GPU) completeThrough(target *Submission) {
	for len(g.pending) > 0 {
		next := g.pending[0]
		g.pending = g.pending[1:]
		g.complete(next)
		if next == target {
			return
		}
	}
}

func (g *GPU) completeAll() {
	g.completeThrough(nil)
}

func (g *GPU) complete(submission *Submission) {
	submission.CompletedAt = g.tick()
	for _, semaphore := range submission.Signal {
		if g.consumed[semaphore] {
			delete(g.consumed, semaphore)
			continue
		}
		semaphore.signaled = true
	}
	if submission.Fence != nil {
		submission.Fence.signaled = true
	}
	g.record("complete submit#%d", submission.Index)
}

// Object is the shared part of every fake handle
type Object struct {
	gpu       *GPU
	Kind      string
	ID        int
	destroyed bool
}

func (o Object) String() string {
	return fmt.Sprintf("%s#%d", o.Kind, o.ID)
}

func (o *Object) Destroy() {
	if o.destroyed {
		o.gpu.violate("%s destroyed twice", o)
		return
	}
	o.destroyed = true
	o.gpu.live[o.Kind]--
	o.gpu.record("destroy %s", o)
}

func (o *Object) Destroyed() bool {
	return o.destroyed
}

// Loader returns a gpu.Loader whose instance enumerates the fake's physical devices
func (g *GPU) Loader() gpu.Loader {
	return &Loader{gpu: g}
}

type Loader struct {
	gpu *GPU
}

func (l *Loader) CreateInstance(info gpu.InstanceCreateInfo) (gpu.Instance, error) {
	if err := l.gpu.failure("CreateInstance"); err != nil {
		return nil, err
	}

	l.gpu.InstanceInfo = &info
	l.gpu.instance = &Instance{Object: l.gpu.newObject("Instance")}
	return l.gpu.instance, nil
}

type Instance struct {
	Object
}

func (i *Instance) EnumeratePhysicalDevices() ([]gpu.PhysicalDevice, error) {
	if err := i.gpu.failure("EnumeratePhysicalDevices"); err != nil {
		return nil, err
	}

	devices := make([]gpu.PhysicalDevice, 0, len(i.gpu.PhysicalDevices))
	for _, device := range i.gpu.PhysicalDevices {
		devices = append(devices, device)
	}
	return devices, nil
}

// SurfaceFactory matches the engine's surface factory signature and returns the fake's surface
func (g *GPU) SurfaceFactory(gpu.Instance) (gpu.Surface, error) {
	if err := g.failure("CreateSurface"); err != nil {
		return nil, err
	}

	g.nextID++
	g.live["Surface"]++
	g.Surface.Object = Object{gpu: g, Kind: "Surface", ID: g.nextID}
	g.record("create %s", g.Surface.Object)
	return g.Surface, nil
}

// NewPhysicalDevice creates a fully capable device with one graphics and present family.
// Callers adjust the returned device before handing it to the code under test.
func (g *GPU) NewPhysicalDevice(name string, deviceType core1_0.PhysicalDeviceType) *PhysicalDevice {
	return &PhysicalDevice{
		gpu:         g,
		Description: gpu.DeviceProperties{Name: name, DriverType: deviceType},
		Supported:   gpu.DeviceFeatures{FillModeNonSolid: true},
		Families: []gpu.QueueFamily{
			{QueueFlags: core1_0.QueueGraphics | core1_0.QueueTransfer, QueueCount: 1},
		},
		Present:        map[int]bool{0: true},
		ExtensionNames: []string{"VK_KHR_swapchain"},
		Memory: []core1_0.MemoryType{
			{PropertyFlags: core1_0.MemoryPropertyDeviceLocal},
			{PropertyFlags: core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent},
		},
	}
}

// PhysicalDevice is a configurable physical device. Present lists the queue families that can
// present to the fake's surface.
type PhysicalDevice struct {
	gpu *GPU

	Description    gpu.DeviceProperties
	Supported      gpu.DeviceFeatures
	Families       []gpu.QueueFamily
	Present        map[int]bool
	ExtensionNames []string
	Memory         []core1_0.MemoryType
}

func (d *PhysicalDevice) Properties() (gpu.DeviceProperties, error) {
	if err := d.gpu.failure("Properties"); err != nil {
		return gpu.DeviceProperties{}, err
	}
	return d.Description, nil
}

func (d *PhysicalDevice) Features() gpu.DeviceFeatures {
	return d.Supported
}

func (d *PhysicalDevice) QueueFamilies() []gpu.QueueFamily {
	return d.Families
}

func (d *PhysicalDevice) Extensions() ([]string, error) {
	return d.ExtensionNames, nil
}

func (d *PhysicalDevice) MemoryTypes() []core1_0.MemoryType {
	return d.Memory
}

func (d *PhysicalDevice) CreateDevice(info gpu.DeviceCreateInfo) (gpu.Device, error) {
	g := d.gpu
	if err := g.failure("CreateDevice"); err != nil {
		return nil, err
	}

	g.DeviceInfo = &info
	g.Device = &Device{Object: g.newObject("Device"), queues: make(map[int]*Queue)}
	return g.Device, nil
}

// Surface is the fake presentation surface. Tests change its fields to simulate resizes and
// format changes.
type Surface struct {
	Object

	SurfaceCapabilities khr_surface.SurfaceCapabilities
	SurfaceFormats      []khr_surface.SurfaceFormat
	SurfacePresentModes []khr_surface.PresentMode
}

func (s *Surface) SupportsPresent(device gpu.PhysicalDevice, queueFamily int) (bool, error) {
	physicalDevice, ok := device.(*PhysicalDevice)
	if !ok {
		return false, errors.Newf("unknown physical device %T", device)
	}
	return physicalDevice.Present[queueFamily], nil
}

func (s *Surface) Capabilities(gpu.PhysicalDevice) (*khr_surface.SurfaceCapabilities, error) {
	caps := s.SurfaceCapabilities
	return &caps, nil
}

func (s *Surface) Formats(gpu.PhysicalDevice) ([]khr_surface.SurfaceFormat, error) {
	return s.SurfaceFormats, nil
}

func (s *Surface) PresentModes(gpu.PhysicalDevice) ([]khr_surface.PresentMode, error) {
	return s.SurfacePresentModes, nil
}

// Resize changes the surface's current extent
func (s *Surface) Resize(width, height int) {
	s.SurfaceCapabilities.CurrentExtent = core1_0.Extent2D{Width: width, Height: height}
}
