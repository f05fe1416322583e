// Package resource creates GPU buffers, binds each one to its own device memory allocation,
// and uploads data to device-local buffers through a staging copy.
package resource

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/vkmol/gpu"
	"github.com/vkngwrapper/vkmol/internal/release"
	"github.com/vkngwrapper/vkmol/internal/utils"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// Allocator owns every Buffer it creates until the buffer is destroyed
type Allocator struct {
	logger        *slog.Logger
	device        gpu.Device
	memoryTypes   []core1_0.MemoryType
	transferQueue gpu.Queue
	commandPool   gpu.CommandPool

	statsMutex utils.OptionalRWMutex
	// typeStats is indexed by memory type
	typeStats []Statistics
	live      *swiss.Map[*Buffer, struct{}]
}

// New creates a new Allocator
//
// physicalDevice - The PhysicalDevice that owns the provided Device. Its memory types are read once.
//
// device - The Device that buffers and memory will be created on
//
// transferQueue, commandPool - The queue and pool used to record and submit staging copies.
// The pool must belong to the queue's family.
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, physicalDevice gpu.PhysicalDevice, device gpu.Device, transferQueue gpu.Queue, commandPool gpu.CommandPool, options CreateOptions) *Allocator {
	logger.Debug("Allocator::New", slog.String("Flags", options.Flags.String()))

	memoryTypes := physicalDevice.MemoryTypes()
	return &Allocator{
		logger:        logger,
		device:        device,
		memoryTypes:   memoryTypes,
		transferQueue: transferQueue,
		commandPool:   commandPool,
		statsMutex:    utils.OptionalRWMutex{UseMutex: options.Flags&CreateExternallySynchronized == 0},
		typeStats:     make([]Statistics, len(memoryTypes)),
		live:          swiss.NewMap[*Buffer, struct{}](8),
	}
}

// FindMemoryType returns the lowest memory type index whose bit is set in typeFilter and whose
// property flags include every flag in properties
func (a *Allocator) FindMemoryType(typeFilter uint32, properties core1_0.MemoryPropertyFlags) (int, error) {
	a.logger.Debug("Allocator::FindMemoryType")

	for typeIndex, memoryType := range a.memoryTypes {
		if typeFilter&(1<<typeIndex) == 0 {
			continue
		}

		if memoryType.PropertyFlags&properties == properties {
			return typeIndex, nil
		}
	}

	return -1, errors.Wrapf(ErrNoMemoryType, "type filter %#x, properties %s", typeFilter, properties)
}

// CreateBuffer creates a buffer with exclusive sharing and binds it to a new allocation of
// the first memory type that fits. Nothing is left behind when it fails.
func (a *Allocator) CreateBuffer(size int, usage core1_0.BufferUsageFlags, properties core1_0.MemoryPropertyFlags) (*Buffer, error) {
	a.logger.Debug("Allocator::CreateBuffer", slog.Int("Size", size), slog.String("Usage", usage.String()))

	if size <= 0 {
		return nil, errors.Newf("buffer size must be positive, got %d", size)
	}

	var cleanup release.Stack
	defer cleanup.Release()

	handle, err := a.device.CreateBuffer(size, usage)
	if err != nil {
		return nil, errors.Wrap(err, "creating buffer")
	}
	cleanup.Push(handle.Destroy)

	requirements := handle.MemoryRequirements()
	alignment := requirements.Alignment
	if alignment < 1 {
		alignment = 1
	}
	err = CheckPow2(alignment, "memory requirements alignment")
	if err != nil {
		return nil, err
	}

	memoryTypeIndex, err := a.FindMemoryType(requirements.MemoryTypeBits, properties)
	if err != nil {
		return nil, err
	}

	allocationSize := AlignUp(requirements.Size, uint(alignment))
	memory, err := a.device.AllocateMemory(allocationSize, memoryTypeIndex)
	if err != nil {
		return nil, errors.Wrapf(err, "allocating %d bytes of memory type %d", allocationSize, memoryTypeIndex)
	}
	cleanup.Push(memory.Free)

	err = handle.BindMemory(memory)
	if err != nil {
		return nil, errors.Wrap(err, "binding buffer memory")
	}

	buffer := &Buffer{
		allocator:       a,
		handle:          handle,
		memory:          memory,
		size:            size,
		allocationSize:  allocationSize,
		memoryTypeIndex: memoryTypeIndex,
		usage:           usage,
		properties:      properties,
	}
	cleanup.Disarm()

	a.register(buffer)
	return buffer, nil
}

// UploadViaStaging creates a device-local buffer usable as dstUsage and fills it with data.
// The data travels through a host-visible staging buffer and a one-time copy submitted to
// the transfer queue. The call waits for the queue to go idle before releasing the staging
// buffer.
func (a *Allocator) UploadViaStaging(dstUsage core1_0.BufferUsageFlags, data []byte) (*Buffer, error) {
	a.logger.Debug("Allocator::UploadViaStaging", slog.Int("Size", len(data)))

	if len(data) == 0 {
		return nil, errors.New("cannot upload an empty buffer")
	}

	staging, err := a.CreateBuffer(len(data), core1_0.BufferUsageTransferSrc,
		core1_0.MemoryPropertyHostVisible|core1_0.MemoryPropertyHostCoherent)
	if err != nil {
		return nil, errors.Wrap(err, "creating staging buffer")
	}
	defer staging.Destroy()

	err = staging.Write(data)
	if err != nil {
		return nil, err
	}

	destination, err := a.CreateBuffer(len(data), dstUsage|core1_0.BufferUsageTransferDst, core1_0.MemoryPropertyDeviceLocal)
	if err != nil {
		return nil, errors.Wrap(err, "creating destination buffer")
	}

	err = a.copyBuffer(staging, destination, len(data))
	if err != nil {
		destination.Destroy()
		return nil, err
	}

	return destination, nil
}

func (a *Allocator) copyBuffer(src, dst *Buffer, size int) error {
	commandBuffers, err := a.commandPool.Allocate(1)
	if err != nil {
		return errors.Wrap(err, "allocating transfer command buffer")
	}
	defer a.commandPool.Free(commandBuffers)

	commandBuffer := commandBuffers[0]
	err = commandBuffer.Begin(core1_0.CommandBufferUsageOneTimeSubmit)
	if err != nil {
		return errors.Wrap(err, "beginning transfer command buffer")
	}

	commandBuffer.CopyBuffer(src.handle, dst.handle, size)

	err = commandBuffer.End()
	if err != nil {
		return errors.Wrap(err, "ending transfer command buffer")
	}

	err = a.transferQueue.Submit(nil, gpu.SubmitInfo{CommandBuffers: commandBuffers})
	if err != nil {
		return errors.Wrap(err, "submitting transfer")
	}

	return errors.Wrap(a.transferQueue.WaitIdle(), "waiting for transfer")
}

func (a *Allocator) register(buffer *Buffer) {
	a.statsMutex.Lock()
	defer a.statsMutex.Unlock()

	a.live.Put(buffer, struct{}{})
	a.typeStats[buffer.memoryTypeIndex].addBuffer(buffer.size, buffer.allocationSize)
	DebugValidate(&a.typeStats[buffer.memoryTypeIndex])
}

func (a *Allocator) unregister(buffer *Buffer) bool {
	a.statsMutex.Lock()
	defer a.statsMutex.Unlock()

	if !a.live.Has(buffer) {
		return false
	}
	a.live.Delete(buffer)

	a.typeStats[buffer.memoryTypeIndex].removeBuffer(buffer.size, buffer.allocationSize)
	DebugValidate(&a.typeStats[buffer.memoryTypeIndex])
	return true
}

// Statistics returns a snapshot of the allocator's live buffers across every memory type
func (a *Allocator) Statistics() Statistics {
	a.statsMutex.RLock()
	defer a.statsMutex.RUnlock()

	var total Statistics
	a.calculateTotal(&total)
	return total
}

// MemoryTypeStatistics returns a snapshot of the live buffers in each memory type, indexed
// by memory type
func (a *Allocator) MemoryTypeStatistics() []Statistics {
	a.statsMutex.RLock()
	defer a.statsMutex.RUnlock()

	return slices.Clone(a.typeStats)
}

func (a *Allocator) calculateTotal(total *Statistics) {
	total.Clear()
	for typeIndex := range a.typeStats {
		total.AddStatistics(&a.typeStats[typeIndex])
	}
}

// BuildStatsString renders the allocator's totals and every live buffer as JSON
func (a *Allocator) BuildStatsString() string {
	a.statsMutex.RLock()
	defer a.statsMutex.RUnlock()

	var stats Statistics
	a.calculateTotal(&stats)

	writer := jwriter.NewWriter()
	root := writer.Object()

	total := root.Name("Total").Object()
	stats.printParameters(&total)
	total.End()

	types := root.Name("MemoryTypes").Array()
	for typeIndex := range a.typeStats {
		if a.typeStats[typeIndex].BufferCount == 0 {
			continue
		}

		obj := types.Object()
		obj.Name("Index").Int(typeIndex)
		obj.Name("Properties").String(a.memoryTypes[typeIndex].PropertyFlags.String())
		a.typeStats[typeIndex].printParameters(&obj)
		obj.End()
	}
	types.End()

	buffers := root.Name("Buffers").Array()
	a.live.Iter(func(buffer *Buffer, _ struct{}) bool {
		obj := buffers.Object()
		buffer.printParameters(&obj)
		obj.End()
		return false
	})
	buffers.End()

	root.End()
	return string(writer.Bytes())
}

func (b *Buffer) printParameters(json *jwriter.ObjectState) {
	json.Name("Size").Int(b.size)
	json.Name("AllocationSize").Int(b.allocationSize)
	json.Name("MemoryType").Int(b.memoryTypeIndex)
	json.Name("Usage").String(b.usage.String())
	json.Name("Properties").String(b.properties.String())
}

// mappedBytes views size bytes of mapped memory as a byte slice
func mappedBytes(data unsafe.Pointer, size int) []byte {
	return unsafe.Slice((*byte)(data), size)
}
