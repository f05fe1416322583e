package resource

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/vkmol/gpu"
	"golang.org/x/exp/slog"
)

// Buffer is a buffer handle bound to its own dedicated memory allocation. Both are owned by
// the Buffer and released together by Destroy.
type Buffer struct {
	allocator *Allocator

	handle          gpu.Buffer
	memory          gpu.DeviceMemory
	size            int
	allocationSize  int
	memoryTypeIndex int
	usage           core1_0.BufferUsageFlags
	properties      core1_0.MemoryPropertyFlags
}

// Handle returns the underlying buffer handle for binding and copy commands
func (b *Buffer) Handle() gpu.Buffer {
	return b.handle
}

// Size returns the number of bytes requested when the buffer was created
func (b *Buffer) Size() int {
	return b.size
}

func (b *Buffer) Usage() core1_0.BufferUsageFlags {
	return b.usage
}

func (b *Buffer) MemoryProperties() core1_0.MemoryPropertyFlags {
	return b.properties
}

func (b *Buffer) MemoryTypeIndex() int {
	return b.memoryTypeIndex
}

// Write copies data to the start of the buffer. The memory is mapped for the duration of the
// copy only, so the buffer must be host visible.
func (b *Buffer) Write(data []byte) error {
	if b.properties&core1_0.MemoryPropertyHostVisible == 0 {
		return errors.Newf("cannot map buffer with memory properties %s", b.properties)
	}

	if len(data) > b.size {
		return errors.Newf("cannot write %d bytes to a buffer of %d bytes", len(data), b.size)
	}

	if len(data) == 0 {
		return nil
	}

	ptr, err := b.memory.Map(0, len(data))
	if err != nil {
		return errors.Wrap(err, "mapping buffer memory")
	}
	defer b.memory.Unmap()

	copy(mappedBytes(ptr, len(data)), data)
	return nil
}

// Validate reports whether the buffer is still owned by its allocator
func (b *Buffer) Validate() error {
	b.allocator.statsMutex.RLock()
	defer b.allocator.statsMutex.RUnlock()

	if !b.allocator.live.Has(b) {
		return errors.New("buffer has already been destroyed")
	}
	return nil
}

// Destroy releases the buffer handle and then its memory. Destroying a buffer twice is a
// no-op, and panics in debug_vkmol builds.
func (b *Buffer) Destroy() {
	DebugValidate(b)

	if !b.allocator.unregister(b) {
		return
	}

	b.allocator.logger.Debug("Buffer::Destroy", slog.Int("Size", b.size))
	b.handle.Destroy()
	b.memory.Free()
}
