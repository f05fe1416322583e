package resource

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Statistics counts the live buffers owned by an Allocator and the device memory behind them
type Statistics struct {
	BufferCount     int
	AllocationCount int
	// BufferBytes is the sum of the sizes callers asked for
	BufferBytes int
	// AllocationBytes is the sum of the sizes actually allocated, after the driver's
	// size and alignment requirements
	AllocationBytes int
}

func (s *Statistics) Clear() {
	s.BufferCount = 0
	s.AllocationCount = 0
	s.BufferBytes = 0
	s.AllocationBytes = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.BufferCount += other.BufferCount
	s.AllocationCount += other.AllocationCount
	s.BufferBytes += other.BufferBytes
	s.AllocationBytes += other.AllocationBytes
}

func (s *Statistics) printParameters(json *jwriter.ObjectState) {
	json.Name("BufferCount").Int(s.BufferCount)
	json.Name("AllocationCount").Int(s.AllocationCount)
	json.Name("BufferBytes").Int(s.BufferBytes)
	json.Name("AllocationBytes").Int(s.AllocationBytes)
}

func (s *Statistics) addBuffer(size, allocationSize int) {
	s.BufferCount++
	s.AllocationCount++
	s.BufferBytes += size
	s.AllocationBytes += allocationSize
}

func (s *Statistics) removeBuffer(size, allocationSize int) {
	s.BufferCount--
	s.AllocationCount--
	s.BufferBytes -= size
	s.AllocationBytes -= allocationSize
}

func (s *Statistics) Validate() error {
	if s.BufferCount < 0 || s.AllocationCount < 0 {
		return errors.Newf("negative counts: %d buffers, %d allocations", s.BufferCount, s.AllocationCount)
	}

	if s.BufferBytes < 0 || s.AllocationBytes < 0 {
		return errors.Newf("negative byte totals: %d buffer bytes, %d allocation bytes", s.BufferBytes, s.AllocationBytes)
	}

	if s.AllocationBytes < s.BufferBytes {
		return errors.Newf("allocated %d bytes for %d requested bytes", s.AllocationBytes, s.BufferBytes)
	}

	return nil
}
