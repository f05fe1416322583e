package selector

import (
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/vkmol/probe"
	"golang.org/x/exp/slices"
)

// Entry is one scored device
type Entry struct {
	Candidate *probe.Candidate
	Score     int
	// Order is the position of the device in enumeration order
	Order int
}

// Scoreboard keeps entries keyed by score. Several devices may share a score; within a score
// entries keep their insertion order.
type Scoreboard struct {
	buckets *swiss.Map[int, []Entry]
	keys    []int
}

func newScoreboard(capacity int) *Scoreboard {
	return &Scoreboard{
		buckets: swiss.NewMap[int, []Entry](uint32(capacity)),
	}
}

// Insert adds an entry under its score
func (b *Scoreboard) Insert(entry Entry) {
	bucket, ok := b.buckets.Get(entry.Score)
	if !ok {
		index, _ := slices.BinarySearch(b.keys, entry.Score)
		b.keys = slices.Insert(b.keys, index, entry.Score)
	}

	b.buckets.Put(entry.Score, append(bucket, entry))
}

// Len returns the number of entries on the board
func (b *Scoreboard) Len() int {
	count := 0
	b.buckets.Iter(func(_ int, bucket []Entry) bool {
		count += len(bucket)
		return false
	})
	return count
}

// Ascending returns every entry in ascending score order
func (b *Scoreboard) Ascending() []Entry {
	entries := make([]Entry, 0, len(b.keys))
	for _, score := range b.keys {
		bucket, _ := b.buckets.Get(score)
		entries = append(entries, bucket...)
	}
	return entries
}

// Top returns the first-inserted entry with the highest score
func (b *Scoreboard) Top() (Entry, bool) {
	if len(b.keys) == 0 {
		return Entry{}, false
	}

	bucket, _ := b.buckets.Get(b.keys[len(b.keys)-1])
	return bucket[0], true
}

// BuildStatsString renders the board as a JSON array in ascending score order
func (b *Scoreboard) BuildStatsString() string {
	writer := jwriter.NewWriter()

	arr := writer.Array()
	for _, entry := range b.Ascending() {
		obj := arr.Object()
		obj.Name("Name").String(entry.Candidate.Properties.Name)
		obj.Name("Type").String(deviceTypeName(entry.Candidate.Properties.DriverType))
		obj.Name("Order").Int(entry.Order)
		obj.Name("Score").Int(entry.Score)
		obj.Name("QueueFamiliesComplete").Bool(entry.Candidate.Indices.IsComplete())
		obj.Name("ExtensionCount").Int(entry.Candidate.Extensions.Len())
		obj.End()
	}
	arr.End()

	return string(writer.Bytes())
}

func deviceTypeName(deviceType core1_0.PhysicalDeviceType) string {
	switch deviceType {
	case core1_0.PhysicalDeviceTypeDiscreteGPU:
		return "DiscreteGPU"
	case core1_0.PhysicalDeviceTypeIntegratedGPU:
		return "IntegratedGPU"
	case core1_0.PhysicalDeviceTypeVirtualGPU:
		return "VirtualGPU"
	case core1_0.PhysicalDeviceTypeCPU:
		return "CPU"
	}
	return "Other"
}
