// Package selector chooses the physical device vkmol renders with.
package selector

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/vkmol/gpu"
	"github.com/vkngwrapper/vkmol/probe"
	"golang.org/x/exp/slog"
)

// ErrDeviceInitializationFailed is returned when no enumerated device is viable
var ErrDeviceInitializationFailed = errors.New("device initialization failed: no suitable device")

const (
	baselineScore   = 1
	discreteBonus   = 1000
	integratedBonus = 100
)

// Score rates a probed device. Zero means the device cannot be used: its queue families are
// incomplete, it lacks a required extension, the surface offers it no formats or present modes,
// or it cannot rasterize in non-solid fill modes. Viable devices start at 1 and gain a bonus by
// device type.
func Score(candidate *probe.Candidate, requiredExtensions []string) int {
	if !candidate.Indices.IsComplete() {
		return 0
	}

	if len(candidate.Extensions.Missing(requiredExtensions)) > 0 {
		return 0
	}

	if !candidate.Support.Adequate() {
		return 0
	}

	if !candidate.Features.FillModeNonSolid {
		return 0
	}

	score := baselineScore
	switch candidate.Properties.DriverType {
	case core1_0.PhysicalDeviceTypeDiscreteGPU:
		score += discreteBonus
	case core1_0.PhysicalDeviceTypeIntegratedGPU:
		score += integratedBonus
	}

	return score
}

// Selector scores and picks physical devices against a surface
type Selector struct {
	logger             *slog.Logger
	requiredExtensions []string
}

// New creates a Selector that requires the listed device extensions on every viable device
func New(logger *slog.Logger, requiredExtensions []string) *Selector {
	return &Selector{
		logger:             logger,
		requiredExtensions: requiredExtensions,
	}
}

// Rank probes and scores every device. A query error on any device aborts ranking.
func (s *Selector) Rank(devices []gpu.PhysicalDevice, surface gpu.Surface) (*Scoreboard, error) {
	s.logger.Debug("Selector::Rank", slog.Int("Devices", len(devices)))

	board := newScoreboard(len(devices))
	for order, device := range devices {
		candidate, err := probe.Probe(device, surface)
		if err != nil {
			return nil, errors.Wrapf(err, "probing device %d", order)
		}

		board.Insert(Entry{
			Candidate: candidate,
			Score:     Score(candidate, s.requiredExtensions),
			Order:     order,
		})
	}

	return board, nil
}

// Select returns the highest scoring device. When several devices share the top score, the
// one enumerated first wins. If no device is viable, Select returns
// ErrDeviceInitializationFailed.
func (s *Selector) Select(devices []gpu.PhysicalDevice, surface gpu.Surface) (*probe.Candidate, error) {
	board, err := s.Rank(devices, surface)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Device scoreboard", slog.String("Candidates", board.BuildStatsString()))

	top, ok := board.Top()
	if !ok || top.Score <= 0 {
		return nil, errors.Wrapf(ErrDeviceInitializationFailed, "%d devices enumerated", len(devices))
	}

	s.logger.Info("Selected physical device",
		slog.String("Name", top.Candidate.Properties.Name),
		slog.Int("Score", top.Score),
	)

	return top.Candidate, nil
}
