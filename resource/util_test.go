package resource

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	require.Equal(t, 0, AlignUp(0, 16))
	require.Equal(t, 16, AlignUp(1, 16))
	require.Equal(t, 16, AlignUp(16, 16))
	require.Equal(t, 128, AlignUp(100, 64))
	require.Equal(t, 7, AlignUp(7, 1))
	require.Equal(t, 7, AlignUp(7, 0))
}

func TestCheckPow2(t *testing.T) {
	require.NoError(t, CheckPow2(1, "one"))
	require.NoError(t, CheckPow2(256, "block"))
	require.NoError(t, CheckPow2(uint(4096), "page"))

	err := CheckPow2(48, "alignment")
	require.True(t, errors.Is(err, PowerOfTwoError))
	require.ErrorContains(t, err, "alignment is 48")
}

func TestStatistics(t *testing.T) {
	var stats Statistics
	stats.addBuffer(100, 128)
	stats.addBuffer(6, 16)
	require.NoError(t, stats.Validate())

	total := Statistics{BufferCount: 1, AllocationCount: 1, BufferBytes: 10, AllocationBytes: 16}
	total.AddStatistics(&stats)
	require.Equal(t, Statistics{BufferCount: 3, AllocationCount: 3, BufferBytes: 116, AllocationBytes: 160}, total)

	stats.removeBuffer(100, 128)
	stats.removeBuffer(6, 16)
	require.Equal(t, Statistics{}, stats)

	stats.removeBuffer(6, 16)
	require.Error(t, stats.Validate())

	stats.Clear()
	require.NoError(t, stats.Validate())
}
