package probe_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/vkmol/gpu"
	mock_gpu "github.com/vkngwrapper/vkmol/gpu/mocks"
	"github.com/vkngwrapper/vkmol/probe"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int {
	return &i
}

var queueFamilyTestCases = map[string]struct {
	Families       []gpu.QueueFamily
	PresentSupport []bool

	ExpectedGraphics *int
	ExpectedPresent  *int
	ExpectedQueries  int
}{
	"SharedFamily": {
		Families: []gpu.QueueFamily{
			{QueueFlags: core1_0.QueueGraphics | core1_0.QueueTransfer, QueueCount: 1},
			{QueueFlags: core1_0.QueueCompute, QueueCount: 1},
		},
		PresentSupport:   []bool{true, true},
		ExpectedGraphics: intPtr(0),
		ExpectedPresent:  intPtr(0),
		ExpectedQueries:  1,
	},
	"DistinctFamilies": {
		Families: []gpu.QueueFamily{
			{QueueFlags: core1_0.QueueGraphics, QueueCount: 1},
			{QueueFlags: core1_0.QueueTransfer, QueueCount: 1},
		},
		PresentSupport:   []bool{false, true},
		ExpectedGraphics: intPtr(0),
		ExpectedPresent:  intPtr(1),
		ExpectedQueries:  2,
	},
	"EmptyFamilySkipped": {
		Families: []gpu.QueueFamily{
			{QueueFlags: core1_0.QueueGraphics, QueueCount: 0},
			{QueueFlags: core1_0.QueueGraphics, QueueCount: 2},
		},
		PresentSupport:   []bool{true, true},
		ExpectedGraphics: intPtr(1),
		ExpectedPresent:  intPtr(1),
		ExpectedQueries:  2,
	},
	"NoPresent": {
		Families: []gpu.QueueFamily{
			{QueueFlags: core1_0.QueueGraphics, QueueCount: 1},
			{QueueFlags: core1_0.QueueCompute, QueueCount: 1},
		},
		PresentSupport:   []bool{false, false},
		ExpectedGraphics: intPtr(0),
		ExpectedQueries:  2,
	},
	"NoFamilies": {},
}

func TestFindQueueFamilies(t *testing.T) {
	for testName, testCase := range queueFamilyTestCases {
		t.Run(testName, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			device := mock_gpu.NewMockPhysicalDevice(ctrl)
			surface := mock_gpu.NewMockSurface(ctrl)

			device.EXPECT().QueueFamilies().Return(testCase.Families)
			for i := 0; i < testCase.ExpectedQueries; i++ {
				surface.EXPECT().SupportsPresent(device, i).Return(testCase.PresentSupport[i], nil)
			}

			indices, err := probe.FindQueueFamilies(device, surface)
			require.NoError(t, err)
			require.Equal(t, testCase.ExpectedGraphics, indices.Graphics)
			require.Equal(t, testCase.ExpectedPresent, indices.Present)
			require.Equal(t, testCase.ExpectedGraphics != nil && testCase.ExpectedPresent != nil, indices.IsComplete())
		})
	}
}

func TestFindQueueFamilies_QueryError(t *testing.T) {
	ctrl := gomock.NewController(t)

	device := mock_gpu.NewMockPhysicalDevice(ctrl)
	surface := mock_gpu.NewMockSurface(ctrl)

	device.EXPECT().QueueFamilies().Return([]gpu.QueueFamily{
		{QueueFlags: core1_0.QueueGraphics, QueueCount: 1},
	})
	surface.EXPECT().SupportsPresent(device, 0).Return(false, errors.New("surface lost"))

	_, err := probe.FindQueueFamilies(device, surface)
	require.Error(t, err)
	require.True(t, errors.Is(err, probe.ErrQuery))
}

func TestQueueFamilyIndices_Unique(t *testing.T) {
	shared := probe.QueueFamilyIndices{Graphics: intPtr(2), Present: intPtr(2)}
	require.Equal(t, []int{2}, shared.Unique())
	require.True(t, shared.Shared())

	distinct := probe.QueueFamilyIndices{Graphics: intPtr(0), Present: intPtr(1)}
	require.Equal(t, []int{0, 1}, distinct.Unique())
	require.False(t, distinct.Shared())

	partial := probe.QueueFamilyIndices{Present: intPtr(3)}
	require.Equal(t, []int{3}, partial.Unique())
	require.False(t, partial.Shared())
}

func TestExtensionSet(t *testing.T) {
	set := probe.NewExtensionSet([]string{"VK_KHR_swapchain", "VK_KHR_portability_subset"})
	require.Equal(t, 2, set.Len())
	require.True(t, set.Has("VK_KHR_swapchain"))
	require.False(t, set.Has("VK_KHR_maintenance4"))
	require.Equal(t, []string{"VK_KHR_maintenance4"}, set.Missing([]string{"VK_KHR_swapchain", "VK_KHR_maintenance4"}))
	require.Empty(t, set.Missing(nil))

	var empty probe.ExtensionSet
	require.False(t, empty.Has("VK_KHR_swapchain"))
	require.Equal(t, 0, empty.Len())
}

func TestQuerySwapchainSupport(t *testing.T) {
	ctrl := gomock.NewController(t)

	device := mock_gpu.NewMockPhysicalDevice(ctrl)
	surface := mock_gpu.NewMockSurface(ctrl)

	caps := &khr_surface.SurfaceCapabilities{MinImageCount: 2, MaxImageCount: 3}
	formats := []khr_surface.SurfaceFormat{{Format: core1_0.FormatB8G8R8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear}}
	modes := []khr_surface.PresentMode{khr_surface.PresentModeFIFO}

	surface.EXPECT().Capabilities(device).Return(caps, nil)
	surface.EXPECT().Formats(device).Return(formats, nil)
	surface.EXPECT().PresentModes(device).Return(modes, nil)

	support, err := probe.QuerySwapchainSupport(device, surface)
	require.NoError(t, err)
	require.Same(t, caps, support.Capabilities)
	require.Equal(t, formats, support.Formats)
	require.Equal(t, modes, support.PresentModes)
	require.True(t, support.Adequate())
}

func TestQuerySwapchainSupport_EmptyIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)

	device := mock_gpu.NewMockPhysicalDevice(ctrl)
	surface := mock_gpu.NewMockSurface(ctrl)

	surface.EXPECT().Capabilities(device).Return(&khr_surface.SurfaceCapabilities{}, nil)
	surface.EXPECT().Formats(device).Return(nil, nil)
	surface.EXPECT().PresentModes(device).Return(nil, nil)

	support, err := probe.QuerySwapchainSupport(device, surface)
	require.NoError(t, err)
	require.False(t, support.Adequate())
}

func TestQuerySwapchainSupport_FormatsError(t *testing.T) {
	ctrl := gomock.NewController(t)

	device := mock_gpu.NewMockPhysicalDevice(ctrl)
	surface := mock_gpu.NewMockSurface(ctrl)

	surface.EXPECT().Capabilities(device).Return(&khr_surface.SurfaceCapabilities{}, nil)
	surface.EXPECT().Formats(device).Return(nil, errors.New("out of host memory"))

	_, err := probe.QuerySwapchainSupport(device, surface)
	require.True(t, errors.Is(err, probe.ErrQuery))
}

func TestProbe_SkipsSupportForIncompleteFamilies(t *testing.T) {
	ctrl := gomock.NewController(t)

	device := mock_gpu.NewMockPhysicalDevice(ctrl)
	surface := mock_gpu.NewMockSurface(ctrl)

	device.EXPECT().Properties().Return(gpu.DeviceProperties{Name: "llvmpipe", DriverType: core1_0.PhysicalDeviceTypeCPU}, nil)
	device.EXPECT().Features().Return(gpu.DeviceFeatures{FillModeNonSolid: true})
	device.EXPECT().QueueFamilies().Return([]gpu.QueueFamily{{QueueFlags: core1_0.QueueCompute, QueueCount: 1}})
	device.EXPECT().Extensions().Return([]string{"VK_KHR_swapchain"}, nil)
	surface.EXPECT().SupportsPresent(device, 0).Return(false, nil)

	candidate, err := probe.Probe(device, surface)
	require.NoError(t, err)
	require.Equal(t, "llvmpipe", candidate.Properties.Name)
	require.False(t, candidate.Indices.IsComplete())
	require.True(t, candidate.Extensions.Has("VK_KHR_swapchain"))
	require.Nil(t, candidate.Support.Capabilities)
}

func TestProbe_PropertiesError(t *testing.T) {
	ctrl := gomock.NewController(t)

	device := mock_gpu.NewMockPhysicalDevice(ctrl)
	surface := mock_gpu.NewMockSurface(ctrl)

	device.EXPECT().Properties().Return(gpu.DeviceProperties{}, errors.New("initialization failed"))

	_, err := probe.Probe(device, surface)
	require.True(t, errors.Is(err, probe.ErrQuery))
}
