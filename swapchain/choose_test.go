package swapchain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/vkmol/swapchain"
)

var (
	bgraUnorm = khr_surface.SurfaceFormat{Format: core1_0.FormatB8G8R8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear}
	bgraSRGB  = khr_surface.SurfaceFormat{Format: core1_0.FormatB8G8R8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear}
	rgbaSRGB  = khr_surface.SurfaceFormat{Format: core1_0.FormatR8G8B8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear}
)

var surfaceFormatTestCases = map[string]struct {
	Formats  []khr_surface.SurfaceFormat
	Expected khr_surface.SurfaceFormat
}{
	"UndefinedMeansNoPreference": {
		Formats:  []khr_surface.SurfaceFormat{{Format: core1_0.FormatUndefined, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear}},
		Expected: swapchain.PreferredSurfaceFormat,
	},
	"PreferredAvailable": {
		Formats:  []khr_surface.SurfaceFormat{bgraSRGB, rgbaSRGB, bgraUnorm},
		Expected: bgraUnorm,
	},
	"PreferredMissing": {
		Formats:  []khr_surface.SurfaceFormat{rgbaSRGB, bgraSRGB},
		Expected: rgbaSRGB,
	},
	"SingleNonPreferred": {
		Formats:  []khr_surface.SurfaceFormat{bgraSRGB},
		Expected: bgraSRGB,
	},
	"UndefinedAmongOthers": {
		Formats:  []khr_surface.SurfaceFormat{{Format: core1_0.FormatUndefined}, rgbaSRGB},
		Expected: khr_surface.SurfaceFormat{Format: core1_0.FormatUndefined},
	},
}

func TestChooseSurfaceFormat(t *testing.T) {
	for testName, testCase := range surfaceFormatTestCases {
		t.Run(testName, func(t *testing.T) {
			require.Equal(t, testCase.Expected, swapchain.ChooseSurfaceFormat(testCase.Formats))
		})
	}
}

var presentModeTestCases = map[string]struct {
	Modes    []khr_surface.PresentMode
	Expected khr_surface.PresentMode
}{
	"MailboxPreferred": {
		Modes:    []khr_surface.PresentMode{khr_surface.PresentModeFIFO, khr_surface.PresentModeImmediate, khr_surface.PresentModeMailbox},
		Expected: khr_surface.PresentModeMailbox,
	},
	"FIFOOnly": {
		Modes:    []khr_surface.PresentMode{khr_surface.PresentModeFIFO},
		Expected: khr_surface.PresentModeFIFO,
	},
	"ImmediateIsNotChosen": {
		Modes:    []khr_surface.PresentMode{khr_surface.PresentModeImmediate, khr_surface.PresentModeFIFO},
		Expected: khr_surface.PresentModeFIFO,
	},
}

func TestChoosePresentMode(t *testing.T) {
	for testName, testCase := range presentModeTestCases {
		t.Run(testName, func(t *testing.T) {
			require.Equal(t, testCase.Expected, swapchain.ChoosePresentMode(testCase.Modes))
		})
	}
}

var extentTestCases = map[string]struct {
	Current      core1_0.Extent2D
	WindowWidth  int
	WindowHeight int

	Expected core1_0.Extent2D
}{
	"DefinedExtentWins": {
		Current:      core1_0.Extent2D{Width: 1280, Height: 720},
		WindowWidth:  640,
		WindowHeight: 480,
		Expected:     core1_0.Extent2D{Width: 1280, Height: 720},
	},
	"UndefinedUsesWindow": {
		Current:      core1_0.Extent2D{Width: -1, Height: -1},
		WindowWidth:  640,
		WindowHeight: 480,
		Expected:     core1_0.Extent2D{Width: 640, Height: 480},
	},
	"UndefinedClampsHigh": {
		Current:      core1_0.Extent2D{Width: -1, Height: -1},
		WindowWidth:  9000,
		WindowHeight: 3000,
		Expected:     core1_0.Extent2D{Width: 4096, Height: 2048},
	},
	"UndefinedClampsLow": {
		Current:      core1_0.Extent2D{Width: -1, Height: -1},
		WindowWidth:  0,
		WindowHeight: 10,
		Expected:     core1_0.Extent2D{Width: 16, Height: 16},
	},
}

func TestChooseExtent(t *testing.T) {
	for testName, testCase := range extentTestCases {
		t.Run(testName, func(t *testing.T) {
			caps := &khr_surface.SurfaceCapabilities{
				CurrentExtent:  testCase.Current,
				MinImageExtent: core1_0.Extent2D{Width: 16, Height: 16},
				MaxImageExtent: core1_0.Extent2D{Width: 4096, Height: 2048},
			}
			require.Equal(t, testCase.Expected, swapchain.ChooseExtent(caps, testCase.WindowWidth, testCase.WindowHeight))
		})
	}
}

func TestImageCount(t *testing.T) {
	require.Equal(t, 3, swapchain.ImageCount(&khr_surface.SurfaceCapabilities{MinImageCount: 2}))
	require.Equal(t, 3, swapchain.ImageCount(&khr_surface.SurfaceCapabilities{MinImageCount: 2, MaxImageCount: 8}))
	require.Equal(t, 2, swapchain.ImageCount(&khr_surface.SurfaceCapabilities{MinImageCount: 2, MaxImageCount: 2}))
	require.Equal(t, 1, swapchain.ImageCount(&khr_surface.SurfaceCapabilities{MinImageCount: 0, MaxImageCount: 0}))
}

func TestPipelineVariant(t *testing.T) {
	require.Equal(t, "Solid", swapchain.PipelineSolid.String())
	require.Equal(t, "Wireframe", swapchain.PipelineWireframe.String())
	require.Equal(t, "PipelineVariant(7)", swapchain.PipelineVariant(7).String())

	require.Equal(t, swapchain.PipelineWireframe, swapchain.PipelineSolid.Next())
	require.Equal(t, swapchain.PipelineSolid, swapchain.PipelineWireframe.Next())

	require.True(t, swapchain.PipelineWireframe.Valid())
	require.False(t, swapchain.PipelineVariant(-1).Valid())

	variant, ok := swapchain.ParsePipelineVariant("Wireframe")
	require.True(t, ok)
	require.Equal(t, swapchain.PipelineWireframe, variant)

	_, ok = swapchain.ParsePipelineVariant("Points")
	require.False(t, ok)
}
