// Command vkmol opens a window and renders a spinning quad with the vkmol engine. Press space
// to switch between the solid and wireframe pipelines.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v2"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v2"
	"github.com/vkngwrapper/vkmol/engine"
	"github.com/vkngwrapper/vkmol/gpu/vkng"
	"golang.org/x/exp/slog"
)

func init() {
	// SDL must be driven from the thread that initialized it
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("Could not load config", slog.Any("error", err))
		os.Exit(1)
	}

	level := slog.LevelInfo
	if config.Validation.Trace {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = run(ctx, logger, config)
	stop()
	if err != nil {
		logger.Error("vkmol exited with an error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, config fileConfig) error {
	engineConfig, err := config.engineConfig()
	if err != nil {
		return err
	}

	engineConfig.VertexShader, err = os.ReadFile(config.Shaders.Vertex)
	if err != nil {
		return errors.Wrap(err, "reading vertex shader")
	}

	engineConfig.FragmentShader, err = os.ReadFile(config.Shaders.Fragment)
	if err != nil {
		return errors.Wrap(err, "reading fragment shader")
	}

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return errors.Wrap(err, "initializing sdl")
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(engineConfig.AppName, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		config.Window.Width, config.Window.Height, sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	defer window.Destroy()

	loader, err := core.CreateLoaderFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return errors.Wrap(err, "creating vulkan loader")
	}

	engineConfig.InstanceExtensions = window.VulkanGetInstanceExtensions()
	engineConfig.WindowSize = func() (int, int) {
		width, height := window.VulkanGetDrawableSize()
		return int(width), int(height)
	}
	engineConfig.SurfaceFactory = vkng.SurfaceFactory(func(instance core1_0.Instance, extension khr_surface.Extension) (khr_surface.Surface, error) {
		return vkng_sdl2.CreateSurface(instance, extension, window)
	})

	e := engine.New(logger, vkng.NewLoader(logger, loader), engineConfig)
	err = e.Initialize()
	if err != nil {
		return err
	}
	defer e.Destroy()

	w := &windowLoop{
		ctx:    ctx,
		logger: logger,
		window: window,
		engine: e,
	}
	err = e.Run(ctx, w.poll)
	if err != nil {
		return err
	}
	if w.err != nil {
		return w.err
	}

	logger.Info("Exiting", slog.Int("Frames", e.Frames()))
	return nil
}
