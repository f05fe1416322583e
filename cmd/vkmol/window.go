package main

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/vkmol/engine"
	"golang.org/x/exp/slog"
)

// windowLoop pumps SDL events between frames
type windowLoop struct {
	ctx    context.Context
	logger *slog.Logger
	window *sdl.Window
	engine *engine.Engine

	minimized bool
	err       error
}

// poll handles every pending event and reports whether the engine should draw another frame.
// While the window is minimized it blocks on the event queue instead of drawing.
func (l *windowLoop) poll() bool {
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if !l.handle(event) {
				return false
			}
		}

		if !l.minimized {
			return true
		}

		event := sdl.WaitEventTimeout(100)
		if event != nil && !l.handle(event) {
			return false
		}

		if l.ctx.Err() != nil {
			return false
		}
	}
}

func (l *windowLoop) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return false
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 && e.Keysym.Sym == sdl.K_SPACE {
			return l.togglePipeline()
		}
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_MINIMIZED:
			l.minimized = true
		case sdl.WINDOWEVENT_RESTORED:
			l.minimized = false
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return l.resize()
		}
	}

	return true
}

func (l *windowLoop) resize() bool {
	width, height := l.window.VulkanGetDrawableSize()
	if width == 0 || height == 0 {
		l.minimized = true
		return true
	}
	l.minimized = false

	l.logger.Info("Window resized", slog.Int("Width", int(width)), slog.Int("Height", int(height)))
	l.err = l.engine.Resize(l.ctx)
	return l.err == nil
}

func (l *windowLoop) togglePipeline() bool {
	next := l.engine.ActivePipeline().Next()
	l.logger.Info("Switching pipeline", slog.String("Pipeline", next.String()))

	l.err = l.engine.SetActivePipeline(l.ctx, next)
	return l.err == nil
}
