// Package app wires the screensaver together and runs the frame loop.
package app

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ornament/internal/config"
	"github.com/Faultbox/ornament/internal/engine/camera"
	"github.com/Faultbox/ornament/internal/engine/input"
	"github.com/Faultbox/ornament/internal/engine/renderer"
	"github.com/Faultbox/ornament/internal/engine/window"
	"github.com/Faultbox/ornament/internal/logger"
	"github.com/Faultbox/ornament/internal/ornament"
)

// maxFrameDt clamps dt after a stall (debugger pause, display sleep) so a
// single frame never fast-forwards the animation.
const maxFrameDt = 0.1

// surface is one target monitor's window, GL context, renderer, and the
// group of instance indices drawn on it.
type surface struct {
	window   *window.Window
	renderer *renderer.Renderer
	group    []int
	closed   bool
}

// App is the running screensaver: all ornament instances, one surface per
// referenced monitor, and the shared camera and animator.
type App struct {
	config    *config.Config
	camera    *camera.Camera
	input     *input.Input
	animator  *ornament.Animator
	instances []*ornament.Instance
	surfaces  []*surface
	running   bool
}

// New builds the screensaver from the loaded configuration: parses the
// ornament entries, enumerates displays, creates one borderless window and
// renderer per referenced monitor, and instantiates every ornament.
func New(cfg *config.Config) (*App, error) {
	for _, err := range cfg.Warnings() {
		logger.Warn("config problem", zap.Error(err))
	}
	entries, dropped := cfg.Entries()
	for _, err := range dropped {
		logger.Warn("skipping invalid ornament entry", zap.Error(err))
	}

	if err := window.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize video: %w", err)
	}

	displays, err := window.Displays()
	if err != nil {
		window.Quit()
		return nil, err
	}
	logger.Info("displays enumerated", zap.Int("count", len(displays)))

	a := &App{
		config:   cfg,
		camera:   camera.New(),
		input:    input.New(),
		animator: ornament.NewAnimator(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	placer := ornament.NewPlacer()
	a.instances = make([]*ornament.Instance, 0, len(entries))
	for _, e := range entries {
		screen := clampScreen(e.Screen, len(displays))
		offset := placer.Place(e.Anchor, screen)
		a.instances = append(a.instances, ornament.NewInstance(e, offset, rng))
		logger.Debug("ornament created",
			zap.Stringer("shape", e.Shape),
			zap.Stringer("color", e.Color),
			zap.Stringer("position", e.Anchor),
			zap.Int("screen", screen),
		)
	}

	// One surface per referenced monitor. A monitor that fails is skipped
	// so the remaining displays still get their ornaments; only zero
	// usable surfaces is fatal.
	for _, idx := range ornament.Monitors(entries, len(displays)) {
		w, err := window.New(displays[idx], cfg.Graphics.VSync)
		if err != nil {
			logger.Error("failed to create window, skipping display", zap.Int("display", idx), zap.Error(err))
			continue
		}

		// Renderer creation needs this window's context current
		if err := w.MakeCurrent(); err != nil {
			logger.Error("failed to activate context, skipping display", zap.Int("display", idx), zap.Error(err))
			w.Close()
			continue
		}
		r, err := renderer.New(renderer.Config{
			Brightness: cfg.Graphics.Brightness,
			Thickness:  cfg.Graphics.Thickness,
		})
		if err != nil {
			logger.Error("failed to create renderer, skipping display", zap.Int("display", idx), zap.Error(err))
			w.Close()
			continue
		}

		a.surfaces = append(a.surfaces, &surface{window: w, renderer: r})
	}
	if len(a.surfaces) == 0 {
		a.Close()
		return nil, fmt.Errorf("no render surface could be created")
	}

	for i, group := range ornament.Distribute(len(a.instances), len(a.surfaces)) {
		a.surfaces[i].group = group
	}

	logger.Info("screensaver initialized",
		zap.Int("ornaments", len(a.instances)),
		zap.Int("surfaces", len(a.surfaces)),
	)
	return a, nil
}

// Run drives the frame loop until quit is requested or every window has
// been closed.
func (a *App) Run() error {
	a.running = true

	var frameDur time.Duration
	if !a.config.Graphics.VSync && a.config.Graphics.FPSLimit > 0 {
		frameDur = time.Second / time.Duration(a.config.Graphics.FPSLimit)
	}

	start := time.Now()
	last := start

	for a.running {
		frameStart := time.Now()
		dt := float32(frameStart.Sub(last).Seconds())
		last = frameStart
		if dt > maxFrameDt {
			dt = maxFrameDt
		}

		// 1. Process input
		if a.input.Update() {
			break
		}
		for _, event := range a.input.Events() {
			if event.Type == input.EventWindowClose {
				a.markClosed(event.WindowID)
			}
		}
		if a.allClosed() {
			break
		}

		// 2. Advance animation
		for _, o := range a.instances {
			a.animator.Advance(o, dt)
		}

		// 3. Render every open surface
		elapsed := frameStart.Sub(start).Seconds()
		for _, s := range a.surfaces {
			if s.closed {
				continue
			}
			if err := s.window.MakeCurrent(); err != nil {
				logger.Error("failed to activate context",
					zap.Int("display", s.window.Display().Index),
					zap.Error(err),
				)
				s.closed = true
				continue
			}
			width, height := s.window.DrawableSize()
			s.renderer.Begin(width, height)
			cmds := ornament.BuildDrawList(a.instances, s.group, elapsed)
			s.renderer.Draw(cmds, a.camera.ViewProjection(width, height))
			s.window.SwapBuffers()
		}

		// 4. Frame cap, when vsync is not already pacing us
		if frameDur > 0 {
			if sleep := frameDur - time.Since(frameStart); sleep > 0 {
				time.Sleep(sleep)
			}
		}
	}

	a.running = false
	return nil
}

// Close releases every surface and shuts SDL down.
func (a *App) Close() {
	for _, s := range a.surfaces {
		if s.renderer != nil {
			if err := s.window.MakeCurrent(); err == nil {
				s.renderer.Close()
			}
		}
		s.window.Close()
	}
	a.surfaces = nil
	window.Quit()
}

func (a *App) markClosed(windowID uint32) {
	for _, s := range a.surfaces {
		if s.window.ID() == windowID {
			s.closed = true
			logger.Info("window closed", zap.Int("display", s.window.Display().Index))
		}
	}
}

func (a *App) allClosed() bool {
	for _, s := range a.surfaces {
		if !s.closed {
			return false
		}
	}
	return true
}

func clampScreen(idx, monitorCount int) int {
	if idx < 0 {
		return 0
	}
	if idx >= monitorCount {
		return monitorCount - 1
	}
	return idx
}
