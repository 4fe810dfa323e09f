// Package window handles SDL2 window and OpenGL context creation, one
// borderless window per target display.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/ornament/internal/logger"
	"go.uber.org/zap"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Display describes one attached monitor: its SDL display index, native
// resolution, and origin in the global desktop space.
type Display struct {
	Index  int
	X, Y   int32
	Width  int32
	Height int32
}

// Init initializes SDL2 video and sets the OpenGL context attributes.
// Call once, before Displays or New.
func Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	// Alpha channel in the default framebuffer for the transparent clear
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	return nil
}

// Quit shuts SDL2 down. Call after every window has been closed.
func Quit() {
	sdl.Quit()
}

// Displays enumerates the attached monitors.
func Displays() ([]Display, error) {
	n, err := sdl.GetNumVideoDisplays()
	if err != nil {
		return nil, fmt.Errorf("SDL_GetNumVideoDisplays failed: %w", err)
	}
	if n <= 0 {
		return nil, fmt.Errorf("no displays found")
	}

	displays := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		bounds, err := sdl.GetDisplayBounds(i)
		if err != nil {
			return nil, fmt.Errorf("SDL_GetDisplayBounds(%d) failed: %w", i, err)
		}
		displays = append(displays, Display{
			Index:  i,
			X:      bounds.X,
			Y:      bounds.Y,
			Width:  bounds.W,
			Height: bounds.H,
		})
	}
	return displays, nil
}

// Window wraps one SDL2 window and its OpenGL context.
type Window struct {
	display   Display
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	id        uint32
}

// New creates a borderless, always-on-top window covering the given display.
func New(d Display, vsync bool) (*Window, error) {
	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_BORDERLESS | sdl.WINDOW_ALWAYS_ON_TOP | sdl.WINDOW_ALLOW_HIGHDPI)

	sdlWindow, err := sdl.CreateWindow(
		"Ornament",
		d.X,
		d.Y,
		d.Width,
		d.Height,
		flags,
	)
	if err != nil {
		return nil, fmt.Errorf("SDL_CreateWindow failed for display %d: %w", d.Index, err)
	}

	glContext, err := sdlWindow.GLCreateContext()
	if err != nil {
		sdlWindow.Destroy()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed for display %d: %w", d.Index, err)
	}

	if vsync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Warn("failed to enable vsync", zap.Int("display", d.Index), zap.Error(err))
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	id, err := sdlWindow.GetID()
	if err != nil {
		sdl.GLDeleteContext(glContext)
		sdlWindow.Destroy()
		return nil, fmt.Errorf("SDL_GetWindowID failed: %w", err)
	}

	logger.Info("window created",
		zap.Int("display", d.Index),
		zap.Int32("width", d.Width),
		zap.Int32("height", d.Height),
		zap.Bool("vsync", vsync),
	)

	return &Window{
		display:   d,
		sdlWindow: sdlWindow,
		glContext: glContext,
		id:        id,
	}, nil
}

// Close destroys the window and its context.
func (w *Window) Close() {
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
}

// MakeCurrent binds the window's OpenGL context to the calling thread.
func (w *Window) MakeCurrent() error {
	return w.sdlWindow.GLMakeCurrent(w.glContext)
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// DrawableSize returns the current framebuffer size in pixels, which may
// differ from the window size on high-DPI displays.
func (w *Window) DrawableSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// ID returns the SDL window ID, used to match per-window events.
func (w *Window) ID() uint32 {
	return w.id
}

// Display returns the monitor this window covers.
func (w *Window) Display() Display {
	return w.display
}
