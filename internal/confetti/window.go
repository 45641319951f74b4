package confetti

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func initWindow() (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(WindowWidth, WindowHeight, "Confetti", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

// fullscreenState remembers the windowed bounds so leaving fullscreen
// restores them.
type fullscreenState struct {
	active     bool
	x, y, w, h int
}

// Toggle switches the window between fullscreen on the primary monitor
// and its previous windowed bounds, and reports the new state on the
// bus (one notification per change).
func (fs *fullscreenState) Toggle(window *glfw.Window, bus *EventBus) {
	if fs.active {
		window.SetMonitor(nil, fs.x, fs.y, fs.w, fs.h, 0)
		fs.active = false
	} else {
		fs.x, fs.y = window.GetPos()
		fs.w, fs.h = window.GetSize()
		monitor := glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		fs.active = true
	}
	if bus != nil {
		bus.Emit(Event{Type: EventFullscreenChanged, On: fs.active})
	}
}
