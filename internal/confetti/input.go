package confetti

import "github.com/go-gl/glfw/v3.3/glfw"

type Input struct {
	prevMouse   map[glfw.MouseButton]bool
	prevKeys    map[glfw.Key]bool
	prevCursorX float64
	prevCursorY float64
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// CursorFramebufferPos converts the cursor position to framebuffer
// pixels, accounting for high-DPI scale between window and framebuffer
// coordinates. Also reports whether the cursor moved this frame.
func (in *Input) CursorFramebufferPos(window *glfw.Window, fbW, fbH int) (x, y float64, moved bool) {
	cx, cy := window.GetCursorPos()
	moved = cx != in.prevCursorX || cy != in.prevCursorY
	in.prevCursorX, in.prevCursorY = cx, cy

	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return 0, 0, moved
	}
	return cx * float64(fbW) / float64(winW), cy * float64(fbH) / float64(winH), moved
}
