package confetti

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop opens the window and runs the demo until Escape or close.
//
// Controls: left click fires a burst at the cursor, F toggles
// fullscreen, S exports an SVG snapshot, P saves the session,
// L restores the last saved session.
func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("CONFETTI_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0.97, 0.96, 0.94, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	particles := NewParticleSystem(MaxParticles, seed)
	input := NewInput()
	bus := NewEventBus()
	store := DefaultStateStore()
	saveDone := make(chan Event, 1)
	var fs fullscreenState

	bus.Subscribe(EventBurst, func(Event) { PlaySound(SoundPop) })
	bus.Subscribe(EventStateSaved, func(e Event) {
		if e.Err != nil {
			fmt.Fprintf(os.Stderr, "session save failed: %v\n", e.Err)
		}
	})

	// Reusable sprite buffer.
	var spriteBuf []float32

	elapsed := 0.0
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}
		elapsed += dt

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		mx, my, _ := input.CursorFramebufferPos(window, fbW, fbH)

		if input.JustClicked(window, glfw.MouseButtonLeft) {
			particles.Burst(mx, my, BurstCount)
			bus.Emit(Event{Type: EventBurst, X: mx, Y: my})
		}
		if input.JustPressed(window, glfw.KeyF) {
			fs.Toggle(window, bus)
		}
		if input.JustPressed(window, glfw.KeyS) {
			if err := ExportSVG("confetti.svg", particles, fbW, fbH); err != nil {
				fmt.Fprintf(os.Stderr, "svg export failed: %v\n", err)
			}
		}
		if input.JustPressed(window, glfw.KeyP) {
			SaveSession(particles, elapsed, store, nil, saveDone)
		}
		if input.JustPressed(window, glfw.KeyL) {
			if st, err := LoadSession(store); err == nil {
				particles.RestoreState(st)
				elapsed = st.Elapsed
				PlaySound(SoundWhistle)
			} else {
				fmt.Fprintf(os.Stderr, "session restore failed: %v\n", err)
			}
		}

		// Completed background saves get reported from the loop thread.
		select {
		case ev := <-saveDone:
			bus.Emit(ev)
		default:
		}

		particles.Update(dt)

		rend.BeginFrame(fbW, fbH)
		spriteBuf = particles.SpriteData(spriteBuf)
		rend.DrawConfetti(spriteBuf, fbW, fbH)

		window.SwapBuffers()
	}
}
