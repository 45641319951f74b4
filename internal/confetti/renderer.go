package confetti

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// spriteFloats is the per-sprite stride: x, y, w, h, r, g, b, a, rot.
const spriteFloats = 9

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uResolution   int32
	uCornerRadius int32
	uStrokeWidth  int32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(confettiVertSrc, confettiFragSrc)
	if err != nil {
		return nil, fmt.Errorf("confetti program: %w", err)
	}

	r := &Renderer{prog: prog}

	// Streaming VBO for point sprites.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(spriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticleRender*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aDim (vec2)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	// aRot (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(8*4))
	r.vao = vao
	r.vbo = vbo

	gl.UseProgram(prog)
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.uCornerRadius = gl.GetUniformLocation(prog, gl.Str("uCornerRadius\x00"))
	r.uStrokeWidth = gl.GetUniformLocation(prog, gl.Str("uStrokeWidth\x00"))
	gl.Uniform1f(r.uCornerRadius, CornerRadius)
	gl.Uniform1f(r.uStrokeWidth, StrokeWidth)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
