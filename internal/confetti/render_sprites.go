package confetti

import "github.com/go-gl/gl/v4.1-core/gl"

// DrawConfetti renders packed confetti sprites with alpha blending.
// buf format: [x, y, w, h, r, g, b, a, rotation] * N (see SpriteData).
func (r *Renderer) DrawConfetti(buf []float32, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / spriteFloats
	if count > MaxParticleRender {
		count = MaxParticleRender
	}

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*spriteFloats*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
