package confetti

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Confetti vertex shader: point sprites in framebuffer pixel space.
// The point is sized to the rect's bounding circle so any rotation
// stays inside it; the fragment shader carves the rect out.
const confettiVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;   // framebuffer pixels
layout(location = 1) in vec2 aDim;   // rect width/height in pixels
layout(location = 2) in vec4 aColor; // fill rgb + opacity
layout(location = 3) in float aRot;  // radians

uniform vec2 uResolution;

out vec2 vDim;
out vec4 vColor;
out float vRot;
out float vPointSize;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    float ps = ceil(length(aDim)) + 2.0;
    gl_PointSize = max(1.0, ps);
    vPointSize = ps;
    vDim = aDim;
    vColor = aColor;
    vRot = aRot;
}
` + "\x00"

// Confetti fragment shader: rotated rounded rectangle with a black
// stroke, via a signed-distance test in the sprite's local space.
const confettiFragSrc = `#version 410 core

uniform float uCornerRadius;
uniform float uStrokeWidth;

in vec2 vDim;
in vec4 vColor;
in float vRot;
in float vPointSize;
out vec4 FragColor;

void main() {
    vec2 local = (gl_PointCoord - vec2(0.5)) * vPointSize;
    float c = cos(vRot);
    float s = sin(vRot);
    vec2 rot = vec2(c * local.x + s * local.y, -s * local.x + c * local.y);

    vec2 half_ = vDim * 0.5 - vec2(uCornerRadius);
    vec2 q = abs(rot) - half_;
    float d = length(max(q, vec2(0.0))) + min(max(q.x, q.y), 0.0) - uCornerRadius;

    if (d > 0.0) discard;
    vec3 col = (d > -uStrokeWidth) ? vec3(0.0) : vColor.rgb;
    FragColor = vec4(col, vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
