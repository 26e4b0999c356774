package opengl

import (
	"github.com/achilleasa/gl-pathtrace/shader"
	"github.com/go-gl/gl/v4.3-core/gl"
)

var shaderTypes = map[shader.Stage]uint32{
	shader.Compute:  gl.COMPUTE_SHADER,
	shader.Vertex:   gl.VERTEX_SHADER,
	shader.Fragment: gl.FRAGMENT_SHADER,
}

// ShaderBackend compiles and links GLSL programs on the current context.
type ShaderBackend struct{}

func (ShaderBackend) CompileUnit(stage shader.Stage, source string) (uint32, bool) {
	unit := gl.CreateShader(shaderTypes[stage])
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(unit, 1, csources, nil)
	free()
	gl.CompileShader(unit)

	var status int32
	gl.GetShaderiv(unit, gl.COMPILE_STATUS, &status)
	return unit, status == gl.TRUE
}

func (ShaderBackend) UnitLog(unit uint32, maxLen int) string {
	var logLen int32
	gl.GetShaderiv(unit, gl.INFO_LOG_LENGTH, &logLen)
	buf := logBuffer(logLen, maxLen)
	gl.GetShaderInfoLog(unit, int32(len(buf)), nil, &buf[0])
	return gl.GoStr(&buf[0])
}

func (ShaderBackend) DeleteUnit(unit uint32) {
	gl.DeleteShader(unit)
}

func (ShaderBackend) LinkProgram(units []uint32) (uint32, bool) {
	program := gl.CreateProgram()
	for _, unit := range units {
		gl.AttachShader(program, unit)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		for _, unit := range units {
			gl.DetachShader(program, unit)
		}
	}
	return program, status == gl.TRUE
}

func (ShaderBackend) ProgramLog(program uint32, maxLen int) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	buf := logBuffer(logLen, maxLen)
	gl.GetProgramInfoLog(program, int32(len(buf)), nil, &buf[0])
	return gl.GoStr(&buf[0])
}

func (ShaderBackend) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// Allocate a NUL-terminated buffer for at most maxLen bytes of log text.
func logBuffer(logLen int32, maxLen int) []byte {
	n := int(logLen)
	if n > maxLen {
		n = maxLen
	}
	return make([]byte, n+1)
}
