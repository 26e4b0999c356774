package opengl

import (
	"fmt"

	"github.com/achilleasa/gl-pathtrace/renderer"
	"github.com/achilleasa/gl-pathtrace/shader"
	"github.com/achilleasa/gl-pathtrace/types"
	"github.com/go-gl/gl/v4.3-core/gl"
)

// The image unit and texture unit the accumulation image is bound to.
const accumulationUnit = 0

// A full-viewport quad as two triangles; each vertex is position (xyz) followed by uv.
var quadVertices = []float32{
	-1, 1, 0, 0, 1,
	1, -1, 0, 1, 0,
	-1, -1, 0, 0, 0,
	-1, 1, 0, 0, 1,
	1, 1, 0, 1, 1,
	1, -1, 0, 1, 0,
}

// Uniform locations of the compute kernel inputs.
type uniformLocations struct {
	frame    int32
	res      int32
	aspect   int32
	camUp    int32
	camRight int32
	camFwd   int32
	camPos   int32
}

// Device issues the renderer commands on the current GL context. It owns
// the RGBA32F accumulation image and the quad used to present it.
type Device struct {
	frameW int32
	frameH int32

	image uint32
	fbo   uint32
	vao   uint32
	vbo   uint32

	locations map[uint32]uniformLocations
}

// Allocate the accumulation image and quad geometry. A GL context must be current.
func NewDevice(frameW, frameH uint32) (*Device, error) {
	d := &Device{
		frameW:    int32(frameW),
		frameH:    int32(frameH),
		locations: make(map[uint32]uniformLocations),
	}

	// Accumulation image; read/write from compute, sampled by the display program
	gl.GenTextures(1, &d.image)
	gl.ActiveTexture(gl.TEXTURE0 + accumulationUnit)
	gl.BindTexture(gl.TEXTURE_2D, d.image)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, d.frameW, d.frameH, 0, gl.RGBA, gl.FLOAT, nil)
	gl.BindImageTexture(accumulationUnit, d.image, 0, false, 0, gl.READ_WRITE, gl.RGBA32F)

	// Attach image to an FBO so it can be cleared
	gl.GenFramebuffers(1, &d.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, d.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, d.image, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		d.Close()
		return nil, fmt.Errorf("opengl: accumulation framebuffer incomplete (status 0x%x)", status)
	}

	// Quad geometry
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))
	gl.BindVertexArray(0)

	return d, nil
}

// Release GL resources.
func (d *Device) Close() {
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	if d.fbo != 0 {
		gl.DeleteFramebuffers(1, &d.fbo)
		d.fbo = 0
	}
	if d.image != 0 {
		gl.DeleteTextures(1, &d.image)
		d.image = 0
	}
}

func (d *Device) ClearAccumulation(color types.Vec4) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, d.fbo)
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (d *Device) UseProgram(p shader.Program) {
	gl.UseProgram(p.Handle)
}

func (d *Device) SetUniforms(p shader.Program, u renderer.Uniforms) {
	loc := d.uniformLocations(p.Handle)
	cam := u.Camera

	gl.Uniform1ui(loc.frame, u.FrameIndex)
	gl.Uniform2f(loc.res, u.Resolution[0], u.Resolution[1])
	gl.Uniform1f(loc.aspect, u.AspectRatio)
	gl.Uniform3f(loc.camUp, cam.Up[0], cam.Up[1], cam.Up[2])
	gl.Uniform3f(loc.camRight, cam.Right[0], cam.Right[1], cam.Right[2])
	gl.Uniform3f(loc.camFwd, cam.Forward[0], cam.Forward[1], cam.Forward[2])
	gl.Uniform3f(loc.camPos, cam.Position[0], cam.Position[1], cam.Position[2])
}

func (d *Device) DispatchCompute(groupsX, groupsY uint32) {
	gl.DispatchCompute(groupsX, groupsY, 1)
}

func (d *Device) ImageBarrier() {
	gl.MemoryBarrier(gl.SHADER_IMAGE_ACCESS_BARRIER_BIT | gl.TEXTURE_FETCH_BARRIER_BIT)
}

func (d *Device) DrawQuad() {
	gl.ActiveTexture(gl.TEXTURE0 + accumulationUnit)
	gl.BindTexture(gl.TEXTURE_2D, d.image)
	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// Lookup and cache the kernel uniform locations for a program.
func (d *Device) uniformLocations(program uint32) uniformLocations {
	if loc, ok := d.locations[program]; ok {
		return loc
	}

	loc := uniformLocations{
		frame:    gl.GetUniformLocation(program, gl.Str("frame\x00")),
		res:      gl.GetUniformLocation(program, gl.Str("i_res\x00")),
		aspect:   gl.GetUniformLocation(program, gl.Str("aspect\x00")),
		camUp:    gl.GetUniformLocation(program, gl.Str("cam_up\x00")),
		camRight: gl.GetUniformLocation(program, gl.Str("cam_rht\x00")),
		camFwd:   gl.GetUniformLocation(program, gl.Str("cam_fwd\x00")),
		camPos:   gl.GetUniformLocation(program, gl.Str("cam_pos\x00")),
	}
	d.locations[program] = loc
	return loc
}
