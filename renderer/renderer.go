package renderer

import (
	"github.com/achilleasa/gl-pathtrace/camera"
	"github.com/achilleasa/gl-pathtrace/shader"
	"github.com/achilleasa/gl-pathtrace/types"
)

type Renderer interface {
	// Render frames until the window requests to close.
	Render() error

	// Shutdown renderer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

// Keys polled by the renderer.
type Key uint8

const (
	KeyForward Key = iota
	KeyBackward
)

// The Window interface is implemented by the windowing collaborator.
type Window interface {
	// True once the user asked to close the window.
	ShouldClose() bool

	// Ask the window to close at the end of the current tick.
	SetShouldClose(bool)

	// True while the key is held down.
	KeyPressed(Key) bool

	// Seconds since the window system was initialized.
	Time() float64

	// Present the back buffer.
	SwapBuffers()

	// Process pending input events, invoking any registered callbacks.
	PollEvents()
}

// The per-tick inputs of the compute kernel.
type Uniforms struct {
	FrameIndex  uint32
	Resolution  types.Vec2
	AspectRatio float32
	Camera      camera.Snapshot
}

// The Device interface exposes the GPU commands issued by the renderer. All
// commands are recorded on a single command stream in call order.
type Device interface {
	// Fill the accumulation image with a constant color.
	ClearAccumulation(color types.Vec4)

	// Bind a linked program.
	UseProgram(shader.Program)

	// Upload kernel inputs to the bound compute program.
	SetUniforms(shader.Program, Uniforms)

	// Launch a compute grid of the given dimensions.
	DispatchCompute(groupsX, groupsY uint32)

	// Make image writes from prior dispatches visible to subsequent reads.
	ImageBarrier()

	// Draw a quad covering the viewport with the bound display program.
	DrawQuad()
}
