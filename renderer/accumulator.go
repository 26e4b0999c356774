package renderer

import (
	"github.com/achilleasa/gl-pathtrace/camera"
	"github.com/achilleasa/gl-pathtrace/types"
)

// The imageClearer interface is implemented by devices that own the accumulation image.
type imageClearer interface {
	ClearAccumulation(color types.Vec4)
}

// The accumulator tracks how many samples have been averaged into the
// accumulation image. It is the only writer of the frame index and the only
// component that clears the image; both always reset together.
type accumulator struct {
	clearer    imageClearer
	clearColor types.Vec4

	// Starts at 1; used by the kernel as the weight of the next sample.
	frameIndex uint32

	// Set by begin when the image was cleared during the current tick.
	resetThisTick bool
}

func newAccumulator(clearer imageClearer, clearColor types.Vec4) *accumulator {
	return &accumulator{
		clearer:    clearer,
		clearColor: clearColor,
		frameIndex: 1,
	}
}

// Consume the camera moved flag and discard accumulated samples if it was
// set. Returns true if the image was cleared.
func (a *accumulator) begin(cam *camera.Camera) bool {
	a.resetThisTick = cam.ConsumeMoved()
	if a.resetThisTick {
		a.clearer.ClearAccumulation(a.clearColor)
		a.frameIndex = 1
	}
	return a.resetThisTick
}

// Advance the frame index once the tick's dispatch has been issued. Ticks
// that reset the image keep the index at 1.
func (a *accumulator) end() {
	if !a.resetThisTick {
		a.frameIndex++
	}
	a.resetThisTick = false
}

// The frame index to use for the current dispatch.
func (a *accumulator) index() uint32 {
	return a.frameIndex
}
