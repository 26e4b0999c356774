package renderer

import (
	"fmt"
	"time"

	"github.com/achilleasa/gl-pathtrace/camera"
	"github.com/achilleasa/gl-pathtrace/log"
	"github.com/achilleasa/gl-pathtrace/shader"
	"github.com/achilleasa/gl-pathtrace/types"
)

// The render loop state.
type State uint8

const (
	Idle State = iota
	Updating
	Dispatching
	Presenting
	ShuttingDown
)

var stateNames = map[State]string{
	Idle:         "idle",
	Updating:     "updating",
	Dispatching:  "dispatching",
	Presenting:   "presenting",
	ShuttingDown: "shutting down",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// An interactive renderer that progressively refines the view of a
// controllable camera. Every tick it updates the camera, resets or
// continues accumulation, dispatches the compute program, waits on an
// image barrier and presents the result with the display program.
type interactiveRenderer struct {
	logger log.Logger

	window   Window
	device   Device
	pipeline *shader.Pipeline
	camera   *camera.Camera
	accum    *accumulator

	options    Options
	resolution types.Vec2

	state    State
	closed   bool
	lastTime float64
	stats    FrameStats
}

// Create a new interactive renderer. The window, device and pipeline remain
// owned by the caller.
func NewInteractive(window Window, device Device, pipeline *shader.Pipeline, cam *camera.Camera, opts Options) (Renderer, error) {
	switch {
	case window == nil:
		return nil, ErrNoWindow
	case device == nil:
		return nil, ErrNoDevice
	case pipeline == nil:
		return nil, ErrNoPipeline
	case cam == nil:
		return nil, ErrCameraNotDefined
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := &interactiveRenderer{
		logger:     log.New("renderer"),
		window:     window,
		device:     device,
		pipeline:   pipeline,
		camera:     cam,
		accum:      newAccumulator(device, types.Vec4(opts.ClearColor)),
		options:    opts,
		resolution: types.XY(float32(opts.FrameW), float32(opts.FrameH)),
		state:      Idle,
	}

	// The image contents are undefined until the first clear
	device.ClearAccumulation(types.Vec4(opts.ClearColor))

	return r, nil
}

// Run the render loop until the window requests to close.
func (r *interactiveRenderer) Render() error {
	if r.closed {
		return ErrClosed
	}

	r.logger.Noticef("entering render loop (%dx%d)", r.options.FrameW, r.options.FrameH)
	r.lastTime = r.window.Time()
	for !r.window.ShouldClose() {
		r.tick()
	}
	r.state = ShuttingDown
	r.closed = true
	r.logger.Noticef("render loop exited after %d ticks", r.stats.Ticks)

	return nil
}

// Execute a single iteration of the render loop.
func (r *interactiveRenderer) tick() {
	start := time.Now()

	// Update camera and decide whether accumulated samples are still valid
	r.state = Updating
	now := r.window.Time()
	dt := float32(now - r.lastTime)
	r.lastTime = now

	r.camera.Update(dt, camera.Keys{
		Forward:  r.window.KeyPressed(KeyForward),
		Backward: r.window.KeyPressed(KeyBackward),
	})

	prevIndex := r.accum.index()
	if r.accum.begin(r.camera) {
		r.stats.Resets++
		r.logger.Debugf("camera moved; discarding %d accumulated samples", prevIndex-1)
	}

	// Accumulate one sample per pixel
	r.state = Dispatching
	r.device.UseProgram(r.pipeline.Compute)
	r.device.SetUniforms(r.pipeline.Compute, Uniforms{
		FrameIndex:  r.accum.index(),
		Resolution:  r.resolution,
		AspectRatio: r.options.AspectRatio(),
		Camera:      r.camera.Snapshot(),
	})
	r.device.DispatchCompute(r.options.FrameW, r.options.FrameH)
	r.device.ImageBarrier()

	// Present
	r.state = Presenting
	r.device.UseProgram(r.pipeline.Display)
	r.device.DrawQuad()
	r.window.SwapBuffers()
	r.window.PollEvents()

	r.stats.FrameIndex = r.accum.index()
	if r.stats.FrameIndex > r.stats.PeakFrameIndex {
		r.stats.PeakFrameIndex = r.stats.FrameIndex
	}
	r.accum.end()

	r.stats.Ticks++
	r.stats.LastTick = time.Since(start)
	r.stats.RenderTime += r.stats.LastTick
	r.state = Idle
}

// Get the current render loop state.
func (r *interactiveRenderer) State() State {
	return r.state
}

// Stop the render loop at the end of the current tick. Resources passed to NewInteractive are not released.
func (r *interactiveRenderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.window.SetShouldClose(true)
}

// Get render statistics.
func (r *interactiveRenderer) Stats() FrameStats {
	return r.stats
}
