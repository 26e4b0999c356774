package camera

// The CursorWarper interface is implemented by windows that can move the
// pointer to an arbitrary position.
type CursorWarper interface {
	SetCursorPos(x, y float64)
}

// The Integrator converts absolute cursor positions into camera angle deltas.
// The cursor is re-centered after every sample so each sample measures the
// displacement since the previous one.
type Integrator struct {
	camera *Camera
	warper CursorWarper

	centerX float64
	centerY float64

	// Radians per pixel.
	sensitivityX float32
	sensitivityY float32
}

// Create an integrator for a viewport of the given dimensions.
func NewIntegrator(camera *Camera, warper CursorWarper, viewportW, viewportH uint32, sensitivity float32) *Integrator {
	return &Integrator{
		camera:       camera,
		warper:       warper,
		centerX:      float64(viewportW) * 0.5,
		centerY:      float64(viewportH) * 0.5,
		sensitivityX: sensitivity,
		sensitivityY: sensitivity,
	}
}

// Move the cursor to the viewport center.
func (in *Integrator) Recenter() {
	if in.warper != nil {
		in.warper.SetCursorPos(in.centerX, in.centerY)
	}
}

// Handle a cursor position sample. Moving the cursor up (towards y=0)
// increases pitch; moving it left increases yaw.
func (in *Integrator) OnCursorPos(x, y float64) {
	dx := in.centerX - x
	dy := in.centerY - y

	in.camera.AddAngleDelta(
		in.sensitivityY*float32(dy),
		in.sensitivityX*float32(dx),
	)
	in.Recenter()
}
