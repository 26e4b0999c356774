package opengl

import (
	"fmt"

	"github.com/achilleasa/gl-pathtrace/camera"
	"github.com/achilleasa/gl-pathtrace/log"
	"github.com/achilleasa/gl-pathtrace/renderer"
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Keys bound to each renderer key. The first entry is the primary binding.
var keyBindings = map[renderer.Key][]glfw.Key{
	renderer.KeyForward:  {glfw.KeyW, glfw.KeyUp},
	renderer.KeyBackward: {glfw.KeyS, glfw.KeyDown},
}

// Window wraps a glfw window with a current OpenGL 4.3 core context. It
// must be created and used from the main OS thread.
type Window struct {
	*glfw.Window

	logger log.Logger
	frameW uint32
	frameH uint32
}

// Create a non-resizable window and make its GL context current. Hidden
// windows are used to build shaders without presenting anything.
func NewWindow(opts renderer.Options, visible bool) (*Window, error) {
	var err error
	if err = glfw.Init(); err != nil {
		return nil, fmt.Errorf("opengl: failed to initialize glfw: %s", err.Error())
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if !visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	w := &Window{
		logger: log.New("window"),
		frameW: opts.FrameW,
		frameH: opts.FrameH,
	}
	w.Window, err = glfw.CreateWindow(int(opts.FrameW), int(opts.FrameH), opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("opengl: could not create window: %s", err.Error())
	}
	w.MakeContextCurrent()

	if err = gl.Init(); err != nil {
		w.Close()
		return nil, fmt.Errorf("opengl: could not init opengl: %s", err.Error())
	}

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	gl.Viewport(0, 0, int32(opts.FrameW), int32(opts.FrameH))

	w.SetKeyCallback(w.onKeyEvent)
	w.logger.Infof("created %dx%d window", opts.FrameW, opts.FrameH)

	return w, nil
}

// Hide the pointer and feed its movement to the integrator. The pointer is
// re-centered after every sample.
func (w *Window) CaptureCursor(in *camera.Integrator) {
	w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	w.SetCursorPosCallback(func(_ *glfw.Window, xPos, yPos float64) {
		in.OnCursorPos(xPos, yPos)
	})
	in.Recenter()
}

// True while any key bound to k is held down.
func (w *Window) KeyPressed(k renderer.Key) bool {
	for _, key := range keyBindings[k] {
		if w.GetKey(key) == glfw.Press {
			return true
		}
	}
	return false
}

// Seconds since glfw was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// Process pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy the window and shut down glfw.
func (w *Window) Close() {
	if w.Window != nil {
		w.Window.Destroy()
		w.Window = nil
	}
	glfw.Terminate()
}

func (w *Window) onKeyEvent(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}
