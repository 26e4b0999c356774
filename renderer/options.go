package renderer

import (
	"fmt"
	"math"

	"github.com/achilleasa/gl-pathtrace/camera"
	"github.com/achilleasa/gl-pathtrace/shader"
	"github.com/achilleasa/gl-pathtrace/types"
)

// Largest accepted frame dimension; the minimum GL_MAX_TEXTURE_SIZE an
// OpenGL 4.3 implementation must support.
const MaxFrameDim = 16384

type Options struct {
	// Frame dims. The accumulation image is allocated once with these dims.
	FrameW uint32 `toml:"width"`
	FrameH uint32 `toml:"height"`

	// Window title.
	Title string `toml:"title"`

	// Location of the shader sources; a directory or an http(s) URL.
	ShaderDir      string `toml:"shader_dir"`
	ComputeShader  string `toml:"compute_shader"`
	VertexShader   string `toml:"vertex_shader"`
	FragmentShader string `toml:"fragment_shader"`

	// Cursor sensitivity in degrees per pixel.
	MouseSensitivity float32 `toml:"mouse_sensitivity"`

	// Camera speed in world units per second.
	MoveSpeed float32 `toml:"move_speed"`

	// Initial camera position.
	StartPosition [3]float32 `toml:"start_position"`

	// Value written to the accumulation image when it is reset.
	ClearColor [4]float32 `toml:"clear_color"`

	// Sync buffer swaps to the display refresh rate.
	VSync bool `toml:"vsync"`

	// Log verbosity (debug, info, notice, warning, error).
	LogLevel string `toml:"log_level"`
}

// Get the default options.
func DefaultOptions() Options {
	return Options{
		FrameW:           1024,
		FrameH:           768,
		Title:            "gl-pathtrace",
		ShaderDir:        "shaders",
		ComputeShader:    shader.DefaultSources.Compute,
		VertexShader:     shader.DefaultSources.Vertex,
		FragmentShader:   shader.DefaultSources.Fragment,
		MouseSensitivity: camera.DefaultSensitivityDegrees,
		MoveSpeed:        camera.DefaultMoveSpeed,
		StartPosition:    [3]float32(camera.DefaultPosition),
		ClearColor:       [4]float32{0, 0, 0, 1},
		VSync:            true,
		LogLevel:         "notice",
	}
}

// Check options for values that cannot be rendered with.
func (o Options) Validate() error {
	if o.FrameW == 0 || o.FrameH == 0 || o.FrameW > MaxFrameDim || o.FrameH > MaxFrameDim {
		return fmt.Errorf("renderer: invalid frame dimensions %dx%d", o.FrameW, o.FrameH)
	}
	if !(o.MouseSensitivity > 0) {
		return fmt.Errorf("renderer: mouse sensitivity must be positive; got %f", o.MouseSensitivity)
	}
	if o.MoveSpeed < 0 || math.IsNaN(float64(o.MoveSpeed)) {
		return fmt.Errorf("renderer: move speed must not be negative; got %f", o.MoveSpeed)
	}
	if o.ComputeShader == "" || o.VertexShader == "" || o.FragmentShader == "" {
		return fmt.Errorf("renderer: missing shader source path")
	}
	return nil
}

// Frame width divided by frame height.
func (o Options) AspectRatio() float32 {
	return float32(o.FrameW) / float32(o.FrameH)
}

// Cursor sensitivity in radians per pixel.
func (o Options) SensitivityRadians() float32 {
	return o.MouseSensitivity * math.Pi / 180.0
}

// Shader source paths relative to ShaderDir.
func (o Options) Sources() shader.Sources {
	return shader.Sources{
		Compute:  o.ComputeShader,
		Vertex:   o.VertexShader,
		Fragment: o.FragmentShader,
	}
}

// The initial camera position.
func (o Options) Position() types.Vec3 {
	return types.Vec3(o.StartPosition)
}
