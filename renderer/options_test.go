package renderer

import (
	"math"
	"testing"

	"github.com/achilleasa/gl-pathtrace/camera"
	"github.com/achilleasa/gl-pathtrace/types"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("expected default options to be valid; got %v", err)
	}
	if opts.Position() != (types.Vec3{278, 278, -800}) {
		t.Fatalf("expected default start position (278, 278, -800); got %v", opts.Position())
	}
	if math.Abs(float64(opts.SensitivityRadians()-camera.DefaultSensitivity)) > 1e-7 {
		t.Fatalf("expected default sensitivity %f rad/px; got %f", camera.DefaultSensitivity, opts.SensitivityRadians())
	}
	if src := opts.Sources(); src.Compute != "compute.glsl" || src.Vertex != "vertex.glsl" || src.Fragment != "frag.glsl" {
		t.Fatalf("unexpected default sources: %+v", src)
	}
}

func TestValidateOptions(t *testing.T) {
	type spec struct {
		mutate func(*Options)
		expErr bool
	}
	specs := []spec{
		{func(o *Options) {}, false},
		{func(o *Options) { o.FrameW = 0 }, true},
		{func(o *Options) { o.FrameH = 0 }, true},
		{func(o *Options) { o.FrameW = uint32(math.MaxUint32) }, true},
		{func(o *Options) { o.FrameH = MaxFrameDim + 1 }, true},
		{func(o *Options) { o.FrameW, o.FrameH = MaxFrameDim, MaxFrameDim }, false},
		{func(o *Options) { o.MouseSensitivity = 0 }, true},
		{func(o *Options) { o.MouseSensitivity = float32(math.NaN()) }, true},
		{func(o *Options) { o.MoveSpeed = -1 }, true},
		{func(o *Options) { o.MoveSpeed = 0 }, false},
		{func(o *Options) { o.VertexShader = "" }, true},
	}

	for index, s := range specs {
		opts := DefaultOptions()
		s.mutate(&opts)
		err := opts.Validate()
		if s.expErr && err == nil {
			t.Fatalf("[spec %d] expected validation error", index)
		}
		if !s.expErr && err != nil {
			t.Fatalf("[spec %d] unexpected validation error: %v", index, err)
		}
	}
}

func TestMeanTickTime(t *testing.T) {
	if (FrameStats{}).MeanTickTime() != 0 {
		t.Fatal("expected zero mean tick time without ticks")
	}
	stats := FrameStats{Ticks: 4, RenderTime: 400}
	if stats.MeanTickTime() != 100 {
		t.Fatalf("expected mean tick time 100ns; got %s", stats.MeanTickTime())
	}
}
