package renderer

import (
	"fmt"

	"github.com/achilleasa/gl-pathtrace/shader"
	"github.com/achilleasa/gl-pathtrace/types"
)

type mockWindow struct {
	maxTicks int
	swaps    int
	polls    int
	closed   bool

	now  float64
	step float64

	// Key state for the given (0-based) tick.
	keys func(tick int) map[Key]bool

	// Invoked from PollEvents with the (0-based) tick being presented.
	onPoll func(tick int)
}

func newMockWindow(maxTicks int) *mockWindow {
	return &mockWindow{maxTicks: maxTicks, step: 0.25}
}

func (w *mockWindow) ShouldClose() bool {
	return w.closed || w.swaps >= w.maxTicks
}

func (w *mockWindow) SetShouldClose(v bool) {
	w.closed = v
}

func (w *mockWindow) KeyPressed(k Key) bool {
	if w.keys == nil {
		return false
	}
	return w.keys(w.swaps)[k]
}

func (w *mockWindow) Time() float64 {
	t := w.now
	w.now += w.step
	return t
}

func (w *mockWindow) SwapBuffers() {
	w.swaps++
}

func (w *mockWindow) PollEvents() {
	w.polls++
	if w.onPoll != nil {
		w.onPoll(w.swaps - 1)
	}
}

type mockDevice struct {
	events     []string
	clears     []types.Vec4
	uniforms   []Uniforms
	dispatches [][2]uint32
}

func (d *mockDevice) ClearAccumulation(color types.Vec4) {
	d.events = append(d.events, "clear")
	d.clears = append(d.clears, color)
}

func (d *mockDevice) UseProgram(p shader.Program) {
	d.events = append(d.events, fmt.Sprintf("use:%s", p.Name))
}

func (d *mockDevice) SetUniforms(p shader.Program, u Uniforms) {
	d.events = append(d.events, fmt.Sprintf("uniforms:%s", p.Name))
	d.uniforms = append(d.uniforms, u)
}

func (d *mockDevice) DispatchCompute(x, y uint32) {
	d.events = append(d.events, "dispatch")
	d.dispatches = append(d.dispatches, [2]uint32{x, y})
}

func (d *mockDevice) ImageBarrier() {
	d.events = append(d.events, "barrier")
}

func (d *mockDevice) DrawQuad() {
	d.events = append(d.events, "draw")
}

// Drop the events recorded so far.
func (d *mockDevice) reset() {
	d.events = nil
	d.clears = nil
}

func mockPipeline() *shader.Pipeline {
	return &shader.Pipeline{
		Compute: shader.Program{Name: "compute", Handle: 1},
		Display: shader.Program{Name: "display", Handle: 2},
	}
}
