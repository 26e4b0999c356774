package camera

import (
	"math"

	"github.com/achilleasa/gl-pathtrace/types"
)

const (
	// Cursor sensitivity in degrees per pixel.
	DefaultSensitivityDegrees float32 = 0.5

	// Coefficient for converting cursor displacement (in pixels) to yaw/pitch angles (in radians).
	DefaultSensitivity float32 = DefaultSensitivityDegrees * math.Pi / 180.0

	// Pitch is clamped to +/- MaxPitch to keep forward away from the world up axis.
	MaxPitch float32 = 89.0 * math.Pi / 180.0

	// Camera movement speed in world units per second.
	DefaultMoveSpeed float32 = 400
)

var (
	// The camera starts in front of the scene looking down the -Z axis.
	DefaultPosition = types.Vec3{278, 278, -800}

	canonicalForward = types.Vec3{0, 0, -1}
	worldUp          = types.YAxis
)

// The movement keys sampled once per tick.
type Keys struct {
	Forward  bool
	Backward bool
}

// A read-only copy of the camera frame that is uploaded to the compute kernel.
type Snapshot struct {
	Position types.Vec3
	Forward  types.Vec3
	Right    types.Vec3
	Up       types.Vec3
}

// A first person camera without roll. Forward, Right and Up are derived from
// Pitch and Yaw by Update and must not be modified by callers.
type Camera struct {
	Position types.Vec3

	// Orientation in radians.
	Pitch float32
	Yaw   float32

	// Orthonormal camera frame.
	Forward types.Vec3
	Right   types.Vec3
	Up      types.Vec3

	// Speed applied during the last tick and the magnitude used when a movement key is held.
	Speed     float32
	MoveSpeed float32

	// Pitch/yaw delta accumulated from input since the last Update.
	pendingAngleDelta types.Vec2

	// Set by any input that invalidates accumulated samples.
	moved bool
}

// Create a camera at the given position with zero orientation.
func New(position types.Vec3, moveSpeed float32) *Camera {
	c := &Camera{
		Position:  position,
		MoveSpeed: moveSpeed,
	}
	c.updateFrame()
	return c
}

// Queue a pitch/yaw delta (radians) for the next Update. Non-zero deltas
// mark the camera as moved.
func (c *Camera) AddAngleDelta(pitch, yaw float32) {
	if pitch == 0 && yaw == 0 {
		return
	}
	c.pendingAngleDelta = c.pendingAngleDelta.Add(types.XY(pitch, yaw))
	c.moved = true
}

// Get the pitch/yaw delta that has not been applied yet.
func (c *Camera) PendingAngleDelta() types.Vec2 {
	return c.pendingAngleDelta
}

// Returns true if the camera moved since the flag was last consumed.
func (c *Camera) Moved() bool {
	return c.moved
}

// Read and clear the moved flag. Update never clears it so that pointer and
// key movement are both observed by the single consumer of this method.
func (c *Camera) ConsumeMoved() bool {
	moved := c.moved
	c.moved = false
	return moved
}

// Apply pending input and advance the camera by dt seconds.
func (c *Camera) Update(dt float32, keys Keys) {
	c.Pitch += c.pendingAngleDelta[0]
	c.Yaw += c.pendingAngleDelta[1]
	c.pendingAngleDelta = types.Vec2{}

	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	} else if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
	c.Yaw = wrapAngle(c.Yaw)

	c.updateFrame()

	c.Speed = 0
	if keys.Forward {
		c.Speed = c.MoveSpeed
		c.moved = true
	} else if keys.Backward {
		c.Speed = -c.MoveSpeed
		c.moved = true
	}

	c.Position = c.Position.Add(c.Forward.Mul(c.Speed * dt))
}

// Get a copy of the camera frame.
func (c *Camera) Snapshot() Snapshot {
	return Snapshot{
		Position: c.Position,
		Forward:  c.Forward,
		Right:    c.Right,
		Up:       c.Up,
	}
}

// Rebuild the camera frame from the orientation angles. The frame is always
// derived from the canonical forward axis and never from the previous frame.
func (c *Camera) updateFrame() {
	c.Forward = canonicalForward.Rotate(c.Pitch, types.XAxis).Rotate(c.Yaw, types.YAxis)
	c.Right = c.Forward.Cross(worldUp).Normalize()
	c.Up = c.Right.Cross(c.Forward).Normalize()
}

// Wrap angle into [-pi, pi].
func wrapAngle(angle float32) float32 {
	if angle >= -math.Pi && angle <= math.Pi {
		return angle
	}
	return float32(math.Remainder(float64(angle), 2*math.Pi))
}
