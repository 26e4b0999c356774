package types

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

const floatCmpEpsilon = 1e-6

type Vec2 f32.Vec2
type Vec3 f32.Vec3
type Vec4 f32.Vec4

// Canonical world axes.
var (
	XAxis = Vec3{1, 0, 0}
	YAxis = Vec3{0, 1, 0}
)

// Define a 2 component vector.
func XY(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Add a vector.
func (v Vec2) Add(v2 Vec2) Vec2 {
	return Vec2{v[0] + v2[0], v[1] + v2[1]}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Get 3 component vector length.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

// Normalize 3 component vector. Zero-length vectors normalize to the zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return Vec3{}
	}
	l = 1.0 / l
	return Vec3{v[0] * l, v[1] * l, v[2] * l}
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Rotate the vector by angle radians (right-handed) around the given axis.
func (v Vec3) Rotate(angle float32, axis Vec3) Vec3 {
	q := mgl32.QuatRotate(angle, mgl32.Vec3(axis.Normalize()))
	return Vec3(q.Rotate(mgl32.Vec3(v)))
}

// Check whether two vectors match within the given per-component tolerance.
func (v Vec3) ApproxEqual(v2 Vec3, eps float32) bool {
	for i := 0; i < 3; i++ {
		d := v[i] - v2[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}
