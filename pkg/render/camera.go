package render

import (
	"math"

	"github.com/taigrr/terrace/pkg/math3d"
)

// Camera is a perspective camera without roll, oriented by yaw and pitch.
// With both angles at zero it looks down -Z.
type Camera struct {
	Position math3d.Vec3
	Pitch    float64 // Radians, positive looks up
	Yaw      float64 // Radians, positive turns left

	FOV    float64 // Vertical field of view in radians
	Aspect float64 // Width / height
	Near   float64
	Far    float64
}

// NewCamera creates a camera with a 60 degree field of view whose far plane
// covers the given distance.
func NewCamera(far float64) *Camera {
	return &Camera{
		FOV:    math.Pi / 3,
		Aspect: 16.0 / 9.0,
		Near:   0.5,
		Far:    far,
	}
}

// Forward returns the unit view direction.
func (c *Camera) Forward() math3d.Vec3 {
	return math3d.V3(
		-math.Sin(c.Yaw)*math.Cos(c.Pitch),
		math.Sin(c.Pitch),
		-math.Cos(c.Yaw)*math.Cos(c.Pitch),
	)
}

// Right returns the unit direction to the right of the view, parallel to
// the ground.
func (c *Camera) Right() math3d.Vec3 {
	return math3d.V3(math.Cos(c.Yaw), 0, -math.Sin(c.Yaw))
}

// LookAt turns the camera toward target.
func (c *Camera) LookAt(target math3d.Vec3) {
	dir := target.Sub(c.Position).Normalize()
	c.Pitch = math.Asin(max(-1, min(1, dir.Y)))
	c.Yaw = math.Atan2(-dir.X, -dir.Z)
}

// Rotate adds to the camera angles, keeping pitch short of straight up or
// down.
func (c *Camera) Rotate(pitch, yaw float64) {
	const limit = math.Pi/2 - 0.01
	c.Pitch = max(-limit, min(limit, c.Pitch+pitch))
	c.Yaw += yaw
}

// View returns the world to camera transform.
func (c *Camera) View() math3d.Mat4 {
	return math3d.RotateX(-c.Pitch).
		Mul(math3d.RotateY(-c.Yaw)).
		Mul(math3d.Translate(c.Position.Negate()))
}

// Projection returns the camera to clip space transform.
func (c *Camera) Projection() math3d.Mat4 {
	return math3d.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() math3d.Mat4 {
	return c.Projection().Mul(c.View())
}

// Frustum returns the planes of the current view volume.
func (c *Camera) Frustum() Frustum {
	return NewFrustum(c.ViewProjection())
}

// Project maps a world point to framebuffer coordinates. It reports false
// for points behind the near plane.
func (c *Camera) Project(p math3d.Vec3, width, height int) (x, y float64, ok bool) {
	clip := c.ViewProjection().MulVec4(math3d.V4FromV3(p, 1))
	if clip.W < c.Near {
		return 0, 0, false
	}
	x, y = toScreen(clip, width, height)
	return x, y, true
}

// toScreen divides a clip space point and maps it to pixel coordinates.
func toScreen(clip math3d.Vec4, width, height int) (x, y float64) {
	ndc := clip.PerspectiveDivide()
	x = (ndc.X + 1) * 0.5 * float64(width)
	y = (1 - ndc.Y) * 0.5 * float64(height)
	return x, y
}
