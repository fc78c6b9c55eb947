package math3d

import "math"

// Mat4 is a column-major 4x4 matrix: element (row, col) lives at col*4+row,
// so indices 12..14 hold the translation.
type Mat4 [16]float64

// TranslateScale returns the transform that scales uniformly by s and then
// moves the origin to position. Region placements use this form.
func TranslateScale(position Vec3, s float64) Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = s, s, s, 1
	m[12], m[13], m[14] = position.X, position.Y, position.Z
	return m
}

// Translate moves points by v.
func Translate(v Vec3) Mat4 {
	return TranslateScale(v, 1)
}

// RotateX turns points about the X axis by angle radians.
func RotateX(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	var m Mat4
	m[0], m[15] = 1, 1
	m[5], m[6] = cos, sin
	m[9], m[10] = -sin, cos
	return m
}

// RotateY turns points about the Y axis by angle radians.
func RotateY(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	var m Mat4
	m[5], m[15] = 1, 1
	m[0], m[2] = cos, -sin
	m[8], m[10] = sin, cos
	return m
}

// Perspective is an OpenGL style projection looking down -Z. fovy is the
// vertical field of view in radians and aspect is width/height.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	focal := 1 / math.Tan(fovy/2)
	depth := 1 / (near - far)

	var m Mat4
	m[0] = focal / aspect
	m[5] = focal
	m[10] = (far + near) * depth
	m[11] = -1
	m[14] = 2 * far * near * depth
	return m
}

// Mul returns a*b, which applies b first.
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for i := range m {
		row, col := i%4, i/4
		for k := range 4 {
			m[i] += a[k*4+row] * b[col*4+k]
		}
	}
	return m
}

// MulVec4 transforms v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var out [4]float64
	for row := range 4 {
		out[row] = m[row]*v.X + m[4+row]*v.Y + m[8+row]*v.Z + m[12+row]*v.W
	}
	return Vec4{out[0], out[1], out[2], out[3]}
}

// MulVec3 transforms p as a point and divides by w when w is non-zero.
func (m Mat4) MulVec3(p Vec3) Vec3 {
	v := m.MulVec4(V4FromV3(p, 1))
	if v.W == 0 {
		return Vec3{v.X, v.Y, v.Z}
	}
	return v.PerspectiveDivide()
}

// MulVec3Dir transforms d as a direction, ignoring translation.
func (m Mat4) MulVec3Dir(d Vec3) Vec3 {
	v := m.MulVec4(V4FromV3(d, 0))
	return Vec3{v.X, v.Y, v.Z}
}

// Translation returns where the origin lands.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}
