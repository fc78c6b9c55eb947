package math3d

import (
	"math"
	"testing"
)

func TestVec3Snap(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		step float64
		want Vec3
	}{
		{"already aligned", V3(32, -16, 0), 16, V3(32, -16, 0)},
		{"rounds to nearest", V3(7, 9, -9), 16, V3(0, 16, -16)},
		{"fractional step", V3(0.3, 0.6, 1.1), 0.5, V3(0.5, 0.5, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Snap(tc.step); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVec3Axis(t *testing.T) {
	v := V3(1, 2, 3)
	for i, want := range []float64{1, 2, 3} {
		if got := v.Axis(i); got != want {
			t.Errorf("Axis(%d) = %v, want %v", i, got, want)
		}
	}

	w := v.WithAxis(1, 9)
	if w != V3(1, 9, 3) {
		t.Errorf("WithAxis = %v", w)
	}
	if v != V3(1, 2, 3) {
		t.Error("WithAxis modified the receiver")
	}
}

func TestVec3ProjectOnPlane(t *testing.T) {
	n := V3(0, 1, 0)
	got := V3(0.25, 0.5, -0.25).ProjectOnPlane(n)
	if !got.ApproxEqual(V3(0.25, 0, -0.25), 1e-12) {
		t.Errorf("got %v", got)
	}
	if math.Abs(got.Dot(n)) > 1e-12 {
		t.Errorf("projection keeps a normal component: %v", got.Dot(n))
	}
}

func TestTranslateScale(t *testing.T) {
	m := TranslateScale(V3(32, 0, -16), 2)
	want := Translate(V3(32, 0, -16)).Mul(TranslateScale(Vec3{}, 2))
	if m != want {
		t.Errorf("TranslateScale = %v, want %v", m, want)
	}

	p := m.MulVec3(V3(1, 2, 3))
	if p != V3(34, 4, -10) {
		t.Errorf("MulVec3 = %v", p)
	}
	if d := m.MulVec3Dir(V3(0, 1, 0)); d != V3(0, 2, 0) {
		t.Errorf("MulVec3Dir = %v", d)
	}
	if m.Translation() != V3(32, 0, -16) {
		t.Errorf("Translation = %v", m.Translation())
	}
}

func TestPerspectiveProjectsForward(t *testing.T) {
	proj := Perspective(math.Pi/2, 1, 0.1, 100)
	clip := proj.MulVec4(V4(0, 0, -10, 1))
	ndc := clip.PerspectiveDivide()
	if clip.W <= 0 {
		t.Fatalf("point in front of the camera has w=%v", clip.W)
	}
	if math.Abs(ndc.X) > 1e-9 || math.Abs(ndc.Y) > 1e-9 {
		t.Errorf("center point projected to %v", ndc)
	}
	if ndc.Z < -1 || ndc.Z > 1 {
		t.Errorf("depth %v outside clip range", ndc.Z)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(1, 2, 3))
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec3(b *testing.B) {
	m := TranslateScale(V3(1, 2, 3), 4)
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = m.MulVec3(v)
	}
}

func TestRotationsKeepLengthAndAxis(t *testing.T) {
	v := V3(1, 2, 3)
	for name, m := range map[string]Mat4{
		"x": RotateX(0.7),
		"y": RotateY(-1.2),
	} {
		t.Run(name, func(t *testing.T) {
			got := m.MulVec3(v)
			if math.Abs(got.Len()-v.Len()) > 1e-12 {
				t.Errorf("length changed from %v to %v", v.Len(), got.Len())
			}
		})
	}

	if got := RotateY(math.Pi / 2).MulVec3(V3(1, 0, 0)); !got.ApproxEqual(V3(0, 0, -1), 1e-12) {
		t.Errorf("RotateY(pi/2) * +X = %v", got)
	}
	if got := RotateX(math.Pi / 2).MulVec3(V3(0, 1, 0)); !got.ApproxEqual(V3(0, 0, 1), 1e-12) {
		t.Errorf("RotateX(pi/2) * +Y = %v", got)
	}
}
