package render

import (
	"math"
	"testing"

	"github.com/taigrr/terrace/pkg/math3d"
	"github.com/taigrr/terrace/pkg/octree"
)

func TestPlaneDistance(t *testing.T) {
	plane := Plane{Normal: math3d.V3(0, 0, 1)}

	tests := []struct {
		name  string
		point math3d.Vec3
		want  float64
	}{
		{"origin", math3d.V3(0, 0, 0), 0},
		{"in front", math3d.V3(0, 0, 5), 5},
		{"behind", math3d.V3(0, 0, -3), -3},
		{"offset XY", math3d.V3(10, -5, 2), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := plane.Distance(tc.point); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPlaneNormalize(t *testing.T) {
	plane := Plane{Normal: math3d.V3(0, 3, 4), D: 10}
	plane.Normalize()

	if math.Abs(plane.Normal.Len()-1) > 1e-9 {
		t.Errorf("normal length = %v, want 1", plane.Normal.Len())
	}
	if math.Abs(plane.D-2) > 1e-9 {
		t.Errorf("D = %v, want 2", plane.D)
	}
}

func testFrustum() Frustum {
	// Camera at the origin looking down -Z.
	return NewFrustum(math3d.Perspective(math.Pi/3, 16.0/9.0, 1, 100))
}

func TestFrustumContainsPoint(t *testing.T) {
	f := testFrustum()

	tests := []struct {
		name  string
		point math3d.Vec3
		want  bool
	}{
		{"center near", math3d.V3(0, 0, -2), true},
		{"center far", math3d.V3(0, 0, -99), true},
		{"behind camera", math3d.V3(0, 0, 1), false},
		{"too far", math3d.V3(0, 0, -200), false},
		{"too close", math3d.V3(0, 0, -0.5), false},
		{"outside left", math3d.V3(-50, 0, -10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.ContainsPoint(tc.point); got != tc.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, got, tc.want)
			}
		})
	}
}

func TestFrustumIntersectAABB(t *testing.T) {
	f := testFrustum()

	tests := []struct {
		name   string
		bounds octree.Bounds
		want   bool
	}{
		{"ahead", octree.Bounds{Center: math3d.V3(0, 0, -20), Size: 8}, true},
		{"around camera", octree.Bounds{Center: math3d.V3(0, 0, 0), Size: 4}, true},
		{"behind", octree.Bounds{Center: math3d.V3(0, 0, 20), Size: 8}, false},
		{"beyond far plane", octree.Bounds{Center: math3d.V3(0, 0, -150), Size: 16}, false},
		{"far right", octree.Bounds{Center: math3d.V3(200, 0, -20), Size: 16}, false},
		{"containing frustum", octree.Bounds{Size: 512}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.IntersectAABB(BoundsAABB(tc.bounds)); got != tc.want {
				t.Errorf("IntersectAABB(%+v) = %v, want %v", tc.bounds, got, tc.want)
			}
		})
	}
}

func TestCameraLookAt(t *testing.T) {
	cam := NewCamera(100)
	cam.Position = math3d.V3(0, 0, 0)
	cam.LookAt(math3d.V3(10, 0, 0))

	fwd := cam.Forward()
	if !fwd.ApproxEqual(math3d.V3(1, 0, 0), 1e-9) {
		t.Fatalf("forward = %v, want +X", fwd)
	}

	f := cam.Frustum()
	if !f.ContainsPoint(math3d.V3(10, 0, 0)) {
		t.Error("point ahead of the camera should be visible")
	}
	if f.ContainsPoint(math3d.V3(-10, 0, 0)) {
		t.Error("point behind the camera should not be visible")
	}
}

func TestCameraProject(t *testing.T) {
	cam := NewCamera(100)
	cam.Aspect = 1

	x, y, ok := cam.Project(math3d.V3(0, 0, -10), 80, 40)
	if !ok || math.Abs(x-40) > 1e-9 || math.Abs(y-20) > 1e-9 {
		t.Errorf("center projects to (%v, %v, %v), want (40, 20, true)", x, y, ok)
	}

	// Up in the world is up on screen.
	_, y, ok = cam.Project(math3d.V3(0, 2, -10), 80, 40)
	if !ok || y >= 20 {
		t.Errorf("point above center projects to y=%v", y)
	}

	if _, _, ok := cam.Project(math3d.V3(0, 0, 5), 80, 40); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestCameraRotateClampsPitch(t *testing.T) {
	cam := NewCamera(100)
	cam.Rotate(10, 0.5)
	if cam.Pitch >= math.Pi/2 {
		t.Errorf("pitch = %v, want below pi/2", cam.Pitch)
	}
	if cam.Yaw != 0.5 {
		t.Errorf("yaw = %v, want 0.5", cam.Yaw)
	}
}

func BenchmarkFrustumIntersectAABB(b *testing.B) {
	f := testFrustum()
	box := BoundsAABB(octree.Bounds{Center: math3d.V3(3, 1, -40), Size: 16})
	for b.Loop() {
		f.IntersectAABB(box)
	}
}
