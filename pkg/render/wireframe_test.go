package render

import (
	"testing"

	"github.com/taigrr/terrace/pkg/math3d"
	"github.com/taigrr/terrace/pkg/models"
	"github.com/taigrr/terrace/pkg/octree"
)

func countPixels(fb *Framebuffer) int {
	n := 0
	for _, p := range fb.Pixels {
		if p.A != 0 {
			n++
		}
	}
	return n
}

func TestFramebufferDrawLine(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.DrawLine(1, 1, 8, 4, ColorViewer)

	if fb.Pixel(1, 1) != ColorViewer || fb.Pixel(8, 4) != ColorViewer {
		t.Error("line endpoints not drawn")
	}
	if got := countPixels(fb); got != 8 {
		t.Errorf("drew %d pixels, want 8", got)
	}

	// Off-screen parts are clipped silently.
	fb.DrawLine(-5, 5, 15, 5, ColorViewer)
	for x := range 10 {
		if fb.Pixel(x, 5) != ColorViewer {
			t.Errorf("pixel (%d, 5) not drawn", x)
		}
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Resize(2, 3)
	if len(fb.Pixels) != 6 {
		t.Fatalf("len(Pixels) = %d, want 6", len(fb.Pixels))
	}
	fb.Resize(8, 8)
	if len(fb.Pixels) != 64 {
		t.Fatalf("len(Pixels) = %d, want 64", len(fb.Pixels))
	}
}

func TestWireframeLineBehindCamera(t *testing.T) {
	fb := NewFramebuffer(40, 40)
	w := NewWireframe(NewCamera(100), fb)

	w.DrawLine3D(math3d.V3(-1, 0, 5), math3d.V3(1, 0, 5), ColorViewer)
	if got := countPixels(fb); got != 0 {
		t.Errorf("drew %d pixels for a line behind the camera", got)
	}

	// A line crossing the near plane is clipped, not dropped.
	w.DrawLine3D(math3d.V3(0, -1, 5), math3d.V3(0, -1, -10), ColorViewer)
	if countPixels(fb) == 0 {
		t.Error("line crossing the near plane was not drawn")
	}
}

func TestWireframeDrawBounds(t *testing.T) {
	fb := NewFramebuffer(80, 80)
	cam := NewCamera(200)
	cam.Aspect = 1
	w := NewWireframe(cam, fb)

	w.DrawBounds(octree.Bounds{Center: math3d.V3(0, 0, -30), Size: 8}, LevelColor(2))
	if countPixels(fb) == 0 {
		t.Fatal("box in front of the camera was not drawn")
	}
	if fb.Pixel(40, 40).A != 0 {
		t.Error("box interior should stay empty")
	}
}

func TestWireframeDrawMesh(t *testing.T) {
	fb := NewFramebuffer(80, 80)
	cam := NewCamera(200)
	cam.Aspect = 1
	w := NewWireframe(cam, fb)

	m := models.NewMesh("tri")
	a := m.AddVertex(math3d.V3(0, 0, 0), math3d.Up())
	b := m.AddVertex(math3d.V3(1, 0, 0), math3d.Up())
	c := m.AddVertex(math3d.V3(0, 1, 0), math3d.Up())
	m.AddFace(a, b, c)

	w.DrawMesh(m, models.Placement{Position: math3d.V3(-4, -4, -20), Scale: 8}, ColorSurface)
	if countPixels(fb) == 0 {
		t.Error("mesh was not drawn")
	}
}

func TestLevelColor(t *testing.T) {
	if LevelColor(-1) != levelColors[0] {
		t.Error("negative level should use the coarsest color")
	}
	if LevelColor(100) != levelColors[len(levelColors)-1] {
		t.Error("deep levels should use the finest color")
	}
	if got := Shade(ColorViewer, 0.5); got.R != 127 || got.A != 255 {
		t.Errorf("Shade = %v", got)
	}
}
