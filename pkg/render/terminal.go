package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw shows the framebuffer on the screen area. Each cell is an upper half
// block whose foreground is the top pixel and background the bottom one.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		y := (row - area.Min.Y) * 2
		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.Pixel(x, y)),
					Bg: cellColor(fb.Pixel(x, y+1)),
				},
			})
		}
	}
}

func cellColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}

// Preview colors.
var (
	ColorBackground = color.RGBA{12, 14, 22, 255}
	ColorViewer     = color.RGBA{255, 255, 255, 255}
	ColorSurface    = color.RGBA{120, 200, 120, 255}
)

// levelColors go from the coarsest octree level to the finest.
var levelColors = []color.RGBA{
	{70, 70, 110, 255},
	{60, 90, 170, 255},
	{50, 150, 200, 255},
	{60, 190, 150, 255},
	{200, 190, 70, 255},
	{230, 120, 60, 255},
	{230, 70, 90, 255},
}

// LevelColor returns the box color for regions at octree level.
func LevelColor(level int) color.RGBA {
	return levelColors[max(0, min(level, len(levelColors)-1))]
}

// Shade scales the color channels by f in [0, 1].
func Shade(c color.RGBA, f float64) color.RGBA {
	f = max(0, min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// DrawText writes s on one row starting at (x, y), clipped to the screen
// area.
func DrawText(scr uv.Screen, area uv.Rectangle, x, y int, s string, fg color.Color) {
	if y < area.Min.Y || y >= area.Max.Y {
		return
	}
	for _, r := range s {
		if x >= area.Max.X {
			return
		}
		if x >= area.Min.X {
			scr.SetCell(x, y, &uv.Cell{
				Content: string(r),
				Width:   1,
				Style:   uv.Style{Fg: fg, Bg: ColorBackground},
			})
		}
		x++
	}
}
