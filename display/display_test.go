package display

import (
	"image/color"
	"testing"

	"github.com/janpfeifer/goedit/grid"
)

func TestFrame(t *testing.T) {
	g := grid.New(2, 3)
	for ii := range g.Pix {
		g.Pix[ii] = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	}
	frame := Frame(g, 5, 4)
	if b := frame.Bounds(); b.Dx() != 5 || b.Dy() != 4 {
		t.Fatalf("frame bounds = %v, want 5x4", b)
	}

	bg := color.RGBA{A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			c := frame.RGBAAt(x, y)
			inside := x < g.Width && y < g.Height
			if !inside && c != bg {
				t.Errorf("(%d, %d) = %v, want background %v", x, y, c, bg)
			}
			if inside && c.R < 200 {
				t.Errorf("(%d, %d) = %v, want the image color", x, y, c)
			}
		}
	}
}

func TestFrameWithoutImage(t *testing.T) {
	frame := Frame(nil, 3, 3)
	for ii := 0; ii < len(frame.Pix); ii += 4 {
		if frame.Pix[ii] != 0 || frame.Pix[ii+3] != 0xff {
			t.Fatalf("frame without image is not the background: %v", frame.Pix[ii:ii+4])
		}
	}
}

func TestSize(t *testing.T) {
	if w, h := Size(grid.New(7, 2)); w != 7 || h != 2 {
		t.Errorf("Size = (%d, %d), want (7, 2)", w, h)
	}
	if w, h := Size(nil); w != 0 || h != 0 {
		t.Errorf("Size(nil) = (%d, %d), want (0, 0)", w, h)
	}
}
