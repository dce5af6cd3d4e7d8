// Package display composes the frames shown by the edit window.
//
// The image is drawn pixel-for-pixel, anchored at the top-left corner of the
// frame, over a solid background.
package display

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/janpfeifer/goedit/grid"
)

// Background is painted where the frame is not covered by the image, and
// under translucent pixels.
var Background = color.NRGBA{A: 0xff}

// Frame renders g into a width x height frame. Pixels of g that fall outside
// of the frame are clipped.
func Frame(g *grid.Grid, width, height int) *image.RGBA {
	dc := gg.NewContext(width, height)
	dc.SetColor(Background)
	dc.Clear()
	if g != nil {
		dc.DrawImage(g.NRGBA(), 0, 0)
	}
	return dc.Image().(*image.RGBA)
}

// Size returns the frame size needed to show g entirely.
func Size(g *grid.Grid) (width, height int) {
	if g == nil {
		return 0, 0
	}
	return g.Width, g.Height
}
