package grid

import (
	"image"
	"image/color"
)

// FromImage copies a decoded image into a new Grid. Every pixel at device
// coordinates (x, y) becomes the sample at (row=y, col=x), relative to
// img.Bounds().Min, with its four channels copied as non-premultiplied values.
func FromImage(img image.Image) (*Grid, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}
	minX, minY := bounds.Min.X, bounds.Min.Y
	g := New(bounds.Dx(), bounds.Dy())

	switch src := img.(type) {
	case *image.NRGBA:
		for row := 0; row < g.Height; row++ {
			si := src.PixOffset(minX, minY+row)
			dst := g.Row(row)
			for col := range dst {
				dst[col] = color.NRGBA{R: src.Pix[si], G: src.Pix[si+1], B: src.Pix[si+2], A: src.Pix[si+3]}
				si += 4
			}
		}
	case *image.YCbCr:
		for row := 0; row < g.Height; row++ {
			dst := g.Row(row)
			for col := range dst {
				x, y := minX+col, minY+row
				yi := src.YOffset(x, y)
				ci := src.COffset(x, y)
				r, gr, b := color.YCbCrToRGB(src.Y[yi], src.Cb[ci], src.Cr[ci])
				dst[col] = color.NRGBA{R: r, G: gr, B: b, A: 0xff}
			}
		}
	case *image.Gray:
		for row := 0; row < g.Height; row++ {
			si := src.PixOffset(minX, minY+row)
			dst := g.Row(row)
			for col := range dst {
				c := src.Pix[si]
				dst[col] = color.NRGBA{R: c, G: c, B: c, A: 0xff}
				si++
			}
		}
	default:
		for row := 0; row < g.Height; row++ {
			dst := g.Row(row)
			for col := range dst {
				dst[col] = color.NRGBAModel.Convert(img.At(minX+col, minY+row)).(color.NRGBA)
			}
		}
	}
	return g, nil
}

// NRGBA returns a copy of the grid as an *image.NRGBA with origin at (0, 0).
func (g *Grid) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(g.Bounds())
	for ii, c := range g.Pix {
		di := ii * 4
		img.Pix[di+0] = c.R
		img.Pix[di+1] = c.G
		img.Pix[di+2] = c.B
		img.Pix[di+3] = c.A
	}
	return img
}
