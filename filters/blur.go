package filters

import (
	"image/color"

	"github.com/janpfeifer/goedit/grid"
)

// BlurRadius is the half size of the square window averaged by the blur filters:
// each window is (2*BlurRadius+1) samples wide.
const BlurRadius = 7

// BoxBlur replaces every pixel by the truncated average of the red, green and
// blue channels of the window around it.
//
// Only samples with row > 0 and col > 0 take part in any window: the first row
// and first column of the image are never averaged in. This is the documented
// behavior of this filter, see BoxBlurEdges for a window that includes them.
// Pixels near the borders average fewer samples.
func BoxBlur(src *grid.Grid) *grid.Grid {
	return boxBlur(src, BlurRadius, 1)
}

// BoxBlurEdges is BoxBlur with windows that include the first row and column.
func BoxBlurEdges(src *grid.Grid) *grid.Grid {
	return boxBlur(src, BlurRadius, 0)
}

// boxBlur averages windows of the given radius, clipped to rows and columns
// in [firstIndex, size).
//
// A window can only end up empty when firstIndex is 1 and the image is a
// single row or column wide: those pixels keep their own color.
func boxBlur(src *grid.Grid, radius, firstIndex int) *grid.Grid {
	dst := grid.New(src.Width, src.Height)
	for row := 0; row < src.Height; row++ {
		top := max(row-radius, firstIndex)
		bottom := min(row+radius, src.Height-1)
		out := dst.Row(row)
		for col := range out {
			left := max(col-radius, firstIndex)
			right := min(col+radius, src.Width-1)

			var redTotal, greenTotal, blueTotal, total int
			for ii := top; ii <= bottom; ii++ {
				for _, c := range src.Row(ii)[left : right+1] {
					redTotal += int(c.R)
					greenTotal += int(c.G)
					blueTotal += int(c.B)
					total++
				}
			}
			if total == 0 {
				c := src.Sample(row, col)
				out[col] = opaque(c.R, c.G, c.B)
				continue
			}
			out[col] = color.NRGBA{
				R: uint8(redTotal / total),
				G: uint8(greenTotal / total),
				B: uint8(blueTotal / total),
				A: 0xff,
			}
		}
	}
	return dst
}
