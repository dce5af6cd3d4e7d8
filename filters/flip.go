package filters

import "github.com/janpfeifer/goedit/grid"

// FlipHorizontal mirrors the image left to right. Samples, alpha included, are
// copied verbatim, so applying it twice yields the original grid.
func FlipHorizontal(src *grid.Grid) *grid.Grid {
	dst := grid.New(src.Width, src.Height)
	for row := 0; row < src.Height; row++ {
		from, to := src.Row(row), dst.Row(row)
		last := len(from) - 1
		for col := range to {
			to[col] = from[last-col]
		}
	}
	return dst
}

// FlipVertical mirrors the image top to bottom.
func FlipVertical(src *grid.Grid) *grid.Grid {
	dst := grid.New(src.Width, src.Height)
	for row := 0; row < src.Height; row++ {
		copy(dst.Row(src.Height-1-row), src.Row(row))
	}
	return dst
}
