// Package grid holds the in-memory representation of the image being edited:
// a rectangular, row-major grid of color samples.
//
// Rows grow downwards and columns grow rightwards, with (0, 0) at the top-left
// corner. A Grid is treated as a value snapshot: filters never modify a grid
// they were given, they always allocate a new one.
package grid

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrEmptyImage is returned when building a Grid from an image without pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Grid is a Height x Width array of color samples, stored row-major in Pix.
//
// Grid implements image.Image, with x mapping to the column and y to the row,
// so it can be handed directly to anything that draws images.
type Grid struct {
	Width, Height int

	// Pix holds the samples, Pix[row*Width+col].
	Pix []color.NRGBA
}

// OutOfBoundsError is the value Sample and SetSample panic with when accessed
// outside of the grid. It signals a programming error, not a user facing one.
type OutOfBoundsError struct {
	Row, Col      int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid: sample (row=%d, col=%d) out of bounds for %dx%d grid",
		e.Row, e.Col, e.Width, e.Height)
}

// Ensure Grid implements image.Image.
var _ image.Image = (*Grid)(nil)

// New allocates a grid of the given dimensions, with every sample set to the zero
// (fully transparent black) color. It panics if either dimension is smaller than 1.
func New(width, height int) *Grid {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]color.NRGBA, width*height),
	}
}

// Sample returns the color at the given row and column.
func (g *Grid) Sample(row, col int) color.NRGBA {
	return g.Pix[g.offset(row, col)]
}

// SetSample sets the color at the given row and column. It should only be used
// on grids being built, grids handed to others are not to be changed.
func (g *Grid) SetSample(row, col int, c color.NRGBA) {
	g.Pix[g.offset(row, col)] = c
}

func (g *Grid) offset(row, col int) int {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		panic(&OutOfBoundsError{Row: row, Col: col, Width: g.Width, Height: g.Height})
	}
	return row*g.Width + col
}

// Row returns the samples of the given row. The returned slice shares storage
// with the grid.
func (g *Grid) Row(row int) []color.NRGBA {
	start := g.offset(row, 0)
	return g.Pix[start : start+g.Width]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, Pix: make([]color.NRGBA, len(g.Pix))}
	copy(c.Pix, g.Pix)
	return c
}

// Equal reports whether both grids have the same dimensions and samples.
func (g *Grid) Equal(other *Grid) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for ii := range g.Pix {
		if g.Pix[ii] != other.Pix[ii] {
			return false
		}
	}
	return true
}

// ColorModel returns the Image's color model.
func (g *Grid) ColorModel() color.Model { return color.NRGBAModel }

// Bounds returns the domain for which At can return non-zero color.
func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.Width, g.Height) }

// At returns the color of the pixel at (x, y), that is column x of row y.
// Outside of the grid it returns the zero color, as image.Image requires.
func (g *Grid) At(x, y int) color.Color {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return color.NRGBA{}
	}
	return g.Pix[y*g.Width+x]
}

func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d)", g.Width, g.Height)
}
