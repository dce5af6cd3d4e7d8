// Package filters implements the full-frame image filters of the editor.
//
// Every filter is a pure function from a grid to a new grid of the same
// dimensions: the input is never modified. Filters are registered by name, see
// Lookup and Names.
package filters

import (
	"image/color"
	"sort"

	"github.com/janpfeifer/goedit/grid"
	"golang.org/x/exp/constraints"
)

// Func is a filter: it returns a new grid with the effect applied to src.
type Func func(src *grid.Grid) *grid.Grid

// Names of the registered filters.
const (
	FlipHorizontalName  = "flipHorizontal"
	FlipVerticalName    = "flipVertical"
	GrayscaleName       = "grayscale"
	BoxBlurName         = "boxBlur"
	BoxBlurEdgesName    = "boxBlurEdges"
	ContrastStretchName = "contrastStretch"
	PosterizeName       = "posterize"
	VintageName         = "vintage"
	VintageStrongName   = "vintageStrong"
)

var registry = map[string]Func{
	FlipHorizontalName:  FlipHorizontal,
	FlipVerticalName:    FlipVertical,
	GrayscaleName:       Grayscale,
	BoxBlurName:         BoxBlur,
	BoxBlurEdgesName:    BoxBlurEdges,
	ContrastStretchName: ContrastStretch,
	PosterizeName:       Posterize,
	VintageName:         Vintage,
	VintageStrongName:   VintageStrong,
}

// Lookup returns the filter registered under name.
func Lookup(name string) (Func, bool) {
	f, found := registry[name]
	return f, found
}

// Names returns the sorted names of all registered filters.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColorMax is the largest value of a color channel.
const ColorMax = 255

// clampMax caps v to ColorMax. Values produced by the filters are never
// negative, so there is no lower clamp.
func clampMax[T constraints.Integer](v T) uint8 {
	if int64(v) > ColorMax {
		return ColorMax
	}
	return uint8(v)
}

// opaque builds a fully opaque color: filters that compute new colors drop the
// alpha of the source.
func opaque(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// pointFilter maps every sample of src through fn into a new grid.
func pointFilter(src *grid.Grid, fn func(c color.NRGBA) color.NRGBA) *grid.Grid {
	dst := grid.New(src.Width, src.Height)
	for ii, c := range src.Pix {
		dst.Pix[ii] = fn(c)
	}
	return dst
}
