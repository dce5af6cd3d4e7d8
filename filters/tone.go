package filters

import (
	"image/color"
	"math"

	"github.com/janpfeifer/goedit/grid"
)

// numColorChannels is the number of channels averaged by Grayscale.
const numColorChannels = 3

// Grayscale replaces every pixel by the plain average of its red, green and
// blue channels, truncated. It is not luminance weighted.
func Grayscale(src *grid.Grid) *grid.Grid {
	return pointFilter(src, func(c color.NRGBA) color.NRGBA {
		gray := uint8((int(c.R) + int(c.G) + int(c.B)) / numColorChannels)
		return opaque(gray, gray, gray)
	})
}

// Contrast stretch parameters: channels at or above contrastDivider are
// scaled up, the others scaled down.
const (
	contrastDivider       = 127
	contrastPositiveShift = 1.3
	contrastNegativeShift = 0.7
)

// ContrastStretch pushes every channel away from the middle of the range,
// independently, clamping at ColorMax.
func ContrastStretch(src *grid.Grid) *grid.Grid {
	return pointFilter(src, func(c color.NRGBA) color.NRGBA {
		return opaque(stretch(c.R), stretch(c.G), stretch(c.B))
	})
}

func stretch(v uint8) uint8 {
	if v >= contrastDivider {
		return clampMax(int(float64(v) * contrastPositiveShift))
	}
	return clampMax(int(float64(v) * contrastNegativeShift))
}

// Vintage tone parameters.
const (
	vintageBrightness = 1
	vintageTint       = 50 // Added to the red channel only.

	// vintageContrast is the intended contrast. Vintage truncates it to an
	// integer before use, VintageStrong applies it as is.
	vintageContrast = 3.5
)

var truncatedVintageContrast = int(math.Trunc(vintageContrast))

// Vintage brightens the image with a red tint. The contrast factor is
// truncated to 3 before multiplying, which is the documented behavior of this
// filter; see VintageStrong for the full 3.5 factor.
func Vintage(src *grid.Grid) *grid.Grid {
	contrast := truncatedVintageContrast
	return pointFilter(src, func(c color.NRGBA) color.NRGBA {
		return opaque(
			clampMax(contrast*int(c.R)+vintageBrightness+vintageTint),
			clampMax(contrast*int(c.G)+vintageBrightness),
			clampMax(contrast*int(c.B)+vintageBrightness))
	})
}

// VintageStrong is Vintage with the untruncated contrast factor.
func VintageStrong(src *grid.Grid) *grid.Grid {
	scale := func(v uint8) int { return int(vintageContrast * float64(v)) }
	return pointFilter(src, func(c color.NRGBA) color.NRGBA {
		return opaque(
			clampMax(scale(c.R)+vintageBrightness+vintageTint),
			clampMax(scale(c.G)+vintageBrightness),
			clampMax(scale(c.B)+vintageBrightness))
	})
}
