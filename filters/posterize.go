package filters

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/janpfeifer/goedit/grid"
)

// Posterize palette colors.
var (
	DeepPurple  = color.NRGBA{R: 62, G: 47, B: 91, A: 0xff}
	Orange      = color.NRGBA{R: 242, G: 130, B: 0, A: 0xff}
	OffWhite    = color.NRGBA{R: 243, G: 239, B: 224, A: 0xff}
	LightPurple = color.NRGBA{R: 230, G: 161, B: 215, A: 0xff}
)

// Palette used by Posterize. The order matters: it breaks ties.
var Palette = [...]color.NRGBA{DeepPurple, Orange, OffWhite, LightPurple}

// Posterize replaces every pixel by the closest Palette color.
//
// Distances are Euclidean in RGB space (alpha ignored) and truncated to integers
// before being compared, so colors whose distances differ by less than 1 tie;
// ties go to the color that comes first in Palette.
func Posterize(src *grid.Grid) *grid.Grid {
	return pointFilter(src, func(c color.NRGBA) color.NRGBA {
		return Palette[nearestPaletteIndex(c)]
	})
}

func nearestPaletteIndex(c color.NRGBA) int {
	best, bestDist := 0, -1
	for ii, p := range Palette {
		dist := paletteDistance(c, p)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = ii, dist
		}
	}
	return best
}

// paletteDistance returns the RGB distance between two colors, truncated.
func paletteDistance(a, b color.NRGBA) int {
	delta := mgl64.Vec3{
		float64(int(a.R) - int(b.R)),
		float64(int(a.G) - int(b.G)),
		float64(int(a.B) - int(b.B)),
	}
	return int(delta.Len())
}
