package window

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/golang/glog"
	"github.com/janpfeifer/goedit/display"
	"github.com/janpfeifer/goedit/grid"
)

// ViewPort displays the image being edited, pixel-for-pixel.
//
// It is both a CanvasObject and a WidgetRenderer, in the same fashion as
// github.com/fyne-io/pixeledit.
type ViewPort struct {
	widget.BaseWidget

	// ew points back to the edit window.
	ew *EditWindow

	// Fyne objects.
	minSize fyne.Size
	raster  *canvas.Raster

	// Cache of the last frame rendered, valid while the grid drawn and the
	// frame size don't change.
	cache     *image.RGBA
	cacheGrid *grid.Grid
}

// Ensure ViewPort implements the following interfaces.
var (
	vpPlaceholder = &ViewPort{}
	_             = fyne.CanvasObject(vpPlaceholder)
	_             = fyne.WidgetRenderer(vpPlaceholder)
)

func NewViewPort(ew *EditWindow) (vp *ViewPort) {
	vp = &ViewPort{ew: ew}
	vp.raster = canvas.NewRaster(vp.draw)
	vp.ExtendBaseWidget(vp)
	return
}

func (vp *ViewPort) Resize(size fyne.Size) {
	glog.V(2).Infof("Resize(size={w=%g, h=%g})", size.Width, size.Height)
	vp.BaseWidget.Resize(size)
	vp.raster.Resize(size)
}

func (vp *ViewPort) SetMinSize(size fyne.Size) {
	vp.minSize = size
}

func (vp *ViewPort) MinSize() fyne.Size {
	return vp.minSize
}

func (vp *ViewPort) CreateRenderer() fyne.WidgetRenderer {
	glog.V(2).Info("CreateRenderer()")
	return vp
}

func (vp *ViewPort) Destroy() {}

func (vp *ViewPort) Layout(size fyne.Size) {
	glog.V(2).Infof("Layout: size=(w=%g, h=%g)", size.Width, size.Height)
	vp.raster.Resize(size)
}

// Refresh redraws the current image.
func (vp *ViewPort) Refresh() {
	glog.V(2).Info("Refresh()")
	vp.raster.Refresh()
}

func (vp *ViewPort) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{vp.raster}
}

// draw implements canvas.Raster generator: w and h are in device pixels, so
// each sample of the grid maps to exactly one pixel on screen.
func (vp *ViewPort) draw(w, h int) image.Image {
	current := vp.ew.Editor.Current()
	if vp.cache != nil && vp.cacheGrid == current {
		if b := vp.cache.Bounds(); b.Dx() == w && b.Dy() == h {
			glog.V(2).Infof("draw(w=%d, h=%d): reuse", w, h)
			return vp.cache
		}
	}
	glog.V(2).Infof("draw(w=%d, h=%d): render %s", w, h, current)
	vp.cache = display.Frame(current, w, h)
	vp.cacheGrid = current
	return vp.cache
}
