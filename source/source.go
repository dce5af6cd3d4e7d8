// Package source provides the images to be edited: decoded from files, or
// captured from the screen.
package source

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder.
	_ "image/jpeg" // Register JPEG decoder.
	_ "image/png"  // Register PNG decoder.
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/janpfeifer/goedit/grid"
	"github.com/kbinani/screenshot"
	_ "golang.org/x/image/bmp"  // Register BMP decoder.
	_ "golang.org/x/image/tiff" // Register TIFF decoder.
	_ "golang.org/x/image/webp" // Register WebP decoder.
)

// LoadError is returned when the image to edit can't be obtained. The editor
// cannot run without it.
type LoadError struct {
	// Path of the file, or a description of the source for screen captures.
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load image from %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and decodes the image file at path.
func Load(path string) (*grid.Grid, error) {
	glog.V(2).Infof("source.Load(%q)", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	g, format, err := Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	glog.V(1).Infof("Loaded %s image %q: %dx%d", format, path, g.Width, g.Height)
	return g, nil
}

// Decode decodes an image in any of the registered formats (png, jpeg, gif,
// bmp, tiff and webp) and returns it as a Grid, along with the format name.
func Decode(r io.Reader) (*grid.Grid, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	g, err := grid.FromImage(img)
	if err != nil {
		return nil, format, fmt.Errorf("converting %s image: %w", format, err)
	}
	return g, format, nil
}

// Capture takes a screenshot of the given display and returns it as a Grid.
func Capture(display int) (*grid.Grid, error) {
	name := fmt.Sprintf("display #%d", display)
	n := screenshot.NumActiveDisplays()
	if display < 0 || display >= n {
		return nil, &LoadError{Path: name, Err: fmt.Errorf("only %d active displays", n)}
	}
	bounds := screenshot.GetDisplayBounds(display)
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	glog.V(2).Infof("Screenshot captured bounds: %+v", bounds)
	g, err := grid.FromImage(img)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	return g, nil
}
