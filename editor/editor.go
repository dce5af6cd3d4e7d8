// Package editor holds the state of the image being edited and dispatches
// the single-key commands to the filters.
//
// The Editor owns exactly one current grid. Applying a filter replaces it with
// a new grid, the previous one is dropped: there is no history.
package editor

import (
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/janpfeifer/goedit/filters"
	"github.com/janpfeifer/goedit/grid"
)

// Editor holds the current image and applies filters to it.
//
// Filter applications are serialized, so the read-compute-swap of the current
// grid is atomic for callers on different goroutines.
type Editor struct {
	mu      sync.Mutex
	current *grid.Grid

	// redraw is called with the new grid after every successful filter
	// application, outside of the lock.
	redraw func(*grid.Grid)
}

// New creates an Editor for the given image. redraw may be nil.
func New(g *grid.Grid, redraw func(*grid.Grid)) *Editor {
	if g == nil {
		panic("editor.New: nil grid")
	}
	return &Editor{current: g, redraw: redraw}
}

// Current returns the current image. It must not be modified.
func (e *Editor) Current() *grid.Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// SetRedraw changes the function called after each filter application.
func (e *Editor) SetRedraw(redraw func(*grid.Grid)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.redraw = redraw
}

// ApplyFilter applies the named filter to the current image, replaces it with
// the result and triggers a redraw. Unknown names are ignored: nothing changes
// and false is returned.
func (e *Editor) ApplyFilter(name string) bool {
	filter, found := filters.Lookup(name)
	if !found {
		glog.V(2).Infof("ApplyFilter(%q): unknown filter, ignored", name)
		return false
	}

	e.mu.Lock()
	start := time.Now()
	e.current = filter(e.current)
	updated, redraw := e.current, e.redraw
	e.mu.Unlock()
	glog.V(1).Infof("Applied %s to %s in %s", name, updated, time.Since(start))

	if redraw != nil {
		redraw(updated)
	}
	return true
}

// HandleSymbol runs the command bound to the given symbol, see Commands.
// Symbols without a command are ignored, and false is returned.
func (e *Editor) HandleSymbol(symbol rune) bool {
	name, found := FilterFor(symbol)
	if !found {
		glog.V(2).Infof("HandleSymbol(%q): no command bound, ignored", symbol)
		return false
	}
	return e.ApplyFilter(name)
}
