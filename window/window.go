// Package window implements the edit window: it shows the image being edited
// and turns typed keys into editor commands.
package window

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/golang/glog"
	"github.com/janpfeifer/goedit/display"
	"github.com/janpfeifer/goedit/editor"
	"github.com/janpfeifer/goedit/filters"
	"github.com/janpfeifer/goedit/grid"
)

// AppID identifies the application to fyne.
const AppID = "GoEdit"

type EditWindow struct {
	// Fyne: Application and Window
	App fyne.App
	Win fyne.Window // Main window.

	// Editor holds the image being edited.
	Editor *editor.Editor

	// SourceName describes where the image came from, for the title.
	SourceName string
	LoadTime   time.Time

	// UI elements
	status   *widget.Label
	viewPort *ViewPort
}

// Run opens the edit window for the given image and blocks until the
// application quits.
func Run(g *grid.Grid, sourceName string) {
	ew := &EditWindow{
		App:        app.NewWithID(AppID),
		SourceName: sourceName,
		LoadTime:   time.Now(),
	}
	ew.Editor = editor.New(g, ew.redraw)
	ew.BuildEditWindow()
	ew.Win.ShowAndRun()
}

func (ew *EditWindow) BuildEditWindow() {
	ew.Win = ew.App.NewWindow(fmt.Sprintf("GoEdit: %s @ %s",
		ew.SourceName, ew.LoadTime.Format("2006-01-02 15:04:05")))

	// Build menu: one entry per registered filter, including the ones that
	// have no key bound.
	var filterItems []*fyne.MenuItem
	for _, name := range filters.Names() {
		name := name
		filterItems = append(filterItems, fyne.NewMenuItem(name, func() { ew.applyFilter(name) }))
	}
	menuFilters := fyne.NewMenu("Filters", filterItems...)
	menuHelp := fyne.NewMenu("Help",
		fyne.NewMenuItem("Commands", func() { ew.ShowCommandsPage() }),
	)
	ew.Win.SetMainMenu(fyne.NewMainMenu(menuFilters, menuHelp))

	// Image canvas, sized to show the whole image pixel-for-pixel.
	ew.viewPort = NewViewPort(ew)
	scale := ew.Win.Canvas().Scale()
	imgW, imgH := display.Size(ew.Editor.Current())
	size := fyne.NewSize(float32(imgW)/scale, float32(imgH)/scale)
	ew.viewPort.SetMinSize(size)

	ew.status = widget.NewLabel(ew.imageDescription())
	topLevel := container.NewBorder(nil, ew.status, nil, nil, ew.viewPort)
	ew.Win.SetContent(topLevel)
	ew.Win.Resize(size.Add(fyne.NewSize(0, ew.status.MinSize().Height)))

	// Register commands.
	ew.Win.Canvas().SetOnTypedRune(ew.handleRune)
	ew.Win.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierControl},
		func(shortcut fyne.Shortcut) {
			glog.Infof("Quit requested by shortcut %s", shortcut.ShortcutName())
			ew.App.Quit()
		})
}

// handleRune dispatches a typed character to the editor.
func (ew *EditWindow) handleRune(r rune) {
	glog.V(2).Infof("handleRune(%q)", r)
	name, found := editor.FilterFor(r)
	if !found {
		return
	}
	if ew.Editor.HandleSymbol(r) {
		ew.status.SetText(fmt.Sprintf("%s (%c) applied. %s", name, r, ew.imageDescription()))
	}
}

// applyFilter applies a filter by name, from the menu.
func (ew *EditWindow) applyFilter(name string) {
	glog.V(2).Infof("applyFilter(%q)", name)
	if ew.Editor.ApplyFilter(name) {
		ew.status.SetText(fmt.Sprintf("%s applied. %s", name, ew.imageDescription()))
	}
}

// redraw is called by the editor whenever the image changes.
func (ew *EditWindow) redraw(_ *grid.Grid) {
	if ew.viewPort != nil {
		ew.viewPort.Refresh()
	}
}

func (ew *EditWindow) imageDescription() string {
	g := ew.Editor.Current()
	return fmt.Sprintf("Image size: %d x %d pixels.", g.Width, g.Height)
}

// ShowCommandsPage shows the keys bound to filters.
func (ew *EditWindow) ShowCommandsPage() {
	var parts []string
	for _, cmd := range editor.Commands() {
		parts = append(parts, fmt.Sprintf("%c\t%s", cmd.Symbol, cmd.Filter))
	}
	parts = append(parts, "", "ctrl+q\tquit")
	dialog.ShowInformation("Commands", strings.Join(parts, "\n"), ew.Win)
}
