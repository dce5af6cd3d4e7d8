// Package cmd implements the command line of the editor.
package cmd

import (
	"errors"
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/janpfeifer/goedit/grid"
	"github.com/janpfeifer/goedit/source"
	"github.com/janpfeifer/goedit/window"
	"github.com/spf13/cobra"
)

// DefaultImage is edited when no image is given in the command line.
const DefaultImage = "City.jpg"

var (
	// Used for flags.
	fromScreenshot bool
	displayIndex   int

	// runEditor opens the edit window, replaced in tests.
	runEditor = window.Run

	rootCmd = &cobra.Command{
		Use:   "goedit [image]",
		Short: "Interactive image editor",
		Long: `goedit opens an image and applies filters to it, one key at a time:

  p posterize, c contrast stretch, b blur, h flip horizontally,
  j flip vertically, g grayscale, v vintage.

If no image is given, ` + DefaultImage + ` is opened.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return &ExitCodeError{Code: ExitCodeInvalidArguments, Err: err}
			}
			if fromScreenshot && len(args) > 0 {
				return &ExitCodeError{Code: ExitCodeInvalidArguments,
					Err: errors.New("--screenshot can't be used with an image file")}
			}
			return nil
		},
		SilenceUsage: true,
		RunE:         runRoot,
	}
)

// Execute executes the root command.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&fromScreenshot, "screenshot", false, "Edit a screenshot instead of an image file")
	rootCmd.Flags().IntVar(&displayIndex, "display", 0, "Display to capture with --screenshot")

	// glog registers its flags (-v, -logtostderr, ...) in the standard flag set.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Keeps glog from complaining about logging before flag.Parse.
		_ = flag.CommandLine.Parse(nil)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	g, sourceName, err := loadImage(args)
	if err != nil {
		glog.Errorf("Failed to load image: %v", err)
		return &ExitCodeError{Code: ExitCodeLoadFailure, Err: err}
	}
	glog.V(1).Infof("Editing %s (%s)", sourceName, g)
	runEditor(g, sourceName)
	return nil
}

func loadImage(args []string) (g *grid.Grid, sourceName string, err error) {
	if fromScreenshot {
		g, err = source.Capture(displayIndex)
		return g, "screenshot", err
	}
	path := DefaultImage
	if len(args) > 0 {
		path = args[0]
	}
	g, err = source.Load(path)
	return g, path, err
}
