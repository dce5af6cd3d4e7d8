package grid

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewPanicsOnEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-3, 2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d, %d) should have panicked", dims[0], dims[1])
				}
			}()
			New(dims[0], dims[1])
		}()
	}
}

func TestSampleOutOfBounds(t *testing.T) {
	g := New(3, 2)
	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"row past height", 2, 0},
		{"negative col", 0, -1},
		{"col past width", 0, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Sample(%d, %d) should have panicked", tc.row, tc.col)
				}
				err, ok := r.(error)
				if !ok {
					t.Fatalf("panic value %v is not an error", r)
				}
				var oob *OutOfBoundsError
				if !errors.As(err, &oob) {
					t.Fatalf("panic value %v is not an *OutOfBoundsError", err)
				}
				if oob.Row != tc.row || oob.Col != tc.col || oob.Width != 3 || oob.Height != 2 {
					t.Errorf("unexpected error contents: %+v", oob)
				}
			}()
			g.Sample(tc.row, tc.col)
		})
	}
}

func TestSetSampleAndAt(t *testing.T) {
	g := New(3, 2)
	want := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	g.SetSample(1, 2, want)
	if got := g.Sample(1, 2); got != want {
		t.Errorf("Sample(1, 2) = %v, want %v", got, want)
	}
	if got := g.At(2, 1); got != want {
		t.Errorf("At(x=2, y=1) = %v, want %v", got, want)
	}
	if got := g.At(3, 0); got != (color.NRGBA{}) {
		t.Errorf("At outside bounds = %v, want zero color", got)
	}
	if got := g.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", got)
	}
}

func TestCloneAndEqual(t *testing.T) {
	g := New(2, 2)
	g.SetSample(0, 1, color.NRGBA{R: 9, A: 255})
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatalf("clone differs from original")
	}
	c.SetSample(0, 0, color.NRGBA{G: 1})
	if g.Equal(c) {
		t.Errorf("changing the clone changed equality, storage is shared?")
	}
	if g.Sample(0, 0) != (color.NRGBA{}) {
		t.Errorf("original modified through clone")
	}
	if g.Equal(New(2, 1)) {
		t.Errorf("grids of different sizes reported equal")
	}
}

func TestFromImage(t *testing.T) {
	t.Run("NRGBA keeps alpha", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(10, 20, 12, 21))
		src.SetNRGBA(10, 20, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
		src.SetNRGBA(11, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 0})
		g, err := FromImage(src)
		if err != nil {
			t.Fatalf("FromImage: %v", err)
		}
		if g.Width != 2 || g.Height != 1 {
			t.Fatalf("got %dx%d grid, want 2x1", g.Width, g.Height)
		}
		if got := g.Sample(0, 0); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 128}) {
			t.Errorf("Sample(0, 0) = %v", got)
		}
		if got := g.Sample(0, 1); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 0}) {
			t.Errorf("Sample(0, 1) = %v", got)
		}
	})

	t.Run("Gray", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 1, 2))
		src.SetGray(0, 1, color.Gray{Y: 77})
		g, err := FromImage(src)
		if err != nil {
			t.Fatalf("FromImage: %v", err)
		}
		if got := g.Sample(1, 0); got != (color.NRGBA{R: 77, G: 77, B: 77, A: 255}) {
			t.Errorf("Sample(1, 0) = %v", got)
		}
	})

	t.Run("RGBA is un-premultiplied", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 1, 1))
		src.SetRGBA(0, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
		g, err := FromImage(src)
		if err != nil {
			t.Fatalf("FromImage: %v", err)
		}
		if got := g.Sample(0, 0); got != (color.NRGBA{R: 255, A: 255}) {
			t.Errorf("Sample(0, 0) = %v", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, err := FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 5)))
		if !errors.Is(err, ErrEmptyImage) {
			t.Errorf("expected ErrEmptyImage, got %v", err)
		}
	})
}

func TestNRGBARoundTrip(t *testing.T) {
	g := New(2, 3)
	for ii := range g.Pix {
		g.Pix[ii] = color.NRGBA{R: uint8(ii), G: uint8(2 * ii), B: uint8(3 * ii), A: uint8(255 - ii)}
	}
	back, err := FromImage(g.NRGBA())
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if !g.Equal(back) {
		t.Errorf("grid changed after conversion to *image.NRGBA and back")
	}
	// The grid itself is an image.Image too and goes through the generic path.
	back, err = FromImage(g)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if !g.Equal(back) {
		t.Errorf("grid changed after conversion through image.Image interface")
	}
}
