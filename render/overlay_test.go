package render

import (
	"image/color"
	"testing"

	"github.com/tsawler/blockify/model"
)

func TestNewCanvasIsWhite(t *testing.T) {
	img := NewCanvas(10, 8)

	if got := img.Bounds().Dx(); got != 10 {
		t.Errorf("width = %d, want 10", got)
	}
	if got := img.Bounds().Dy(); got != 8 {
		t.Errorf("height = %d, want 8", got)
	}
	for _, pt := range [][2]int{{0, 0}, {9, 7}, {5, 4}} {
		r, g, b, _ := img.At(pt[0], pt[1]).RGBA()
		if r != 0xffff || g != 0xffff || b != 0xffff {
			t.Errorf("pixel (%d,%d) = %v, want white", pt[0], pt[1], img.At(pt[0], pt[1]))
		}
	}
}

func TestOverlayDrawsOutline(t *testing.T) {
	img := NewCanvas(100, 100)

	blocks := []model.Block{{BBox: model.NewBBox(20, 30, 60, 50)}}
	Overlay(img, blocks)

	first := palette[0]

	// Corners and mid-edges carry the outline color.
	for _, pt := range [][2]int{{20, 30}, {60, 30}, {20, 50}, {60, 50}, {40, 30}, {20, 40}} {
		if got := img.RGBAAt(pt[0], pt[1]); got != first {
			t.Errorf("pixel (%d,%d) = %v, want outline color %v", pt[0], pt[1], got, first)
		}
	}

	// The interior stays untouched.
	if got := img.RGBAAt(40, 40); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("interior pixel = %v, want white", got)
	}
}

func TestOverlayCyclesPalette(t *testing.T) {
	img := NewCanvas(400, 50)

	blocks := make([]model.Block, len(palette)+1)
	for i := range blocks {
		x := float64(i * 40)
		blocks[i] = model.Block{BBox: model.NewBBox(x+5, 20, x+30, 40)}
	}
	Overlay(img, blocks)

	// The block after a full cycle reuses the first color.
	last := blocks[len(palette)].BBox
	if got := img.RGBAAt(int(last.X0), int(last.Y0)); got != palette[0] {
		t.Errorf("wrapped block color = %v, want %v", got, palette[0])
	}
}

func TestOverlayClipsOutOfBoundsBoxes(t *testing.T) {
	img := NewCanvas(50, 50)

	// Extends past the right and bottom edges; must not panic.
	blocks := []model.Block{{BBox: model.NewBBox(40, 40, 120, 120)}}
	Overlay(img, blocks)

	if got := img.RGBAAt(45, 40); got != palette[0] {
		t.Errorf("in-bounds edge pixel = %v, want outline color", got)
	}
}
