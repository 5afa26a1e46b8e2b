// Package render draws clustering results onto images for visual
// inspection. It produces the block-outline overlays used to compare
// clustering output against the source page; all file I/O is left to the
// caller.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/blockify/model"
)

// palette cycles across blocks so adjacent outlines stay distinguishable.
var palette = []color.RGBA{
	{R: 230, G: 57, B: 70, A: 255},
	{R: 29, G: 53, B: 87, A: 255},
	{R: 69, G: 123, B: 157, A: 255},
	{R: 168, G: 218, B: 220, A: 255},
	{R: 255, G: 140, B: 0, A: 255},
	{R: 0, G: 128, B: 0, A: 255},
	{R: 138, G: 43, B: 226, A: 255},
}

// NewCanvas creates a white canvas of the given size.
func NewCanvas(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// Overlay draws each block's bounding box outline and index onto dst.
// Boxes outside the image bounds are clipped, not an error.
func Overlay(dst draw.Image, blocks []model.Block) {
	for i, b := range blocks {
		c := palette[i%len(palette)]
		drawRect(dst, b.BBox, c)
		drawLabel(dst, b.BBox, fmt.Sprintf("%d", i), c)
	}
}

// drawRect draws a one-pixel rectangle outline.
func drawRect(dst draw.Image, b model.BBox, c color.RGBA) {
	bounds := dst.Bounds()
	x0, y0 := int(b.X0), int(b.Y0)
	x1, y1 := int(b.X1), int(b.Y1)

	for x := x0; x <= x1; x++ {
		setClipped(dst, bounds, x, y0, c)
		setClipped(dst, bounds, x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		setClipped(dst, bounds, x0, y, c)
		setClipped(dst, bounds, x1, y, c)
	}
}

func setClipped(dst draw.Image, bounds image.Rectangle, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(bounds) {
		dst.Set(x, y, c)
	}
}

// drawLabel writes the block index just above the box's top-left corner.
func drawLabel(dst draw.Image, b model.BBox, label string, c color.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(b.X0)),
			Y: fixed.I(int(b.Y0) - 2),
		},
	}
	d.DrawString(label)
}
