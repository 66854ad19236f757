/*
Package render is the external raster back-end mentioned in spec §1 as an
out-of-scope collaborator: it consumes a layout.Drawing and paints it onto a
pixel buffer, encoding the result as a PNG. None of the core pipeline
(lexer, parser, layout) depends on this package.
*/
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	xdraw "golang.org/x/image/draw"

	"devt.de/xtc/xc/layout"
)

var (
	background = color.White
	boxOutline = color.Black
	edgeColor  = color.Gray{Y: 96}
	textColor  = color.Black
)

/*
PNG paints the given Drawing onto a fresh canvas sized to fit every node and
edge, and writes it to w as a PNG image.
*/
func PNG(d *layout.Drawing, w io.Writer) error {
	img := canvas(d)

	for _, e := range d.Edges {
		drawLine(img, e.FromX, e.FromY, e.ToX, e.ToY, edgeColor)
	}

	face := basicfont.Face7x13

	for _, g := range d.Nodes {
		drawBox(img, g.X, g.Y, g.Width, g.Height, boxOutline)
		drawLabel(img, face, g.X+4, g.Y+g.Height-6, g.Label)
	}

	return png.Encode(w, img)
}

func canvas(d *layout.Drawing) *image.RGBA {
	maxX, maxY := 64, 64

	for _, g := range d.Nodes {
		if x := g.X + g.Width; x > maxX {
			maxX = x
		}
		if y := g.Y + g.Height; y > maxY {
			maxY = y
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, maxX+16, maxY+16))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, xdraw.Src)

	return img
}

func drawBox(img *image.RGBA, x, y, w, h int, c color.Color) {
	for i := 0; i < w; i++ {
		img.Set(x+i, y, c)
		img.Set(x+i, y+h-1, c)
	}
	for j := 0; j < h; j++ {
		img.Set(x, y+j, c)
		img.Set(x+w-1, y+j, c)
	}
}

func drawLabel(img *image.RGBA, face font.Face, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixedPoint(x, y),
	}
	d.DrawString(text)
}

/*
drawLine rasterizes a straight connector with a plain Bresenham walk; edges
in this layout are always near-vertical (parent bottom-center to child
top-center), so no anti-aliasing is attempted.
*/
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy

	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
