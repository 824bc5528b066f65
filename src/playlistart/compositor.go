package playlistart

import (
	"image"

	"golang.org/x/image/draw"
)

// maxTiles is the largest number of song images in a playlist composite.
const maxTiles = 4

// compositor draws song images into a square canvas. The canvas is created on
// the first render and reused until free is called. It is not safe for
// concurrent use; the Builder guards it with its mutex.
type compositor struct {
	size   int
	canvas *image.RGBA
}

func newCompositor(size int) *compositor {
	return &compositor{size: size}
}

// render draws images into the canvas using the layout for len(images) tiles.
// `expected` is the number of images the playlist should eventually have. It
// is used for placing a lone image when more are expected. When clear is true
// the canvas is wiped before drawing.
func (c *compositor) render(images []image.Image, expected int, clear bool) {
	if len(images) == 0 {
		return
	}

	if c.canvas == nil {
		c.canvas = image.NewRGBA(image.Rect(0, 0, c.size, c.size))
		clear = false
	}

	if clear {
		draw.Draw(c.canvas, c.canvas.Bounds(), image.Transparent, image.Point{}, draw.Src)
	}

	rects := tileRects(c.canvas.Bounds(), len(images), expected)
	for i, rect := range rects {
		src := images[i]
		draw.CatmullRom.Scale(c.canvas, rect, src, src.Bounds(), draw.Src, nil)
	}
}

// hasCanvas tells whether anything has been rendered since the last free.
func (c *compositor) hasCanvas() bool {
	return c.canvas != nil
}

// snapshot returns a deep copy of the canvas.
func (c *compositor) snapshot() *image.RGBA {
	if c.canvas == nil {
		return nil
	}

	snap := image.NewRGBA(c.canvas.Bounds())
	copy(snap.Pix, c.canvas.Pix)
	return snap
}

// free releases the canvas.
func (c *compositor) free() {
	c.canvas = nil
}

// tileRects returns the destination rectangles of the tiles when n images are
// drawn in bounds. Four or more images make a 2x2 grid. Two or three images are
// vertical strips of equal width. A single image takes the place of the first
// tile in the layout of `expected` images.
func tileRects(bounds image.Rectangle, n, expected int) []image.Rectangle {
	switch {
	case n >= maxTiles:
		return gridRects(bounds)
	case n >= 2:
		return stripRects(bounds, n)
	case expected >= maxTiles:
		return gridRects(bounds)[:1]
	case expected >= 2:
		return stripRects(bounds, expected)[:1]
	default:
		return []image.Rectangle{bounds}
	}
}

func stripRects(bounds image.Rectangle, n int) []image.Rectangle {
	w := bounds.Dx()
	rects := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		rects = append(rects, image.Rect(
			bounds.Min.X+i*w/n,
			bounds.Min.Y,
			bounds.Min.X+(i+1)*w/n,
			bounds.Max.Y,
		))
	}
	return rects
}

func gridRects(bounds image.Rectangle) []image.Rectangle {
	w, h := bounds.Dx(), bounds.Dy()
	rects := make([]image.Rectangle, 0, maxTiles)
	for i := 0; i < maxTiles; i++ {
		row, col := i/2, i%2
		rects = append(rects, image.Rect(
			bounds.Min.X+col*w/2,
			bounds.Min.Y+row*h/2,
			bounds.Min.X+(col+1)*w/2,
			bounds.Min.Y+(row+1)*h/2,
		))
	}
	return rects
}
