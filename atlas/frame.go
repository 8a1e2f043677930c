package atlas

import (
	"fmt"
	"image"
	"image/draw"

	"texatlas/pack"
)

// Frame is one decoded source image staged for placement. It embeds the
// pack.Item that represents it in the region tree, so the item's position
// accessors report the frame's placement directly.
type Frame struct {
	*pack.Item
	img  *image.NRGBA
	path string
}

// NewFrame wraps decoded pixels as a packable frame. The path is carried for
// error reporting and manifests only; the image is not re-read.
func NewFrame(img *image.NRGBA, path string) (*Frame, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDimensions, path)
	}
	return &Frame{Item: pack.NewItem(b.Dx(), b.Dy()), img: img, path: path}, nil
}

// Image returns the decoded source pixels.
func (f *Frame) Image() *image.NRGBA { return f.img }

// Path returns the source path the frame was decoded from.
func (f *Frame) Path() string { return f.path }

// draw composites the frame onto dst at its assigned position. An unplaced
// frame draws nothing.
func (f *Frame) draw(dst *image.NRGBA) {
	pos, ok := f.Position()
	if !ok {
		return
	}
	r := image.Rect(pos.X, pos.Y, pos.X+f.Width(), pos.Y+f.Height())
	draw.Draw(dst, r, f.img, f.img.Bounds().Min, draw.Src)
}
