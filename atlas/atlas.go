// Package atlas packs named textures into a single square composite image
// and emits normalized UV bounds for each one. Placement uses a guillotine
// region tree; when a candidate size cannot hold every texture, the Build
// driver doubles it and packs again from scratch.
package atlas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"texatlas/pack"
)

// Bounds is a normalized UV rectangle in [0,1], top-left origin, v increasing
// downward like pixel y.
type Bounds struct {
	U0 float32
	V0 float32
	U1 float32
	V1 float32
}

// Atlas is one packing session at a fixed square size. Packed textures keep
// their insertion order. A failed placement leaves frames from the same Pack
// call behind without rollback; the caller discards the whole session.
type Atlas struct {
	size     int
	root     *pack.Region
	textures []*Texture
}

// New returns an empty atlas of size x size pixels. Size must be positive.
func New(size int) *Atlas {
	return &Atlas{size: size, root: pack.NewRegion(0, 0, size, size)}
}

// Size returns the side length in pixels.
func (a *Atlas) Size() int { return a.size }

// Textures returns the packed textures in pack order.
func (a *Atlas) Textures() []*Texture { return a.textures }

// Items returns every placed rectangle in the region tree, for verification.
func (a *Atlas) Items() []*pack.Item { return a.root.Items() }

// Pack places every frame of t in frame order. The texture joins the packed
// sequence only when all of its frames land; the first frame that does not
// fit fails the whole session with ErrAtlasTooSmall.
func (a *Atlas) Pack(t *Texture) error {
	for _, f := range t.frames {
		if !a.root.Pack(f.Item) {
			return fmt.Errorf("%w: %dx%d frame of %q at %d px", ErrAtlasTooSmall,
				f.Width(), f.Height(), t.name, a.size)
		}
	}
	a.textures = append(a.textures, t)
	return nil
}

// Generate renders the composite: every packed frame drawn at its assigned
// position, in pack order, over a transparent canvas.
func (a *Atlas) Generate() *image.NRGBA {
	dst := imaging.New(a.size, a.size, color.Transparent)
	for _, t := range a.textures {
		for _, f := range t.frames {
			f.draw(dst)
		}
	}
	return dst
}

// BoundsTable maps each packed texture's name to its first frame's placement
// normalized by the atlas size. The v extent spans min(width, height) of the
// frame, not its height; consumers of the table rely on that exact shape.
func (a *Atlas) BoundsTable() map[string]Bounds {
	table := make(map[string]Bounds, len(a.textures))
	s := float32(a.size)
	for _, t := range a.textures {
		f := t.frames[0]
		pos, _ := f.Position()
		vspan := f.Height()
		if f.Width() < vspan {
			vspan = f.Width()
		}
		table[t.name] = Bounds{
			U0: float32(pos.X) / s,
			V0: float32(pos.Y) / s,
			U1: float32(pos.X+f.Width()) / s,
			V1: float32(pos.Y+vspan) / s,
		}
	}
	return table
}
