package atlas

// Texture is a named group of one or more frames packed and addressed as a
// unit. Current callers build single-frame textures; the frame list keeps
// room for animated strips.
type Texture struct {
	name   string
	frames []*Frame
}

// NewTexture groups frames under a name. The name must be unique within an
// atlas (the bounds table is keyed by it) and at least one frame is required.
func NewTexture(name string, frames ...*Frame) *Texture {
	if len(frames) == 0 {
		panic("atlas: texture has no frames")
	}
	return &Texture{name: name, frames: frames}
}

// Name returns the texture's identifier.
func (t *Texture) Name() string { return t.name }

// Frames returns the frames in pack order.
func (t *Texture) Frames() []*Frame { return t.frames }
