package atlas

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/maruel/natural"

	"texatlas/internal/imgio"
)

// Result is a finished build: the composite pixels plus the UV table.
type Result struct {
	Pixels []byte            // RGBA, row-major, top-left origin, Width*Height*4 bytes
	Bounds map[string]Bounds // keyed by the caller's logical keys
	Width  int
	Height int
}

// Image returns the composite as an NRGBA view sharing the Pixels buffer.
func (r *Result) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    r.Pixels,
		Stride: r.Width * 4,
		Rect:   image.Rect(0, 0, r.Width, r.Height),
	}
}

// entry is one key's staged input: its source path and decoded pixels.
// Duplicate paths under different keys share the decoded image.
type entry struct {
	key  string
	path string
	img  *image.NRGBA
}

// Build decodes every source, packs all of them into one square atlas and
// returns the composite pixels plus the UV table keyed by the caller's
// logical keys. sources maps key to image file path; duplicate paths under
// different keys each get their own placement over the same decoded pixels.
// A build either returns a complete result covering every key or an error.
func Build(sources map[string]string, opts ...Option) (*Result, error) {
	o := newOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.loader == nil {
		o.loader = imgio.NewCache()
	}

	entries, err := loadEntries(sources, o)
	if err != nil {
		return nil, err
	}
	sortEntries(entries)

	size := initialAtlasSize(entries)
	for attempt := 1; ; attempt++ {
		if size > o.maxSize {
			return nil, fmt.Errorf("%w: candidate %d px over the %d px cap",
				ErrSizeLimitExceeded, size, o.maxSize)
		}
		o.logger.Info("packing textures", "count", len(entries), "size", size, "attempt", attempt)

		a, err := packAttempt(entries, size)
		if err != nil {
			if errors.Is(err, ErrAtlasTooSmall) {
				o.logger.Debug("atlas too small, doubling", "size", size)
				size *= 2
				continue
			}
			return nil, err
		}

		bounds := a.BoundsTable()
		table := make(map[string]Bounds, len(entries))
		for _, e := range entries {
			table[e.key] = bounds[e.key]
		}

		o.logger.Info("atlas generated", "size", size, "textures", len(entries))
		return &Result{
			Pixels: rawRGBA(a.Generate()),
			Bounds: table,
			Width:  a.Size(),
			Height: a.Size(),
		}, nil
	}
}

// loadEntries decodes every distinct path through the loader with a worker
// pool, then materializes one entry per key. Keys and paths are walked in
// natural order so the first error reported does not depend on scheduling.
func loadEntries(sources map[string]string, o options) ([]entry, error) {
	paths := make([]string, 0, len(sources))
	seen := make(map[string]bool, len(sources))
	for _, p := range sources {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	sort.Sort(natural.StringSlice(paths))

	type decoded struct {
		img *image.NRGBA
		err error
	}
	imgs := make([]decoded, len(paths))

	workers := o.workers
	if workers > len(paths) {
		workers = len(paths)
	}
	pathChan := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range pathChan {
				img, err := o.loader.Load(paths[i])
				imgs[i] = decoded{img: img, err: err}
			}
		}()
	}
	for i := range paths {
		pathChan <- i
	}
	close(pathChan)
	wg.Wait()

	byPath := make(map[string]*image.NRGBA, len(paths))
	for i, p := range paths {
		d := imgs[i]
		if d.err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecode, p, d.err)
		}
		if d.img == nil {
			return nil, fmt.Errorf("%w: %s: loader returned no image", ErrDecode, p)
		}
		if b := d.img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDimensions, p)
		}
		byPath[p] = d.img
	}

	keys := make([]string, 0, len(sources))
	for k := range sources {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))

	entries := make([]entry, len(keys))
	for i, k := range keys {
		entries[i] = entry{key: k, path: sources[k], img: byPath[sources[k]]}
	}
	return entries, nil
}

// sortEntries orders largest-first: descending perimeter, ties kept in the
// incoming natural key order.
func sortEntries(entries []entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		bi, bj := entries[i].img.Bounds(), entries[j].img.Bounds()
		return bi.Dx()+bi.Dy() > bj.Dx()+bj.Dy()
	})
}

// packAttempt wraps each entry in a fresh texture (placements are write-once,
// so retries never reuse frames) and packs them all into a new atlas of the
// candidate size.
func packAttempt(entries []entry, size int) (*Atlas, error) {
	a := New(size)
	for _, e := range entries {
		f, err := NewFrame(e.img, e.path)
		if err != nil {
			return nil, err
		}
		if err := a.Pack(NewTexture(e.key, f)); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// rawRGBA flattens the image into a row-major RGBA byte buffer. The canvas
// Generate allocates is already contiguous at the origin; any other layout
// is copied row by row.
func rawRGBA(img *image.NRGBA) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if b.Min.X == 0 && b.Min.Y == 0 && img.Stride == w*4 {
		return img.Pix
	}
	out := make([]byte, 0, w*h*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		out = append(out, row[:w*4]...)
	}
	return out
}
