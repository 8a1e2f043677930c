package manifest

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/maruel/natural"

	"texatlas/atlas"
)

// Entry is one packed texture in the manifest.
type Entry struct {
	Key  string  `json:"key"`
	Path string  `json:"path"`
	U0   float32 `json:"u0"`
	V0   float32 `json:"v0"`
	U1   float32 `json:"u1"`
	V1   float32 `json:"v1"`
}

// Manifest describes one atlas image and its UV table.
type Manifest struct {
	Image   string  `json:"image"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Entries []Entry `json:"entries"`
}

// Build assembles a manifest for an atlas image. Entries are listed in
// natural key order.
func Build(image string, res *atlas.Result, sources map[string]string) Manifest {
	keys := make([]string, 0, len(res.Bounds))
	for k := range res.Bounds {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))

	entries := make([]Entry, len(keys))
	for i, k := range keys {
		b := res.Bounds[k]
		entries[i] = Entry{
			Key:  k,
			Path: sources[k],
			U0:   b.U0,
			V0:   b.V0,
			U1:   b.U1,
			V1:   b.V1,
		}
	}

	return Manifest{
		Image:   image,
		Width:   res.Width,
		Height:  res.Height,
		Entries: entries,
	}
}

// Write writes the manifest as indented JSON.
func Write(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
