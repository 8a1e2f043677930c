package imgio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Decode reads path and returns its pixels as NRGBA. The decoder is chosen
// by file extension: PNG, JPEG, GIF, BMP, TIFF, TGA and WebP.
func Decode(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgio: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decodeImage(f, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("imgio: decode %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// decodeImage calls the decoder for ext directly. TGA has no magic bytes and
// its decoder registers an empty sniff prefix, which shadows every other
// format in the image.Decode registry once the package is linked in, so the
// registry is bypassed entirely.
func decodeImage(r io.Reader, ext string) (image.Image, error) {
	switch ext {
	case ".png":
		return png.Decode(r)
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	case ".gif":
		return gif.Decode(r)
	case ".bmp":
		return bmp.Decode(r)
	case ".tif", ".tiff":
		return tiff.Decode(r)
	case ".tga":
		return tga.Decode(r)
	case ".webp":
		return webp.Decode(r)
	}
	return nil, fmt.Errorf("unknown extension %q", ext)
}
