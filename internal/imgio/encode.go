package imgio

import (
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
)

// WritePNG saves img to path; the format follows the extension, so .png is
// expected but any format imaging can save works.
func WritePNG(path string, img *image.NRGBA) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("imgio: save %s: %w", path, err)
	}
	return nil
}

// WriteWebP saves img to path as lossless WebP.
func WriteWebP(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgio: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("imgio: webp encode %s: %w", path, err)
	}
	return nil
}
