package imgio_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/require"

	"texatlas/internal/imgio"
)

var testColor = color.NRGBA{R: 200, G: 40, B: 90, A: 255}

func TestDecodePNG(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "in.png")
	require.NoError(t, imaging.Save(imaging.New(20, 10, testColor), path))

	img, err := imgio.Decode(path)
	require.NoError(t, err)
	require.Equal(t, 20, img.Bounds().Dx())
	require.Equal(t, 10, img.Bounds().Dy())
	require.Equal(t, testColor, img.NRGBAAt(0, 0))
}

func TestDecodeJPEG(t *testing.T) {
	t.Parallel()

	// Lossy format; only the geometry is stable.
	path := filepath.Join(t.TempDir(), "in.jpg")
	require.NoError(t, imaging.Save(imaging.New(33, 17, testColor), path))

	img, err := imgio.Decode(path)
	require.NoError(t, err)
	require.Equal(t, 33, img.Bounds().Dx())
	require.Equal(t, 17, img.Bounds().Dy())
}

func TestDecodeTGARoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "in.tga")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, tga.Encode(f, imaging.New(21, 13, testColor)))
	require.NoError(t, f.Close())

	img, err := imgio.Decode(path)
	require.NoError(t, err)
	require.Equal(t, 21, img.Bounds().Dx())
	require.Equal(t, 13, img.Bounds().Dy())
	require.Equal(t, testColor, img.NRGBAAt(10, 6))
}

func TestDecodeUnknownExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tex.dat")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0644))

	_, err := imgio.Decode(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "unknown extension")
}

func TestDecodeMissingFile(t *testing.T) {
	t.Parallel()

	_, err := imgio.Decode(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
	require.ErrorContains(t, err, "open")
}

func TestDecodeNotAnImage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not a picture"), 0644))

	_, err := imgio.Decode(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "decode")
}

func TestWritePNGRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, imgio.WritePNG(path, imaging.New(12, 12, testColor)))

	img, err := imgio.Decode(path)
	require.NoError(t, err)
	require.Equal(t, 12, img.Bounds().Dx())
	require.Equal(t, testColor, img.NRGBAAt(6, 6))
}

func TestWriteWebPRoundTrip(t *testing.T) {
	t.Parallel()

	// Lossless encode, so pixels survive the full cycle.
	path := filepath.Join(t.TempDir(), "out.webp")
	require.NoError(t, imgio.WriteWebP(path, imaging.New(9, 14, testColor)))

	img, err := imgio.Decode(path)
	require.NoError(t, err)
	require.Equal(t, 9, img.Bounds().Dx())
	require.Equal(t, 14, img.Bounds().Dy())
	require.Equal(t, testColor, img.NRGBAAt(4, 7))
}
