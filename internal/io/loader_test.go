package io

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"image-transform-studio/internal/core"
)

func newTestLoader(t *testing.T) (*ImageLoader, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewImageLoader(logger), hook
}

func sample() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(60 * x), G: uint8(100 * y), B: 9, A: 255})
		}
	}
	return img
}

func writeFile(t *testing.T, name string, encode func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f))
	require.NoError(t, f.Close())
	return path
}

func TestLoadImagePNG(t *testing.T) {
	loader, hook := newTestLoader(t)
	src := sample()
	path := writeFile(t, "sample.png", func(f *os.File) error { return png.Encode(f, src) })

	img, err := loader.LoadImage(path)
	require.NoError(t, err)

	assert.Equal(t, 4, img.Width())
	assert.Equal(t, 3, img.Height())
	assert.Equal(t, src.Pix, img.ToNRGBA().Pix)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Image loaded successfully", entry.Message)
	assert.Equal(t, path, entry.Data["filepath"])
}

func TestLoadImageBMP(t *testing.T) {
	loader, _ := newTestLoader(t)
	src := sample()
	path := writeFile(t, "sample.BMP", func(f *os.File) error { return bmp.Encode(f, src) })

	img, err := loader.LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, img.ToNRGBA().Pix)
}

func TestLoadImageJPEG(t *testing.T) {
	loader, _ := newTestLoader(t)
	src := image.NewGray(image.Rect(0, 0, 8, 8))
	path := writeFile(t, "gray.jpeg", func(f *os.File) error { return jpeg.Encode(f, src, nil) })

	img, err := loader.LoadImage(path)
	require.NoError(t, err)

	assert.Equal(t, core.Channels*8*8, len(img.Pix))
}

func TestLoadImageMissingFile(t *testing.T) {
	loader, _ := newTestLoader(t)

	_, err := loader.LoadImage(filepath.Join(t.TempDir(), "nope.png"))

	assert.ErrorIs(t, err, core.ErrLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadImageUnsupportedExtension(t *testing.T) {
	loader, _ := newTestLoader(t)

	_, err := loader.LoadImage("picture.gif")

	assert.ErrorIs(t, err, core.ErrLoad)
	assert.ErrorIs(t, err, errUnsupportedFormat)
}

func TestLoadImageCorruptFile(t *testing.T) {
	loader, _ := newTestLoader(t)
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not really a png"), 0o644))

	_, err := loader.LoadImage(path)

	var le *core.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.Path)
}

func TestLoadImageRejectsOversizedHeader(t *testing.T) {
	loader, _ := newTestLoader(t)
	path := writeFile(t, "wide.png", func(f *os.File) error {
		return png.Encode(f, image.NewGray(image.Rect(0, 0, 16385, 1)))
	})
	// Keep only the signature and IHDR chunk: the pixel data is gone, so
	// the file can only be refused from its header.
	require.NoError(t, os.Truncate(path, 33))

	_, err := loader.LoadImage(path)

	assert.ErrorIs(t, err, core.ErrLoad)
	assert.ErrorContains(t, err, "too large")
}

func TestSupportedExtensionsIsACopy(t *testing.T) {
	loader, _ := newTestLoader(t)

	exts := loader.SupportedExtensions()
	exts[0] = ".gif"

	assert.Equal(t, []string{".jpg", ".jpeg", ".png", ".bmp"}, loader.SupportedExtensions())
}
