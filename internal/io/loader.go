// Image file loading for the session
package io

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"

	"image-transform-studio/internal/core"
)

// SupportedExtensions are the file types offered by the open dialog.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

var errUnsupportedFormat = errors.New("unsupported image format")

// ImageLoader handles image file operations
type ImageLoader struct {
	logger logrus.FieldLogger
}

func NewImageLoader(logger logrus.FieldLogger) *ImageLoader {
	return &ImageLoader{
		logger: logger,
	}
}

// LoadImage decodes the file at path into a three channel image.
// Every failure is a *core.LoadError.
func (il *ImageLoader) LoadImage(path string) (*core.Image, error) {
	il.logger.WithField("filepath", path).Debug("Loading image")

	if !il.isSupportedImageFormat(path) {
		return nil, &core.LoadError{Path: path, Err: fmt.Errorf("%w: %q", errUnsupportedFormat, filepath.Ext(path))}
	}

	if err := checkHeader(path); err != nil {
		return nil, &core.LoadError{Path: path, Err: err}
	}

	decoded, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &core.LoadError{Path: path, Err: err}
	}

	img := core.FromImage(decoded)
	if err := core.ValidateImage(img); err != nil {
		return nil, &core.LoadError{Path: path, Err: err}
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"width":    img.Width(),
		"height":   img.Height(),
		"channels": core.Channels,
	}).Info("Image loaded successfully")

	return img, nil
}

// checkHeader reads only the image header so oversized files are refused
// before their pixels are allocated.
func checkHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("failed to read image header: %w", err)
	}
	return core.ValidateDimensions(cfg.Width, cfg.Height)
}

// SupportedExtensions lists the accepted file extensions, dot included.
func (il *ImageLoader) SupportedExtensions() []string {
	out := make([]string, len(SupportedExtensions))
	copy(out, SupportedExtensions)
	return out
}

func (il *ImageLoader) isSupportedImageFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedExtensions {
		if ext == format {
			return true
		}
	}
	return false
}
