package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Session holds the single currently loaded image. It is owned by the
// window controller and only touched from the UI thread.
type Session struct {
	original *Image
	source   string
	metadata ImageMetadata
}

// ImageMetadata contains image information
type ImageMetadata struct {
	Width    int
	Height   int
	Channels int
	Format   string
}

func NewSession() *Session {
	return &Session{}
}

// Replace installs img as the new original. The previous image is kept
// when img fails validation.
func (s *Session) Replace(img *Image, source string) error {
	if err := ValidateImage(img); err != nil {
		return fmt.Errorf("invalid image: %w", err)
	}

	s.original = img
	s.source = source
	s.metadata = ImageMetadata{
		Width:    img.Width(),
		Height:   img.Height(),
		Channels: Channels,
		Format:   getFormatFromSource(source),
	}
	return nil
}

// Original returns the loaded image. Callers must treat it as read-only.
func (s *Session) Original() (*Image, error) {
	if s.original == nil {
		return nil, ErrMissingImage
	}
	return s.original, nil
}

func (s *Session) HasImage() bool {
	return s.original != nil
}

func (s *Session) Source() string {
	return s.source
}

func (s *Session) Metadata() ImageMetadata {
	return s.metadata
}

// Clear drops the loaded image.
func (s *Session) Clear() {
	s.original = nil
	s.source = ""
	s.metadata = ImageMetadata{}
}

func getFormatFromSource(source string) string {
	if strings.HasPrefix(source, "camera:") {
		return "camera"
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(source)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}
