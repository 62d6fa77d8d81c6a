// Planar RGB image representation shared by every stage
package core

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Channels is the fixed channel depth of every Image.
const Channels = 3

// maxDimension guards against images too large to hold comfortably in memory
const maxDimension = 16384

// Channel identifies one plane of an Image.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// Valid reports whether c names one of the three planes.
func (c Channel) Valid() bool {
	return c >= Red && c <= Blue
}

// Image is a dense (channel, height, width) array of intensities in [0,1].
// Pix holds the red plane, then green, then blue; each plane is row-major.
type Image struct {
	Pix    []float32
	width  int
	height int
}

// NewImage allocates a black image of the given size.
func NewImage(width, height int) *Image {
	if width <= 0 || height <= 0 {
		return &Image{}
	}
	return &Image{
		Pix:    make([]float32, Channels*width*height),
		width:  width,
		height: height,
	}
}

// FromImage normalises any decoded Go image to three RGB planes.
// Alpha is discarded.
func FromImage(src image.Image) *Image {
	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()
	img := NewImage(b.Dx(), b.Dy())
	plane := img.width * img.height

	for y := 0; y < img.height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < img.width; x++ {
			i := y*img.width + x
			p := row[x*4 : x*4+3]
			img.Pix[i] = float32(p[0]) / 255
			img.Pix[plane+i] = float32(p[1]) / 255
			img.Pix[2*plane+i] = float32(p[2]) / 255
		}
	}
	return img
}

// FromRGB24 builds an image from tightly packed 8-bit RGB triples.
func FromRGB24(width, height int, data []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	if len(data) != width*height*Channels {
		return nil, fmt.Errorf("expected %d bytes for %dx%d RGB, got %d",
			width*height*Channels, width, height, len(data))
	}

	img := NewImage(width, height)
	plane := width * height
	for i := 0; i < plane; i++ {
		img.Pix[i] = float32(data[i*3]) / 255
		img.Pix[plane+i] = float32(data[i*3+1]) / 255
		img.Pix[2*plane+i] = float32(data[i*3+2]) / 255
	}
	return img, nil
}

func (img *Image) Width() int  { return img.width }
func (img *Image) Height() int { return img.height }

// Empty reports whether the image holds no pixels.
func (img *Image) Empty() bool {
	return img == nil || img.width == 0 || img.height == 0
}

// Bounds returns the image rectangle anchored at the origin.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// Plane returns the backing slice of one channel. Writes go through to the image.
func (img *Image) Plane(c Channel) []float32 {
	n := img.width * img.height
	return img.Pix[int(c)*n : (int(c)+1)*n]
}

// At returns the intensity of channel c at (x, y).
func (img *Image) At(c Channel, x, y int) float32 {
	return img.Pix[int(c)*img.width*img.height+y*img.width+x]
}

// Set writes the intensity of channel c at (x, y).
func (img *Image) Set(c Channel, x, y int, v float32) {
	img.Pix[int(c)*img.width*img.height+y*img.width+x] = v
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	out := &Image{width: img.width, height: img.height}
	out.Pix = make([]float32, len(img.Pix))
	copy(out.Pix, img.Pix)
	return out
}

// ToNRGBA renders the image as an opaque 8-bit picture for display.
func (img *Image) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(img.Bounds())
	plane := img.width * img.height
	for i := 0; i < plane; i++ {
		dst.Pix[i*4] = toByte(img.Pix[i])
		dst.Pix[i*4+1] = toByte(img.Pix[plane+i])
		dst.Pix[i*4+2] = toByte(img.Pix[2*plane+i])
		dst.Pix[i*4+3] = 255
	}
	return dst
}

// RGBAt returns the colour at (x, y) as an 8-bit value.
func (img *Image) RGBAt(x, y int) color.NRGBA {
	return color.NRGBA{
		R: toByte(img.At(Red, x, y)),
		G: toByte(img.At(Green, x, y)),
		B: toByte(img.At(Blue, x, y)),
		A: 255,
	}
}

func toByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// ValidateDimensions rejects sizes that are empty or exceed the supported
// maximum. It lets callers check a header before decoding pixels.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	if width > maxDimension || height > maxDimension {
		return fmt.Errorf("image too large: %dx%d (max: %d)", width, height, maxDimension)
	}
	return nil
}

// ValidateImage checks an Image for basic requirements
func ValidateImage(img *Image) error {
	if img.Empty() {
		return fmt.Errorf("image is empty")
	}

	if len(img.Pix) != Channels*img.width*img.height {
		return fmt.Errorf("unsupported channel layout: %d values for %dx%d",
			len(img.Pix), img.width, img.height)
	}

	return ValidateDimensions(img.width, img.height)
}
