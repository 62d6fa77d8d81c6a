// Side by side display of the original and transformed images
package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"image-transform-studio/internal/core"
)

const resultPlaceholderTitle = "Result"

// ImageCanvas shows the session original next to the latest result
type ImageCanvas struct {
	split         *container.Split
	originalView  *widget.Card
	resultView    *widget.Card
	originalImage *canvas.Image
	resultImage   *canvas.Image
}

func NewImageCanvas() *ImageCanvas {
	ic := &ImageCanvas{}
	ic.initializeUI()
	return ic
}

func (ic *ImageCanvas) initializeUI() {
	ic.originalImage = newDisplayImage()
	ic.resultImage = newDisplayImage()

	ic.originalView = widget.NewCard("Original", "", ic.originalImage)
	ic.resultView = widget.NewCard(resultPlaceholderTitle, "", ic.resultImage)

	ic.split = container.NewHSplit(ic.originalView, ic.resultView)
	ic.split.SetOffset(0.5)
}

func newDisplayImage() *canvas.Image {
	img := canvas.NewImageFromImage(placeholder())
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	// Set minimum size to prevent height collapse, but allow scaling
	img.SetMinSize(fyne.NewSize(320, 240))
	return img
}

func placeholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 200, 150))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 240, 240, 240, 255
	}
	return img
}

// SetOriginal displays a newly loaded image and clears the result pane.
func (ic *ImageCanvas) SetOriginal(img *core.Image) {
	ic.originalImage.Image = img.ToNRGBA()
	ic.originalImage.Refresh()
	ic.ClearResult()
}

// SetResult displays a transform result under the given title.
func (ic *ImageCanvas) SetResult(title string, img *core.Image) {
	ic.resultView.SetTitle(title)
	ic.resultImage.Image = img.ToNRGBA()
	ic.resultImage.Refresh()
}

func (ic *ImageCanvas) ClearResult() {
	ic.resultView.SetTitle(resultPlaceholderTitle)
	ic.resultImage.Image = placeholder()
	ic.resultImage.Refresh()
}

func (ic *ImageCanvas) ResultTitle() string {
	return ic.resultView.Title
}

// ResultImage returns what the result pane currently shows.
func (ic *ImageCanvas) ResultImage() image.Image {
	return ic.resultImage.Image
}

// OriginalImage returns what the original pane currently shows.
func (ic *ImageCanvas) OriginalImage() image.Image {
	return ic.originalImage.Image
}

func (ic *ImageCanvas) GetContainer() fyne.CanvasObject {
	return ic.split
}
