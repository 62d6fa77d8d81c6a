// internal/gui/toolbar.go
// Top toolbar: image sources on the left, transforms on the right
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"image-transform-studio/internal/transform"
)

type Toolbar struct {
	container *fyne.Container

	openBtn    *widget.Button
	cameraBtn  *widget.Button
	operations map[transform.Kind]*widget.Button

	// Callbacks
	onOpen      func()
	onCapture   func()
	onOperation func(transform.Kind)
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{
		operations: make(map[transform.Kind]*widget.Button),
	}

	toolbar.initializeUI()
	return toolbar
}

func (tb *Toolbar) initializeUI() {
	tb.openBtn = widget.NewButtonWithIcon("OPEN IMAGE", theme.FolderOpenIcon(), func() {
		if tb.onOpen != nil {
			tb.onOpen()
		}
	})
	tb.openBtn.Importance = widget.HighImportance

	tb.cameraBtn = widget.NewButtonWithIcon("CAMERA", theme.MediaPhotoIcon(), func() {
		if tb.onCapture != nil {
			tb.onCapture()
		}
	})
	tb.cameraBtn.Importance = widget.HighImportance

	leftSection := container.NewHBox(tb.openBtn, tb.cameraBtn)

	rightSection := container.NewHBox(widget.NewLabel("Transform:"))
	for _, kind := range transform.Kinds {
		kind := kind // per-iteration copy (go directive is 1.21)
		btn := widget.NewButton(kind.String(), func() {
			if tb.onOperation != nil {
				tb.onOperation(kind)
			}
		})
		tb.operations[kind] = btn
		rightSection.Add(btn)
	}

	tb.container = container.NewBorder(
		nil, nil,
		leftSection,  // left
		rightSection, // right
	)
}

// OperationButton returns the button that triggers kind.
func (tb *Toolbar) OperationButton(kind transform.Kind) *widget.Button {
	return tb.operations[kind]
}

func (tb *Toolbar) GetContainer() fyne.CanvasObject {
	return tb.container
}

func (tb *Toolbar) SetCallbacks(
	onOpen func(),
	onCapture func(),
	onOperation func(transform.Kind),
) {
	tb.onOpen = onOpen
	tb.onCapture = onCapture
	tb.onOperation = onOperation
}
