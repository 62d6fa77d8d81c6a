// Parameter entries for the transforms
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"image-transform-studio/internal/transform"
)

// ParametersPanel collects the raw values typed by the user. Values are
// re-read on every transform and never stored elsewhere.
type ParametersPanel struct {
	card *widget.Card

	channelSelect *widget.Select
	angleEntry    *widget.Entry
	xEntry        *widget.Entry
	yEntry        *widget.Entry
	radiusEntry   *widget.Entry
}

func NewParametersPanel() *ParametersPanel {
	panel := &ParametersPanel{}
	panel.initializeUI()
	return panel
}

func (pp *ParametersPanel) initializeUI() {
	pp.channelSelect = widget.NewSelect([]string{"R", "G", "B"}, nil)
	pp.channelSelect.PlaceHolder = "Select channel"

	pp.angleEntry = newNumberEntry("degrees, e.g. 45")
	pp.xEntry = newNumberEntry("center x (px)")
	pp.yEntry = newNumberEntry("center y (px)")
	pp.radiusEntry = newNumberEntry("radius (px)")

	form := widget.NewForm(
		widget.NewFormItem("Channel", pp.channelSelect),
		widget.NewFormItem("Angle", pp.angleEntry),
		widget.NewFormItem("X", pp.xEntry),
		widget.NewFormItem("Y", pp.yEntry),
		widget.NewFormItem("Radius", pp.radiusEntry),
	)

	pp.card = widget.NewCard("Parameters", "", form)
}

func newNumberEntry(hint string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(hint)
	return entry
}

// Fields snapshots the current entry text.
func (pp *ParametersPanel) Fields() transform.Fields {
	return transform.Fields{
		Channel: pp.channelSelect.Selected,
		Angle:   pp.angleEntry.Text,
		X:       pp.xEntry.Text,
		Y:       pp.yEntry.Text,
		Radius:  pp.radiusEntry.Text,
	}
}

func (pp *ParametersPanel) GetContainer() fyne.CanvasObject {
	return pp.card
}
