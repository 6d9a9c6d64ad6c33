package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DestinationBar shows the target language and opens the picker.
type DestinationBar struct {
	container *fyne.Container
	button    *widget.Button

	chooseHandler func()
}

func NewDestinationBar() *DestinationBar {
	d := &DestinationBar{}

	d.button = widget.NewButtonWithIcon("", theme.MenuDropDownIcon(), d.onChoose)
	d.button.IconPlacement = widget.ButtonIconTrailingText

	d.container = container.NewHBox(
		widget.NewLabelWithStyle("Ngôn Ngữ Đích:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		d.button,
	)
	return d
}

func (d *DestinationBar) GetContainer() *fyne.Container {
	return d.container
}

func (d *DestinationBar) SetChooseHandler(handler func()) {
	d.chooseHandler = handler
}

func (d *DestinationBar) SetDestination(displayName string) {
	d.button.SetText(displayName)
}

func (d *DestinationBar) onChoose() {
	if d.chooseHandler != nil {
		d.chooseHandler()
	}
}
