package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// TextPanel is the editable input area above the read-only result area.
type TextPanel struct {
	container *fyne.Container
	input     *widget.Entry
	output    *widget.Label

	changeHandler func(string)
	// programmatic suppresses the change handler while text is set from
	// code rather than typed.
	programmatic bool
}

func NewTextPanel() *TextPanel {
	p := &TextPanel{}

	p.input = widget.NewMultiLineEntry()
	p.input.Wrapping = fyne.TextWrapWord
	p.input.SetMinRowsVisible(6)
	p.input.OnChanged = p.onChanged

	p.output = widget.NewLabel("")
	p.output.Wrapping = fyne.TextWrapWord
	p.output.Selectable = true

	inputSection := container.NewBorder(
		widget.NewLabelWithStyle("Nhập Văn Bản:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		p.input,
	)
	outputSection := container.NewBorder(
		widget.NewLabelWithStyle("Kết Quả Dịch:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		container.NewVScroll(p.output),
	)

	split := container.NewVSplit(inputSection, outputSection)
	split.Offset = 0.5
	p.container = container.NewStack(split)

	return p
}

func (p *TextPanel) GetContainer() *fyne.Container {
	return p.container
}

func (p *TextPanel) SetChangeHandler(handler func(string)) {
	p.changeHandler = handler
}

func (p *TextPanel) Input() string {
	return p.input.Text
}

// SetInput replaces the input without reporting it as a user edit.
func (p *TextPanel) SetInput(text string) {
	p.programmatic = true
	p.input.SetText(text)
	p.programmatic = false
}

func (p *TextPanel) Output() string {
	return p.output.Text
}

func (p *TextPanel) SetOutput(text string) {
	p.output.SetText(text)
}

func (p *TextPanel) FocusTarget() fyne.Focusable {
	return p.input
}

func (p *TextPanel) onChanged(text string) {
	if p.programmatic || p.changeHandler == nil {
		return
	}
	p.changeHandler(text)
}
