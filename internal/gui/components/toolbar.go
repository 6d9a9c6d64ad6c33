package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type Toolbar struct {
	container         *fyne.Container
	ImageButton       *widget.Button
	ListenButton      *widget.Button
	ClearButton       *widget.Button
	SpeakInputButton  *widget.Button
	SpeakOutputButton *widget.Button

	imageHandler       func()
	listenHandler      func()
	clearHandler       func()
	speakInputHandler  func()
	speakOutputHandler func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	background := canvas.NewRectangle(color.RGBA{R: 250, G: 249, B: 245, A: 255})
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeWidth = 1.0
	border.StrokeColor = color.RGBA{R: 231, G: 231, B: 231, A: 255}

	// Input sources
	t.ImageButton = widget.NewButtonWithIcon("Dịch Văn Bản Từ Hình Ảnh", theme.FileImageIcon(), t.onImage)
	t.ImageButton.Importance = widget.HighImportance
	t.ListenButton = widget.NewButtonWithIcon("Dịch Giọng Nói", theme.MediaRecordIcon(), t.onListen)
	t.ListenButton.Importance = widget.HighImportance
	leftSection := container.NewHBox(t.ImageButton, t.ListenButton)

	// Playback
	t.SpeakInputButton = widget.NewButtonWithIcon("Đọc Văn Bản Nhập", theme.VolumeUpIcon(), t.onSpeakInput)
	t.SpeakOutputButton = widget.NewButtonWithIcon("Đọc Kết Quả Dịch", theme.VolumeUpIcon(), t.onSpeakOutput)
	centerSection := container.NewHBox(t.SpeakInputButton, t.SpeakOutputButton)

	t.ClearButton = widget.NewButtonWithIcon("Xóa Văn Bản", theme.ContentClearIcon(), t.onClear)
	t.ClearButton.Importance = widget.DangerImportance

	toolbarContent := container.NewBorder(
		nil, nil,
		leftSection,
		t.ClearButton,
		container.NewCenter(centerSection),
	)

	t.container = container.NewStack(
		border,
		container.NewPadded(
			container.NewStack(background, container.NewPadded(toolbarContent)),
		),
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetImageHandler(handler func()) {
	t.imageHandler = handler
}

func (t *Toolbar) SetListenHandler(handler func()) {
	t.listenHandler = handler
}

func (t *Toolbar) SetClearHandler(handler func()) {
	t.clearHandler = handler
}

func (t *Toolbar) SetSpeakInputHandler(handler func()) {
	t.speakInputHandler = handler
}

func (t *Toolbar) SetSpeakOutputHandler(handler func()) {
	t.speakOutputHandler = handler
}

func (t *Toolbar) onImage() {
	if t.imageHandler != nil {
		t.imageHandler()
	}
}

func (t *Toolbar) onListen() {
	if t.listenHandler != nil {
		t.listenHandler()
	}
}

func (t *Toolbar) onClear() {
	if t.clearHandler != nil {
		t.clearHandler()
	}
}

func (t *Toolbar) onSpeakInput() {
	if t.speakInputHandler != nil {
		t.speakInputHandler()
	}
}

func (t *Toolbar) onSpeakOutput() {
	if t.speakOutputHandler != nil {
		t.speakOutputHandler()
	}
}
