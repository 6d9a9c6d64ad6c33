package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	versionLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Sẵn sàng")
	statusLabel.Truncation = fyne.TextTruncateEllipsis
	versionLabel := widget.NewLabel("")
	versionLabel.Importance = widget.LowImportance

	mainContainer := container.NewBorder(
		nil, nil,
		nil,
		versionLabel,
		statusLabel,
	)

	return &StatusBar{
		container:    mainContainer,
		statusLabel:  statusLabel,
		versionLabel: versionLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// SetVersion shows the build version on the right.
func (sb *StatusBar) SetVersion(version string) {
	sb.versionLabel.SetText(version)
}
