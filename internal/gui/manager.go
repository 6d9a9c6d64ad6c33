// Package gui renders the translator window with Fyne. Manager satisfies the
// app.View contract; every method is meant to be called on the UI thread.
package gui

import (
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"vox-translate/internal/catalog"
	"vox-translate/internal/gui/components"
	"vox-translate/internal/logger"
	"vox-translate/internal/ocr"
)

type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	textPanel   *components.TextPanel
	destination *components.DestinationBar
	toolbar     *components.Toolbar
	statusBar   *components.StatusBar

	imageHandler func(io.ReadCloser, string)
}

func NewManager(window fyne.Window, log logger.Logger) (*Manager, error) {
	log = logger.OrNoOp(log)

	manager := &Manager{
		window:      window,
		logger:      log,
		textPanel:   components.NewTextPanel(),
		destination: components.NewDestinationBar(),
		toolbar:     components.NewToolbar(),
		statusBar:   components.NewStatusBar(),
	}
	manager.toolbar.SetImageHandler(manager.openImage)

	log.Info("GUIManager", "initialized", nil)
	return manager, nil
}

func (m *Manager) GetMainContainer() *fyne.Container {
	top := m.destination.GetContainer()
	bottom := container.NewVBox(
		m.toolbar.GetContainer(),
		m.statusBar.GetContainer(),
	)

	return container.NewBorder(
		top,
		bottom,
		nil, nil,
		m.textPanel.GetContainer(),
	)
}

// FocusInput puts the keyboard focus in the input area.
func (m *Manager) FocusInput() {
	m.window.Canvas().Focus(m.textPanel.FocusTarget())
}

func (m *Manager) SetInputChangedHandler(handler func(string)) {
	m.textPanel.SetChangeHandler(handler)
}

func (m *Manager) SetSpeakInputHandler(handler func()) {
	m.toolbar.SetSpeakInputHandler(handler)
}

func (m *Manager) SetSpeakOutputHandler(handler func()) {
	m.toolbar.SetSpeakOutputHandler(handler)
}

func (m *Manager) SetListenHandler(handler func()) {
	m.toolbar.SetListenHandler(func() {
		m.logger.Debug("GUIManager", "speech input requested", nil)
		handler()
	})
}

// SetImageHandler receives the opened file after the user picks an image.
func (m *Manager) SetImageHandler(handler func(io.ReadCloser, string)) {
	m.imageHandler = handler
}

func (m *Manager) SetClearHandler(handler func()) {
	m.toolbar.SetClearHandler(handler)
}

func (m *Manager) SetDestinationHandler(handler func()) {
	m.destination.SetChooseHandler(handler)
}

func (m *Manager) InputText() string {
	return m.textPanel.Input()
}

func (m *Manager) SetInputText(text string) {
	m.textPanel.SetInput(text)
}

func (m *Manager) OutputText() string {
	return m.textPanel.Output()
}

func (m *Manager) SetOutputText(text string) {
	m.textPanel.SetOutput(text)
}

func (m *Manager) SetDestination(displayName string) {
	m.destination.SetDestination(displayName)
}

func (m *Manager) SetStatus(status string) {
	m.statusBar.SetStatus(status)
	m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
		"status": status,
	})
}

func (m *Manager) SetVersion(version string) {
	m.statusBar.SetVersion(version)
}

func (m *Manager) ShowLanguagePicker(cat *catalog.Catalog, current string, onSelect func(catalog.Entry)) {
	showLanguageDialog(m.window, cat, current, onSelect)
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})
	dialog.ShowError(err, m.window)
}

func (m *Manager) openImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			m.ShowError("open image", err)
			return
		}
		if reader == nil {
			return
		}
		if m.imageHandler == nil {
			reader.Close()
			return
		}

		m.logger.Info("GUIManager", "image selected", map[string]interface{}{
			"file": reader.URI().Name(),
		})
		m.imageHandler(reader, reader.URI().Name())
	}, m.window)

	fd.SetFilter(storage.NewExtensionFileFilter(ocr.ImageExtensions()))
	fd.Resize(fyne.NewSize(800, 600))
	fd.Show()
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
