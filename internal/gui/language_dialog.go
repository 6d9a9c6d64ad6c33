package gui

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"vox-translate/internal/catalog"
	"vox-translate/internal/picker"
)

const (
	languageDialogTitle  = "Chọn Ngôn Ngữ Đích"
	languageDialogWidth  = 320
	languageDialogHeight = 420
)

// languageDialog renders a picker.Dialog as a modal list with a search box.
type languageDialog struct {
	picker  *picker.Dialog
	visible []string
	list    *widget.List
	search  *widget.Entry
	dlg     *dialog.CustomDialog
	hiding  bool
}

func showLanguageDialog(window fyne.Window, cat *catalog.Catalog, current string, onSelect func(catalog.Entry)) *languageDialog {
	ld := &languageDialog{}
	ld.picker = picker.New(func(e catalog.Entry) {
		if onSelect != nil {
			onSelect(e)
		}
	})
	ld.picker.SetCloseHandler(ld.hide)
	ld.picker.Open(cat, current)
	ld.visible = slices.Collect(ld.picker.Visible())

	ld.list = widget.NewList(
		func() int { return len(ld.visible) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(ld.visible[id])
		},
	)
	ld.list.OnSelected = func(id widget.ListItemID) {
		if id < 0 || id >= len(ld.visible) {
			return
		}
		ld.picker.OnEntrySelected(ld.visible[id])
	}

	ld.search = widget.NewEntry()
	ld.search.SetPlaceHolder("Tiếng...")
	ld.search.OnChanged = func(query string) {
		ld.visible = slices.Collect(ld.picker.OnQueryChanged(query))
		ld.list.UnselectAll()
		ld.list.Refresh()
	}

	searchRow := container.NewBorder(nil, nil, widget.NewLabel("Tìm:"), nil, ld.search)
	content := container.NewBorder(searchRow, nil, nil, nil, ld.list)

	ld.dlg = dialog.NewCustom(languageDialogTitle, "Đóng", content, window)
	ld.dlg.SetOnClosed(ld.picker.Close)
	ld.dlg.Resize(fyne.NewSize(languageDialogWidth, languageDialogHeight))
	ld.dlg.Show()

	if state, ok := ld.picker.State(); ok {
		if idx := slices.Index(ld.visible, state.CurrentDestination.DisplayName); idx >= 0 {
			ld.list.ScrollTo(idx)
		}
	}
	window.Canvas().Focus(ld.search)

	return ld
}

// hide runs when the picker closes itself after a selection.
func (ld *languageDialog) hide() {
	if ld.hiding || ld.dlg == nil {
		return
	}
	ld.hiding = true
	ld.dlg.Hide()
}
