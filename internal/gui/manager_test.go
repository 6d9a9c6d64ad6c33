package gui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerTextAreas(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	defer w.Close()

	m, err := NewManager(w, nil)
	require.NoError(t, err)
	w.SetContent(m.GetMainContainer())

	var changes []string
	m.SetInputChangedHandler(func(s string) { changes = append(changes, s) })

	m.SetInputText("from speech")
	assert.Equal(t, "from speech", m.InputText())
	assert.Empty(t, changes, "text set from code is not a user edit")

	m.SetOutputText("kết quả")
	assert.Equal(t, "kết quả", m.OutputText())
}

func TestManagerTypingReportsChanges(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	defer w.Close()

	m, err := NewManager(w, nil)
	require.NoError(t, err)
	w.SetContent(m.GetMainContainer())

	var last string
	m.SetInputChangedHandler(func(s string) { last = s })

	test.Type(m.textPanel.FocusTarget(), "hi")
	assert.Equal(t, "hi", last)
}
