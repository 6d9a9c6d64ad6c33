// Package picker implements the destination-language picker: a searchable
// view over a catalog that narrows as the user types and hands the chosen
// entry back to its host.
//
// Dialog is toolkit-independent and meant to be driven from a single UI
// goroutine; it does no locking.
package picker

import (
	"iter"

	"vox-translate/internal/catalog"
)

// SelectionState exists only while the dialog is open.
type SelectionState struct {
	CurrentDestination catalog.Entry
	SearchQuery        string
}

// SelectFunc receives the chosen entry after the dialog has closed.
type SelectFunc func(catalog.Entry)

type Dialog struct {
	catalog  *catalog.Catalog
	state    *SelectionState
	onSelect SelectFunc
	onClose  func()
}

func New(onSelect SelectFunc) *Dialog {
	return &Dialog{onSelect: onSelect}
}

// SetCloseHandler registers a hook run whenever the dialog closes, either
// through a selection or an explicit Close.
func (d *Dialog) SetCloseHandler(handler func()) {
	d.onClose = handler
}

// Open seeds the dialog with every entry of c. initialSelection names the
// host's current destination; an unknown name falls back to the first entry.
func (d *Dialog) Open(c *catalog.Catalog, initialSelection string) {
	if c == nil {
		return
	}

	current, ok := c.Lookup(initialSelection)
	if !ok {
		for e := range c.All() {
			current = e
			break
		}
	}

	d.catalog = c
	d.state = &SelectionState{CurrentDestination: current}
}

func (d *Dialog) IsOpen() bool {
	return d.state != nil
}

// State returns a snapshot of the selection state while the dialog is open.
func (d *Dialog) State() (SelectionState, bool) {
	if d.state == nil {
		return SelectionState{}, false
	}
	return *d.state, true
}

// OnQueryChanged records query and returns the narrowed view of the catalog.
func (d *Dialog) OnQueryChanged(query string) iter.Seq[string] {
	if d.state == nil {
		return func(func(string) bool) {}
	}
	d.state.SearchQuery = query
	return d.catalog.Filter(query)
}

// Visible returns the names currently shown for the recorded query.
func (d *Dialog) Visible() iter.Seq[string] {
	if d.state == nil {
		return func(func(string) bool) {}
	}
	return d.catalog.Filter(d.state.SearchQuery)
}

// OnEntrySelected commits displayName when it is part of the visible view,
// closes the dialog and notifies the host. Anything else is ignored.
func (d *Dialog) OnEntrySelected(displayName string) {
	if d.state == nil {
		return
	}

	entry, ok := d.catalog.Lookup(displayName)
	if !ok || !catalog.Matches(displayName, d.state.SearchQuery) {
		return
	}

	d.state.CurrentDestination = entry
	d.Close()

	if d.onSelect != nil {
		d.onSelect(entry)
	}
}

// Close discards the selection state. Closing a closed dialog does nothing.
func (d *Dialog) Close() {
	if d.state == nil {
		return
	}
	d.state = nil
	d.catalog = nil

	if d.onClose != nil {
		d.onClose()
	}
}
