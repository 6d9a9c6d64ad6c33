// Package catalog holds the fixed, ordered mapping from human-readable
// language display names to the codes understood by the translation and
// speech backends.
//
// A Catalog is immutable after construction and safe to share.
package catalog

import (
	"errors"
	"fmt"
	"iter"
	"regexp"
	"strings"
)

var (
	ErrDuplicateName = errors.New("duplicate display name")
	ErrEmptyEntry    = errors.New("display name and code are required")
)

// Entry pairs a display name with its service language code.
type Entry struct {
	DisplayName string
	Code        string
}

// Catalog preserves insertion order; display names are unique.
type Catalog struct {
	entries []Entry
	byName  map[string]int
	byCode  map[string]int
}

// New builds a catalog from entries in the given order.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
		byCode:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if strings.TrimSpace(e.DisplayName) == "" || strings.TrimSpace(e.Code) == "" {
			return nil, fmt.Errorf("%w: %+v", ErrEmptyEntry, e)
		}
		if _, ok := c.byName[e.DisplayName]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.DisplayName)
		}
		c.byName[e.DisplayName] = len(c.entries)
		code := strings.ToLower(e.Code)
		if _, ok := c.byCode[code]; !ok {
			c.byCode[code] = len(c.entries)
		}
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Default returns the catalog shipped with the application.
func Default() *Catalog {
	c, err := New(
		Entry{"Tiếng Anh", "en"},
		Entry{"Tiếng Việt", "vi"},
		Entry{"Tiếng Hàn", "ko"},
		Entry{"Tiếng Nhật", "ja"},
		Entry{"Tiếng Trung", "zh-cn"},
		Entry{"Tiếng Pháp", "fr"},
		Entry{"Tiếng Đức", "de"},
		Entry{"Tiếng Ý", "it"},
		Entry{"Tiếng Tây Ban Nha", "es"},
		Entry{"Tiếng Bồ Đào Nha", "pt"},
	)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the catalog in insertion order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Names returns the display names in insertion order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.DisplayName
	}
	return names
}

// All iterates the entries in insertion order.
func (c *Catalog) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range c.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Lookup finds an entry by its exact display name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// ByCode finds the first entry carrying code, compared case-insensitively.
func (c *Catalog) ByCode(code string) (Entry, bool) {
	i, ok := c.byCode[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

var codePattern = regexp.MustCompile(`^[a-zA-Z]{2}(-[a-zA-Z]{2})?$`)

// Resolve accepts either a language code or a display name and returns the
// code. Codes pass through untouched; unknown names resolve to fallback.
func (c *Catalog) Resolve(nameOrCode, fallback string) string {
	value := strings.TrimSpace(nameOrCode)
	if codePattern.MatchString(value) {
		return value
	}
	if e, ok := c.Lookup(value); ok {
		return e.Code
	}
	return fallback
}
