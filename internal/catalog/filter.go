package catalog

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Filter lazily yields the display names whose lowercase form contains the
// lowercase query. The match is unanchored; an empty query yields every name.
// Order follows the catalog. The sequence is recomputed on every iteration.
func (c *Catalog) Filter(query string) iter.Seq[string] {
	needle := fold(query)
	return func(yield func(string) bool) {
		for _, e := range c.entries {
			if !strings.Contains(fold(e.DisplayName), needle) {
				continue
			}
			if !yield(e.DisplayName) {
				return
			}
		}
	}
}

// Matches reports whether name would survive Filter(query).
func Matches(name, query string) bool {
	return strings.Contains(fold(name), fold(query))
}

// fold lowercases s after NFC composition so typed input with decomposed
// diacritics still matches the composed catalog names.
func fold(s string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}
