package app

import (
	"sync"
	"sync/atomic"

	"vox-translate/internal/catalog"
)

// Session holds the state that lives as long as the window: the language
// catalog, the chosen destination and the translation request counter.
type Session struct {
	catalog *catalog.Catalog

	mu          sync.RWMutex
	destination catalog.Entry

	seq atomic.Uint64
}

// NewSession starts on defaultDestination, or the first catalog entry when
// that name is unknown.
func NewSession(cat *catalog.Catalog, defaultDestination string) *Session {
	s := &Session{catalog: cat}
	if entry, ok := cat.Lookup(defaultDestination); ok {
		s.destination = entry
	} else if entries := cat.Entries(); len(entries) > 0 {
		s.destination = entries[0]
	}
	return s
}

func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Session) Destination() catalog.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.destination
}

// SetDestination accepts only entries that belong to the catalog.
func (s *Session) SetDestination(entry catalog.Entry) bool {
	known, ok := s.catalog.Lookup(entry.DisplayName)
	if !ok || known.Code != entry.Code {
		return false
	}
	s.mu.Lock()
	s.destination = known
	s.mu.Unlock()
	return true
}

// NextRequest issues a new request id. Any earlier id stops being latest.
func (s *Session) NextRequest() uint64 {
	return s.seq.Add(1)
}

func (s *Session) IsLatest(id uint64) bool {
	return s.seq.Load() == id
}
