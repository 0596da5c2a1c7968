package knowledge

import (
	"fmt"
	"io"
	"os"
	"sync"

	"pulse/internal/platform/textnorm"
)

// Store owns the loaded knowledge base. It is constructed once at startup
// and shared by all report generations; after Load succeeds the content is
// immutable, so concurrent readers need no locking.
type Store struct {
	factorsPath string
	areasPath   string

	once    sync.Once
	loadErr error
	entries map[string]*Entry
	index   map[string]*Entry
}

func NewStore(factorsPath, areasPath string) *Store {
	return &Store{factorsPath: factorsPath, areasPath: areasPath}
}

// NewStoreFromEntries builds a pre-loaded store, bypassing the CSV sources.
func NewStoreFromEntries(entries []*Entry) *Store {
	s := &Store{}
	s.install(entriesByName(entries))
	return s
}

func entriesByName(entries []*Entry) map[string]*Entry {
	m := make(map[string]*Entry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return m
}

// Load parses the configured sources. The first call does the work; later
// and concurrent calls share its outcome.
func (s *Store) Load() error {
	s.once.Do(func() {
		merged := make(map[string]*Entry)

		if s.factorsPath != "" {
			factors, err := s.loadFile(s.factorsPath, ParseFactorTable)
			if err != nil {
				s.loadErr = err
				return
			}
			for name, entry := range factors {
				merged[name] = entry
			}
		}

		if s.areasPath != "" {
			areas, err := s.loadFile(s.areasPath, ParseAreaTable)
			if err != nil {
				s.loadErr = err
				return
			}
			for name, entry := range areas {
				merged[name] = entry
			}
		}

		if len(merged) == 0 {
			s.loadErr = fmt.Errorf("%w: no entries in configured sources", ErrLoadFailed)
			return
		}
		s.install(merged)
	})
	return s.loadErr
}

func (s *Store) loadFile(path string, parse func(r io.Reader) (map[string]*Entry, error)) (map[string]*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	defer f.Close()

	entries, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, path, err)
	}
	return entries, nil
}

func (s *Store) install(entries map[string]*Entry) {
	index := make(map[string]*Entry, len(entries))
	for name, entry := range entries {
		index[textnorm.Fold(name)] = entry
	}
	s.entries = entries
	s.index = index
}

// Find resolves a factor or area name: exact match first, then the folded
// index (case, diacritics and whitespace insensitive). A miss returns
// (nil, false) and means "no interpretation available", not an error.
func (s *Store) Find(name string) (*Entry, bool) {
	if s.entries == nil {
		return nil, false
	}
	if entry, ok := s.entries[name]; ok {
		return entry, true
	}
	entry, ok := s.index[textnorm.Fold(name)]
	return entry, ok
}

// Len reports the number of loaded entries.
func (s *Store) Len() int {
	return len(s.entries)
}
