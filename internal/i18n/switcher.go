package i18n

import (
	"log"
	"sync"

	"github.com/jglims/portfolio/internal/event"
)

// PreferenceStore persists simple key/value preferences. Implementations may
// fail; the switcher treats every failure as "not persisted".
type PreferenceStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Switcher is the en/pt state machine. The only transition is Toggle.
type Switcher struct {
	mu    sync.Mutex
	lang  Lang
	store PreferenceStore
	bus   *event.Bus
}

// NewSwitcher starts in English. store and bus may be nil.
func NewSwitcher(store PreferenceStore, bus *event.Bus) *Switcher {
	return &Switcher{lang: EN, store: store, bus: bus}
}

// Init reads the stored preference once. Missing or invalid values, and
// storage errors, leave the page in English.
func (s *Switcher) Init() Lang {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil {
		v, err := s.store.Get(StorageKey)
		if err != nil {
			log.Printf("i18n: reading preference: %v", err)
		} else {
			s.lang = Parse(v)
		}
	}
	return s.lang
}

// Lang returns the active language.
func (s *Switcher) Lang() Lang {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Toggle flips the language, persists it and publishes a LanguageChanged
// notification. Subscribers run before Toggle returns.
func (s *Switcher) Toggle() Lang {
	s.mu.Lock()
	s.lang = s.lang.Other()
	lang := s.lang
	if s.store != nil {
		if err := s.store.Set(StorageKey, string(lang)); err != nil {
			log.Printf("i18n: saving preference: %v", err)
		}
	}
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(event.LanguageChanged{Lang: string(lang)})
	}
	return lang
}

// MemoryStore is a PreferenceStore held in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
