package viewport

import (
	"strings"
	"sync"
)

// SectionThreshold is the visible fraction that makes a section current.
const SectionThreshold = 0.3

// ActiveSection keeps exactly one nav link active once any section has been
// seen: the link of the most recently intersecting section.
type ActiveSection struct {
	mu     sync.Mutex
	links  map[string]bool
	active string
}

// NewActiveSection pairs sections with nav links by hash fragment. It
// returns false when either side is empty and tracking should be skipped.
func NewActiveSection(sectionIDs, linkHrefs []string) (*ActiveSection, bool) {
	if len(sectionIDs) == 0 || len(linkHrefs) == 0 {
		return nil, false
	}
	a := &ActiveSection{links: make(map[string]bool, len(linkHrefs))}
	for _, href := range linkHrefs {
		a.links[href] = true
	}
	return a, true
}

// Observe records an intersection report for section id. It returns the
// href of the active link and whether it changed. Sections with no matching
// link leave the current highlight alone.
func (a *ActiveSection) Observe(id string, ratio float64) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if ratio < SectionThreshold {
		return a.active, false
	}
	href := "#" + strings.TrimPrefix(id, "#")
	if !a.links[href] || href == a.active {
		return a.active, false
	}
	a.active = href
	return href, true
}

// Active returns the active link href, empty before any section was seen.
func (a *ActiveSection) Active() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}
