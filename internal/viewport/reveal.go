// Package viewport decides the scroll and pointer driven effects of the page:
// reveal on scroll, the active nav link, card tilt and anchor scrolling.
package viewport

import "sync"

// RevealThreshold is the visible fraction that reveals an element.
const RevealThreshold = 0.1

// Reveal tracks one-shot reveal elements. An element is revealed the first
// time it is at least RevealThreshold visible and is unobserved afterwards.
type Reveal struct {
	mu       sync.Mutex
	observed map[string]bool
	visible  map[string]bool
}

// NewReveal observes ids.
func NewReveal(ids []string) *Reveal {
	r := &Reveal{
		observed: make(map[string]bool, len(ids)),
		visible:  make(map[string]bool, len(ids)),
	}
	for _, id := range ids {
		r.observed[id] = true
	}
	return r
}

// Observe records an intersection report and returns true exactly once per
// element, when it should receive the visible class.
func (r *Reveal) Observe(id string, ratio float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.observed[id] || ratio < RevealThreshold {
		return false
	}
	delete(r.observed, id)
	r.visible[id] = true
	return true
}

// Visible reports whether id has been revealed.
func (r *Reveal) Visible(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible[id]
}

// RevealAll is the fallback without an intersection primitive: every element
// is visible immediately.
func (r *Reveal) RevealAll() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.observed))
	for id := range r.observed {
		ids = append(ids, id)
		r.visible[id] = true
	}
	r.observed = map[string]bool{}
	return ids
}
