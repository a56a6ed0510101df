package viewport

import (
	"strings"
	"time"
)

const (
	// ScrolledOffset is the scroll position past which the nav bar is solid.
	ScrolledOffset = 50
	// ScrollLimit throttles scroll reports.
	ScrollLimit = 100 * time.Millisecond
)

// AnchorAction says how a same-page link click is handled.
type AnchorAction int

const (
	// BrowserDefault leaves navigation to the browser.
	BrowserDefault AnchorAction = iota
	// SmoothScroll animates the scroll to the target element.
	SmoothScroll
)

// ResolveAnchor decides how a click on href is handled given the ids present
// on the page. Only "#id" links whose target exists are smooth scrolled.
func ResolveAnchor(href string, ids map[string]bool) (string, AnchorAction) {
	if !strings.HasPrefix(href, "#") || href == "#" {
		return "", BrowserDefault
	}
	id := href[1:]
	if !ids[id] {
		return "", BrowserDefault
	}
	return id, SmoothScroll
}

// NavScrolled reports whether the nav bar shows its scrolled style.
func NavScrolled(scrollY float64) bool {
	return scrollY > ScrolledOffset
}
