package viewport

import (
	"math"
	"sort"
	"testing"
)

func TestRevealOnce(t *testing.T) {
	r := NewReveal([]string{"about", "skills"})

	if r.Observe("about", 0.05) {
		t.Errorf("5%% visible must not reveal")
	}
	if !r.Observe("about", 0.1) {
		t.Errorf("10%% visible should reveal")
	}
	if r.Observe("about", 0.9) {
		t.Errorf("an element is revealed only once")
	}
	r.Observe("about", 0)
	if !r.Visible("about") {
		t.Errorf("scrolling away must not hide a revealed element")
	}
	if r.Observe("unknown", 1) {
		t.Errorf("unobserved elements are never revealed")
	}
	if r.Visible("skills") {
		t.Errorf("skills was never seen")
	}
}

func TestRevealAllFallback(t *testing.T) {
	r := NewReveal([]string{"a", "b", "c"})
	r.Observe("b", 1)

	got := r.RevealAll()
	sort.Strings(got)
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("RevealAll() = %v, want [a c]", got)
	}
	for _, id := range []string{"a", "b", "c"} {
		if !r.Visible(id) {
			t.Errorf("%s should be visible", id)
		}
	}
	if r.Observe("a", 1) {
		t.Errorf("no reveal after the fallback")
	}
}

func TestActiveSection(t *testing.T) {
	if _, ok := NewActiveSection(nil, []string{"#about"}); ok {
		t.Errorf("expected tracking to be skipped without sections")
	}
	if _, ok := NewActiveSection([]string{"about"}, nil); ok {
		t.Errorf("expected tracking to be skipped without links")
	}

	a, ok := NewActiveSection(
		[]string{"about", "skills", "contact", "footer"},
		[]string{"#about", "#skills", "#contact"},
	)
	if !ok {
		t.Fatal("expected tracker")
	}

	steps := []struct {
		id      string
		ratio   float64
		want    string
		changed bool
	}{
		{"about", 0.2, "", false},
		{"about", 0.3, "#about", true},
		{"about", 0.8, "#about", false},
		{"skills", 0.5, "#skills", true},
		{"about", 0.1, "#skills", false},
		{"footer", 1, "#skills", false},
		{"contact", 0.31, "#contact", true},
		{"about", 0.4, "#about", true},
	}
	for i, s := range steps {
		got, changed := a.Observe(s.id, s.ratio)
		if got != s.want || changed != s.changed {
			t.Fatalf("step %d Observe(%s, %v) = (%q, %v), want (%q, %v)",
				i, s.id, s.ratio, got, changed, s.want, s.changed)
		}
	}
	if a.Active() != "#about" {
		t.Errorf("Active() = %q", a.Active())
	}
}

func TestTilt(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		want       Rotation
	}{
		{"Center", 150, 100, 300, 200, Rotation{0, 0}},
		{"Top left", 0, 0, 300, 200, Rotation{4, -4}},
		{"Bottom right", 300, 200, 300, 200, Rotation{-4, 4}},
		{"Right middle", 225, 100, 300, 200, Rotation{0, 2}},
		{"Zero size", 10, 10, 0, 0, Rotation{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tilt(tt.x, tt.y, tt.w, tt.h)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Tilt = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTransform(t *testing.T) {
	got := Rotation{X: 2, Y: -1.5}.Transform()
	want := "perspective(800px) rotateX(2deg) rotateY(-1.5deg) translateY(-4px)"
	if got != want {
		t.Errorf("Transform() = %q, want %q", got, want)
	}
}

func TestTilterCoarsePointer(t *testing.T) {
	if _, ok := NewTilter(true).Move(0, 0, 100, 100); ok {
		t.Errorf("coarse pointers must not tilt")
	}
	if _, ok := NewTilter(true).Leave(); ok {
		t.Errorf("coarse pointers have nothing to reset")
	}

	fine := NewTilter(false)
	if tf, ok := fine.Move(0, 0, 100, 100); !ok || tf == "" {
		t.Errorf("fine pointers tilt, got %q %v", tf, ok)
	}
	if tf, ok := fine.Leave(); !ok || tf != "" {
		t.Errorf("Leave() = %q, %v; want reset", tf, ok)
	}
}

func TestResolveAnchor(t *testing.T) {
	ids := map[string]bool{"about": true, "contact": true}
	tests := []struct {
		href   string
		target string
		action AnchorAction
	}{
		{"#about", "about", SmoothScroll},
		{"#contact", "contact", SmoothScroll},
		{"#", "", BrowserDefault},
		{"#missing", "", BrowserDefault},
		{"/privacy", "", BrowserDefault},
		{"https://example.com/#about", "", BrowserDefault},
	}
	for _, tt := range tests {
		target, action := ResolveAnchor(tt.href, ids)
		if target != tt.target || action != tt.action {
			t.Errorf("ResolveAnchor(%q) = (%q, %v), want (%q, %v)", tt.href, target, action, tt.target, tt.action)
		}
	}
}

func TestNavScrolled(t *testing.T) {
	for y, want := range map[float64]bool{0: false, 50: false, 50.5: true, 900: true} {
		if got := NavScrolled(y); got != want {
			t.Errorf("NavScrolled(%v) = %v, want %v", y, got, want)
		}
	}
}
