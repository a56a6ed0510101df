package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/jglims/portfolio/internal/i18n"
)

type fakeSender struct {
	mu   sync.Mutex
	msgs []any
}

func (f *fakeSender) Send(msg any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// frames are reused by the recorder, keep a copy
	if fm, ok := msg.(*FrameMsg); ok {
		cp := *fm
		cp.Circles = append([][4]float64(nil), fm.Circles...)
		cp.Lines = append([][5]float64(nil), fm.Lines...)
		msg = &cp
	}
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeSender) snapshot() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]any(nil), f.msgs...)
}

func (f *fakeSender) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = nil
}

// waitFor polls until match finds a message or the timeout expires.
func waitFor[T any](t *testing.T, f *fakeSender, match func(T) bool) T {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, m := range f.snapshot() {
			if v, ok := m.(T); ok && match(v) {
				return v
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	var zero T
	t.Fatalf("no matching %T sent", zero)
	return zero
}

func testCatalog(t *testing.T) *i18n.Catalog {
	t.Helper()
	c, err := i18n.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return c
}

var testPage = Page{
	Sections: []string{"about", "skills", "contact"},
	NavLinks: []string{"#about", "#skills", "#contact"},
	Reveals:  []string{"r-about", "r-skills"},
}

func startSession(t *testing.T, hello ClientMessage, prefs i18n.PreferenceStore) (*Session, *fakeSender) {
	t.Helper()
	out := &fakeSender{}
	s := newSession(out, testCatalog(t), testPage, 60, prefs)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	s.start(ctx, hello)
	return s, out
}

func TestFrameRecorder(t *testing.T) {
	r := &FrameRecorder{}
	r.Clear(100, 50)
	r.Circle(1.234, 5.678, 1.2345, 0.12345)
	r.Line(0.04, 0.06, 10.15, 20.25, 0.0123456)

	f := r.Frame()
	if f.Type != MsgFrame || f.W != 100 || f.H != 50 {
		t.Errorf("frame header = %+v", f)
	}
	if got := f.Circles[0]; got != [4]float64{1.2, 5.7, 1.23, 0.123} {
		t.Errorf("circle = %v", got)
	}
	if got := f.Lines[0]; got[0] != 0 || got[1] != 0.1 || got[4] != 0.0123 {
		t.Errorf("line = %v", got)
	}

	r.Clear(100, 50)
	if len(f.Circles) != 0 || len(f.Lines) != 0 {
		t.Errorf("Clear must empty the frame")
	}

	data, _ := json.Marshal(r.Frame())
	if !strings.Contains(string(data), `"c":[]`) {
		t.Errorf("empty frame should encode empty arrays: %s", data)
	}
}

func TestSessionStartsInStoredLanguage(t *testing.T) {
	prefs := i18n.NewMemoryStore()
	prefs.Set(i18n.StorageKey, "pt")

	_, out := startSession(t, ClientMessage{Type: MsgHello, Present: 1, W: 800, H: 600, Observer: 1}, prefs)

	lang := waitFor(t, out, func(m LangMsg) bool { return true })
	if lang.Lang != "pt" || lang.Tag != "pt" {
		t.Errorf("lang = %q tag %q, want pt", lang.Lang, lang.Tag)
	}
	if lang.Label.Code != "EN" {
		t.Errorf("toggle label = %+v, want EN", lang.Label)
	}
	if lang.Strings["nav_about"] != "Sobre" {
		t.Errorf("nav_about = %q", lang.Strings["nav_about"])
	}
}

func TestSessionToggleRestartsTyping(t *testing.T) {
	prefs := i18n.NewMemoryStore()
	s, out := startSession(t, ClientMessage{Type: MsgHello, Observer: 1}, prefs)
	out.reset()

	s.handle(ClientMessage{Type: MsgLanguage})

	lang := waitFor(t, out, func(m LangMsg) bool { return true })
	if lang.Lang != "pt" || lang.Label.Code != "EN" {
		t.Errorf("after toggle lang=%q label=%q", lang.Lang, lang.Label.Code)
	}
	waitFor(t, out, func(m TypedMsg) bool { return m.Text == "" })
	waitFor(t, out, func(m TypedMsg) bool { return m.Text == " " })

	if v, _ := prefs.Get(i18n.StorageKey); v != "pt" {
		t.Errorf("preference = %q, want pt", v)
	}
}

func TestSessionRevealFallback(t *testing.T) {
	_, out := startSession(t, ClientMessage{Type: MsgHello, Observer: 0}, nil)

	rev := waitFor(t, out, func(m RevealMsg) bool { return true })
	if len(rev.IDs) != len(testPage.Reveals) {
		t.Errorf("fallback revealed %v", rev.IDs)
	}
}

func TestSessionIntersections(t *testing.T) {
	s, out := startSession(t, ClientMessage{Type: MsgHello, Observer: 1}, nil)

	s.handle(ClientMessage{Type: MsgIntersect, Kind: KindReveal, ID: "r-about", Ratio: 0.5})
	s.handle(ClientMessage{Type: MsgIntersect, Kind: KindReveal, ID: "r-about", Ratio: 0.9})
	s.handle(ClientMessage{Type: MsgIntersect, Kind: KindSection, ID: "skills", Ratio: 0.4})

	reveals := 0
	for _, m := range out.snapshot() {
		if r, ok := m.(RevealMsg); ok {
			reveals++
			if len(r.IDs) != 1 || r.IDs[0] != "r-about" {
				t.Errorf("reveal = %v", r.IDs)
			}
		}
	}
	if reveals != 1 {
		t.Errorf("revealed %d times, want once", reveals)
	}
	waitFor(t, out, func(m ActiveMsg) bool { return m.Href == "#skills" })
}

func TestSessionTilt(t *testing.T) {
	s, out := startSession(t, ClientMessage{Type: MsgHello, Observer: 1}, nil)
	s.handle(ClientMessage{Type: MsgPointer, ID: "card-1", X: 0, Y: 0, W: 200, H: 100})
	s.handle(ClientMessage{Type: MsgLeave, ID: "card-1"})

	waitFor(t, out, func(m TiltMsg) bool { return strings.HasPrefix(m.Transform, "perspective(800px)") })
	waitFor(t, out, func(m TiltMsg) bool { return m.Transform == "" })

	touch, touchOut := startSession(t, ClientMessage{Type: MsgHello, Coarse: 1, Observer: 1}, nil)
	touch.handle(ClientMessage{Type: MsgPointer, ID: "card-1", W: 200, H: 100})
	for _, m := range touchOut.snapshot() {
		if _, ok := m.(TiltMsg); ok {
			t.Errorf("coarse pointer received a tilt")
		}
	}
}

func TestSessionNavScroll(t *testing.T) {
	s, out := startSession(t, ClientMessage{Type: MsgHello, Observer: 1}, nil)
	s.handle(ClientMessage{Type: MsgScroll, Y: 400})

	nav := waitFor(t, out, func(m NavMsg) bool { return true })
	if nav.Scrolled != 1 {
		t.Errorf("nav = %+v", nav)
	}
}

func TestSessionParticles(t *testing.T) {
	s, out := startSession(t, ClientMessage{Type: MsgHello, Present: 1, W: 1280, H: 720, Observer: 1}, nil)
	if s.animator == nil {
		t.Fatal("expected an animator")
	}
	s.renderFrame()

	f := waitFor(t, out, func(m *FrameMsg) bool { return true })
	if len(f.Circles) != 61 {
		t.Errorf("frame has %d circles, want 61", len(f.Circles))
	}

	reduced, _ := startSession(t, ClientMessage{Type: MsgHello, Present: 1, W: 1280, H: 720, Reduced: 1}, nil)
	if reduced.animator != nil {
		t.Errorf("reduced motion must not animate")
	}
	absent, _ := startSession(t, ClientMessage{Type: MsgHello, W: 1280, H: 720}, nil)
	if absent.animator != nil {
		t.Errorf("missing container must not animate")
	}
}

func TestHubServesFrames(t *testing.T) {
	hub := NewHub(testCatalog(t), testPage, 60)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, i18n.NewMemoryStore())
	}))
	defer srv.Close()

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer ws.Close()

	hello, _ := json.Marshal(ClientMessage{Type: MsgHello, Present: 1, W: 600, H: 400, Observer: 1})
	if err := ws.WriteMessage(websocket.TextMessage, hello); err != nil {
		t.Fatalf("write: %v", err)
	}

	seen := map[string]bool{}
	ws.SetReadDeadline(time.Now().Add(3 * time.Second))
	for !(seen[MsgLang] && seen[MsgFrame]) {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v (seen %v)", err, seen)
		}
		var head struct {
			Type string `json:"t"`
		}
		json.Unmarshal(raw, &head)
		seen[head.Type] = true
	}
	if hub.Count() != 1 {
		t.Errorf("Count() = %d, want 1", hub.Count())
	}
}

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, i18n.NewMemoryStore())
	}))
	t.Cleanup(srv.Close)

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func TestConnManagerTryAddIsBounded(t *testing.T) {
	m := NewConnManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.TryAdd(&Conn{ID: uuid.New().String()}, 10)
		}()
	}
	wg.Wait()

	if m.Count() != 10 {
		t.Errorf("Count() = %d, want 10", m.Count())
	}
}

func TestHubRejectsWhenFull(t *testing.T) {
	hub := NewHub(testCatalog(t), testPage, 60)
	for i := 0; i < MaxSessions; i++ {
		hub.conns.TryAdd(&Conn{ID: uuid.New().String()}, MaxSessions)
	}

	ws := dialHub(t, hub)
	ws.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, raw, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg ErrorMsg
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Type != MsgError {
		t.Fatalf("got %s, want an error message", raw)
	}
	if hub.Count() != MaxSessions {
		t.Errorf("Count() = %d, want %d", hub.Count(), MaxSessions)
	}
}

func TestHubDropsOversizedMessages(t *testing.T) {
	hub := NewHub(testCatalog(t), testPage, 60)
	ws := dialHub(t, hub)

	big := `{"t":"h","pad":"` + strings.Repeat("x", 2*MaxMessageSize) + `"}`
	if err := ws.WriteMessage(websocket.TextMessage, []byte(big)); err != nil {
		t.Fatalf("write: %v", err)
	}

	ws.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.Count() != 0 {
		t.Errorf("oversized message should end the session, %d still open", hub.Count())
	}
}
