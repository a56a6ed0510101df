package live

import (
	"context"
	"log"
	"time"

	"github.com/jglims/portfolio/internal/event"
	"github.com/jglims/portfolio/internal/i18n"
	"github.com/jglims/portfolio/internal/particles"
	"github.com/jglims/portfolio/internal/throttle"
	"github.com/jglims/portfolio/internal/typewriter"
	"github.com/jglims/portfolio/internal/viewport"
)

// Page lists the element ids the browser shim reports on.
type Page struct {
	Sections []string
	NavLinks []string
	Reveals  []string
}

type sender interface {
	Send(msg any) error
}

// Session is one page instance. Every client event and every frame tick is
// handled on the goroutine running Run; the typewriter ticks on its own
// goroutine and only ever sends.
type Session struct {
	out       sender
	catalog   *i18n.Catalog
	page      Page
	frameRate int

	bus      *event.Bus
	switcher *i18n.Switcher
	recorder *FrameRecorder
	animator *particles.Animator
	typer    *typewriter.Runner
	reveal   *viewport.Reveal
	active   *viewport.ActiveSection
	tilter   *viewport.Tilter
	scroll   *throttle.Throttle
	scrolled bool
}

func newSession(out sender, catalog *i18n.Catalog, page Page, frameRate int, prefs i18n.PreferenceStore) *Session {
	bus := event.NewBus()
	return &Session{
		out:       out,
		catalog:   catalog,
		page:      page,
		frameRate: frameRate,
		bus:       bus,
		switcher:  i18n.NewSwitcher(prefs, bus),
		recorder:  &FrameRecorder{},
		tilter:    viewport.NewTilter(false),
		scroll:    throttle.New(viewport.ScrollLimit),
	}
}

// Run waits for the hello message, starts every component and then serves
// inbox and the frame clock until ctx is done or inbox closes.
func (s *Session) Run(ctx context.Context, inbox <-chan ClientMessage) {
	var hello ClientMessage
	for hello.Type != MsgHello {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-inbox:
			if !ok {
				return
			}
			hello = msg
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.start(ctx, hello)

	var frames <-chan time.Time
	if s.animator != nil {
		ticker := time.NewTicker(time.Second / time.Duration(s.frameRate))
		defer ticker.Stop()
		frames = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-frames:
			s.renderFrame()
		case msg, ok := <-inbox:
			if !ok {
				return
			}
			s.handle(msg)
		}
	}
}

// start initialises the components from the hello message.
func (s *Session) start(ctx context.Context, hello ClientMessage) {
	lang := s.switcher.Init()
	s.sendLang(lang)

	var container *particles.Container
	if hello.Present == 1 {
		container = &particles.Container{Width: hello.W, Height: hello.H}
	}
	s.animator, _ = particles.NewAnimator(container, s.recorder, particles.Options{
		ReducedMotion: hello.Reduced == 1,
	})

	s.tilter = viewport.NewTilter(hello.Coarse == 1)

	s.reveal = viewport.NewReveal(s.page.Reveals)
	if hello.Observer == 1 {
		s.active, _ = viewport.NewActiveSection(s.page.Sections, s.page.NavLinks)
	} else {
		// Without an intersection primitive nothing would ever be reported.
		s.send(RevealMsg{Type: MsgReveal, IDs: s.reveal.RevealAll()})
	}

	s.typer = typewriter.NewRunner(s.catalog.Phrases(lang), func(text string) {
		s.send(TypedMsg{Type: MsgTyped, Text: text})
	})
	s.bus.Subscribe(func(ev event.LanguageChanged) {
		s.typer.Restart(s.catalog.Phrases(i18n.Parse(ev.Lang)))
	})
	go s.typer.Run(ctx)
}

func (s *Session) handle(msg ClientMessage) {
	switch msg.Type {
	case MsgResize:
		if s.animator != nil {
			s.animator.Resize(particles.Container{Width: msg.W, Height: msg.H})
		}

	case MsgLanguage:
		s.sendLang(s.switcher.Toggle())

	case MsgIntersect:
		s.intersect(msg)

	case MsgPointer:
		if tf, ok := s.tilter.Move(msg.X, msg.Y, msg.W, msg.H); ok {
			s.send(TiltMsg{Type: MsgTilt, ID: msg.ID, Transform: tf})
		}

	case MsgLeave:
		if tf, ok := s.tilter.Leave(); ok {
			s.send(TiltMsg{Type: MsgTilt, ID: msg.ID, Transform: tf})
		}

	case MsgScroll:
		if !s.scroll.Allow() {
			return
		}
		if scrolled := viewport.NavScrolled(msg.Y); scrolled != s.scrolled {
			s.scrolled = scrolled
			s.send(NavMsg{Type: MsgNav, Scrolled: boolInt(scrolled)})
		}
	}
}

func (s *Session) intersect(msg ClientMessage) {
	switch msg.Kind {
	case KindReveal:
		if s.reveal != nil && s.reveal.Observe(msg.ID, msg.Ratio) {
			s.send(RevealMsg{Type: MsgReveal, IDs: []string{msg.ID}})
		}
	case KindSection:
		if s.active == nil {
			return
		}
		if href, changed := s.active.Observe(msg.ID, msg.Ratio); changed {
			s.send(ActiveMsg{Type: MsgActive, Href: href})
		}
	}
}

func (s *Session) renderFrame() {
	s.animator.RenderFrame()
	s.send(s.recorder.Frame())
}

func (s *Session) sendLang(lang i18n.Lang) {
	s.send(LangMsg{
		Type:    MsgLang,
		Lang:    lang.String(),
		Tag:     lang.Tag().String(),
		Label:   s.catalog.ToggleLabel(lang),
		Strings: s.catalog.Strings(lang),
	})
}

func (s *Session) send(msg any) {
	if err := s.out.Send(msg); err != nil {
		log.Printf("live: send: %v", err)
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
