// Package server is the HTTP surface of the portfolio: the page itself, the
// live websocket, the contact form and the admin area.
package server

import (
	"html/template"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/jglims/portfolio/internal/config"
	"github.com/jglims/portfolio/internal/i18n"
	"github.com/jglims/portfolio/internal/live"
	"github.com/jglims/portfolio/internal/store"
)

type Server struct {
	cfg     config.Config
	catalog *i18n.Catalog
	store   *store.Store
	hub     *live.Hub
	admin   *Admin
	mailer  Mailer
}

// New wires the server. st may be nil, in which case nothing is persisted.
func New(cfg config.Config, catalog *i18n.Catalog, st *store.Store, mailer Mailer) *Server {
	return &Server{
		cfg:     cfg,
		catalog: catalog,
		store:   st,
		hub:     live.NewHub(catalog, livePage(), cfg.FrameRate),
		admin:   NewAdmin(cfg.AdminUsername, cfg.AdminPassword, st),
		mailer:  mailer,
	}
}

// Router builds the gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.SetFuncMap(template.FuncMap{
		"raw":    func(v string) template.HTML { return template.HTML(v) },
		"smooth": anchorSmooth,
	})
	r.LoadHTMLGlob(s.cfg.Templates)
	r.Static("/static", s.cfg.StaticDir)

	r.Use(visitorMiddleware())
	r.Use(s.trackingMiddleware())

	r.GET("/", s.index)
	r.POST("/lang/toggle", s.toggleLanguage)
	r.GET("/particles.png", s.particlesPreview)
	r.GET("/ws", func(c *gin.Context) {
		s.hub.ServeWS(c.Writer, c.Request, s.preferences(c))
	})

	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.contact)

	s.admin.routes(r)

	log.Printf("Live sessions: %d fps, up to %d pages", s.cfg.FrameRate, live.MaxSessions)
	return r
}
