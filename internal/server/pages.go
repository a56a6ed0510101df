package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jglims/portfolio/internal/i18n"
	"github.com/jglims/portfolio/internal/raster"
)

// Home page, rendered in the visitor's stored language
func (s *Server) index(c *gin.Context) {
	lang := s.language(c)
	phrase := ""
	if p := s.catalog.Phrases(lang); len(p) > 0 {
		phrase = p[0]
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"lang":     lang.String(),
		"tag":      lang.Tag().String(),
		"s":        s.catalog.Strings(lang),
		"label":    s.catalog.ToggleLabel(lang),
		"nav":      navItems(),
		"skills":   skillGroups,
		"projects": projects,
		"phrase":   phrase,
		"year":     time.Now().Year(),
	})
}

// No-JS language switch
func (s *Server) toggleLanguage(c *gin.Context) {
	sw := i18n.NewSwitcher(s.preferences(c), nil)
	sw.Init()
	sw.Toggle()
	c.Redirect(http.StatusSeeOther, "/")
}

// Static particle poster for reduced-motion visitors and link previews
func (s *Server) particlesPreview(c *gin.Context) {
	w := queryInt(c, "w", 1280, 1, 1920)
	h := queryInt(c, "h", 720, 1, 1080)
	frames := queryInt(c, "frames", 1, 1, 600)
	seed := queryInt(c, "seed", 1, 0, 1<<30)

	canvas := raster.Preview(float64(w), float64(h), frames, int64(seed))

	c.Header("Content-Type", "image/png")
	c.Header("Cache-Control", "public, max-age=86400")
	c.Status(http.StatusOK)
	if err := canvas.EncodePNG(c.Writer); err != nil {
		c.Error(err)
	}
}

func queryInt(c *gin.Context, key string, def, lo, hi int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
