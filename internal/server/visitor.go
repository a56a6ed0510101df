package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jglims/portfolio/internal/i18n"
)

const (
	visitorCookie = "jg-visitor"
	visitorKey    = "visitor"
)

// visitorMiddleware gives every browser a stable anonymous id, the key of its
// stored preferences.
func visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(visitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(visitorCookie, id, 3600*24*365, "/", "", false, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

// preferences returns the preference store of the requesting visitor, or nil
// when persistence is unavailable.
func (s *Server) preferences(c *gin.Context) i18n.PreferenceStore {
	if s.store == nil {
		return nil
	}
	return s.store.Preferences(c.GetString(visitorKey))
}

// language reads the visitor's language once for this request.
func (s *Server) language(c *gin.Context) i18n.Lang {
	return i18n.NewSwitcher(s.preferences(c), nil).Init()
}
