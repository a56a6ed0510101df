// admin.go - privacy-conscious admin area
package server

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jglims/portfolio/internal/i18n"
	"github.com/jglims/portfolio/internal/store"
)

const adminCookie = "admin_token"

// Admin guards the dashboard with a per-process token cookie.
type Admin struct {
	token    string
	username string
	password string
	store    *store.Store
}

// NewAdmin generates the session token for this process.
func NewAdmin(username, password string, st *store.Store) *Admin {
	a := &Admin{
		token:    generateAdminToken(),
		username: username,
		password: password,
		store:    st,
	}

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", a.token)
	}
	return a
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

func (a *Admin) hashIP(ip string) string {
	if a.store == nil {
		return "unknown"
	}
	return a.store.HashIP(ip)
}

func (a *Admin) validLogin(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	return u&p == 1
}

// Middleware to check admin authentication
func (a *Admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Privacy-conscious visitor tracking middleware
func (s *Server) trackingMiddleware() gin.HandlerFunc {
	skip := []string{"/static/", "/admin/", "/favicon", "/privacy", "/ws", "/particles.png"}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if s.store == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		for _, p := range skip {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		prefs := s.preferences(c)
		go func() {
			lang := i18n.NewSwitcher(prefs, nil).Init()
			if err := s.store.TrackVisit(ip, ua, path, lang.String()); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

// Setup all admin routes
func (a *Admin) routes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if a.validLogin(c.PostForm("username"), c.PostForm("password")) {
			// Secure cookie (24 hours)
			c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", a.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		log.Printf("Failed admin login attempt from %s", a.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(a.authMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.stats()
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	// JSON for HTMX refreshes
	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.stats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		if a.store == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage disabled"})
			return
		}
		n, err := a.store.CleanupOldVisits()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": n})
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.stats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}

func (a *Admin) stats() (*store.Stats, error) {
	if a.store == nil {
		return &store.Stats{Languages: map[string]int64{}}, nil
	}
	return a.store.Stats()
}
