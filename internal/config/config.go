// Package config reads the server settings from the environment. A .env file
// in the working directory is loaded first when present.
package config

import (
	"log"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// SMTP holds the contact form mail settings.
type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Configured reports whether credentials are present.
func (s SMTP) Configured() bool {
	return s.User != "" && s.Pass != ""
}

type Config struct {
	Port      string
	DBPath    string
	Templates string
	StaticDir string
	FrameRate int

	AdminUsername string
	AdminPassword string

	SMTP SMTP
}

// Load returns the configuration with development defaults filled in.
func Load() Config {
	c := Config{
		Port:          getenv("PORT", "8080"),
		DBPath:        getenv("DB_PATH", "portfolio.db"),
		Templates:     getenv("TEMPLATE_GLOB", "templates/*"),
		StaticDir:     getenv("STATIC_DIR", "./static"),
		FrameRate:     getint("FRAME_RATE", 60),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SMTP: SMTP{
			Host: getenv("SMTP_HOST", "smtp.gmail.com"),
			Port: getenv("SMTP_PORT", "587"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   os.Getenv("TO_EMAIL"),
		},
	}

	// Default credentials for development (set both in production)
	if c.AdminUsername == "" {
		c.AdminUsername = "admin"
		log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
	}
	if c.AdminPassword == "" {
		c.AdminPassword = "admin123"
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}
	if c.FrameRate < 1 || c.FrameRate > 120 {
		log.Printf("FRAME_RATE %d out of range, using 60", c.FrameRate)
		c.FrameRate = 60
	}
	return c
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("%s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}
