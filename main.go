package main

import (
	"log"

	"github.com/jglims/portfolio/internal/config"
	"github.com/jglims/portfolio/internal/i18n"
	"github.com/jglims/portfolio/internal/server"
	"github.com/jglims/portfolio/internal/store"
)

func main() {
	cfg := config.Load()

	catalog, err := i18n.LoadCatalog()
	if err != nil {
		log.Fatal("Failed to load translations:", err)
	}

	// Runs without persistence if the database can't be opened
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Printf("Failed to initialize database: %v", err)
		st = nil
	} else {
		defer st.Close()
		go func() {
			n, err := st.CleanupOldVisits()
			if err != nil {
				log.Printf("Error cleaning old visits: %v", err)
				return
			}
			log.Printf("Privacy cleanup removed %d old visits", n)
		}()
	}

	srv := server.New(cfg, catalog, st, server.NewSMTPMailer(cfg.SMTP))
	if err := srv.Router().Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
