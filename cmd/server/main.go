package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lndn-movers/removals/internal/config"
	"github.com/lndn-movers/removals/internal/db"
	"github.com/lndn-movers/removals/internal/migrations"
	"github.com/lndn-movers/removals/internal/seed"
)

type server struct {
	db *sql.DB
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	stats, err := seed.Run(database)
	if err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	if stats.Inserts > 0 {
		log.Printf("seeded %d catalog items", stats.Inserts)
	}

	srv := &server{db: database}

	r := chi.NewRouter()
	r.Get("/api/items", srv.handleListItems)
	r.Post("/api/quotes/calculate", srv.handleCalculateQuote)
	r.Get("/api/quotes", srv.handleListQuotes)
	r.Get("/api/quotes/{ref}", srv.handleQuoteDetail)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
