package main

import (
	"log"
	"net/http"

	"github.com/lndn-movers/removals/internal/catalog"
	"github.com/lndn-movers/removals/internal/inventory"
)

type itemsResponse struct {
	Success bool                    `json:"success"`
	Data    []inventory.RemovalItem `json:"data"`
}

func (s *server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := catalog.ListActive(s.db)
	if err != nil {
		log.Printf("list catalog items: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to load catalog")
		return
	}

	respondJSON(w, http.StatusOK, itemsResponse{Success: true, Data: items})
}
