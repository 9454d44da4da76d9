package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lndn-movers/removals/internal/catalog"
	"github.com/lndn-movers/removals/internal/inventory"
	"github.com/lndn-movers/removals/internal/quote"
)

type calculateQuoteRequest struct {
	FurnitureItems     []inventory.Selection `json:"furnitureItems"`
	HomeSize           string                `json:"homeSize"`
	DistanceMiles      float64               `json:"distanceMiles"`
	DrivingMinutes     float64               `json:"drivingMinutes"`
	NoParking          bool                  `json:"noParking"`
	NoLift             bool                  `json:"noLift"`
	CustomerAssistance bool                  `json:"customerAssistance"`
	DifficultAccess    bool                  `json:"difficultAccess"`
	JobID              string                `json:"jobId"`
}

type calculateQuoteResponse struct {
	Success  bool          `json:"success"`
	Data     *quote.Result `json:"data,omitempty"`
	QuoteRef string        `json:"quoteRef,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// homeSizeRooms maps booking-form home sizes to room counts; 0 means studio.
var homeSizeRooms = map[string]int{
	"studio":     0,
	"mini-move":  0,
	"1-bedroom":  1,
	"2-bedrooms": 2,
	"3-bedrooms": 3,
	"4-bedrooms": 4,
}

func numRoomsForHomeSize(homeSize string) int {
	if rooms, ok := homeSizeRooms[homeSize]; ok {
		return rooms
	}
	return 0
}

func (s *server) handleCalculateQuote(w http.ResponseWriter, r *http.Request) {
	var req calculateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.FurnitureItems == nil || req.HomeSize == "" {
		respondError(w, http.StatusBadRequest, "missing required fields: furnitureItems, homeSize")
		return
	}
	if req.DistanceMiles < 0 || req.DrivingMinutes < 0 {
		respondError(w, http.StatusBadRequest, "distanceMiles and drivingMinutes must not be negative")
		return
	}

	items, err := catalog.ListActive(s.db)
	if err != nil {
		log.Printf("load catalog for quote: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to load catalog")
		return
	}

	analysis := inventory.Analyze(req.FurnitureItems, items)

	result, err := quote.Recommend(quote.Inputs{
		TotalVolume:        analysis.TotalVolume,
		NumHeavyItems:      analysis.NumHeavyItems,
		CustomerAssistance: req.CustomerAssistance,
		NumRooms:           numRoomsForHomeSize(req.HomeSize),
		DifficultAccess:    req.DifficultAccess,
		DistanceMiles:      req.DistanceMiles,
		NoParking:          req.NoParking,
		NoLift:             req.NoLift,
		DrivingMinutes:     req.DrivingMinutes,
	})
	if err != nil {
		log.Printf("quote calculation failed: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to calculate quote")
		return
	}

	resp := calculateQuoteResponse{Success: true, Data: &result}

	if req.JobID != "" {
		ref, err := s.saveQuote(req, result)
		if err != nil {
			// Persistence is best-effort: the customer still gets their quote.
			log.Printf("warning: failed to save quote for job %s: %v", req.JobID, err)
		} else {
			resp.QuoteRef = ref
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func (s *server) saveQuote(req calculateQuoteRequest, result quote.Result) (string, error) {
	inputsJSON, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", err
	}

	ref := uuid.NewString()
	_, err = s.db.Exec(`
		INSERT INTO quotes (
			quote_ref,
			job_id,
			total_volume,
			num_heavy_items,
			vehicle_type,
			crew_size,
			zone,
			total_cost,
			inputs_json,
			result_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		ref,
		req.JobID,
		result.TotalVolume,
		result.NumHeavyItems,
		string(result.VehicleType),
		result.CrewSize,
		string(result.Pricing.Zone),
		result.Pricing.TotalCost,
		string(inputsJSON),
		string(resultJSON),
	)
	if err != nil {
		return "", err
	}

	return ref, nil
}

type quoteListItem struct {
	QuoteRef    string  `json:"quoteRef"`
	JobID       string  `json:"jobId"`
	CreatedAt   string  `json:"createdAt"`
	VehicleType string  `json:"vehicleType"`
	CrewSize    int     `json:"crewSize"`
	Zone        string  `json:"zone"`
	TotalCost   float64 `json:"totalCost"`
}

type quotesResponse struct {
	Success bool            `json:"success"`
	Data    []quoteListItem `json:"data"`
}

func (s *server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	quotes, err := s.listQuotes(query)
	if err != nil {
		log.Printf("list quotes: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to load quotes")
		return
	}

	respondJSON(w, http.StatusOK, quotesResponse{Success: true, Data: quotes})
}

func (s *server) listQuotes(query string) ([]quoteListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT
			quote_ref,
			COALESCE(job_id, ''),
			created_at,
			vehicle_type,
			crew_size,
			zone,
			total_cost
		FROM quotes
		WHERE (? = '' OR quote_ref LIKE ? OR COALESCE(job_id, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]quoteListItem, 0)
	for rows.Next() {
		var item quoteListItem
		if err := rows.Scan(&item.QuoteRef, &item.JobID, &item.CreatedAt, &item.VehicleType, &item.CrewSize, &item.Zone, &item.TotalCost); err != nil {
			return nil, err
		}
		quotes = append(quotes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}

type quoteDetail struct {
	QuoteRef  string          `json:"quoteRef"`
	JobID     string          `json:"jobId,omitempty"`
	CreatedAt string          `json:"createdAt"`
	Inputs    json.RawMessage `json:"inputs"`
	Result    json.RawMessage `json:"result"`
}

type quoteDetailResponse struct {
	Success bool        `json:"success"`
	Data    quoteDetail `json:"data"`
}

func (s *server) handleQuoteDetail(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	detail, err := s.getQuoteDetail(ref)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "quote not found")
		return
	}
	if err != nil {
		log.Printf("load quote %s: %v", ref, err)
		respondError(w, http.StatusInternalServerError, "failed to load quote")
		return
	}

	respondJSON(w, http.StatusOK, quoteDetailResponse{Success: true, Data: detail})
}

// getQuoteDetail returns the stored snapshot without recalculating: the quote a
// customer was shown must not drift when rule tables change later.
func (s *server) getQuoteDetail(ref string) (quoteDetail, error) {
	var detail quoteDetail
	var inputsJSON, resultJSON string
	err := s.db.QueryRow(`
		SELECT quote_ref, COALESCE(job_id, ''), created_at, inputs_json, result_json
		FROM quotes
		WHERE quote_ref = ?
	`, ref).Scan(&detail.QuoteRef, &detail.JobID, &detail.CreatedAt, &inputsJSON, &resultJSON)
	if err != nil {
		return quoteDetail{}, err
	}

	detail.Inputs = json.RawMessage(inputsJSON)
	detail.Result = json.RawMessage(resultJSON)
	return detail, nil
}
