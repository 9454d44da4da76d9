package main

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func postCalculate(t *testing.T, srv *server, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/quotes/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	srv.handleCalculateQuote(rr, req)
	return rr
}

func TestHandleCalculateQuote_OneBedroomLocalMove(t *testing.T) {
	srv := newTestServer(t)

	rr := postCalculate(t, srv, `{
		"furnitureItems": [
			{"itemId": "double-bed-mattress", "quantity": 1},
			{"itemId": "bedside-table", "quantity": 1},
			{"itemId": "washing-machine", "quantity": 1},
			{"itemId": "small-boxes", "quantity": 3}
		],
		"homeSize": "1-bedroom",
		"distanceMiles": 1.0
	}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp calculateQuoteResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatalf("expected success envelope, got %s", rr.Body.String())
	}

	result := resp.Data
	if result.VehicleType != "Medium Van" || result.CrewSize != 2 {
		t.Fatalf("expected Medium Van crew 2, got %s crew %d", result.VehicleType, result.CrewSize)
	}
	// bed 1.2 + table 0.12 + washer 0.35 + 3 small boxes 0.123 = 1.793
	if math.Abs(result.TotalVolume-1.793) > 1e-9 {
		t.Fatalf("totalVolume = %v, want 1.793", result.TotalVolume)
	}
	if result.NumHeavyItems != 2 {
		t.Fatalf("numHeavyItems = %d, want 2 (bed + washing machine)", result.NumHeavyItems)
	}
	if result.Pricing.Zone != "local" {
		t.Fatalf("expected local zone, got %s", result.Pricing.Zone)
	}
	// Medium Van with a crew of 2 bills £85/h flat for the 1h base.
	if math.Abs(result.Pricing.TotalCost-85) > 1e-9 {
		t.Fatalf("totalCost = %v, want 85", result.Pricing.TotalCost)
	}
	if resp.QuoteRef != "" {
		t.Fatalf("quote without jobId must not be persisted, got ref %q", resp.QuoteRef)
	}
}

func TestHandleCalculateQuote_PersistsWhenJobIDPresent(t *testing.T) {
	srv := newTestServer(t)

	rr := postCalculate(t, srv, `{
		"furnitureItems": [{"itemId": "coffee-table", "quantity": 1}],
		"homeSize": "studio",
		"distanceMiles": 5.0,
		"jobId": "job-123"
	}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp calculateQuoteResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.QuoteRef == "" {
		t.Fatalf("expected a quote ref when jobId is supplied")
	}

	var count int
	if err := srv.db.QueryRow(`SELECT COUNT(*) FROM quotes WHERE quote_ref = ? AND job_id = 'job-123'`, resp.QuoteRef).Scan(&count); err != nil {
		t.Fatalf("count persisted quotes: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 persisted quote, got %d", count)
	}

	detail, err := srv.getQuoteDetail(resp.QuoteRef)
	if err != nil {
		t.Fatalf("getQuoteDetail returned error: %v", err)
	}
	var stored map[string]any
	if err := json.Unmarshal(detail.Result, &stored); err != nil {
		t.Fatalf("stored result is not valid JSON: %v", err)
	}
	if stored["vehicleType"] != "Small Van" {
		t.Fatalf("expected stored Small Van recommendation, got %v", stored["vehicleType"])
	}
}

func TestHandleCalculateQuote_UnknownItemsAreNonFatal(t *testing.T) {
	srv := newTestServer(t)

	rr := postCalculate(t, srv, `{
		"furnitureItems": [
			{"itemId": "grand-piano", "quantity": 1},
			{"itemId": "armchair", "quantity": 1}
		],
		"homeSize": "studio",
		"distanceMiles": 1.0
	}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp calculateQuoteResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// Only the armchair counts: 0.7m³ and one heavy unit.
	if math.Abs(resp.Data.TotalVolume-0.7) > 1e-9 {
		t.Fatalf("totalVolume = %v, want 0.7", resp.Data.TotalVolume)
	}
	if resp.Data.NumHeavyItems != 1 {
		t.Fatalf("numHeavyItems = %d, want 1", resp.Data.NumHeavyItems)
	}
}

func TestHandleCalculateQuote_Validation(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"invalid JSON", `{not json`},
		{"missing furnitureItems", `{"homeSize": "studio"}`},
		{"missing homeSize", `{"furnitureItems": []}`},
		{"negative distance", `{"furnitureItems": [], "homeSize": "studio", "distanceMiles": -1}`},
		{"negative driving minutes", `{"furnitureItems": [], "homeSize": "studio", "drivingMinutes": -5}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := postCalculate(t, srv, tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", rr.Code, rr.Body.String())
			}
		})
	}
}

func TestNumRoomsForHomeSize(t *testing.T) {
	cases := []struct {
		homeSize string
		want     int
	}{
		{"studio", 0},
		{"mini-move", 0},
		{"1-bedroom", 1},
		{"2-bedrooms", 2},
		{"3-bedrooms", 3},
		{"4-bedrooms", 4},
		{"mansion", 0},
	}
	for _, tc := range cases {
		if got := numRoomsForHomeSize(tc.homeSize); got != tc.want {
			t.Fatalf("numRoomsForHomeSize(%q) = %d, want %d", tc.homeSize, got, tc.want)
		}
	}
}

func TestListQuotesOrdersByDateDescAndFilters(t *testing.T) {
	srv := newTestServer(t)

	seedQuoteRow(t, srv.db, "ref-a", "job-1", "2024-01-01 10:00:00", 100.50)
	seedQuoteRow(t, srv.db, "ref-c", "job-3", "2024-01-03 12:00:00", 300.00)
	seedQuoteRow(t, srv.db, "ref-b", "job-2", "2024-01-02 11:00:00", 200.25)

	quotes, err := srv.listQuotes("")
	if err != nil {
		t.Fatalf("listQuotes returned error: %v", err)
	}
	if len(quotes) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(quotes))
	}
	if quotes[0].QuoteRef != "ref-c" || quotes[1].QuoteRef != "ref-b" || quotes[2].QuoteRef != "ref-a" {
		t.Fatalf("quotes are not sorted desc by created_at: %+v", quotes)
	}
	if quotes[0].TotalCost != 300.00 {
		t.Fatalf("unexpected total: %+v", quotes[0])
	}

	byJob, err := srv.listQuotes("job-2")
	if err != nil {
		t.Fatalf("listQuotes filter returned error: %v", err)
	}
	if len(byJob) != 1 || byJob[0].QuoteRef != "ref-b" {
		t.Fatalf("expected 1 quote filtered by job id, got %+v", byJob)
	}
}

func TestHandleQuoteDetail_NotFound(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/quotes/missing", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("ref", "missing")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	srv.handleQuoteDetail(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}
